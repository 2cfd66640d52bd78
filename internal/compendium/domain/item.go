package domain

import (
	"fmt"
	"strings"

	apperrors "github.com/Tomoshibi1125/solo-compendium-sub000/internal/platform/errors"
)

// Rarity describes how rare an item is. Rarities are ordered from common
// to legendary for sorting and filtering.
type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityUncommon  Rarity = "uncommon"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
)

// rarityOrder maps rarities to their ordinal position.
var rarityOrder = map[Rarity]int{
	RarityCommon:    0,
	RarityUncommon:  1,
	RarityRare:      2,
	RarityEpic:      3,
	RarityLegendary: 4,
}

// Ordinal returns the sort position of the rarity, or -1 when invalid.
func (r Rarity) Ordinal() int {
	ordinal, ok := rarityOrder[r]
	if !ok {
		return -1
	}
	return ordinal
}

// IsValid reports whether the rarity is one of the known values.
func (r Rarity) IsValid() bool {
	_, ok := rarityOrder[r]
	return ok
}

// ItemType describes the kind of item.
type ItemType string

const (
	ItemTypeWeapon     ItemType = "weapon"
	ItemTypeArmor      ItemType = "armor"
	ItemTypeConsumable ItemType = "consumable"
	ItemTypeAccessory  ItemType = "accessory"
	ItemTypeScroll     ItemType = "scroll"
)

var itemTypes = map[ItemType]bool{
	ItemTypeWeapon:     true,
	ItemTypeArmor:      true,
	ItemTypeConsumable: true,
	ItemTypeAccessory:  true,
	ItemTypeScroll:     true,
}

// IsValid reports whether the item type is one of the known values.
func (t ItemType) IsValid() bool {
	return itemTypes[t]
}

// Stat keys allowed in Item.Stats.
const (
	StatAttack  = "attack"
	StatDefense = "defense"
	StatHealth  = "health"
	StatMana    = "mana"
)

var statKeys = map[string]bool{
	StatAttack:  true,
	StatDefense: true,
	StatHealth:  true,
	StatMana:    true,
}

// Item represents a single compendium item record.
type Item struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Rarity      Rarity         `json:"rarity"`
	Type        ItemType       `json:"type"`
	Image       string         `json:"image"`
	Stats       map[string]int `json:"stats,omitempty"`
	Effect      string         `json:"effect,omitempty"`
	Value       int            `json:"value"`
}

// ErrInvalidStat indicates an item field is missing, negative, or outside
// its enumerated set.
var ErrInvalidStat = apperrors.New(apperrors.CodeContentInvalidStat, "invalid item field")

// newInvalidStatError builds the invalid-field error carrying the item id
// and the offending field so content authors can locate the record.
func newInvalidStatError(itemID, field string) error {
	return apperrors.WithMetadata(
		apperrors.CodeContentInvalidStat,
		fmt.Sprintf("item %s: invalid field %s", itemID, field),
		map[string]string{"id": itemID, "field": field},
	)
}

// ValidateItem checks a single item record for structural validity.
func ValidateItem(item Item) error {
	if strings.TrimSpace(item.ID) == "" {
		return newInvalidStatError(item.ID, "id")
	}
	if strings.TrimSpace(item.Name) == "" {
		return newInvalidStatError(item.ID, "name")
	}
	if strings.TrimSpace(item.Description) == "" {
		return newInvalidStatError(item.ID, "description")
	}
	if !item.Rarity.IsValid() {
		return newInvalidStatError(item.ID, "rarity")
	}
	if !item.Type.IsValid() {
		return newInvalidStatError(item.ID, "type")
	}
	if item.Value < 0 {
		return newInvalidStatError(item.ID, "value")
	}
	for key, value := range item.Stats {
		if !statKeys[key] {
			return newInvalidStatError(item.ID, "stats."+key)
		}
		if value < 0 {
			return newInvalidStatError(item.ID, "stats."+key)
		}
	}
	return nil
}
