package domain

import (
	"fmt"
	"strings"

	apperrors "github.com/Tomoshibi1125/solo-compendium-sub000/internal/platform/errors"
)

// MechanicType describes how a feat's mechanic is used.
type MechanicType string

const (
	MechanicPassive   MechanicType = "passive"
	MechanicActive    MechanicType = "active"
	MechanicTriggered MechanicType = "triggered"
)

var mechanicTypes = map[MechanicType]bool{
	MechanicPassive:   true,
	MechanicActive:    true,
	MechanicTriggered: true,
}

// IsValid reports whether the mechanic type is one of the known values.
func (m MechanicType) IsValid() bool {
	return mechanicTypes[m]
}

// Prerequisites describes what a character needs before taking a feat.
// Every field is optional; an absent field means no constraint.
type Prerequisites struct {
	Level      int      `json:"level,omitempty"`
	Ability    string   `json:"ability,omitempty"`
	Score      int      `json:"score,omitempty"`
	Feats      []string `json:"feats,omitempty"`
	Class      string   `json:"class,omitempty"`
	Background string   `json:"background,omitempty"`
}

// Mechanics carries descriptive metadata about how a feat is used.
// None of it is executable; the display layer renders it verbatim.
type Mechanics struct {
	Type      MechanicType `json:"type"`
	Frequency string       `json:"frequency,omitempty"`
	Action    string       `json:"action,omitempty"`
	Ability   string       `json:"ability,omitempty"`
	Save      string       `json:"save,omitempty"`
	DC        int          `json:"dc,omitempty"`
}

// Feat represents a single compendium feat record.
type Feat struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	Description   string         `json:"description"`
	Prerequisites *Prerequisites `json:"prerequisites,omitempty"`
	Benefits      []string       `json:"benefits"`
	Mechanics     Mechanics      `json:"mechanics"`
	Flavor        string         `json:"flavor,omitempty"`
	Source        string         `json:"source"`
	Image         string         `json:"image,omitempty"`
}

// RequiredFeats returns the feat ids this feat requires, or nil when the
// feat has no feat prerequisites.
func (f Feat) RequiredFeats() []string {
	if f.Prerequisites == nil {
		return nil
	}
	return f.Prerequisites.Feats
}

// newInvalidFeatError builds the invalid-field error carrying the feat id
// and the offending field.
func newInvalidFeatError(featID, field string) error {
	return apperrors.WithMetadata(
		apperrors.CodeContentInvalidStat,
		fmt.Sprintf("feat %s: invalid field %s", featID, field),
		map[string]string{"id": featID, "field": field},
	)
}

// ValidateFeat checks a single feat record for structural validity.
// Cross-references to other feats are checked later when the prerequisite
// graph is built; this is a purely record-local pass.
func ValidateFeat(feat Feat) error {
	if strings.TrimSpace(feat.ID) == "" {
		return newInvalidFeatError(feat.ID, "id")
	}
	if strings.TrimSpace(feat.Name) == "" {
		return newInvalidFeatError(feat.ID, "name")
	}
	if strings.TrimSpace(feat.Description) == "" {
		return newInvalidFeatError(feat.ID, "description")
	}
	if !feat.Mechanics.Type.IsValid() {
		return newInvalidFeatError(feat.ID, "mechanics.type")
	}
	if feat.Prerequisites != nil {
		if feat.Prerequisites.Level < 0 {
			return newInvalidFeatError(feat.ID, "prerequisites.level")
		}
		if feat.Prerequisites.Score < 0 {
			return newInvalidFeatError(feat.ID, "prerequisites.score")
		}
		if feat.Prerequisites.Score > 0 && strings.TrimSpace(feat.Prerequisites.Ability) == "" {
			return newInvalidFeatError(feat.ID, "prerequisites.ability")
		}
		for _, required := range feat.Prerequisites.Feats {
			if strings.TrimSpace(required) == "" {
				return newInvalidFeatError(feat.ID, "prerequisites.feats")
			}
		}
	}
	return nil
}
