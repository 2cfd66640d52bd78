package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/Tomoshibi1125/solo-compendium-sub000/internal/compendium/domain"
	"github.com/Tomoshibi1125/solo-compendium-sub000/internal/compendium/storage"
)

func openTempStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "content.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Errorf("close store: %v", err)
		}
	})
	return store
}

func TestOpenRequiresPath(t *testing.T) {
	t.Parallel()

	if _, err := Open(""); err == nil {
		t.Fatal("expected empty path error")
	}
}

func TestPutGetItemRoundTrip(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	now := time.Date(2026, time.March, 1, 10, 0, 0, 0, time.UTC)
	input := storage.ItemRecord{
		Item: domain.Item{
			ID:          "item-1",
			Name:        "Ember Blade",
			Description: "A sword wreathed in cinders",
			Rarity:      domain.RarityRare,
			Type:        domain.ItemTypeWeapon,
			Image:       "ember-blade.png",
			Stats:       map[string]int{domain.StatAttack: 12},
			Effect:      "Burns on hit",
			Value:       450,
		},
		Position:  3,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := store.PutItem(context.Background(), input); err != nil {
		t.Fatalf("put item: %v", err)
	}

	got, err := store.GetItem(context.Background(), "item-1")
	if err != nil {
		t.Fatalf("get item: %v", err)
	}
	if !reflect.DeepEqual(got.Item, input.Item) {
		t.Fatalf("item = %+v, want %+v", got.Item, input.Item)
	}
	if got.Position != input.Position {
		t.Fatalf("position = %d, want %d", got.Position, input.Position)
	}
	if !got.CreatedAt.Equal(now) || !got.UpdatedAt.Equal(now) {
		t.Fatalf("timestamps = %v/%v, want %v", got.CreatedAt, got.UpdatedAt, now)
	}
}

func TestPutItemUpsertsByID(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	now := time.Date(2026, time.March, 1, 10, 0, 0, 0, time.UTC)
	record := storage.ItemRecord{
		Item: domain.Item{
			ID:          "item-1",
			Name:        "Ember Blade",
			Description: "A sword wreathed in cinders",
			Rarity:      domain.RarityRare,
			Type:        domain.ItemTypeWeapon,
			Value:       450,
		},
		Position:  0,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := store.PutItem(context.Background(), record); err != nil {
		t.Fatalf("put item: %v", err)
	}

	record.Item.Name = "Ember Blade, Reforged"
	record.Position = 5
	record.UpdatedAt = now.Add(time.Hour)
	if err := store.PutItem(context.Background(), record); err != nil {
		t.Fatalf("upsert item: %v", err)
	}

	got, err := store.GetItem(context.Background(), "item-1")
	if err != nil {
		t.Fatalf("get item: %v", err)
	}
	if got.Item.Name != "Ember Blade, Reforged" {
		t.Fatalf("name = %q, want updated name", got.Item.Name)
	}
	if got.Position != 5 {
		t.Fatalf("position = %d, want 5", got.Position)
	}

	records, err := store.ListItems(context.Background())
	if err != nil {
		t.Fatalf("list items: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("len(records) = %d, want 1", len(records))
	}
}

func TestGetItemNotFound(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	if _, err := store.GetItem(context.Background(), "missing"); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("get item error = %v, want %v", err, storage.ErrNotFound)
	}
}

func TestListItemsOrderedByPosition(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	now := time.Date(2026, time.March, 1, 10, 0, 0, 0, time.UTC)
	for i, id := range []string{"item-c", "item-a", "item-b"} {
		record := storage.ItemRecord{
			Item: domain.Item{
				ID:          id,
				Name:        id,
				Description: "test item",
				Rarity:      domain.RarityCommon,
				Type:        domain.ItemTypeAccessory,
			},
			Position:  i,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := store.PutItem(context.Background(), record); err != nil {
			t.Fatalf("put item %s: %v", id, err)
		}
	}

	records, err := store.ListItems(context.Background())
	if err != nil {
		t.Fatalf("list items: %v", err)
	}
	var ids []string
	for _, record := range records {
		ids = append(ids, record.Item.ID)
	}
	want := []string{"item-c", "item-a", "item-b"}
	if !reflect.DeepEqual(ids, want) {
		t.Fatalf("ids = %v, want %v", ids, want)
	}
}

func TestPutGetFeatRoundTrip(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	now := time.Date(2026, time.March, 1, 10, 0, 0, 0, time.UTC)
	input := storage.FeatRecord{
		Feat: domain.Feat{
			ID:          "feat-1",
			Name:        "Blade Dancer",
			Description: "Weave between strikes",
			Prerequisites: &domain.Prerequisites{
				Level:   5,
				Ability: "dexterity",
				Score:   15,
				Feats:   []string{"feat-0"},
			},
			Benefits: []string{"Extra reaction each round"},
			Mechanics: domain.Mechanics{
				Type:      domain.MechanicActive,
				Frequency: "per_round",
				Action:    "reaction",
			},
			Flavor: "The dance never stops.",
			Source: "core",
		},
		Position:  1,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := store.PutFeat(context.Background(), input); err != nil {
		t.Fatalf("put feat: %v", err)
	}

	got, err := store.GetFeat(context.Background(), "feat-1")
	if err != nil {
		t.Fatalf("get feat: %v", err)
	}
	if !reflect.DeepEqual(got.Feat, input.Feat) {
		t.Fatalf("feat = %+v, want %+v", got.Feat, input.Feat)
	}
}

func TestGetFeatWithoutPrerequisites(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	now := time.Date(2026, time.March, 1, 10, 0, 0, 0, time.UTC)
	input := storage.FeatRecord{
		Feat: domain.Feat{
			ID:          "feat-plain",
			Name:        "Tough",
			Description: "Extra health",
			Benefits:    []string{"More health per level"},
			Mechanics:   domain.Mechanics{Type: domain.MechanicPassive},
			Source:      "core",
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := store.PutFeat(context.Background(), input); err != nil {
		t.Fatalf("put feat: %v", err)
	}

	got, err := store.GetFeat(context.Background(), "feat-plain")
	if err != nil {
		t.Fatalf("get feat: %v", err)
	}
	if got.Feat.Prerequisites != nil {
		t.Fatalf("prerequisites = %+v, want nil", got.Feat.Prerequisites)
	}
}

func TestGetFeatNotFound(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	if _, err := store.GetFeat(context.Background(), "missing"); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("get feat error = %v, want %v", err, storage.ErrNotFound)
	}
}

func TestListFeatsOrderedByPosition(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	now := time.Date(2026, time.March, 1, 10, 0, 0, 0, time.UTC)
	for i, id := range []string{"feat-b", "feat-a"} {
		record := storage.FeatRecord{
			Feat: domain.Feat{
				ID:          id,
				Name:        id,
				Description: "test feat",
				Mechanics:   domain.Mechanics{Type: domain.MechanicPassive},
				Source:      "core",
			},
			Position:  i,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := store.PutFeat(context.Background(), record); err != nil {
			t.Fatalf("put feat %s: %v", id, err)
		}
	}

	records, err := store.ListFeats(context.Background())
	if err != nil {
		t.Fatalf("list feats: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("len(records) = %d, want 2", len(records))
	}
	if records[0].Feat.ID != "feat-b" || records[1].Feat.ID != "feat-a" {
		t.Fatalf("order = %s, %s, want feat-b, feat-a", records[0].Feat.ID, records[1].Feat.ID)
	}
}
