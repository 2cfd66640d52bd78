package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Tomoshibi1125/solo-compendium-sub000/internal/compendium/domain"
	"github.com/Tomoshibi1125/solo-compendium-sub000/internal/compendium/storage"
)

// PutItem upserts one item record keyed by content ID.
func (s *Store) PutItem(ctx context.Context, record storage.ItemRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	if strings.TrimSpace(record.Item.ID) == "" {
		return fmt.Errorf("item id is required")
	}

	stats, err := encodeJSON(record.Item.Stats)
	if err != nil {
		return fmt.Errorf("encode item stats: %w", err)
	}

	createdAt, updatedAt := recordTimes(record.CreatedAt, record.UpdatedAt)
	_, err = s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO items (
		   id, name, description, rarity, item_type, image,
		   stats, effect, value, position, created_at, updated_at
		 ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		   name = excluded.name,
		   description = excluded.description,
		   rarity = excluded.rarity,
		   item_type = excluded.item_type,
		   image = excluded.image,
		   stats = excluded.stats,
		   effect = excluded.effect,
		   value = excluded.value,
		   position = excluded.position,
		   updated_at = excluded.updated_at`,
		record.Item.ID,
		record.Item.Name,
		record.Item.Description,
		string(record.Item.Rarity),
		string(record.Item.Type),
		record.Item.Image,
		stats,
		record.Item.Effect,
		record.Item.Value,
		record.Position,
		toMillis(createdAt),
		toMillis(updatedAt),
	)
	if err != nil {
		return fmt.Errorf("put item: %w", err)
	}
	return nil
}

// GetItem returns one item record by content ID.
func (s *Store) GetItem(ctx context.Context, id string) (storage.ItemRecord, error) {
	if err := ctx.Err(); err != nil {
		return storage.ItemRecord{}, err
	}
	if s == nil || s.sqlDB == nil {
		return storage.ItemRecord{}, fmt.Errorf("storage is not configured")
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return storage.ItemRecord{}, fmt.Errorf("item id is required")
	}

	row := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT id, name, description, rarity, item_type, image,
		        stats, effect, value, position, created_at, updated_at
		   FROM items
		  WHERE id = ?`,
		id,
	)
	record, err := scanItem(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.ItemRecord{}, storage.ErrNotFound
		}
		return storage.ItemRecord{}, fmt.Errorf("get item: %w", err)
	}
	return record, nil
}

// ListItems returns every item record in catalogue order.
func (s *Store) ListItems(ctx context.Context) ([]storage.ItemRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}

	rows, err := s.sqlDB.QueryContext(
		ctx,
		`SELECT id, name, description, rarity, item_type, image,
		        stats, effect, value, position, created_at, updated_at
		   FROM items
		  ORDER BY position ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()

	var records []storage.ItemRecord
	for rows.Next() {
		record, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("list items: %w", err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	return records, nil
}

// PutFeat upserts one feat record keyed by content ID.
func (s *Store) PutFeat(ctx context.Context, record storage.FeatRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	if strings.TrimSpace(record.Feat.ID) == "" {
		return fmt.Errorf("feat id is required")
	}

	prerequisites, err := encodeJSON(record.Feat.Prerequisites)
	if err != nil {
		return fmt.Errorf("encode feat prerequisites: %w", err)
	}
	benefits, err := encodeJSON(record.Feat.Benefits)
	if err != nil {
		return fmt.Errorf("encode feat benefits: %w", err)
	}
	mechanics, err := encodeJSON(record.Feat.Mechanics)
	if err != nil {
		return fmt.Errorf("encode feat mechanics: %w", err)
	}

	createdAt, updatedAt := recordTimes(record.CreatedAt, record.UpdatedAt)
	_, err = s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO feats (
		   id, name, description, prerequisites, benefits, mechanics,
		   flavor, source, image, position, created_at, updated_at
		 ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		   name = excluded.name,
		   description = excluded.description,
		   prerequisites = excluded.prerequisites,
		   benefits = excluded.benefits,
		   mechanics = excluded.mechanics,
		   flavor = excluded.flavor,
		   source = excluded.source,
		   image = excluded.image,
		   position = excluded.position,
		   updated_at = excluded.updated_at`,
		record.Feat.ID,
		record.Feat.Name,
		record.Feat.Description,
		prerequisites,
		benefits,
		mechanics,
		record.Feat.Flavor,
		record.Feat.Source,
		record.Feat.Image,
		record.Position,
		toMillis(createdAt),
		toMillis(updatedAt),
	)
	if err != nil {
		return fmt.Errorf("put feat: %w", err)
	}
	return nil
}

// GetFeat returns one feat record by content ID.
func (s *Store) GetFeat(ctx context.Context, id string) (storage.FeatRecord, error) {
	if err := ctx.Err(); err != nil {
		return storage.FeatRecord{}, err
	}
	if s == nil || s.sqlDB == nil {
		return storage.FeatRecord{}, fmt.Errorf("storage is not configured")
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return storage.FeatRecord{}, fmt.Errorf("feat id is required")
	}

	row := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT id, name, description, prerequisites, benefits, mechanics,
		        flavor, source, image, position, created_at, updated_at
		   FROM feats
		  WHERE id = ?`,
		id,
	)
	record, err := scanFeat(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.FeatRecord{}, storage.ErrNotFound
		}
		return storage.FeatRecord{}, fmt.Errorf("get feat: %w", err)
	}
	return record, nil
}

// ListFeats returns every feat record in catalogue order.
func (s *Store) ListFeats(ctx context.Context) ([]storage.FeatRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}

	rows, err := s.sqlDB.QueryContext(
		ctx,
		`SELECT id, name, description, prerequisites, benefits, mechanics,
		        flavor, source, image, position, created_at, updated_at
		   FROM feats
		  ORDER BY position ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("list feats: %w", err)
	}
	defer rows.Close()

	var records []storage.FeatRecord
	for rows.Next() {
		record, err := scanFeat(rows)
		if err != nil {
			return nil, fmt.Errorf("list feats: %w", err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list feats: %w", err)
	}
	return records, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanItem(row rowScanner) (storage.ItemRecord, error) {
	var record storage.ItemRecord
	var rarity string
	var itemType string
	var stats string
	var createdAt int64
	var updatedAt int64
	if err := row.Scan(
		&record.Item.ID,
		&record.Item.Name,
		&record.Item.Description,
		&rarity,
		&itemType,
		&record.Item.Image,
		&stats,
		&record.Item.Effect,
		&record.Item.Value,
		&record.Position,
		&createdAt,
		&updatedAt,
	); err != nil {
		return storage.ItemRecord{}, err
	}
	record.Item.Rarity = domain.Rarity(rarity)
	record.Item.Type = domain.ItemType(itemType)
	if err := decodeJSON(stats, &record.Item.Stats); err != nil {
		return storage.ItemRecord{}, fmt.Errorf("decode item stats: %w", err)
	}
	record.CreatedAt = fromMillis(createdAt)
	record.UpdatedAt = fromMillis(updatedAt)
	return record, nil
}

func scanFeat(row rowScanner) (storage.FeatRecord, error) {
	var record storage.FeatRecord
	var prerequisites string
	var benefits string
	var mechanics string
	var createdAt int64
	var updatedAt int64
	if err := row.Scan(
		&record.Feat.ID,
		&record.Feat.Name,
		&record.Feat.Description,
		&prerequisites,
		&benefits,
		&mechanics,
		&record.Feat.Flavor,
		&record.Feat.Source,
		&record.Feat.Image,
		&record.Position,
		&createdAt,
		&updatedAt,
	); err != nil {
		return storage.FeatRecord{}, err
	}
	if err := decodeJSON(prerequisites, &record.Feat.Prerequisites); err != nil {
		return storage.FeatRecord{}, fmt.Errorf("decode feat prerequisites: %w", err)
	}
	if err := decodeJSON(benefits, &record.Feat.Benefits); err != nil {
		return storage.FeatRecord{}, fmt.Errorf("decode feat benefits: %w", err)
	}
	if err := decodeJSON(mechanics, &record.Feat.Mechanics); err != nil {
		return storage.FeatRecord{}, fmt.Errorf("decode feat mechanics: %w", err)
	}
	record.CreatedAt = fromMillis(createdAt)
	record.UpdatedAt = fromMillis(updatedAt)
	return record, nil
}

func encodeJSON(value any) (string, error) {
	data, err := json.Marshal(value)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func decodeJSON(data string, target any) error {
	if strings.TrimSpace(data) == "" {
		return nil
	}
	return json.Unmarshal([]byte(data), target)
}

func recordTimes(createdAt, updatedAt time.Time) (time.Time, time.Time) {
	createdAt = createdAt.UTC()
	updatedAt = updatedAt.UTC()
	if createdAt.IsZero() && updatedAt.IsZero() {
		createdAt = time.Now().UTC()
		updatedAt = createdAt
		return createdAt, updatedAt
	}
	if createdAt.IsZero() {
		createdAt = updatedAt
	}
	if updatedAt.IsZero() {
		updatedAt = createdAt
	}
	return createdAt, updatedAt
}
