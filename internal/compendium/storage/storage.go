// Package storage defines persistence contracts for published compendium content.
package storage

import (
	"context"
	"time"

	"github.com/Tomoshibi1125/solo-compendium-sub000/internal/compendium/domain"
	apperrors "github.com/Tomoshibi1125/solo-compendium-sub000/internal/platform/errors"
)

// ErrNotFound indicates a requested content record is missing.
var ErrNotFound = apperrors.New(apperrors.CodeNotFound, "record not found")

// ItemRecord stores one published item with its catalogue position.
type ItemRecord struct {
	Item      domain.Item
	Position  int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// FeatRecord stores one published feat with its catalogue position.
type FeatRecord struct {
	Feat      domain.Feat
	Position  int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ContentStore persists a published content catalogue. Puts are upserts
// keyed by content ID; lists return records in catalogue order.
type ContentStore interface {
	PutItem(ctx context.Context, record ItemRecord) error
	GetItem(ctx context.Context, id string) (ItemRecord, error)
	ListItems(ctx context.Context) ([]ItemRecord, error)

	PutFeat(ctx context.Context, record FeatRecord) error
	GetFeat(ctx context.Context, id string) (FeatRecord, error)
	ListFeats(ctx context.Context) ([]FeatRecord, error)

	Close() error
}
