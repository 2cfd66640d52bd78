package catalog

import (
	"fmt"
	"strconv"

	"github.com/Tomoshibi1125/solo-compendium-sub000/internal/compendium/domain"
	apperrors "github.com/Tomoshibi1125/solo-compendium-sub000/internal/platform/errors"
)

// ErrDuplicateID indicates the same content id appears more than once
// across the aggregated shards.
var ErrDuplicateID = apperrors.New(apperrors.CodeContentDuplicateID, "duplicate content id")

// AggregateItems merges item shards into one sequence, preserving shard
// order and within-shard order. The first repeated id or invalid record
// aborts aggregation; the returned error carries the id and the shard
// indices involved so content authors can fix the source data.
func AggregateItems(shards [][]domain.Item) ([]domain.Item, error) {
	total := 0
	for _, shard := range shards {
		total += len(shard)
	}

	items := make([]domain.Item, 0, total)
	firstShard := make(map[string]int, total)

	for shardIndex, shard := range shards {
		for _, item := range shard {
			if err := domain.ValidateItem(item); err != nil {
				return nil, err
			}
			if first, ok := firstShard[item.ID]; ok {
				return nil, apperrors.WithMetadata(
					apperrors.CodeContentDuplicateID,
					fmt.Sprintf("item id %s appears in shard %d and shard %d", item.ID, first, shardIndex),
					map[string]string{
						"id":           item.ID,
						"first_shard":  strconv.Itoa(first),
						"second_shard": strconv.Itoa(shardIndex),
					},
				)
			}
			firstShard[item.ID] = shardIndex
			items = append(items, item)
		}
	}

	return items, nil
}

// AggregateFeats validates the feat sequence and enforces id uniqueness.
// Cross-references between feats are not checked here; that is the
// prerequisite graph's job, which keeps aggregation a pure structural pass.
func AggregateFeats(shard []domain.Feat) ([]domain.Feat, error) {
	feats := make([]domain.Feat, 0, len(shard))
	firstIndex := make(map[string]int, len(shard))

	for index, feat := range shard {
		if err := domain.ValidateFeat(feat); err != nil {
			return nil, err
		}
		if first, ok := firstIndex[feat.ID]; ok {
			return nil, apperrors.WithMetadata(
				apperrors.CodeContentDuplicateID,
				fmt.Sprintf("feat id %s appears at position %d and position %d", feat.ID, first, index),
				map[string]string{
					"id":           feat.ID,
					"first_shard":  strconv.Itoa(first),
					"second_shard": strconv.Itoa(index),
				},
			)
		}
		firstIndex[feat.ID] = index
		feats = append(feats, feat)
	}

	return feats, nil
}
