package catalog

import (
	"slices"

	"github.com/Tomoshibi1125/solo-compendium-sub000/internal/compendium/domain"
)

// Catalog is the aggregated, validated compendium exposed to the rest of
// the application. It is constructed once at startup and treated as
// read-only for the lifetime of the process; accessors return copies so
// callers cannot mutate the shared state.
type Catalog struct {
	items     []domain.Item
	feats     []domain.Feat
	itemsByID map[string]domain.Item
	featsByID map[string]domain.Feat
	graph     *PrerequisiteGraph
}

// Build aggregates item shards and the feat sequence into a Catalog.
// Any content-integrity error (duplicate ids, invalid fields, unknown or
// cyclic prerequisites) aborts the build; a Catalog is never published
// with inconsistent data.
func Build(itemShards [][]domain.Item, feats []domain.Feat) (*Catalog, error) {
	items, err := AggregateItems(itemShards)
	if err != nil {
		return nil, err
	}

	aggregatedFeats, err := AggregateFeats(feats)
	if err != nil {
		return nil, err
	}

	graph, err := BuildGraph(aggregatedFeats)
	if err != nil {
		return nil, err
	}

	c := &Catalog{
		items:     items,
		feats:     aggregatedFeats,
		itemsByID: make(map[string]domain.Item, len(items)),
		featsByID: make(map[string]domain.Feat, len(aggregatedFeats)),
		graph:     graph,
	}
	for _, item := range items {
		c.itemsByID[item.ID] = item
	}
	for _, feat := range aggregatedFeats {
		c.featsByID[feat.ID] = feat
	}
	return c, nil
}

// Items returns every item in catalogue order.
func (c *Catalog) Items() []domain.Item {
	return slices.Clone(c.items)
}

// Feats returns every feat in catalogue order.
func (c *Catalog) Feats() []domain.Feat {
	return slices.Clone(c.feats)
}

// Item returns the item with the given id.
func (c *Catalog) Item(id string) (domain.Item, bool) {
	item, ok := c.itemsByID[id]
	return item, ok
}

// Feat returns the feat with the given id.
func (c *Catalog) Feat(id string) (domain.Feat, bool) {
	feat, ok := c.featsByID[id]
	return feat, ok
}

// Graph returns the validated feat prerequisite graph.
func (c *Catalog) Graph() *PrerequisiteGraph {
	return c.graph
}

// ItemsByRarity returns items of the given rarity in catalogue order.
func (c *Catalog) ItemsByRarity(rarity domain.Rarity) []domain.Item {
	var matched []domain.Item
	for _, item := range c.items {
		if item.Rarity == rarity {
			matched = append(matched, item)
		}
	}
	return matched
}

// ItemsByType returns items of the given type in catalogue order.
func (c *Catalog) ItemsByType(itemType domain.ItemType) []domain.Item {
	var matched []domain.Item
	for _, item := range c.items {
		if item.Type == itemType {
			matched = append(matched, item)
		}
	}
	return matched
}

// FeatsAvailableAt returns feats whose minimum level requirement (if any)
// is within the given character level, in catalogue order. Ability and
// feat prerequisites still apply per character; see IsEligible.
func (c *Catalog) FeatsAvailableAt(level int) []domain.Feat {
	var matched []domain.Feat
	for _, feat := range c.feats {
		if feat.Prerequisites != nil && feat.Prerequisites.Level > level {
			continue
		}
		matched = append(matched, feat)
	}
	return matched
}
