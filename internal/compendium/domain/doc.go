// Package domain defines the static compendium content entities.
//
// The compendium is built from static content shards at load time and is
// immutable afterwards; nothing here mutates records after aggregation.
//
// # Item
//
// An Item is a piece of equipment or consumable content with a rarity,
// a type, optional combat stats, and an in-game currency value.
//
// # Feat
//
// A Feat is a character ability with optional prerequisites (minimum
// level, ability score, other feats, class, background). Benefit and
// mechanic fields are descriptive text for display; they are never
// interpreted or executed.
package domain
