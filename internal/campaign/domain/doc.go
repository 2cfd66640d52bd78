// Package domain defines the campaign membership entities and the pure
// transition functions that operate on them.
//
// A Campaign is owned by whichever persistence layer stores it; every
// operation here takes a Campaign value and returns either the next
// value or a typed rejection. Nothing is mutated in place, so callers
// can serialize concurrent transitions however they see fit (for
// example, optimistic concurrency on the persisted UpdatedAt).
//
// Exactly one member holds the dm role, established at creation and
// immutable for the life of the campaign. The campaign state is derived:
// Archived once ArchivedAt is set, Full when the player count reaches
// Settings.MaxPlayers, and Forming otherwise.
package domain
