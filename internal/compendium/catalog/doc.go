// Package catalog aggregates compendium content shards into a single
// validated catalogue and resolves feat prerequisite relationships.
//
// Aggregation is a pure structural pass: shard order and within-shard
// order are preserved, identifiers must be globally unique, and every
// record must validate on its own. Cross-references between feats are
// resolved separately by building an explicit prerequisite graph, which
// also rejects cycles and yields a deterministic topological order.
//
// A Catalog is built once at load time and never mutated afterwards, so
// it may be shared across concurrent readers without locking.
package catalog
