package catalog

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Tomoshibi1125/solo-compendium-sub000/internal/compendium/domain"
	apperrors "github.com/Tomoshibi1125/solo-compendium-sub000/internal/platform/errors"
)

var (
	// ErrUnknownPrerequisite indicates a feat references a prerequisite id
	// that does not exist in the aggregated feat set.
	ErrUnknownPrerequisite = apperrors.New(apperrors.CodeContentUnknownPrerequisite, "unknown feat prerequisite")
	// ErrCyclicPrerequisite indicates the prerequisite relation contains a cycle.
	ErrCyclicPrerequisite = apperrors.New(apperrors.CodeContentCyclicPrerequisite, "cyclic feat prerequisite")
)

// PrerequisiteGraph is the directed graph over feat ids where an edge
// represents "requires". It is built once from an aggregated feat set and
// is immutable afterwards.
type PrerequisiteGraph struct {
	order    []string            // feat ids in original catalogue order
	position map[string]int      // feat id -> catalogue position
	requires map[string][]string // feat id -> required feat ids
}

// BuildGraph builds and validates the prerequisite graph for an
// aggregated feat set. It fails when a feat references a missing id or
// when the relation contains a cycle; both are load-time content errors
// that must stop catalogue publication.
func BuildGraph(feats []domain.Feat) (*PrerequisiteGraph, error) {
	g := &PrerequisiteGraph{
		position: make(map[string]int, len(feats)),
		requires: make(map[string][]string, len(feats)),
	}

	for index, feat := range feats {
		g.order = append(g.order, feat.ID)
		g.position[feat.ID] = index
	}

	for _, feat := range feats {
		for _, required := range feat.RequiredFeats() {
			if _, ok := g.position[required]; !ok {
				return nil, apperrors.WithMetadata(
					apperrors.CodeContentUnknownPrerequisite,
					fmt.Sprintf("feat %s requires unknown feat %s", feat.ID, required),
					map[string]string{"feat_id": feat.ID, "missing_id": required},
				)
			}
			g.requires[feat.ID] = append(g.requires[feat.ID], required)
		}
	}

	if cycle := g.findCycle(); len(cycle) > 0 {
		return nil, apperrors.WithMetadata(
			apperrors.CodeContentCyclicPrerequisite,
			fmt.Sprintf("cyclic feat prerequisites: %s", strings.Join(cycle, " -> ")),
			map[string]string{"cycle": strings.Join(cycle, " -> ")},
		)
	}

	return g, nil
}

// findCycle runs a depth-first traversal with a recursion stack and
// returns the full cycle path when one exists, ending on the id that
// closes the cycle.
func (g *PrerequisiteGraph) findCycle() []string {
	const (
		white = 0 // unvisited
		gray  = 1 // on the recursion stack
		black = 2 // fully explored
	)
	color := make(map[string]int, len(g.order))

	var stack []string
	var cycle []string

	var visit func(id string) bool
	visit = func(id string) bool {
		color[id] = gray
		stack = append(stack, id)

		for _, required := range g.requires[id] {
			switch color[required] {
			case gray:
				// Close the loop from the first occurrence on the stack.
				start := 0
				for i, onStack := range stack {
					if onStack == required {
						start = i
						break
					}
				}
				cycle = append(cycle, stack[start:]...)
				cycle = append(cycle, required)
				return true
			case white:
				if visit(required) {
					return true
				}
			}
		}

		stack = stack[:len(stack)-1]
		color[id] = black
		return false
	}

	for _, id := range g.order {
		if color[id] == white {
			if visit(id) {
				return cycle
			}
		}
	}
	return nil
}

// Requires returns the required feat ids for a feat id, in declaration order.
func (g *PrerequisiteGraph) Requires(id string) []string {
	return g.requires[id]
}

// Contains reports whether the feat id is part of the graph.
func (g *PrerequisiteGraph) Contains(id string) bool {
	_, ok := g.position[id]
	return ok
}

// TopologicalOrder returns every feat id ordered so prerequisites appear
// before the feats that require them. Ties are broken by original
// catalogue order, so repeated calls are deterministic.
func (g *PrerequisiteGraph) TopologicalOrder() []string {
	inDegree := make(map[string]int, len(g.order))
	dependents := make(map[string][]string, len(g.order))
	for _, id := range g.order {
		inDegree[id] = len(g.requires[id])
	}
	for _, id := range g.order {
		for _, required := range g.requires[id] {
			dependents[required] = append(dependents[required], id)
		}
	}

	var ready []string
	for _, id := range g.order {
		if inDegree[id] == 0 {
			ready = append(ready, id)
		}
	}

	order := make([]string, 0, len(g.order))
	for len(ready) > 0 {
		id := ready[0]
		ready = ready[1:]
		order = append(order, id)

		for _, dependent := range dependents[id] {
			inDegree[dependent]--
			if inDegree[dependent] == 0 {
				ready = insertByPosition(ready, dependent, g.position)
			}
		}
	}

	return order
}

// insertByPosition keeps the ready queue sorted by catalogue position so
// ties resolve to the original content order.
func insertByPosition(ready []string, id string, position map[string]int) []string {
	at := sort.Search(len(ready), func(i int) bool {
		return position[ready[i]] > position[id]
	})
	ready = append(ready, "")
	copy(ready[at+1:], ready[at:])
	ready[at] = id
	return ready
}
