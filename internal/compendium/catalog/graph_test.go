package catalog

import (
	"errors"
	"strings"
	"testing"

	"github.com/Tomoshibi1125/solo-compendium-sub000/internal/compendium/domain"
	apperrors "github.com/Tomoshibi1125/solo-compendium-sub000/internal/platform/errors"
)

func TestBuildGraphResolvesReferences(t *testing.T) {
	feats := []domain.Feat{
		testFeat("shadow-mastery"),
		testFeat("essence-absorption", "shadow-mastery"),
		testFeat("monarch-aura", "shadow-mastery", "essence-absorption"),
	}

	graph, err := BuildGraph(feats)
	if err != nil {
		t.Fatalf("build graph: %v", err)
	}

	requires := graph.Requires("monarch-aura")
	if len(requires) != 2 {
		t.Fatalf("expected 2 prerequisites, got %d", len(requires))
	}
	if !graph.Contains("shadow-mastery") || graph.Contains("unknown") {
		t.Fatal("expected graph membership to reflect the feat set")
	}
}

func TestBuildGraphUnknownPrerequisite(t *testing.T) {
	feats := []domain.Feat{
		testFeat("alpha", "missing-feat"),
	}

	_, err := BuildGraph(feats)
	if !errors.Is(err, ErrUnknownPrerequisite) {
		t.Fatalf("expected unknown prerequisite error, got %v", err)
	}

	var appErr *apperrors.Error
	if !errors.As(err, &appErr) {
		t.Fatalf("expected *apperrors.Error, got %T", err)
	}
	if appErr.Metadata["feat_id"] != "alpha" || appErr.Metadata["missing_id"] != "missing-feat" {
		t.Fatalf("expected feat_id alpha and missing_id missing-feat, got %v", appErr.Metadata)
	}
}

func TestBuildGraphDetectsCycle(t *testing.T) {
	feats := []domain.Feat{
		testFeat("a", "b"),
		testFeat("b", "c"),
		testFeat("c", "a"),
	}

	_, err := BuildGraph(feats)
	if !errors.Is(err, ErrCyclicPrerequisite) {
		t.Fatalf("expected cyclic prerequisite error, got %v", err)
	}

	var appErr *apperrors.Error
	if !errors.As(err, &appErr) {
		t.Fatalf("expected *apperrors.Error, got %T", err)
	}
	cycle := appErr.Metadata["cycle"]
	ids := strings.Split(cycle, " -> ")
	if len(ids) != 4 {
		t.Fatalf("expected full cycle path of 4 ids, got %q", cycle)
	}
	if ids[0] != ids[len(ids)-1] {
		t.Fatalf("expected cycle to close on its first id, got %q", cycle)
	}
	for _, id := range []string{"a", "b", "c"} {
		if !strings.Contains(cycle, id) {
			t.Fatalf("expected cycle to mention %q, got %q", id, cycle)
		}
	}
}

func TestBuildGraphDetectsSelfCycle(t *testing.T) {
	feats := []domain.Feat{
		testFeat("narcissus", "narcissus"),
	}

	_, err := BuildGraph(feats)
	if !errors.Is(err, ErrCyclicPrerequisite) {
		t.Fatalf("expected cyclic prerequisite error, got %v", err)
	}
}

func TestBuildGraphDetectsTwoNodeCycle(t *testing.T) {
	feats := []domain.Feat{
		testFeat("a", "b"),
		testFeat("b", "a"),
	}

	_, err := BuildGraph(feats)
	if !errors.Is(err, ErrCyclicPrerequisite) {
		t.Fatalf("expected cyclic prerequisite error, got %v", err)
	}
}

func TestTopologicalOrderRespectsEdges(t *testing.T) {
	feats := []domain.Feat{
		testFeat("monarch-aura", "shadow-mastery", "essence-absorption"),
		testFeat("essence-absorption", "shadow-mastery"),
		testFeat("shadow-mastery"),
		testFeat("keen-mind"),
	}

	graph, err := BuildGraph(feats)
	if err != nil {
		t.Fatalf("build graph: %v", err)
	}

	order := graph.TopologicalOrder()
	if len(order) != len(feats) {
		t.Fatalf("expected %d ids in order, got %d", len(feats), len(order))
	}

	position := make(map[string]int, len(order))
	for i, id := range order {
		position[id] = i
	}

	// Every prerequisite must appear before any feat that requires it.
	for _, feat := range feats {
		for _, required := range feat.RequiredFeats() {
			if position[required] >= position[feat.ID] {
				t.Fatalf("expected %q before %q in %v", required, feat.ID, order)
			}
		}
	}
}

func TestTopologicalOrderBreaksTiesByCatalogueOrder(t *testing.T) {
	feats := []domain.Feat{
		testFeat("zeta"),
		testFeat("alpha"),
		testFeat("midway"),
	}

	graph, err := BuildGraph(feats)
	if err != nil {
		t.Fatalf("build graph: %v", err)
	}

	order := graph.TopologicalOrder()
	expected := []string{"zeta", "alpha", "midway"}
	for i, id := range expected {
		if order[i] != id {
			t.Fatalf("expected catalogue order %v, got %v", expected, order)
		}
	}
}

func TestTopologicalOrderDeterministic(t *testing.T) {
	feats := []domain.Feat{
		testFeat("d", "b"),
		testFeat("c", "a"),
		testFeat("b"),
		testFeat("a"),
	}

	graph, err := BuildGraph(feats)
	if err != nil {
		t.Fatalf("build graph: %v", err)
	}

	first := graph.TopologicalOrder()
	for run := 0; run < 5; run++ {
		next := graph.TopologicalOrder()
		if strings.Join(next, ",") != strings.Join(first, ",") {
			t.Fatalf("expected deterministic order, got %v then %v", first, next)
		}
	}
}
