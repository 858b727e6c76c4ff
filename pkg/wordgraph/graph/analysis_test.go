package graph

import (
	"math"
	"testing"
)

func TestComponents(t *testing.T) {
	g := Data{
		Nodes: []Node{{ID: "x"}, {ID: "a"}, {ID: "b"}, {ID: "c"}, {ID: "p"}, {ID: "q"}},
		Edges: []Edge{
			{Source: "a", Target: "b", Weight: 1},
			{Source: "b", Target: "c", Weight: 1},
			{Source: "p", Target: "q", Weight: 2},
		},
	}

	comps := Components(g)
	if len(comps) != 3 {
		t.Fatalf("Expected 3 components, got %v", comps)
	}
	if len(comps[0]) != 3 || comps[0][0] != "a" || comps[0][2] != "c" {
		t.Errorf("Largest component should be [a b c], got %v", comps[0])
	}
	if len(comps[1]) != 2 || comps[1][0] != "p" {
		t.Errorf("Second component should be [p q], got %v", comps[1])
	}
	if len(comps[2]) != 1 || comps[2][0] != "x" {
		t.Errorf("Isolated node should be its own component, got %v", comps[2])
	}
}

func TestComponentsEmpty(t *testing.T) {
	if comps := Components(Empty()); len(comps) != 0 {
		t.Errorf("Expected no components, got %v", comps)
	}
}

func TestStrength(t *testing.T) {
	g := Data{
		Nodes: []Node{{ID: "a"}, {ID: "b"}, {ID: "c"}},
		Edges: []Edge{
			{Source: "a", Target: "b", Weight: 3},
			{Source: "a", Target: "c", Weight: 1},
		},
	}

	scores := Strength(g)
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %v", scores)
	}
	if scores[0].Word != "a" || scores[0].Score != 4 || scores[0].Degree != 2 {
		t.Errorf("Expected a with strength 4 and degree 2, got %+v", scores[0])
	}
	if scores[1].Word != "b" || scores[1].Score != 3 {
		t.Errorf("Expected b second, got %+v", scores[1])
	}
	if scores[2].Word != "c" || scores[2].Degree != 1 {
		t.Errorf("Expected c last, got %+v", scores[2])
	}
}

func TestStrengthIgnoresDanglingEdges(t *testing.T) {
	g := Data{
		Nodes: []Node{{ID: "a"}},
		Edges: []Edge{{Source: "a", Target: "ghost", Weight: 9}},
	}
	scores := Strength(g)
	if len(scores) != 1 || scores[0].Score != 0 {
		t.Errorf("Edges to unknown nodes should be ignored, got %+v", scores)
	}
}

func TestNPMIRange(t *testing.T) {
	assoc := NewAssociation(0)
	cases := []struct {
		w      float64
		fa, fb int
		n      int
	}{
		{1, 1, 1, 100},
		{10, 10, 10, 100},
		{1, 50, 50, 100},
		{3, 2, 2, 4},
		{0.5, 3, 9, 1000},
	}
	for _, tc := range cases {
		v := assoc.NPMI(tc.w, tc.fa, tc.fb, tc.n)
		if math.IsNaN(v) || v < -1 || v > 1 {
			t.Errorf("NPMI(%v) = %v out of range", tc, v)
		}
	}

	if assoc.NPMI(0, 1, 1, 10) != 0 {
		t.Error("Zero weight should give NPMI 0")
	}
	if assoc.PMI(1, 1, 1, 0) != 0 || assoc.NPMI(1, 1, 1, 0) != 0 {
		t.Error("Empty total should give 0")
	}
}

func TestNPMIStrongerPairsScoreHigher(t *testing.T) {
	assoc := NewAssociation(1)
	exclusive := assoc.NPMI(10, 10, 10, 1000)
	promiscuous := assoc.NPMI(10, 200, 200, 1000)
	if exclusive <= promiscuous {
		t.Errorf("Exclusive pair should score higher: %v vs %v", exclusive, promiscuous)
	}
}

func TestAssociations(t *testing.T) {
	g := sampleGraph()
	scores := NewAssociation(1).Associations(g)
	if len(scores) != len(g.Edges) {
		t.Fatalf("Expected one score per edge, got %d", len(scores))
	}
	for i, s := range scores {
		if s.Edge != g.Edges[i] {
			t.Errorf("Score %d should keep edge order", i)
		}
	}
}

func TestStopwordStats(t *testing.T) {
	g := sampleGraph()
	stats := NewAssociation(1).StopwordStats(g)

	if len(stats) != 4 {
		t.Fatalf("Expected 4 stats, got %d", len(stats))
	}
	var share float64
	for _, s := range stats {
		share += s.SharePercent
	}
	if math.Abs(share-100) > 1e-9 {
		t.Errorf("Shares should sum to 100, got %v", share)
	}

	// a touches b and c out of 3 other words.
	if stats[0].Token != "a" || math.Abs(stats[0].Spread-2.0/3.0) > 1e-9 {
		t.Errorf("Unexpected stats for a: %+v", stats[0])
	}

	if NewAssociation(1).StopwordStats(Empty()) != nil {
		t.Error("Empty graph should give no stats")
	}
}
