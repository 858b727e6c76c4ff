package graph

import (
	"math"

	"github.com/cognicore/wordgraph/pkg/wordgraph/stoplist"
)

// Association scores how strongly two words attract each other within the
// co-occurrence windows of a single text.
type Association struct {
	epsilon float64 // smoothing constant
}

// NewAssociation creates a scorer with the given smoothing epsilon.
func NewAssociation(epsilon float64) *Association {
	if epsilon <= 0 {
		epsilon = 1.0
	}
	return &Association{epsilon: epsilon}
}

// PMI is the pointwise mutual information of a pair
//
// PMI(a,b) = log((w_ab + ε) * N / ((f_a + ε)(f_b + ε)))
//
// where w_ab is the edge weight, f_a and f_b are node frequencies and N is
// the total number of content-word occurrences.
func (a *Association) PMI(wAB float64, fA, fB, n int) float64 {
	if n == 0 {
		return 0
	}
	numerator := (wAB + a.epsilon) * float64(n)
	denominator := (float64(fA) + a.epsilon) * (float64(fB) + a.epsilon)
	return math.Log(numerator / denominator)
}

// NPMI normalizes PMI by -log P(a,b), clamped to [-1, 1].
func (a *Association) NPMI(wAB float64, fA, fB, n int) float64 {
	if n == 0 || wAB <= 0 {
		return 0
	}
	pAB := (wAB + a.epsilon) / float64(n)
	logPAB := math.Log(pAB)
	if logPAB >= 0 {
		// P(a,b) >= 1 only happens on tiny texts; treat as fully associated.
		return 1
	}
	npmi := a.PMI(wAB, fA, fB, n) / -logPAB
	return math.Max(-1, math.Min(1, npmi))
}

// EdgeScore is an edge annotated with its NPMI.
type EdgeScore struct {
	Edge
	NPMI float64 `json:"npmi"`
}

// Associations scores every edge of g by NPMI, in edge order.
func (a *Association) Associations(g Data) []EdgeScore {
	freqs, total := frequencies(g)
	out := make([]EdgeScore, 0, len(g.Edges))
	for _, e := range g.Edges {
		out = append(out, EdgeScore{
			Edge: e,
			NPMI: a.NPMI(e.Weight, freqs[e.Source], freqs[e.Target], total),
		})
	}
	return out
}

func frequencies(g Data) (map[string]int, int) {
	freqs := make(map[string]int, len(g.Nodes))
	total := 0
	for _, n := range g.Nodes {
		freqs[n.ID] = n.Frequency
		total += n.Frequency
	}
	return freqs, total
}

// StopwordStats converts an unfiltered graph into the per-word statistics
// used for stopword suggestions: frequency share, maximum NPMI with any
// neighbour, and the fraction of the vocabulary it co-occurs with.
func (a *Association) StopwordStats(g Data) []stoplist.Stats {
	freqs, total := frequencies(g)
	if total == 0 {
		return nil
	}

	assocMax := make(map[string]float64, len(g.Nodes))
	degree := make(map[string]int, len(g.Nodes))
	for _, e := range g.Edges {
		npmi := a.NPMI(e.Weight, freqs[e.Source], freqs[e.Target], total)
		for _, w := range [2]string{e.Source, e.Target} {
			degree[w]++
			if cur, ok := assocMax[w]; !ok || npmi > cur {
				assocMax[w] = npmi
			}
		}
	}

	others := len(g.Nodes) - 1
	out := make([]stoplist.Stats, 0, len(g.Nodes))
	for _, n := range g.Nodes {
		st := stoplist.Stats{
			Token:        n.ID,
			Count:        n.Frequency,
			SharePercent: 100 * float64(n.Frequency) / float64(total),
			AssocMax:     assocMax[n.ID],
		}
		if others > 0 {
			st.Spread = float64(degree[n.ID]) / float64(others)
		}
		out = append(out, st)
	}
	return out
}
