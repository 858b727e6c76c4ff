package graph

import (
	"sort"

	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

// indexed is a gonum view of Data with words mapped to int64 node ids.
type indexed struct {
	g     *simple.WeightedUndirectedGraph
	ids   map[string]int64
	words []string
}

func index(d Data) indexed {
	ix := indexed{
		g:     simple.NewWeightedUndirectedGraph(0, 0),
		ids:   make(map[string]int64, len(d.Nodes)),
		words: make([]string, 0, len(d.Nodes)),
	}
	for _, n := range d.Nodes {
		if _, dup := ix.ids[n.ID]; dup {
			continue
		}
		id := int64(len(ix.words))
		ix.ids[n.ID] = id
		ix.words = append(ix.words, n.ID)
		ix.g.AddNode(simple.Node(id))
	}
	for _, e := range d.Edges {
		from, okFrom := ix.ids[e.Source]
		to, okTo := ix.ids[e.Target]
		if !okFrom || !okTo || from == to {
			continue
		}
		ix.g.SetWeightedEdge(ix.g.NewWeightedEdge(simple.Node(from), simple.Node(to), e.Weight))
	}
	return ix
}

// Components returns the connected components of g as sorted word lists,
// largest component first. Isolated nodes form singleton components.
func Components(g Data) [][]string {
	ix := index(g)
	comps := topo.ConnectedComponents(ix.g)

	out := make([][]string, 0, len(comps))
	for _, comp := range comps {
		words := make([]string, 0, len(comp))
		for _, n := range comp {
			words = append(words, ix.words[n.ID()])
		}
		sort.Strings(words)
		out = append(out, words)
	}
	sort.Slice(out, func(i, j int) bool {
		if len(out[i]) != len(out[j]) {
			return len(out[i]) > len(out[j])
		}
		return out[i][0] < out[j][0]
	})
	return out
}

// NodeScore pairs a word with a score.
type NodeScore struct {
	Word   string  `json:"word"`
	Degree int     `json:"degree"`
	Score  float64 `json:"score"`
}

// Strength ranks nodes by weighted degree (sum of incident edge weights).
func Strength(g Data) []NodeScore {
	ix := index(g)

	out := make([]NodeScore, 0, len(ix.words))
	for id, word := range ix.words {
		ns := NodeScore{Word: word}
		neighbours := ix.g.From(int64(id))
		for neighbours.Next() {
			w, _ := ix.g.Weight(int64(id), neighbours.Node().ID())
			ns.Score += w
			ns.Degree++
		}
		out = append(out, ns)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].Word < out[j].Word
	})
	return out
}
