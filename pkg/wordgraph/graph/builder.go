package graph

import (
	"github.com/cognicore/wordgraph/pkg/wordgraph/token"
)

// unit is one element of the content stream: a content word or a boundary.
type unit struct {
	word     string
	boundary bool
}

// contentUnits drops whitespace and stopwords, keeps words by normalized
// text and boundary punctuation by literal text.
func contentUnits(tokens []token.Token, boundaries []string) []unit {
	isBoundary := make(map[string]struct{}, len(boundaries))
	for _, b := range boundaries {
		isBoundary[b] = struct{}{}
	}

	units := make([]unit, 0, len(tokens)/2)
	for _, tok := range tokens {
		if tok.Type == token.Whitespace || tok.IsStopword {
			continue
		}
		switch tok.Type {
		case token.Punctuation:
			if _, ok := isBoundary[tok.Text]; ok {
				units = append(units, unit{boundary: true})
			}
		case token.Word:
			units = append(units, unit{word: tok.Normalized})
		}
	}
	return units
}

// window is a FIFO of the most recent content words, bounded by capacity.
type window struct {
	words    []string
	capacity int
}

func newWindow(capacity int) *window {
	if capacity < 1 {
		capacity = 1
	}
	return &window{words: make([]string, 0, capacity), capacity: capacity}
}

func (w *window) push(word string) {
	if len(w.words) == w.capacity {
		copy(w.words, w.words[1:])
		w.words = w.words[:len(w.words)-1]
	}
	w.words = append(w.words, word)
}

func (w *window) reset() {
	w.words = w.words[:0]
}

// Build derives a co-occurrence graph from tokens. Each content word is
// paired with every other word currently in the window; the contribution
// depends on their distance. Boundaries clear the window but keep counts.
func Build(tokens []token.Token, cfg Config) Data {
	weighting := cfg.Weighting
	if weighting == nil {
		weighting = Uniform{Value: 1}
	}

	freqs := make(map[string]int)
	var nodeOrder []string
	weights := make(map[pair]float64)
	var edgeOrder []pair

	win := newWindow(cfg.WindowSize)
	for _, u := range contentUnits(tokens, cfg.SentenceBoundaries) {
		if u.boundary {
			win.reset()
			continue
		}

		if _, seen := freqs[u.word]; !seen {
			nodeOrder = append(nodeOrder, u.word)
		}
		freqs[u.word]++

		win.push(u.word)
		newest := len(win.words) - 1
		for i := 0; i < newest; i++ {
			other := win.words[i]
			if other == u.word {
				continue
			}
			p := newPair(u.word, other)
			if _, seen := weights[p]; !seen {
				edgeOrder = append(edgeOrder, p)
			}
			weights[p] += weighting.Weight(newest - i)
		}
	}

	g := Data{
		Nodes: make([]Node, 0, len(nodeOrder)),
		Edges: make([]Edge, 0, len(edgeOrder)),
	}
	for _, word := range nodeOrder {
		g.Nodes = append(g.Nodes, Node{ID: word, Label: word, Frequency: freqs[word]})
	}
	for _, p := range edgeOrder {
		w := weights[p]
		if w == 0 {
			continue
		}
		g.Edges = append(g.Edges, Edge{Source: p.A, Target: p.B, Weight: w})
	}
	return g
}
