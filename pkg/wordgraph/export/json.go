// Package export writes graphs and word lists to the formats users take
// away: pretty-printed JSON, plain stopword text and SQLite files.
package export

import (
	"encoding/json"
	"io"
	"sort"
	"strings"

	"github.com/cognicore/wordgraph/pkg/wordgraph/freq"
	"github.com/cognicore/wordgraph/pkg/wordgraph/graph"
)

// WriteJSON writes g as JSON indented by two spaces.
func WriteJSON(w io.Writer, g graph.Data) error {
	if g.Nodes == nil {
		g.Nodes = []graph.Node{}
	}
	if g.Edges == nil {
		g.Edges = []graph.Edge{}
	}
	data, err := json.MarshalIndent(g, "", "  ")
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// ReadJSON decodes a graph written by WriteJSON.
func ReadJSON(r io.Reader) (graph.Data, error) {
	var g graph.Data
	if err := json.NewDecoder(r).Decode(&g); err != nil {
		return graph.Data{}, err
	}
	return g, nil
}

// StopwordText renders a stopword list as its display words, sorted and
// joined by newlines.
func StopwordText(list []freq.WordCount) string {
	words := make([]string, len(list))
	for i, wc := range list {
		words[i] = wc.Word
	}
	sort.Strings(words)
	return strings.Join(words, "\n")
}
