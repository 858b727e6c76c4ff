// Package graph builds, filters and summarizes word co-occurrence graphs.
//
// Nodes are distinct content words, edges carry the accumulated weight of
// windowed co-occurrences between two words. Edges reference nodes by id
// only; any richer embedding belongs to the rendering side.
package graph

import (
	"fmt"
	"strings"

	"github.com/cognicore/wordgraph/pkg/wordgraph/internalerr"
)

// Node is a content word.
type Node struct {
	ID        string `json:"id"`
	Label     string `json:"label"`
	Frequency int    `json:"frequency"`
}

// Edge is an unordered, weighted co-occurrence. Source sorts before Target.
type Edge struct {
	Source string  `json:"source"`
	Target string  `json:"target"`
	Weight float64 `json:"weight"`
}

// Data is a node/edge graph. Array order carries no meaning.
type Data struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// Empty returns a graph with non-nil, empty slices.
func Empty() Data {
	return Data{Nodes: []Node{}, Edges: []Edge{}}
}

// pair is a canonically ordered word pair (A < B).
type pair struct {
	A, B string
}

func newPair(a, b string) pair {
	if a > b {
		a, b = b, a
	}
	return pair{A: a, B: b}
}

// Weighting maps the distance between two words in a window to an edge
// contribution. Distance 1 means adjacent.
type Weighting interface {
	Weight(distance int) float64
}

// Uniform contributes the same value at every distance.
type Uniform struct {
	Value float64
}

func (u Uniform) Weight(int) float64 { return u.Value }

func (u Uniform) String() string { return fmt.Sprintf("uniform(%g)", u.Value) }

// Distance contributes BaseValue, plus BonusValue when distance <= BonusRange.
type Distance struct {
	BaseValue  float64
	BonusRange int
	BonusValue float64
}

func (d Distance) Weight(distance int) float64 {
	if distance <= d.BonusRange {
		return d.BaseValue + d.BonusValue
	}
	return d.BaseValue
}

func (d Distance) String() string {
	return fmt.Sprintf("distance(base=%g, range=%d, bonus=%g)", d.BaseValue, d.BonusRange, d.BonusValue)
}

// Config controls graph construction.
type Config struct {
	WindowSize         int
	Weighting          Weighting
	SentenceBoundaries []string // punctuation glyphs that reset the window
}

// DefaultConfig returns a five-word window with uniform weight 1 and
// sentence-ending punctuation as boundaries.
func DefaultConfig() Config {
	return Config{
		WindowSize:         5,
		Weighting:          Uniform{Value: 1},
		SentenceBoundaries: []string{".", "?", "!"},
	}
}

// Validate checks the caller contract of Build. Build itself does not
// validate; calling it with an invalid config gives unspecified results.
func (c Config) Validate() error {
	if c.WindowSize < 2 {
		return fmt.Errorf("window size %d must be at least 2: %w", c.WindowSize, internalerr.ErrInvalidConfig)
	}
	switch w := c.Weighting.(type) {
	case nil:
		return fmt.Errorf("weighting is required: %w", internalerr.ErrInvalidConfig)
	case Distance:
		if w.BonusRange < 1 || w.BonusRange > c.WindowSize-1 {
			return fmt.Errorf("bonus range %d must be within [1, %d]: %w",
				w.BonusRange, c.WindowSize-1, internalerr.ErrInvalidConfig)
		}
	}
	for _, b := range c.SentenceBoundaries {
		if b == "" {
			return fmt.Errorf("empty sentence boundary: %w", internalerr.ErrInvalidConfig)
		}
	}
	return nil
}

// String describes the config for logs and export metadata.
func (c Config) String() string {
	return fmt.Sprintf("window=%d weighting=%v boundaries=%q",
		c.WindowSize, c.Weighting, strings.Join(c.SentenceBoundaries, ""))
}

// DisplayConfig holds display-time thresholds, independent of construction.
type DisplayConfig struct {
	MinEdgeWeight    float64
	MinNodeFrequency int
}

// DefaultDisplayConfig keeps every edge and node.
func DefaultDisplayConfig() DisplayConfig {
	return DisplayConfig{MinEdgeWeight: 1, MinNodeFrequency: 1}
}
