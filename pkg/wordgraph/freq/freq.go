// Package freq aggregates token sequences into per-word frequency tables.
package freq

import (
	"sort"

	"github.com/cognicore/wordgraph/pkg/wordgraph/token"
)

// Entry holds the aggregate for one normalized key.
type Entry struct {
	Word       string `json:"word"` // text of the first occurrence
	Normalized string `json:"normalized"`
	Count      int    `json:"count"`
	IsStopword bool   `json:"is_stopword"` // status of the last occurrence
}

// WordCount is a display row of a word list.
type WordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// Table is a frequency table keyed by normalized text. Keys keep the order
// in which they were first seen.
type Table struct {
	entries map[string]*Entry
	order   []string
}

// Calculate counts every non-whitespace token by its normalized text.
func Calculate(tokens []token.Token) *Table {
	t := &Table{entries: make(map[string]*Entry)}

	for _, tok := range tokens {
		if tok.Type == token.Whitespace {
			continue
		}
		if e, ok := t.entries[tok.Normalized]; ok {
			e.Count++
			e.IsStopword = tok.IsStopword
			continue
		}
		t.entries[tok.Normalized] = &Entry{
			Word:       tok.Text,
			Normalized: tok.Normalized,
			Count:      1,
			IsStopword: tok.IsStopword,
		}
		t.order = append(t.order, tok.Normalized)
	}

	return t
}

// Get returns the entry for a normalized key.
func (t *Table) Get(key string) (Entry, bool) {
	e, ok := t.entries[key]
	if !ok {
		return Entry{}, false
	}
	return *e, true
}

// Len returns the number of distinct keys.
func (t *Table) Len() int {
	return len(t.order)
}

// Entries returns all entries in first-seen order.
func (t *Table) Entries() []Entry {
	out := make([]Entry, 0, len(t.order))
	for _, key := range t.order {
		out = append(out, *t.entries[key])
	}
	return out
}

// Visible returns non-stopword entries ordered by count, most frequent first.
// Ties keep first-seen order.
func (t *Table) Visible() []WordCount {
	out := make([]WordCount, 0, len(t.order))
	for _, key := range t.order {
		e := t.entries[key]
		if !e.IsStopword {
			out = append(out, WordCount{Word: e.Word, Count: e.Count})
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})
	return out
}

// StopwordSet is the read side of a stopword snapshot.
type StopwordSet interface {
	Has(word string) bool
	Words() []string
}

// StopwordList returns stopword entries found in the text plus every member
// of stops that never occurs, with count 0. Ordered by count, then word.
func (t *Table) StopwordList(stops StopwordSet) []WordCount {
	out := make([]WordCount, 0)
	for _, key := range t.order {
		e := t.entries[key]
		if e.IsStopword {
			out = append(out, WordCount{Word: e.Word, Count: e.Count})
		}
	}
	if stops != nil {
		for _, w := range stops.Words() {
			if _, ok := t.entries[w]; !ok {
				out = append(out, WordCount{Word: w, Count: 0})
			}
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Word < out[j].Word
	})
	return out
}

// Summary holds headline counts for a token sequence.
type Summary struct {
	TotalWords  int `json:"total_words"`  // non-whitespace tokens
	UniqueWords int `json:"unique_words"` // distinct normalized keys
	HiddenWords int `json:"hidden_words"` // stopword tokens
}

// Summarize computes headline counts for tokens and their table.
func Summarize(tokens []token.Token, t *Table) Summary {
	var s Summary
	for _, tok := range tokens {
		if tok.Type == token.Whitespace {
			continue
		}
		s.TotalWords++
		if tok.IsStopword {
			s.HiddenWords++
		}
	}
	if t != nil {
		s.UniqueWords = t.Len()
	}
	return s
}
