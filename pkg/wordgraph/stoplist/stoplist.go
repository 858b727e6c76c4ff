package stoplist

import (
	"sort"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// Set is an immutable stopword snapshot. Mutating methods return a new Set
// and leave the receiver untouched, so a Set can be shared freely between
// computations. The zero value is an empty set.
type Set struct {
	words       map[string]struct{}
	fingerprint uint64
}

// New creates a set from words, lowercasing each one. Empty strings are ignored.
func New(words ...string) Set {
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		addNormalized(m, w)
	}
	return seal(m)
}

func addNormalized(m map[string]struct{}, w string) {
	w = strings.ToLower(w)
	if w == "" {
		return
	}
	m[w] = struct{}{}
}

func seal(m map[string]struct{}) Set {
	s := Set{words: m}
	s.fingerprint = fingerprint(s.Words())
	return s
}

// fingerprint hashes the sorted words. Each word is followed by a NUL so
// that {"ab"} and {"a","b"} hash differently.
func fingerprint(sorted []string) uint64 {
	d := xxhash.New()
	for _, w := range sorted {
		_, _ = d.WriteString(w)
		_, _ = d.Write([]byte{0})
	}
	return d.Sum64()
}

// Has reports whether word (already normalized) is a stopword.
func (s Set) Has(word string) bool {
	_, ok := s.words[word]
	return ok
}

// Len returns the number of stopwords.
func (s Set) Len() int {
	return len(s.words)
}

// Words returns all stopwords, sorted.
func (s Set) Words() []string {
	out := make([]string, 0, len(s.words))
	for w := range s.words {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}

// Fingerprint identifies the set's contents. Equal sets have equal fingerprints.
func (s Set) Fingerprint() uint64 {
	if s.words == nil {
		return fingerprint(nil)
	}
	return s.fingerprint
}

// With returns a copy of s with words added.
func (s Set) With(words ...string) Set {
	m := s.clone(len(words))
	for _, w := range words {
		addNormalized(m, w)
	}
	return seal(m)
}

// Without returns a copy of s with words removed.
func (s Set) Without(words ...string) Set {
	m := s.clone(0)
	for _, w := range words {
		delete(m, strings.ToLower(w))
	}
	return seal(m)
}

// Toggle returns a copy of s with word removed if present, added otherwise.
func (s Set) Toggle(word string) Set {
	if s.Has(strings.ToLower(word)) {
		return s.Without(word)
	}
	return s.With(word)
}

func (s Set) clone(extra int) map[string]struct{} {
	m := make(map[string]struct{}, len(s.words)+extra)
	for w := range s.words {
		m[w] = struct{}{}
	}
	return m
}
