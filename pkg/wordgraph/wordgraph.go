// Package wordgraph ties the text pipeline together: a Session holds one
// text, its stopword snapshot and graph settings, and derives tokens, word
// frequencies, co-occurrence graphs and reconstructed text from them.
package wordgraph

import (
	"slices"
	"sync"

	"github.com/cespare/xxhash/v2"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/cognicore/wordgraph/pkg/wordgraph/freq"
	"github.com/cognicore/wordgraph/pkg/wordgraph/graph"
	"github.com/cognicore/wordgraph/pkg/wordgraph/reconstruct"
	"github.com/cognicore/wordgraph/pkg/wordgraph/stoplist"
	"github.com/cognicore/wordgraph/pkg/wordgraph/token"
)

// DefaultCacheSize is the number of analyses kept when Options leaves it unset.
const DefaultCacheSize = 16

// Options configures a Session
type Options struct {
	Stopwords stoplist.Set
	NGram     *graph.Config        // nil means graph.DefaultConfig()
	Display   *graph.DisplayConfig // nil means graph.DefaultDisplayConfig()
	CacheSize int
}

// Session is the state of one analysed text. It is safe for concurrent use.
type Session struct {
	mu      sync.RWMutex
	text    string
	stops   stoplist.Set
	ngram   graph.Config
	display graph.DisplayConfig
	graph   graph.Data

	cache *lru.Cache[cacheKey, *analysis]
}

type cacheKey struct {
	text  uint64
	stops uint64
}

// analysis is the stopword-dependent derivation of a text.
type analysis struct {
	text   string
	stops  uint64
	tokens []token.Token
	table  *freq.Table
}

// New creates a Session with no text.
func New(opts Options) *Session {
	ngram := graph.DefaultConfig()
	if opts.NGram != nil {
		ngram = *opts.NGram
		ngram.SentenceBoundaries = slices.Clone(ngram.SentenceBoundaries)
	}
	display := graph.DefaultDisplayConfig()
	if opts.Display != nil {
		display = *opts.Display
	}
	if opts.CacheSize <= 0 {
		opts.CacheSize = DefaultCacheSize
	}
	cache, _ := lru.New[cacheKey, *analysis](opts.CacheSize)

	return &Session{
		stops:   opts.Stopwords,
		ngram:   ngram,
		display: display,
		graph:   graph.Empty(),
		cache:   cache,
	}
}

// snapshot is a consistent view of the inputs of a derivation.
type snapshot struct {
	text  string
	stops stoplist.Set
	ngram graph.Config
}

func (s *Session) snapshot() snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return snapshot{text: s.text, stops: s.stops, ngram: s.ngram}
}

// analyze tokenizes text against stops, reusing a cached result when the
// same text and stopword set were seen recently.
func (s *Session) analyze(text string, stops stoplist.Set) *analysis {
	key := cacheKey{text: xxhash.Sum64String(text), stops: stops.Fingerprint()}
	if a, ok := s.cache.Get(key); ok && a.text == text && a.stops == key.stops {
		return a
	}

	tokens := token.Tokenize(text, stops)
	a := &analysis{
		text:   text,
		stops:  key.stops,
		tokens: tokens,
		table:  freq.Calculate(tokens),
	}
	s.cache.Add(key, a)
	return a
}

func (s *Session) current() *analysis {
	snap := s.snapshot()
	return s.analyze(snap.text, snap.stops)
}

// SetText replaces the text. The last built graph is kept until the next
// BuildGraph.
func (s *Session) SetText(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.text = text
}

// Text returns the current text.
func (s *Session) Text() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.text
}

// Stopwords returns the current stopword snapshot.
func (s *Session) Stopwords() stoplist.Set {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.stops
}

func (s *Session) updateStops(fn func(stoplist.Set) stoplist.Set) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stops = fn(s.stops)
}

// SetStopwords replaces the stopword set.
func (s *Session) SetStopwords(set stoplist.Set) {
	s.updateStops(func(stoplist.Set) stoplist.Set { return set })
}

// AddStopword marks word (any case) as a stopword.
func (s *Session) AddStopword(word string) {
	s.updateStops(func(cur stoplist.Set) stoplist.Set { return cur.With(word) })
}

// RemoveStopword unmarks word.
func (s *Session) RemoveStopword(word string) {
	s.updateStops(func(cur stoplist.Set) stoplist.Set { return cur.Without(word) })
}

// ToggleStopword flips the stopword status of word.
func (s *Session) ToggleStopword(word string) {
	s.updateStops(func(cur stoplist.Set) stoplist.Set { return cur.Toggle(word) })
}

// ClearStopwords empties the stopword set.
func (s *Session) ClearStopwords() {
	s.SetStopwords(stoplist.Set{})
}

// LoadStandardStopwords adds the bundled list of lang.
func (s *Session) LoadStandardStopwords(lang stoplist.Language) error {
	words, err := stoplist.Standard(lang)
	if err != nil {
		return err
	}
	s.updateStops(func(cur stoplist.Set) stoplist.Set { return cur.With(words...) })
	return nil
}

// Tokens returns the tokenization of the current text. The slice is a copy.
func (s *Session) Tokens() []token.Token {
	return slices.Clone(s.current().tokens)
}

// Frequencies returns the frequency table of the current text.
func (s *Session) Frequencies() *freq.Table {
	return s.current().table
}

// Summary returns headline counts of the current text.
func (s *Session) Summary() freq.Summary {
	a := s.current()
	return freq.Summarize(a.tokens, a.table)
}

// VisibleWords returns the non-stopword frequency list.
func (s *Session) VisibleWords() []freq.WordCount {
	return s.current().table.Visible()
}

// StopwordList returns stopwords with their counts in the current text.
func (s *Session) StopwordList() []freq.WordCount {
	snap := s.snapshot()
	return s.analyze(snap.text, snap.stops).table.StopwordList(snap.stops)
}

// Punctuation returns the distinct punctuation glyphs of the current text.
func (s *Session) Punctuation() []string {
	return token.DetectPunctuation(s.current().tokens)
}

// Search returns the token indexes matching query.
func (s *Session) Search(query string) []int {
	return token.Search(s.current().tokens, query)
}

// NGramConfig returns the graph construction settings.
func (s *Session) NGramConfig() graph.Config {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ngram
}

// SetNGramConfig replaces the construction settings after validating them.
func (s *Session) SetNGramConfig(cfg graph.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	cfg.SentenceBoundaries = slices.Clone(cfg.SentenceBoundaries)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.ngram = cfg
	return nil
}

// Display returns the display thresholds.
func (s *Session) Display() graph.DisplayConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.display
}

// SetDisplay replaces the display thresholds. It does not rebuild the graph.
func (s *Session) SetDisplay(d graph.DisplayConfig) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.display = d
}

// BuildGraph builds the co-occurrence graph of the current text and keeps
// it as the session graph.
func (s *Session) BuildGraph() graph.Data {
	snap := s.snapshot()
	g := graph.Build(s.analyze(snap.text, snap.stops).tokens, snap.ngram)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.graph = g
	return g
}

// Graph returns the last built graph, unfiltered.
func (s *Session) Graph() graph.Data {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.graph
}

// DisplayGraph returns the last built graph filtered by the current
// display thresholds.
func (s *Session) DisplayGraph() graph.Data {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return graph.FilterDisplay(s.graph, s.display)
}

// GraphStats summarizes the display graph.
func (s *Session) GraphStats() graph.Stats {
	return graph.ComputeStats(s.DisplayGraph())
}

// CleanedText returns the text with stopwords masked by placeholder.
func (s *Session) CleanedText(placeholder reconstruct.Placeholder) string {
	return reconstruct.CleanedText(s.current().tokens, placeholder)
}

// DownloadText returns the text with stopwords removed.
func (s *Session) DownloadText() string {
	return reconstruct.DownloadText(s.current().tokens)
}

// SuggestStopwords proposes further stopwords from the association
// statistics of a freshly built, unfiltered graph.
func (s *Session) SuggestStopwords(th stoplist.Thresholds) []stoplist.Candidate {
	snap := s.snapshot()
	g := graph.Build(s.analyze(snap.text, snap.stops).tokens, snap.ngram)
	stats := graph.NewAssociation(1).StopwordStats(g)
	return snap.stops.Suggest(stats, th)
}

// Reset clears the text, stopwords and graph. Settings are kept.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.text = ""
	s.stops = stoplist.Set{}
	s.graph = graph.Empty()
}
