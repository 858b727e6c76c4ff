package config

import (
	"fmt"

	"github.com/cognicore/wordgraph/pkg/wordgraph/graph"
	"github.com/cognicore/wordgraph/pkg/wordgraph/reconstruct"
	"github.com/cognicore/wordgraph/pkg/wordgraph/stoplist"
)

// Loader loads the configuration file plus any extra stopword sources and
// constructs components. Extra sources add to those named in the file.
type Loader struct {
	ConfigPath   string
	StoplistPath string
	Languages    []string
	Terms        []string
}

// Components holds all loaded configuration components
type Components struct {
	Config      *Config
	Stopwords   stoplist.Set
	Graph       graph.Config
	Display     graph.DisplayConfig
	Placeholder reconstruct.Placeholder
	CacheSize   int
}

// Load reads all configuration sources and returns initialized components
func (l *Loader) Load() (*Components, error) {
	cfg, err := Load(l.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	comp := &Components{
		Config:    cfg,
		Display:   cfg.DisplayConfig(),
		CacheSize: cfg.CacheSize,
	}

	comp.Graph, err = cfg.GraphConfig()
	if err != nil {
		return nil, err
	}

	comp.Placeholder, err = reconstruct.ParsePlaceholder(cfg.Placeholder)
	if err != nil {
		return nil, fmt.Errorf("load placeholder: %w", err)
	}

	// Stopwords: bundled languages, then list files, then inline terms.
	langs := make([]stoplist.Language, 0, len(cfg.Stoplist.Languages)+len(l.Languages))
	for _, code := range append(append([]string(nil), cfg.Stoplist.Languages...), l.Languages...) {
		lang, err := stoplist.ParseLanguage(code)
		if err != nil {
			return nil, fmt.Errorf("load stoplist: %w", err)
		}
		langs = append(langs, lang)
	}
	stops, err := stoplist.Set{}.WithStandard(langs...)
	if err != nil {
		return nil, fmt.Errorf("load stoplist: %w", err)
	}

	for _, path := range []string{cfg.Stoplist.Path, l.StoplistPath} {
		if path == "" {
			continue
		}
		sl, err := LoadStoplist(path)
		if err != nil {
			return nil, fmt.Errorf("load stoplist: %w", err)
		}
		stops = stops.With(sl.Terms...)
	}

	comp.Stopwords = stops.With(cfg.Stoplist.Terms...).With(l.Terms...)
	return comp, nil
}
