package config

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cognicore/wordgraph/pkg/wordgraph/graph"
	"github.com/cognicore/wordgraph/pkg/wordgraph/internalerr"
)

// Environment variables that override file settings.
const (
	EnvWindowSize         = "WORDGRAPH_WINDOW_SIZE"
	EnvMinEdgeWeight      = "WORDGRAPH_MIN_EDGE_WEIGHT"
	EnvMinNodeFrequency   = "WORDGRAPH_MIN_NODE_FREQUENCY"
	EnvPlaceholder        = "WORDGRAPH_PLACEHOLDER"
	EnvStopwordLanguages  = "WORDGRAPH_STOPWORD_LANGUAGES"
	DefaultCacheSize      = 16
	DefaultPlaceholder    = "underscore"
	WeightingTypeUniform  = "uniform"
	WeightingTypeDistance = "distance"
)

// Config is the on-disk wordgraph configuration.
type Config struct {
	NGram       NGram    `yaml:"ngram"`
	Display     Display  `yaml:"display"`
	Stoplist    Stoplist `yaml:"stoplist"`
	Placeholder string   `yaml:"placeholder"`
	CacheSize   int      `yaml:"cache_size"`
}

// NGram holds graph construction settings.
type NGram struct {
	WindowSize         int       `yaml:"window_size"`
	Weighting          Weighting `yaml:"weighting"`
	SentenceBoundaries []string  `yaml:"sentence_boundaries"`
}

// Weighting is the tagged form of a weighting policy. Only the fields of
// the selected Type are used.
type Weighting struct {
	Type       string  `yaml:"type"`
	Value      float64 `yaml:"value,omitempty"`
	BaseValue  float64 `yaml:"base_value,omitempty"`
	BonusRange int     `yaml:"bonus_range,omitempty"`
	BonusValue float64 `yaml:"bonus_value,omitempty"`
}

// Display holds display-time filter thresholds.
type Display struct {
	MinEdgeWeight    float64 `yaml:"min_edge_weight"`
	MinNodeFrequency int     `yaml:"min_node_frequency"`
}

// Stoplist selects the initial stopwords: bundled languages, inline terms
// and an optional list file.
type Stoplist struct {
	Languages []string `yaml:"languages"`
	Terms     []string `yaml:"terms"`
	Path      string   `yaml:"path"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		NGram: NGram{
			WindowSize:         5,
			Weighting:          Weighting{Type: WeightingTypeUniform, Value: 1},
			SentenceBoundaries: []string{".", "?", "!"},
		},
		Display:     Display{MinEdgeWeight: 1, MinNodeFrequency: 1},
		Placeholder: DefaultPlaceholder,
		CacheSize:   DefaultCacheSize,
	}
}

// DefaultDistance is the distance weighting used when a caller switches to
// distance mode without further settings.
func DefaultDistance() Weighting {
	return Weighting{Type: WeightingTypeDistance, BaseValue: 1, BonusRange: 2, BonusValue: 1}
}

// Load reads path on top of the defaults and applies environment
// overrides. An empty path skips the file.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	}
	cfg.applyEnv()
	return &cfg, nil
}

func (c *Config) applyEnv() {
	c.NGram.WindowSize = getEnvInt(EnvWindowSize, c.NGram.WindowSize)
	c.Display.MinEdgeWeight = getEnvFloat(EnvMinEdgeWeight, c.Display.MinEdgeWeight)
	c.Display.MinNodeFrequency = getEnvInt(EnvMinNodeFrequency, c.Display.MinNodeFrequency)
	c.Placeholder = getEnv(EnvPlaceholder, c.Placeholder)
	if langs := getEnv(EnvStopwordLanguages, ""); langs != "" {
		c.Stoplist.Languages = splitList(langs)
	}
}

// GraphConfig converts the n-gram section into a graph.Config.
func (c *Config) GraphConfig() (graph.Config, error) {
	var w graph.Weighting
	switch strings.ToLower(c.NGram.Weighting.Type) {
	case "", WeightingTypeUniform:
		w = graph.Uniform{Value: c.NGram.Weighting.Value}
	case WeightingTypeDistance:
		w = graph.Distance{
			BaseValue:  c.NGram.Weighting.BaseValue,
			BonusRange: c.NGram.Weighting.BonusRange,
			BonusValue: c.NGram.Weighting.BonusValue,
		}
	default:
		return graph.Config{}, fmt.Errorf("weighting type %q: %w", c.NGram.Weighting.Type, internalerr.ErrInvalidConfig)
	}

	return graph.Config{
		WindowSize:         c.NGram.WindowSize,
		Weighting:          w,
		SentenceBoundaries: append([]string(nil), c.NGram.SentenceBoundaries...),
	}, nil
}

// DisplayConfig converts the display section into a graph.DisplayConfig.
func (c *Config) DisplayConfig() graph.DisplayConfig {
	return graph.DisplayConfig{
		MinEdgeWeight:    c.Display.MinEdgeWeight,
		MinNodeFrequency: c.Display.MinNodeFrequency,
	}
}

// Validate checks the whole configuration.
func (c *Config) Validate() error {
	gc, err := c.GraphConfig()
	if err != nil {
		return err
	}
	if err := gc.Validate(); err != nil {
		return err
	}
	if c.CacheSize < 0 {
		return fmt.Errorf("cache size %d: %w", c.CacheSize, internalerr.ErrInvalidConfig)
	}
	return nil
}

// Stopwords is a loaded stopword list.
type Stopwords struct {
	Terms []string `yaml:"terms"`
}

// LoadStoplist loads stopwords from a YAML file with a top-level terms list
// or from plain text with one word per line and # comments.
func LoadStoplist(path string) (*Stopwords, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	if looksLikeYAML(data) {
		var sl Stopwords
		if err := yaml.Unmarshal(data, &sl); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
		return &sl, nil
	}

	sl := &Stopwords{Terms: []string{}}
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		sl.Terms = append(sl.Terms, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return sl, nil
}

func looksLikeYAML(data []byte) bool {
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") || line == "---" {
			continue
		}
		return strings.HasPrefix(line, "terms:")
	}
	return false
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}
