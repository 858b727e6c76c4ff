package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/cognicore/wordgraph/pkg/wordgraph/graph"
	"github.com/cognicore/wordgraph/pkg/wordgraph/internalerr"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadStoplistYAML(t *testing.T) {
	path := writeFile(t, "stoplist.yaml", `terms:
  - the
  - a
  - and
`)

	sl, err := LoadStoplist(path)
	if err != nil {
		t.Fatalf("Failed to load stoplist: %v", err)
	}

	if len(sl.Terms) != 3 {
		t.Errorf("Expected 3 terms, got %d", len(sl.Terms))
	}

	expected := map[string]bool{"the": true, "a": true, "and": true}
	for _, term := range sl.Terms {
		if !expected[term] {
			t.Errorf("Unexpected term: %s", term)
		}
	}
}

func TestLoadStoplistPlainText(t *testing.T) {
	path := writeFile(t, "stopwords.txt", "# exported list\nand\n\n  the  \nterms\n")

	sl, err := LoadStoplist(path)
	if err != nil {
		t.Fatalf("Failed to load stoplist: %v", err)
	}
	if len(sl.Terms) != 3 || sl.Terms[1] != "the" || sl.Terms[2] != "terms" {
		t.Errorf("Unexpected terms: %v", sl.Terms)
	}
}

func TestLoadStoplistMissing(t *testing.T) {
	if _, err := LoadStoplist(filepath.Join(t.TempDir(), "nope.txt")); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.NGram.WindowSize != 5 {
		t.Errorf("Expected window 5, got %d", cfg.NGram.WindowSize)
	}
	if cfg.Placeholder != DefaultPlaceholder || cfg.CacheSize != DefaultCacheSize {
		t.Errorf("Unexpected defaults: %+v", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Defaults should validate: %v", err)
	}
}

func TestLoadFile(t *testing.T) {
	path := writeFile(t, "wordgraph.yaml", `ngram:
  window_size: 4
  weighting:
    type: distance
    base_value: 1
    bonus_range: 2
    bonus_value: 3
  sentence_boundaries: [".", ";"]
display:
  min_edge_weight: 2.5
  min_node_frequency: 2
stoplist:
  languages: [en]
  terms: [foo]
placeholder: dot
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	gc, err := cfg.GraphConfig()
	if err != nil {
		t.Fatalf("GraphConfig failed: %v", err)
	}
	d, ok := gc.Weighting.(graph.Distance)
	if !ok {
		t.Fatalf("Expected distance weighting, got %T", gc.Weighting)
	}
	if d.BonusRange != 2 || d.BonusValue != 3 {
		t.Errorf("Unexpected weighting: %+v", d)
	}
	if gc.WindowSize != 4 || len(gc.SentenceBoundaries) != 2 {
		t.Errorf("Unexpected graph config: %+v", gc)
	}
	if dc := cfg.DisplayConfig(); dc.MinEdgeWeight != 2.5 || dc.MinNodeFrequency != 2 {
		t.Errorf("Unexpected display config: %+v", dc)
	}
	if cfg.CacheSize != DefaultCacheSize {
		t.Error("Unset keys should keep defaults")
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	path := writeFile(t, "wordgraph.yaml", "ngram:\n  window_size: 4\n")
	t.Setenv(EnvWindowSize, "9")
	t.Setenv(EnvMinEdgeWeight, "3.5")
	t.Setenv(EnvMinNodeFrequency, "2")
	t.Setenv(EnvPlaceholder, "dash")
	t.Setenv(EnvStopwordLanguages, "de, en")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.NGram.WindowSize != 9 {
		t.Errorf("Environment should override file, got %d", cfg.NGram.WindowSize)
	}
	if cfg.Display.MinEdgeWeight != 3.5 || cfg.Display.MinNodeFrequency != 2 {
		t.Errorf("Unexpected display: %+v", cfg.Display)
	}
	if cfg.Placeholder != "dash" {
		t.Errorf("Expected dash placeholder, got %q", cfg.Placeholder)
	}
	if len(cfg.Stoplist.Languages) != 2 || cfg.Stoplist.Languages[1] != "en" {
		t.Errorf("Unexpected languages: %v", cfg.Stoplist.Languages)
	}
}

func TestLoadEnvIgnoresGarbage(t *testing.T) {
	t.Setenv(EnvWindowSize, "many")
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.NGram.WindowSize != 5 {
		t.Errorf("Unparsable override should be ignored, got %d", cfg.NGram.WindowSize)
	}
}

func TestLoadBadYAML(t *testing.T) {
	path := writeFile(t, "bad.yaml", "ngram: [unclosed\n")
	if _, err := Load(path); err == nil {
		t.Error("Expected parse error")
	}
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.NGram.WindowSize = 1
	if err := cfg.Validate(); !errors.Is(err, internalerr.ErrInvalidConfig) {
		t.Errorf("Expected ErrInvalidConfig for window 1, got %v", err)
	}

	cfg = Default()
	cfg.NGram.Weighting = Weighting{Type: "cubic"}
	if err := cfg.Validate(); !errors.Is(err, internalerr.ErrInvalidConfig) {
		t.Errorf("Expected ErrInvalidConfig for unknown weighting, got %v", err)
	}

	cfg = Default()
	cfg.NGram.Weighting = DefaultDistance()
	cfg.NGram.WindowSize = 2
	if err := cfg.Validate(); !errors.Is(err, internalerr.ErrInvalidConfig) {
		t.Errorf("Bonus range 2 with window 2 should fail, got %v", err)
	}

	cfg = Default()
	cfg.CacheSize = -1
	if err := cfg.Validate(); !errors.Is(err, internalerr.ErrInvalidConfig) {
		t.Errorf("Expected ErrInvalidConfig for negative cache, got %v", err)
	}
}
