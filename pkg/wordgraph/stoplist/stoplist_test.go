package stoplist

import (
	"errors"
	"testing"

	"github.com/cognicore/wordgraph/pkg/wordgraph/internalerr"
)

func TestSetBasic(t *testing.T) {
	set := New("The", "a", "AND", "")

	if !set.Has("the") {
		t.Error("'the' should be a stopword")
	}
	if set.Has("The") {
		t.Error("Has expects normalized input")
	}
	if set.Has("hello") {
		t.Error("'hello' should not be a stopword")
	}
	if set.Len() != 3 {
		t.Errorf("Expected 3 stopwords, got %d", set.Len())
	}
}

func TestSetZeroValue(t *testing.T) {
	var set Set
	if set.Has("x") || set.Len() != 0 {
		t.Error("Zero set should be empty")
	}
	if set.Fingerprint() != New().Fingerprint() {
		t.Error("Zero set and New() should have equal fingerprints")
	}
	if got := set.With("x"); !got.Has("x") {
		t.Error("With on zero set should work")
	}
}

func TestSetCopyOnWrite(t *testing.T) {
	base := New("the")

	added := base.With("cat")
	if base.Has("cat") {
		t.Error("With must not modify the receiver")
	}
	if !added.Has("cat") || !added.Has("the") {
		t.Error("With should keep existing words and add new ones")
	}

	removed := added.Without("THE")
	if !added.Has("the") {
		t.Error("Without must not modify the receiver")
	}
	if removed.Has("the") {
		t.Error("'the' should be removed")
	}
}

func TestSetToggle(t *testing.T) {
	set := New("dog")
	set = set.Toggle("Dog")
	if set.Has("dog") {
		t.Error("Toggle should remove an existing word")
	}
	set = set.Toggle("Dog")
	if !set.Has("dog") {
		t.Error("Toggle should add a missing word")
	}
}

func TestSetWordsSorted(t *testing.T) {
	words := New("c", "a", "b").Words()
	if len(words) != 3 || words[0] != "a" || words[1] != "b" || words[2] != "c" {
		t.Errorf("Expected sorted words, got %v", words)
	}
}

func TestSetFingerprint(t *testing.T) {
	a := New("x", "y")
	b := New("y").With("x")
	if a.Fingerprint() != b.Fingerprint() {
		t.Error("Equal sets should have equal fingerprints")
	}
	if New("ab").Fingerprint() == New("a", "b").Fingerprint() {
		t.Error("Different sets should have different fingerprints")
	}
	if a.Fingerprint() == a.Without("x").Fingerprint() {
		t.Error("Removing a word should change the fingerprint")
	}
}

func TestStandard(t *testing.T) {
	for _, lang := range Languages {
		terms, err := Standard(lang)
		if err != nil {
			t.Fatalf("Standard(%s): %v", lang, err)
		}
		if len(terms) < 100 {
			t.Errorf("Standard(%s) looks truncated: %d terms", lang, len(terms))
		}
	}

	en, _ := Standard(English)
	set := New(en...)
	for _, w := range []string{"the", "and", "don't"} {
		if !set.Has(w) {
			t.Errorf("English list should contain %q", w)
		}
	}

	de, _ := Standard(German)
	if !New(de...).Has("für") {
		t.Error("German list should contain 'für'")
	}
}

func TestStandardUnknownLanguage(t *testing.T) {
	_, err := Standard(Language("xx"))
	if !errors.Is(err, internalerr.ErrInvalidInput) {
		t.Errorf("Expected ErrInvalidInput, got %v", err)
	}

	if _, err := ParseLanguage(" EN "); err != nil {
		t.Errorf("ParseLanguage should accept padded upper-case codes: %v", err)
	}
}

func TestWithStandard(t *testing.T) {
	set, err := New("custom").WithStandard(English)
	if err != nil {
		t.Fatal(err)
	}
	if !set.Has("custom") || !set.Has("the") {
		t.Error("WithStandard should merge the bundled list")
	}

	base := New("custom")
	same, err := base.WithStandard(Language("zz"))
	if err == nil {
		t.Error("Expected error for unknown language")
	}
	if same.Len() != base.Len() {
		t.Error("Failed WithStandard should return the original set")
	}
}

func TestSuggest(t *testing.T) {
	stats := []Stats{
		{Token: "said", Count: 20, SharePercent: 10, AssocMax: 0.1, Spread: 0.8},
		{Token: "river", Count: 15, SharePercent: 7, AssocMax: 0.9, Spread: 0.1},
		{Token: "rare", Count: 1, SharePercent: 0.5, AssocMax: 0, Spread: 0.9},
		{Token: "the", Count: 40, SharePercent: 20, AssocMax: 0, Spread: 1},
		{Token: "also", Count: 10, SharePercent: 5, AssocMax: 0.2, Spread: 0.1},
	}

	got := New("the").Suggest(stats, DefaultThresholds())

	if len(got) != 2 {
		t.Fatalf("Expected 2 candidates, got %+v", got)
	}
	if got[0].Token != "said" || got[1].Token != "also" {
		t.Errorf("Expected [said also], got [%s %s]", got[0].Token, got[1].Token)
	}
	if !got[0].Reason.HighShare || !got[0].Reason.LowAssoc || !got[0].Reason.Spread {
		t.Errorf("Unexpected reason for 'said': %+v", got[0].Reason)
	}
	if got[0].Score <= got[1].Score {
		t.Error("Candidates should be ordered by score")
	}
}

func TestSuggestEmpty(t *testing.T) {
	if got := New().Suggest(nil, DefaultThresholds()); len(got) != 0 {
		t.Errorf("Expected no candidates, got %v", got)
	}
}
