package reconstruct

import (
	"errors"
	"testing"

	"github.com/cognicore/wordgraph/pkg/wordgraph/internalerr"
	"github.com/cognicore/wordgraph/pkg/wordgraph/stoplist"
	"github.com/cognicore/wordgraph/pkg/wordgraph/token"
)

func tokens(text string, stops ...string) []token.Token {
	return token.Tokenize(text, stoplist.New(stops...))
}

func TestCleanedText(t *testing.T) {
	cases := []struct {
		name        string
		text        string
		stops       []string
		placeholder Placeholder
		want        string
	}{
		{"underscore", "The cat sat.", []string{"the"}, Underscore, "___ cat sat."},
		{"dot", "the end", []string{"the"}, Dot, "··· end"},
		{"dash", "Über alles", []string{"über"}, Dash, "———— alles"},
		{"hidden", "the cat", []string{"the"}, Hidden, " cat"},
		{"no stopwords", "Keep  it\n  all.", nil, Underscore, "Keep  it\n  all."},
		{"punctuation stopword", "wait, what", []string{","}, Underscore, "wait_ what"},
		{"empty", "", []string{"the"}, Underscore, ""},
	}

	for _, tc := range cases {
		got := CleanedText(tokens(tc.text, tc.stops...), tc.placeholder)
		if got != tc.want {
			t.Errorf("%s: expected %q, got %q", tc.name, tc.want, got)
		}
	}
}

func TestCleanedTextPreservesLength(t *testing.T) {
	text := "It's the best of times, it was the worst of times."
	got := CleanedText(tokens(text, "the", "of", "it"), Underscore)
	if len(got) != len(text) {
		t.Errorf("Single-byte placeholder should keep byte length: %d vs %d", len(got), len(text))
	}
}

func TestDownloadText(t *testing.T) {
	cases := []struct {
		name  string
		text  string
		stops []string
		want  string
	}{
		{"leading stopword", "a big dog", []string{"a"}, "big dog"},
		{"inner stopword", "cat the  dog", []string{"the"}, "cat dog"},
		{"stopword run", "one the\nthe two", []string{"the"}, "one two"},
		{"newline kept", "line\nthe end", []string{"the"}, "line\nend"},
		{"punctuation after stopword", "the. x", []string{"the"}, ". x"},
		{"layout without stopwords", "a\n\nb", nil, "a\n\nb"},
		{"all stopwords", "the a an", []string{"the", "a", "an"}, ""},
		{"trimmed", "  hello  ", nil, "hello"},
		{"empty", "", nil, ""},
	}

	for _, tc := range cases {
		got := DownloadText(tokens(tc.text, tc.stops...))
		if got != tc.want {
			t.Errorf("%s: expected %q, got %q", tc.name, tc.want, got)
		}
	}
}

func TestParsePlaceholder(t *testing.T) {
	cases := map[string]Placeholder{
		"underscore": Underscore,
		"Dot":        Dot,
		" dash ":     Dash,
		"hidden":     Hidden,
		"none":       Hidden,
		"*":          Placeholder("*"),
		"·":          Dot,
	}
	for in, want := range cases {
		got, err := ParsePlaceholder(in)
		if err != nil {
			t.Errorf("ParsePlaceholder(%q) failed: %v", in, err)
			continue
		}
		if got != want {
			t.Errorf("ParsePlaceholder(%q) = %q, want %q", in, got, want)
		}
	}

	if _, err := ParsePlaceholder("stars"); !errors.Is(err, internalerr.ErrInvalidInput) {
		t.Errorf("Expected ErrInvalidInput, got %v", err)
	}
}
