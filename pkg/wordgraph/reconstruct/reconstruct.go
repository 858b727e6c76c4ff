// Package reconstruct regenerates text from a token sequence, either with
// stopwords masked in place or with stopwords removed for download.
package reconstruct

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/cognicore/wordgraph/pkg/wordgraph/internalerr"
	"github.com/cognicore/wordgraph/pkg/wordgraph/token"
)

// Placeholder is the glyph that replaces each character of a stopword.
type Placeholder string

const (
	Underscore Placeholder = "_"
	Dot        Placeholder = "·"
	Dash       Placeholder = "—"
	Hidden     Placeholder = ""
)

var placeholderNames = map[string]Placeholder{
	"underscore": Underscore,
	"dot":        Dot,
	"dash":       Dash,
	"hidden":     Hidden,
	"none":       Hidden,
}

// ParsePlaceholder accepts a style name (underscore, dot, dash, hidden) or
// a literal glyph.
func ParsePlaceholder(s string) (Placeholder, error) {
	if p, ok := placeholderNames[strings.ToLower(strings.TrimSpace(s))]; ok {
		return p, nil
	}
	if utf8.RuneCountInString(s) == 1 {
		return Placeholder(s), nil
	}
	return "", fmt.Errorf("placeholder %q: %w", s, internalerr.ErrInvalidInput)
}

// CleanedText replaces every stopword with the placeholder repeated once per
// character and copies everything else verbatim. An empty placeholder drops
// stopwords without disturbing the surrounding layout.
func CleanedText(tokens []token.Token, placeholder Placeholder) string {
	var b strings.Builder
	for _, tok := range tokens {
		if !tok.IsStopword {
			b.WriteString(tok.Text)
			continue
		}
		if placeholder == Hidden {
			continue
		}
		b.WriteString(strings.Repeat(string(placeholder), utf8.RuneCountInString(tok.Text)))
	}
	return b.String()
}

// DownloadText drops stopwords and collapses the whitespace that follows a
// dropped stopword to at most one space. The result is trimmed.
func DownloadText(tokens []token.Token) string {
	var b strings.Builder
	afterStopword := false

	for _, tok := range tokens {
		switch {
		case tok.IsStopword:
			afterStopword = true
		case tok.Type == token.Whitespace:
			if !afterStopword || b.Len() == 0 {
				b.WriteString(tok.Text)
				continue
			}
			if !endsWithBreak(b.String()) {
				b.WriteByte(' ')
			}
		default:
			b.WriteString(tok.Text)
			afterStopword = false
		}
	}
	return strings.TrimFunc(b.String(), isTrimmable)
}

func isTrimmable(r rune) bool {
	return (unicode.IsSpace(r) && r != '\u0085') || r == '\uFEFF'
}

func endsWithBreak(s string) bool {
	return strings.HasSuffix(s, " ") || strings.HasSuffix(s, "\n")
}
