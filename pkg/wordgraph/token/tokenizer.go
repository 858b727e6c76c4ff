// Package token splits raw text into an ordered, lossless sequence of
// classified tokens (word, punctuation, whitespace).
package token

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Type classifies a token. The three types partition the input exactly.
type Type string

const (
	Word        Type = "word"
	Punctuation Type = "punctuation"
	Whitespace  Type = "whitespace"
)

// Token is one unit of tokenized text.
type Token struct {
	ID         int    `json:"id"`         // 1-based, unique within one Tokenize call
	Text       string `json:"text"`       // exact substring of the input
	Type       Type   `json:"type"`
	Normalized string `json:"normalized"` // lowercase form, the grouping key
	IsStopword bool   `json:"is_stopword"`
}

// Stopwords is a read-only stopword snapshot. Words are expected in
// normalized (lowercase) form.
type Stopwords interface {
	Has(word string) bool
}

// Tokenize scans text left to right and classifies each position with a
// fixed priority: whitespace run, word run, single-rune fallback.
// stops may be nil.
func Tokenize(text string, stops Stopwords) []Token {
	tokens := make([]Token, 0, len(text)/3+1)
	nextID := 0

	emit := func(s string, typ Type) {
		nextID++
		tok := Token{ID: nextID, Text: s, Type: typ}
		if typ == Whitespace {
			tok.Normalized = s
		} else {
			tok.Normalized = strings.ToLower(s)
			tok.IsStopword = isStop(stops, tok.Normalized)
		}
		tokens = append(tokens, tok)
	}

	for pos := 0; pos < len(text); {
		if n := scanWhitespace(text[pos:]); n > 0 {
			emit(text[pos:pos+n], Whitespace)
			pos += n
			continue
		}
		if n := scanWord(text[pos:]); n > 0 {
			emit(text[pos:pos+n], Word)
			pos += n
			continue
		}
		// Invalid UTF-8 bytes decode as a width-1 RuneError, so every
		// iteration still advances and no byte is lost.
		_, size := utf8.DecodeRuneInString(text[pos:])
		emit(text[pos:pos+size], Punctuation)
		pos += size
	}

	return tokens
}

func isStop(stops Stopwords, word string) bool {
	if stops == nil {
		return false
	}
	return stops.Has(word)
}

// scanWhitespace returns the byte length of the leading whitespace run.
func scanWhitespace(s string) int {
	n := 0
	for n < len(s) {
		r, size := utf8.DecodeRuneInString(s[n:])
		if !isSpace(r) {
			break
		}
		n += size
	}
	return n
}

// scanWord returns the byte length of a leading word: letters/digits,
// optionally followed by one apostrophe and at least one letter.
func scanWord(s string) int {
	n := 0
	for n < len(s) {
		r, size := utf8.DecodeRuneInString(s[n:])
		if !isWordRune(r) {
			break
		}
		n += size
	}
	if n == 0 || n >= len(s) {
		return n
	}

	r, size := utf8.DecodeRuneInString(s[n:])
	if !isApostrophe(r) {
		return n
	}
	tail := n + size
	letters := tail
	for letters < len(s) {
		r, size := utf8.DecodeRuneInString(s[letters:])
		if !unicode.IsLetter(r) {
			break
		}
		letters += size
	}
	if letters == tail {
		// A trailing apostrophe is not part of the word.
		return n
	}
	return letters
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsNumber(r)
}

func isApostrophe(r rune) bool {
	return r == '\'' || r == '\u2019'
}

// isSpace matches Unicode white space and the BOM, but not NEL (U+0085),
// which is tokenized as punctuation.
func isSpace(r rune) bool {
	if r == '\u0085' {
		return false
	}
	return unicode.IsSpace(r) || r == '\uFEFF'
}

// Join concatenates token texts. For tokens produced by Tokenize this
// reproduces the original input exactly.
func Join(tokens []Token) string {
	var b strings.Builder
	for _, tok := range tokens {
		b.WriteString(tok.Text)
	}
	return b.String()
}

// DetectPunctuation returns the distinct punctuation glyphs present in
// tokens, sorted. Useful for offering sentence-boundary choices.
func DetectPunctuation(tokens []Token) []string {
	seen := make(map[string]struct{})
	for _, tok := range tokens {
		if tok.Type == Punctuation {
			seen[tok.Text] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for p := range seen {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

// Search returns the indices of word tokens whose normalized text contains
// query (case-insensitive). An empty query matches nothing.
func Search(tokens []Token, query string) []int {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil
	}
	var indices []int
	for i, tok := range tokens {
		if tok.Type == Word && strings.Contains(tok.Normalized, query) {
			indices = append(indices, i)
		}
	}
	return indices
}
