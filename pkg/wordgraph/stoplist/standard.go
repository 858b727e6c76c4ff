package stoplist

import (
	"embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cognicore/wordgraph/pkg/wordgraph/internalerr"
)

// Language identifies a bundled standard stopword list.
type Language string

const (
	German  Language = "de"
	English Language = "en"
)

// Languages lists the bundled standard lists.
var Languages = []Language{German, English}

//go:embed lists/*.yaml
var lists embed.FS

type listFile struct {
	Terms []string `yaml:"terms"`
}

// ParseLanguage maps a language code such as "EN" to a Language.
func ParseLanguage(code string) (Language, error) {
	lang := Language(strings.ToLower(strings.TrimSpace(code)))
	for _, l := range Languages {
		if l == lang {
			return lang, nil
		}
	}
	return "", fmt.Errorf("unknown stopword language %q: %w", code, internalerr.ErrInvalidInput)
}

// Standard returns the bundled stopword list for lang.
func Standard(lang Language) ([]string, error) {
	if _, err := ParseLanguage(string(lang)); err != nil {
		return nil, err
	}
	data, err := lists.ReadFile("lists/" + string(lang) + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("read %s stopwords: %w", lang, err)
	}
	var lf listFile
	if err := yaml.Unmarshal(data, &lf); err != nil {
		return nil, fmt.Errorf("parse %s stopwords: %w", lang, err)
	}
	return lf.Terms, nil
}

// WithStandard returns s extended by the standard lists of langs.
func (s Set) WithStandard(langs ...Language) (Set, error) {
	var words []string
	for _, lang := range langs {
		terms, err := Standard(lang)
		if err != nil {
			return s, err
		}
		words = append(words, terms...)
	}
	return s.With(words...), nil
}
