// Package textload reads input documents as plain text. Plain text is
// returned as is, HTML is reduced to its visible text and JSONL news
// dumps are reduced to their title and body fields.
package textload

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Format is the detected input format.
type Format string

const (
	Text  Format = "text"
	HTML  Format = "html"
	JSONL Format = "jsonl"
)

const bom = "\uFEFF"

// DetectFormat picks a format from the file extension.
func DetectFormat(name string) Format {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".html", ".htm", ".xhtml":
		return HTML
	case ".jsonl", ".ndjson":
		return JSONL
	default:
		return Text
	}
}

// Load reads the file at path.
func Load(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return Read(f, path)
}

// Read reads r, using name to pick the format. A leading UTF-8 byte order
// mark is dropped.
func Read(r io.Reader, name string) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", name, err)
	}
	data = bytes.TrimPrefix(data, []byte(bom))

	switch DetectFormat(name) {
	case HTML:
		text, err := stripHTML(data)
		if err != nil {
			return "", fmt.Errorf("parse %s: %w", name, err)
		}
		return text, nil
	case JSONL:
		text, err := joinJSONL(data)
		if err != nil {
			return "", fmt.Errorf("parse %s: %w", name, err)
		}
		return text, nil
	default:
		return string(data), nil
	}
}

// stripHTML keeps text nodes outside script and style elements. Block
// elements end with a newline so words of adjacent blocks stay apart.
func stripHTML(data []byte) (string, error) {
	doc, err := html.Parse(bytes.NewReader(data))
	if err != nil {
		return "", err
	}

	var buf strings.Builder
	var extractText func(*html.Node)
	extractText = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.DataAtom {
			case atom.Script, atom.Style, atom.Noscript, atom.Template:
				return
			case atom.Br:
				buf.WriteByte('\n')
				return
			}
		}
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extractText(c)
		}
		if n.Type == html.ElementNode && isBlock(n.DataAtom) {
			if s := buf.String(); s != "" && !strings.HasSuffix(s, "\n") {
				buf.WriteByte('\n')
			}
		}
	}
	extractText(doc)

	return strings.TrimSpace(buf.String()), nil
}

func isBlock(a atom.Atom) bool {
	switch a {
	case atom.P, atom.Div, atom.Li, atom.Tr, atom.Title, atom.Blockquote, atom.Pre,
		atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6,
		atom.Section, atom.Article, atom.Header, atom.Footer:
		return true
	}
	return false
}

// item is one record of a JSONL news dump.
type item struct {
	Title string `json:"title"`
	Body  string `json:"text"`
}

// joinJSONL concatenates title and body of every record, separated by
// blank lines. Malformed lines are skipped; a file without any valid
// record is an error.
func joinJSONL(data []byte) (string, error) {
	var parts []string
	valid := 0

	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		var it item
		if err := json.Unmarshal([]byte(line), &it); err != nil {
			continue
		}
		valid++
		for _, s := range []string{it.Title, it.Body} {
			if s = strings.TrimSpace(s); s != "" {
				parts = append(parts, s)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return "", err
	}
	if valid == 0 {
		return "", fmt.Errorf("no valid records")
	}
	return strings.Join(parts, "\n\n"), nil
}
