package textload

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestReadPlainText(t *testing.T) {
	in := "\uFEFFFirst line.\n  Second   line.\n"
	got, err := Read(strings.NewReader(in), "story.txt")
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if got != "First line.\n  Second   line.\n" {
		t.Errorf("Plain text should be kept verbatim minus BOM, got %q", got)
	}
}

func TestReadHTML(t *testing.T) {
	in := `<html><head><title>Title</title><style>p { color: red }</style></head>
<body><p>Hello <b>world</b>.</p><script>var x = "hidden";</script><p>Next</p>line<br>break</body></html>`

	got, err := Read(strings.NewReader(in), "page.HTML")
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if strings.Contains(got, "hidden") || strings.Contains(got, "color") {
		t.Errorf("Script and style content must be skipped, got %q", got)
	}
	if !strings.Contains(got, "Hello world.") {
		t.Errorf("Inline elements should be joined, got %q", got)
	}
	if !strings.Contains(got, "Hello world.\n") || !strings.Contains(got, "line\nbreak") {
		t.Errorf("Blocks and <br> should produce line breaks, got %q", got)
	}
	if strings.Contains(got, "world.Next") {
		t.Errorf("Adjacent paragraphs must not merge, got %q", got)
	}
}

func TestReadJSONL(t *testing.T) {
	in := `{"title":"First","text":"Body one."}
not json
{"text":"Body two."}

`
	got, err := Read(strings.NewReader(in), "feed.jsonl")
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if got != "First\n\nBody one.\n\nBody two." {
		t.Errorf("Unexpected JSONL text: %q", got)
	}

	if _, err := Read(strings.NewReader("garbage\n"), "feed.jsonl"); err == nil {
		t.Error("Expected error when no record is valid")
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.htm")
	if err := os.WriteFile(path, []byte("<p>one</p><p>two</p>"), 0644); err != nil {
		t.Fatal(err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != "one\ntwo" {
		t.Errorf("Expected %q, got %q", "one\ntwo", got)
	}
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.txt"))
	if err == nil || !strings.Contains(err.Error(), "missing.txt") {
		t.Errorf("Expected error naming the file, got %v", err)
	}
}

func TestDetectFormat(t *testing.T) {
	cases := map[string]Format{
		"a.txt":       Text,
		"a":           Text,
		"-":           Text,
		"a.htm":       HTML,
		"b.xhtml":     HTML,
		"c.ndjson":    JSONL,
		"dir/d.JSONL": JSONL,
	}
	for name, want := range cases {
		if got := DetectFormat(name); got != want {
			t.Errorf("DetectFormat(%q) = %s, want %s", name, got, want)
		}
	}
}
