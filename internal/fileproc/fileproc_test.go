package fileproc

import (
	"archive/zip"
	"bytes"
	"errors"
	"strings"
	"testing"

	"docsum/internal/domain"
)

func TestExtractPlainText(t *testing.T) {
	for _, name := range []string{"doc.txt", "doc.md", "DOC.TXT"} {
		got, err := Extract(name, []byte("hello world"))
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if got != "hello world" {
			t.Errorf("%s: got %q", name, got)
		}
	}
}

func TestExtractUnsupportedExtension(t *testing.T) {
	_, err := Extract("doc.pdf", []byte("%PDF"))
	if !errors.Is(err, domain.ErrInput) {
		t.Errorf("expected ErrInput, got %v", err)
	}
}

func buildEPUB(t *testing.T, files map[string]string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, content := range files {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := w.Write([]byte(content)); err != nil {
			t.Fatal(err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestExtractEPUB(t *testing.T) {
	data := buildEPUB(t, map[string]string{
		"mimetype": "application/epub+zip",
		"OEBPS/chapter1.xhtml": `<html><head><style>p{color:red}</style></head>` +
			`<body><p>First chapter text.</p><script>alert(1)</script></body></html>`,
	})
	got, err := Extract("book.epub", data)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(got, "First chapter text.") {
		t.Errorf("chapter text missing from %q", got)
	}
	if strings.Contains(got, "alert") || strings.Contains(got, "color:red") {
		t.Errorf("script/style leaked into %q", got)
	}
}

func TestExtractEPUBNoDocuments(t *testing.T) {
	data := buildEPUB(t, map[string]string{"mimetype": "application/epub+zip"})
	if _, err := Extract("book.epub", data); !errors.Is(err, domain.ErrInput) {
		t.Errorf("expected ErrInput for epub without documents, got %v", err)
	}
}

func TestExtractEPUBCorruptContainer(t *testing.T) {
	if _, err := Extract("book.epub", []byte("not a zip")); !errors.Is(err, domain.ErrInput) {
		t.Errorf("expected ErrInput for corrupt container, got %v", err)
	}
}
