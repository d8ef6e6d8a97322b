package fileproc

import (
	"archive/zip"
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"golang.org/x/net/html"

	"docsum/internal/domain"
)

// Extract decodes an uploaded file into plain text. Plain text and
// Markdown pass through as-is; EPUB archives have their chapter
// documents unpacked and stripped to text.
func Extract(filename string, data []byte) (string, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".txt", ".md":
		return string(data), nil
	case ".epub":
		return extractEPUB(data)
	default:
		return "", fmt.Errorf("%w: unsupported file type %q, want .txt, .md or .epub", domain.ErrInput, filepath.Ext(filename))
	}
}

// extractEPUB walks the zip container and joins the text of every
// (X)HTML document in archive order.
func extractEPUB(data []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: invalid epub container: %v", domain.ErrInput, err)
	}

	var parts []string
	for _, f := range zr.File {
		switch strings.ToLower(filepath.Ext(f.Name)) {
		case ".xhtml", ".html", ".htm":
		default:
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return "", fmt.Errorf("%w: reading %s: %v", domain.ErrInput, f.Name, err)
		}
		doc, err := html.Parse(rc)
		rc.Close()
		if err != nil {
			return "", fmt.Errorf("%w: parsing %s: %v", domain.ErrInput, f.Name, err)
		}
		if text := documentText(doc); text != "" {
			parts = append(parts, text)
		}
	}
	if len(parts) == 0 {
		return "", fmt.Errorf("%w: epub contains no readable documents", domain.ErrInput)
	}
	return strings.Join(parts, " "), nil
}

// documentText collects the visible text of a parsed document, skipping
// script and style subtrees.
func documentText(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style") {
			return
		}
		if n.Type == html.TextNode {
			if t := strings.TrimSpace(n.Data); t != "" {
				if b.Len() > 0 {
					b.WriteByte(' ')
				}
				b.WriteString(t)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}
