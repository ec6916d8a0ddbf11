package service

import (
	"archive/zip"
	"bytes"
	"errors"
	"strings"
	"testing"
	"unicode/utf8"
)

func TestExtractTextPlain(t *testing.T) {
	text, fileType, err := ExtractText("notes.txt", []byte("About volcanoes and islands."))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fileType != "text" {
		t.Errorf("expected file type text, got %q", fileType)
	}
	if text != "About volcanoes and islands." {
		t.Errorf("unexpected text: %q", text)
	}
}

func TestExtractTextUnsupported(t *testing.T) {
	_, _, err := ExtractText("image.png", []byte{0x89, 0x50})
	if !errors.Is(err, ErrUnsupportedFileType) {
		t.Fatalf("expected ErrUnsupportedFileType, got %v", err)
	}
}

func TestExtractTextCaseInsensitiveExtension(t *testing.T) {
	_, fileType, err := ExtractText("NOTES.TXT", []byte("upper case name"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fileType != "text" {
		t.Errorf("expected file type text, got %q", fileType)
	}
}

// buildDOCX assembles a minimal DOCX container with the given paragraphs.
func buildDOCX(t *testing.T, paragraphs []string) []byte {
	t.Helper()

	var body strings.Builder
	body.WriteString(`<?xml version="1.0" encoding="UTF-8"?>`)
	body.WriteString(`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`)
	for _, p := range paragraphs {
		body.WriteString(`<w:p><w:r><w:t>`)
		body.WriteString(p)
		body.WriteString(`</w:t></w:r></w:p>`)
	}
	body.WriteString(`</w:body></w:document>`)

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	f, err := zw.Create("word/document.xml")
	if err != nil {
		t.Fatalf("creating zip entry: %v", err)
	}
	if _, err := f.Write([]byte(body.String())); err != nil {
		t.Fatalf("writing zip entry: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("closing zip: %v", err)
	}
	return buf.Bytes()
}

func TestExtractTextDOCX(t *testing.T) {
	data := buildDOCX(t, []string{"First paragraph.", "Second paragraph."})

	text, fileType, err := ExtractText("document.docx", data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fileType != "docx" {
		t.Errorf("expected file type docx, got %q", fileType)
	}
	if text != "First paragraph.\nSecond paragraph." {
		t.Errorf("unexpected text: %q", text)
	}
}

func TestExtractTextDOCXMissingDocument(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	f, err := zw.Create("word/styles.xml")
	if err != nil {
		t.Fatalf("creating zip entry: %v", err)
	}
	f.Write([]byte("<styles/>"))
	zw.Close()

	_, _, err = ExtractText("broken.docx", buf.Bytes())
	if err == nil {
		t.Fatal("expected error for docx without document.xml")
	}
}

func TestPreview(t *testing.T) {
	tests := []struct {
		name string
		text string
		n    int
		want string
	}{
		{
			name: "short text untouched",
			text: "short",
			n:    500,
			want: "short",
		},
		{
			name: "truncates at word boundary",
			text: "alpha beta gamma delta",
			n:    12,
			want: "alpha beta...",
		},
		{
			name: "no space falls back to hard cut",
			text: "abcdefghij",
			n:    5,
			want: "abcde...",
		},
		{
			name: "exact length untouched",
			text: "exact",
			n:    5,
			want: "exact",
		},
		{
			name: "multibyte counts characters not bytes",
			text: strings.Repeat("あ", 8),
			n:    10,
			want: strings.Repeat("あ", 8),
		},
		{
			name: "multibyte hard cut stays on rune boundary",
			text: strings.Repeat("あ", 10),
			n:    5,
			want: strings.Repeat("あ", 5) + "...",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Preview(tt.text, tt.n)
			if got != tt.want {
				t.Errorf("Preview(%q, %d) = %q, want %q", tt.text, tt.n, got, tt.want)
			}
			if !utf8.ValidString(got) {
				t.Errorf("Preview(%q, %d) returned invalid UTF-8", tt.text, tt.n)
			}
		})
	}
}
