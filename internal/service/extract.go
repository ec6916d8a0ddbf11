package service

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"
)

// MaxFileSize is the upload ceiling for /api/process-file.
const MaxFileSize = 5 << 20

// PreviewLength is how many characters of extracted text the preview keeps.
const PreviewLength = 500

// ErrUnsupportedFileType is returned for anything that is not PDF, DOCX or
// plain text.
var ErrUnsupportedFileType = errors.New("unsupported file type")

// ExtractText pulls plain text out of an uploaded document. The returned
// fileType is one of "pdf", "docx", "text".
func ExtractText(filename string, data []byte) (string, string, error) {
	switch {
	case strings.HasSuffix(strings.ToLower(filename), ".pdf"):
		text, err := extractPDF(data)
		return text, "pdf", err
	case strings.HasSuffix(strings.ToLower(filename), ".docx"):
		text, err := extractDOCX(data)
		return text, "docx", err
	case strings.HasSuffix(strings.ToLower(filename), ".txt"):
		return string(data), "text", nil
	default:
		return "", "", ErrUnsupportedFileType
	}
}

func extractPDF(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("opening pdf: %w", err)
	}

	content, err := reader.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("extracting pdf text: %w", err)
	}

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(content); err != nil {
		return "", fmt.Errorf("reading pdf text: %w", err)
	}
	return buf.String(), nil
}

// extractDOCX reads word/document.xml out of the DOCX zip container and
// collects the text runs, one line per paragraph.
func extractDOCX(data []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("opening docx: %w", err)
	}

	var document *zip.File
	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			document = f
			break
		}
	}
	if document == nil {
		return "", fmt.Errorf("docx missing word/document.xml")
	}

	rc, err := document.Open()
	if err != nil {
		return "", fmt.Errorf("opening document.xml: %w", err)
	}
	defer rc.Close()

	decoder := xml.NewDecoder(rc)
	var b strings.Builder
	inText := false
	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("parsing document.xml: %w", err)
		}

		switch el := token.(type) {
		case xml.StartElement:
			if el.Name.Local == "t" {
				inText = true
			}
		case xml.EndElement:
			switch el.Name.Local {
			case "t":
				inText = false
			case "p":
				b.WriteString("\n")
			}
		case xml.CharData:
			if inText {
				b.Write(el)
			}
		}
	}
	return strings.TrimSpace(b.String()), nil
}

// Preview returns the first n characters of text, truncated at a word
// boundary with a trailing ellipsis. n counts characters, not bytes, so
// multibyte text is never cut mid-rune.
func Preview(text string, n int) string {
	if utf8.RuneCountInString(text) <= n {
		return text
	}

	cut := string([]rune(text)[:n])
	if idx := strings.LastIndex(cut, " "); idx > 0 {
		cut = cut[:idx]
	}
	return cut + "..."
}
