// Package ingestion loads resumes and job postings from files and URLs and
// normalizes them to clean plain text.
package ingestion

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
)

// MaxDocumentBytes caps how large a resume document may be, matching the
// server's upload limit.
const MaxDocumentBytes = 16 << 20

// UnsupportedFormatError indicates a document extension no reader handles.
type UnsupportedFormatError struct {
	Extension string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported document format %q (supported: .pdf, .txt, .md)", e.Extension)
}

// DocumentTooLargeError indicates a document over the size cap.
type DocumentTooLargeError struct {
	Size  int64
	Limit int64
}

func (e *DocumentTooLargeError) Error() string {
	return fmt.Sprintf("document is %d bytes, limit is %d bytes", e.Size, e.Limit)
}

// ReadDocument loads a resume document from disk, extracts its text and
// cleans it. Format dispatch goes by extension: .pdf through PDF text
// extraction, .txt and .md as plain text.
func ReadDocument(path string) (string, *Metadata, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil, fmt.Errorf("document not found: %w", err)
		}
		return "", nil, fmt.Errorf("failed to stat document: %w", err)
	}
	if info.Size() > MaxDocumentBytes {
		return "", nil, &DocumentTooLargeError{Size: info.Size(), Limit: MaxDocumentBytes}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", nil, fmt.Errorf("failed to read document: %w", err)
	}

	text, err := ExtractDocumentText(filepath.Base(path), data)
	if err != nil {
		return "", nil, err
	}

	cleanedText := CleanText(text)
	metadata := NewMetadata(cleanedText, "")
	metadata.Source = path
	metadata.Format = strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")

	return cleanedText, metadata, nil
}

// ExtractDocumentText extracts plain text from an in-memory document payload.
// The server's multipart upload path calls this directly; the file name
// decides the format.
func ExtractDocumentText(fileName string, data []byte) (string, error) {
	if int64(len(data)) > MaxDocumentBytes {
		return "", &DocumentTooLargeError{Size: int64(len(data)), Limit: MaxDocumentBytes}
	}

	ext := strings.ToLower(filepath.Ext(fileName))
	switch ext {
	case ".pdf":
		return extractPDFText(data)
	case ".txt", ".md":
		return string(data), nil
	default:
		return "", &UnsupportedFormatError{Extension: ext}
	}
}

func extractPDFText(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}

	plain, err := reader.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("failed to extract PDF text: %w", err)
	}

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plain); err != nil {
		return "", fmt.Errorf("failed to read PDF text: %w", err)
	}
	return buf.String(), nil
}
