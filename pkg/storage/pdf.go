package storage

import (
	"bytes"
	"fmt"

	"github.com/ledongthuc/pdf"
)

// HasPDFHeader reports whether content starts with the %PDF- magic.
func HasPDFHeader(content []byte) bool {
	return bytes.HasPrefix(content, []byte("%PDF-"))
}

// PageCount parses content and returns its number of pages. The pdf reader
// panics on malformed objects; those panics are returned as errors.
func PageCount(content []byte) (pages int, err error) {
	if !HasPDFHeader(content) {
		return 0, fmt.Errorf("missing PDF header")
	}
	defer func() {
		if r := recover(); r != nil {
			pages = 0
			err = fmt.Errorf("parse pdf: %v", r)
		}
	}()

	content = trimAfterEOF(content)
	reader, err := pdf.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return 0, fmt.Errorf("parse pdf: %w", err)
	}
	return reader.NumPage(), nil
}

// trimAfterEOF drops bytes some generators append after the final %%EOF marker,
// which otherwise make the trailer unreadable.
func trimAfterEOF(content []byte) []byte {
	marker := []byte("%%EOF")
	last := bytes.LastIndex(content, marker)
	if last == -1 {
		return content
	}
	end := last + len(marker)
	for end < len(content) && (content[end] == '\n' || content[end] == '\r') {
		end++
	}
	return content[:end]
}
