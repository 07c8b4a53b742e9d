// Package extract turns uploaded document bytes into plain text.
package extract

import (
	"bytes"
	"fmt"
	"strings"

	pdf "github.com/ledongthuc/pdf"
)

// PDF extracts text page by page, preserving page order. No separator is
// inserted between pages. Pages whose content streams cannot be decoded are
// skipped rather than failing the whole document; a fully unreadable or
// image-only document simply yields empty text, which the caller treats as
// an empty-document condition.
type PDF struct{}

func (PDF) Text(data []byte) (string, error) {
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("pdf reader: %w", err)
	}

	var b strings.Builder
	fonts := make(map[string]*pdf.Font)
	for i := 1; i <= r.NumPage(); i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			continue
		}
		text, err := p.GetPlainText(fonts)
		if err != nil {
			continue
		}
		b.WriteString(text)
	}
	return b.String(), nil
}

// IsPDF sniffs the magic bytes, so mislabeled uploads fail fast instead of
// confusing the parser.
func IsPDF(data []byte) bool {
	return len(data) >= 5 && string(data[:5]) == "%PDF-"
}
