package repository

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/carlyclark26/PharmC-Quiz/internal/domain/entities"
)

// WriteQuizDocument serializes the document with two-space indentation and
// writes it to path in a single call, so a failure during encoding never
// leaves partial output behind. HTML escaping is disabled to keep arrows and
// the option marker glyph literal; the output ends with a newline.
func WriteQuizDocument(path string, doc *entities.QuizDocument) error {
	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode quiz document: %w", err)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write quiz document: %w", err)
	}

	return nil
}
