package repository

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carlyclark26/PharmC-Quiz/internal/domain/entities"
)

func sampleDocument() *entities.QuizDocument {
	mc := entities.Question{
		ID:       "brand_to_generic-mc-1",
		Question: "What is the generic for Lipitor?",
		Options:  []string{"sertraline", "atorvastatin"},
		LabeledOptions: []entities.LabeledOption{
			{Label: "A", DisplayLabel: "🔵 A", Text: "sertraline"},
			{Label: "B", DisplayLabel: "🔵 B", Text: "atorvastatin"},
		},
		Answer: "atorvastatin",
	}
	fib := entities.Question{
		ID:       "brand_to_generic-fib-1",
		Question: "Lipitor → ________ (generic)",
		Answer:   "atorvastatin",
	}

	return &entities.QuizDocument{
		BrandToGeneric: entities.QuestionSet{
			MultipleChoice: []entities.Question{mc},
			FillInTheBlank: []entities.Question{fib},
		},
		GenericToBrand: entities.QuestionSet{
			MultipleChoice: []entities.Question{},
			FillInTheBlank: []entities.Question{},
		},
	}
}

func TestWriteQuizDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quizzes.json")

	require.NoError(t, WriteQuizDocument(path, sampleDocument()))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(raw)

	assert.True(t, strings.HasSuffix(out, "\n"))
	assert.Contains(t, out, "  \"brand_to_generic\": {")
	assert.Contains(t, out, "    \"multiple_choice\": [")
}

func TestWriteQuizDocument_KeyOrder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quizzes.json")
	require.NoError(t, WriteQuizDocument(path, sampleDocument()))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(raw)

	brandIdx := strings.Index(out, `"brand_to_generic"`)
	genericIdx := strings.Index(out, `"generic_to_brand"`)
	require.GreaterOrEqual(t, brandIdx, 0)
	require.GreaterOrEqual(t, genericIdx, 0)
	assert.Less(t, brandIdx, genericIdx)

	mcIdx := strings.Index(out, `"multiple_choice"`)
	fibIdx := strings.Index(out, `"fill_in_the_blank"`)
	require.GreaterOrEqual(t, mcIdx, 0)
	require.GreaterOrEqual(t, fibIdx, 0)
	assert.Less(t, mcIdx, fibIdx)
}

func TestWriteQuizDocument_NonASCIIKeptLiteral(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quizzes.json")
	require.NoError(t, WriteQuizDocument(path, sampleDocument()))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(raw)

	assert.Contains(t, out, "Lipitor → ________ (generic)")
	assert.Contains(t, out, "🔵 A")
	assert.NotContains(t, out, `\u`)
}

func TestWriteQuizDocument_FillInTheBlankOmitsOptions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quizzes.json")
	require.NoError(t, WriteQuizDocument(path, sampleDocument()))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	fibSection := string(raw)[strings.Index(string(raw), `"fill_in_the_blank"`):]
	assert.NotContains(t, fibSection, `"labeled_options"`)
}

func TestWriteQuizDocument_UnwritablePath(t *testing.T) {
	err := WriteQuizDocument(filepath.Join(t.TempDir(), "missing", "quizzes.json"), sampleDocument())
	assert.Error(t, err)
}
