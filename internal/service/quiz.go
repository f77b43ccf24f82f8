package service

import (
	"context"
	"math/rand"

	"github.com/carlyclark26/PharmC-Quiz/internal/domain/entities"
)

// RecordSource provides the ordered drug records a quiz is built from.
type RecordSource interface {
	GetAll(ctx context.Context) ([]entities.DrugRecord, error)
}

// BuildQuiz generates the full quiz document for both naming directions.
// brand_to_generic draws from seed and generic_to_brand from seed+1, so the
// two directions never share a shuffle order.
func BuildQuiz(records []entities.DrugRecord, distractorCount int, seed int64) *entities.QuizDocument {
	return &entities.QuizDocument{
		BrandToGeneric: buildDirection(records, entities.DirectionBrandToGeneric, distractorCount, seed),
		GenericToBrand: buildDirection(records, entities.DirectionGenericToBrand, distractorCount, seed+1),
	}
}

// buildDirection builds one direction's question sets from its own seeded
// rand source. The multiple-choice builder consumes the source; the
// fill-in-the-blank builder is deterministic and needs none.
func buildDirection(
	records []entities.DrugRecord,
	direction entities.Direction,
	distractorCount int,
	seed int64,
) entities.QuestionSet {
	rng := rand.New(rand.NewSource(seed))

	return entities.QuestionSet{
		MultipleChoice: BuildMultipleChoice(records, direction, distractorCount, rng),
		FillInTheBlank: BuildFillInTheBlank(records, direction),
	}
}
