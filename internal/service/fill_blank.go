package service

import (
	"fmt"

	"github.com/carlyclark26/PharmC-Quiz/internal/domain/entities"
)

// BuildFillInTheBlank creates one fill-in-the-blank question per record in
// the requested direction, preserving input order.
func BuildFillInTheBlank(records []entities.DrugRecord, direction entities.Direction) []entities.Question {
	sourceField, targetField := direction.Fields()

	questions := make([]entities.Question, 0, len(records))
	for i, record := range records {
		questions = append(questions, entities.Question{
			ID:       fmt.Sprintf("%s-fib-%d", direction, i+1),
			Question: fmt.Sprintf("%s → ________ (%s)", record.Value(sourceField), targetField),
			Answer:   record.Value(targetField),
		})
	}

	return questions
}
