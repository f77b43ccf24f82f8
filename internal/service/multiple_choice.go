package service

import (
	"fmt"
	"math/rand"

	"github.com/carlyclark26/PharmC-Quiz/internal/domain/entities"
)

// displayLabelMarker prefixes every option's display label.
const displayLabelMarker = "🔵"

// BuildMultipleChoice creates one multiple-choice question per record in the
// requested direction, preserving input order. distractorCount caps the
// number of wrong options per question; when fewer candidates exist the
// question silently gets a smaller option set. The rand source drives both
// the distractor sample and the option shuffle, so the same seed and input
// always reproduce the same quiz.
func BuildMultipleChoice(
	records []entities.DrugRecord,
	direction entities.Direction,
	distractorCount int,
	rng *rand.Rand,
) []entities.Question {
	sourceField, targetField := direction.Fields()

	targets := make([]string, 0, len(records))
	for _, record := range records {
		targets = append(targets, record.Value(targetField))
	}

	questions := make([]entities.Question, 0, len(records))
	for i, record := range records {
		correct := record.Value(targetField)

		// Candidate distractors keep duplicates present in the source data.
		pool := make([]string, 0, len(targets))
		for _, target := range targets {
			if target != correct {
				pool = append(pool, target)
			}
		}

		options := sampleDistractors(pool, distractorCount, rng)
		options = append(options, correct)
		rng.Shuffle(len(options), func(a, b int) {
			options[a], options[b] = options[b], options[a]
		})

		labeled := make([]entities.LabeledOption, 0, len(options))
		for optionIdx, text := range options {
			label := string(rune('A' + optionIdx))
			labeled = append(labeled, entities.LabeledOption{
				Label:        label,
				DisplayLabel: displayLabelMarker + " " + label,
				Text:         text,
			})
		}

		questions = append(questions, entities.Question{
			ID:             fmt.Sprintf("%s-mc-%d", direction, i+1),
			Question:       fmt.Sprintf("What is the %s for %s?", targetField, record.Value(sourceField)),
			Options:        options,
			LabeledOptions: labeled,
			Answer:         correct,
		})
	}

	return questions
}

// sampleDistractors draws up to count values from pool without replacement.
func sampleDistractors(pool []string, count int, rng *rand.Rand) []string {
	if count > len(pool) {
		count = len(pool)
	}
	if count <= 0 {
		return nil
	}

	picked := make([]string, 0, count)
	for _, idx := range rng.Perm(len(pool))[:count] {
		picked = append(picked, pool[idx])
	}
	return picked
}
