package entities

// LabeledOption is a single multiple-choice option together with its letter
// label and the decorated label shown to the user.
type LabeledOption struct {
	Label        string `json:"label"`
	DisplayLabel string `json:"display_label"`
	Text         string `json:"text"`
}

// Question is a single quiz question. Multiple-choice questions carry
// Options and LabeledOptions in parallel order; fill-in-the-blank questions
// carry only the prompt and the answer.
type Question struct {
	ID             string          `json:"id"`
	Question       string          `json:"question"`
	Options        []string        `json:"options,omitempty"`
	LabeledOptions []LabeledOption `json:"labeled_options,omitempty"`
	Answer         string          `json:"answer"`
}

// QuestionSet groups one direction's questions by question type.
type QuestionSet struct {
	MultipleChoice []Question `json:"multiple_choice"`
	FillInTheBlank []Question `json:"fill_in_the_blank"`
}

// QuizDocument is the full generated quiz grouped by naming direction.
// The struct field order fixes the serialized key order.
type QuizDocument struct {
	BrandToGeneric QuestionSet `json:"brand_to_generic"`
	GenericToBrand QuestionSet `json:"generic_to_brand"`
}
