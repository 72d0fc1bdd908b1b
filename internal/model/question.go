package model

import "strings"

// QuestionType discriminates the closed set of question shapes
type QuestionType string

const (
	QuestionTypeCategorize    QuestionType = "categorize"    // drag items into categories
	QuestionTypeCloze         QuestionType = "cloze"         // fill-in-the-blank text
	QuestionTypeComprehension QuestionType = "comprehension" // passage with multiple-choice sub-questions
)

// Known reports whether t is one of the supported question types.
func (t QuestionType) Known() bool {
	switch t {
	case QuestionTypeCategorize, QuestionTypeCloze, QuestionTypeComprehension:
		return true
	}
	return false
}

// Item is a draggable entry in a categorize question. Category must reference
// one of the question's declared categories.
type Item struct {
	Text     string `json:"text" bson:"text"`
	Category string `json:"category" bson:"category"`
}

// SubQuestion is one multiple-choice question attached to a comprehension
// passage. CorrectAnswer must be one of Options.
type SubQuestion struct {
	Question      string   `json:"question" bson:"question"`
	Options       []string `json:"options" bson:"options"`
	CorrectAnswer string   `json:"correctAnswer" bson:"correctAnswer"`
}

// Question is a tagged union over the three variants. Only the field group
// matching Type is populated; all access must be guarded by the type tag.
type Question struct {
	Type QuestionType `json:"type" bson:"type"`

	// categorize
	Question   string   `json:"question,omitempty" bson:"question,omitempty"`
	Categories []string `json:"categories,omitempty" bson:"categories,omitempty"`
	Items      []Item   `json:"items,omitempty" bson:"items,omitempty"`

	// cloze
	Text   string   `json:"text,omitempty" bson:"text,omitempty"`
	Blanks []string `json:"blanks,omitempty" bson:"blanks,omitempty"`

	// comprehension
	Passage   string        `json:"passage,omitempty" bson:"passage,omitempty"`
	Questions []SubQuestion `json:"questions,omitempty" bson:"questions,omitempty"`
}

// NewQuestion returns an empty question of the given variant with its fields
// defaulted the way the authoring flow starts from. Returns nil for an
// unknown type.
func NewQuestion(t QuestionType) *Question {
	switch t {
	case QuestionTypeCategorize:
		return &Question{Type: t, Categories: []string{}, Items: []Item{}}
	case QuestionTypeCloze:
		return &Question{Type: t, Blanks: []string{}}
	case QuestionTypeComprehension:
		return &Question{Type: t, Questions: []SubQuestion{}}
	}
	return nil
}

// NewSubQuestion returns a defaulted comprehension sub-question with the
// fixed four option slots.
func NewSubQuestion() SubQuestion {
	return SubQuestion{Options: make([]string, 4)}
}

// PlaceholderMarker is the literal marker inside cloze text that denotes a
// blank's position.
const PlaceholderMarker = "[...]"

// PlaceholderCount counts blank markers in cloze text.
func PlaceholderCount(text string) int {
	return strings.Count(text, PlaceholderMarker)
}
