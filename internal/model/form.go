package model

import (
	"errors"
	"time"
)

// ErrIndexOutOfRange is returned by positional question operations when the
// index does not address an existing question.
var ErrIndexOutOfRange = errors.New("question index out of range")

// Form is an ordered collection of questions plus metadata. Identity is
// assigned by the store on creation; a persisted form is immutable except by
// delete.
type Form struct {
	ID          string     `json:"_id,omitempty" bson:"_id,omitempty"`
	Title       string     `json:"title" bson:"title"`
	HeaderImage string     `json:"headerImage,omitempty" bson:"headerImage,omitempty"`
	Questions   []Question `json:"questions" bson:"questions"`
	CreatedAt   time.Time  `json:"createdAt" bson:"createdAt"`
}

// FormSummary is the list-view projection of a form.
type FormSummary struct {
	ID        string    `json:"_id" bson:"_id"`
	Title     string    `json:"title" bson:"title"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
}

// AppendQuestion adds a question at the end of the sequence.
func (f *Form) AppendQuestion(q Question) {
	f.Questions = append(f.Questions, q)
}

// UpdateQuestionAt replaces the question at index i.
func (f *Form) UpdateQuestionAt(i int, q Question) error {
	if i < 0 || i >= len(f.Questions) {
		return ErrIndexOutOfRange
	}
	f.Questions[i] = q
	return nil
}

// RemoveQuestionAt deletes the question at index i, shifting later questions
// down one position.
func (f *Form) RemoveQuestionAt(i int) error {
	if i < 0 || i >= len(f.Questions) {
		return ErrIndexOutOfRange
	}
	f.Questions = append(f.Questions[:i], f.Questions[i+1:]...)
	return nil
}

// MoveQuestion moves the question at index from to index to, shifting the
// questions in between by one position and leaving the rest stable.
func (f *Form) MoveQuestion(from, to int) error {
	if from < 0 || from >= len(f.Questions) || to < 0 || to >= len(f.Questions) {
		return ErrIndexOutOfRange
	}
	if from == to {
		return nil
	}
	q := f.Questions[from]
	rest := append(f.Questions[:from], f.Questions[from+1:]...)
	rest = append(rest, Question{})
	copy(rest[to+1:], rest[to:])
	rest[to] = q
	f.Questions = rest
	return nil
}
