package validator

import "fmt"

// Reason identifies the first rule a question or answer violates.
type Reason string

// Question-side reasons.
const (
	ReasonMissingField             Reason = "MissingField"
	ReasonUnknownType              Reason = "UnknownType"
	ReasonTooFewCategories         Reason = "TooFewCategories"
	ReasonEmptyCategory            Reason = "EmptyCategory"
	ReasonDuplicateCategory        Reason = "DuplicateCategory"
	ReasonTooFewItems              Reason = "TooFewItems"
	ReasonEmptyItemText            Reason = "EmptyItemText"
	ReasonDuplicateItemText        Reason = "DuplicateItemText"
	ReasonItemCategoryUnassigned   Reason = "ItemCategoryUnassigned"
	ReasonEmptyClozeText           Reason = "EmptyClozeText"
	ReasonBlankPlaceholderMismatch Reason = "BlankPlaceholderMismatch"
	ReasonEmptyBlank               Reason = "EmptyBlank"
	ReasonDuplicateBlank           Reason = "DuplicateBlank"
	ReasonEmptyPassage             Reason = "EmptyPassage"
	ReasonNoSubQuestions           Reason = "NoSubQuestions"
	ReasonEmptySubQuestionText     Reason = "EmptySubQuestionText"
	ReasonWrongOptionCount         Reason = "WrongOptionCount"
	ReasonEmptyOption              Reason = "EmptyOption"
	ReasonMissingCorrectAnswer     Reason = "MissingCorrectAnswer"
)

// Answer-side reasons.
const (
	ReasonIncompleteCategorization Reason = "IncompleteCategorization"
	ReasonBlankNotFilled           Reason = "BlankNotFilled"
	ReasonUnansweredSubQuestions   Reason = "UnansweredSubQuestions"
	ReasonAnswerCountMismatch      Reason = "AnswerCountMismatch"
)

// Result is the outcome of validating a question or an answer. The zero
// Result is valid.
type Result struct {
	Reason  Reason `json:"reason,omitempty"`
	Message string `json:"message,omitempty"`
}

// Ok reports whether no rule was violated.
func (r Result) Ok() bool {
	return r.Reason == ""
}

// Issue ties an Invalid result to a question position within a form.
// Position -1 marks a form- or response-level issue.
type Issue struct {
	Position int `json:"position"`
	Result
}

func valid() Result {
	return Result{}
}

func invalid(reason Reason, format string, args ...interface{}) Result {
	return Result{Reason: reason, Message: fmt.Sprintf(format, args...)}
}
