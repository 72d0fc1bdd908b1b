package model

import "time"

// QuestionScore is the scored outcome for one question within a response.
type QuestionScore struct {
	Position     int          `json:"position"`
	Type         QuestionType `json:"type"`
	Correct      bool         `json:"correct"`
	CorrectParts int          `json:"correctParts"`
	TotalParts   int          `json:"totalParts"`
}

// ResponseScore is the scored view of a single stored response. Responses are
// persisted ungraded; scores are computed on read.
type ResponseScore struct {
	ResponseID   string          `json:"responseId"`
	FormID       string          `json:"formId"`
	Questions    []QuestionScore `json:"questions"`
	CorrectCount int             `json:"correctCount"`
	TotalCount   int             `json:"totalCount"`
}

// QuestionStat aggregates completion and correctness for one question across
// all stored responses.
type QuestionStat struct {
	Position      int          `json:"position"`
	Type          QuestionType `json:"type"`
	AnsweredCount int          `json:"answeredCount"`
	CorrectCount  int          `json:"correctCount"`
}

// FormReport is the aggregate report for a form.
type FormReport struct {
	FormID        string         `json:"formId"`
	Title         string         `json:"title"`
	ResponseCount int            `json:"responseCount"`
	Questions     []QuestionStat `json:"questions"`
	GeneratedAt   time.Time      `json:"generatedAt"`
}
