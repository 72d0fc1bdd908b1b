package validator

import (
	"strconv"

	"formlab/internal/model"
)

// ScoreResult reports how much of an answer matches the authored expectation.
type ScoreResult struct {
	Correct      bool `json:"correct"`
	CorrectCount int  `json:"correctCount"`
	TotalCount   int  `json:"totalCount"`
}

// Score compares a submitted answer against the question's expected
// structure. Pure function; submissions are stored ungraded and scored only
// on read.
//
// Categorize: each item must sit in its authored category bucket.
// Cloze: each blank must equal the authored value at that position,
// case-sensitive. Comprehension: each selection must equal the sub-question's
// correct answer.
func Score(q *model.Question, a *model.Answer) ScoreResult {
	var result ScoreResult
	switch q.Type {
	case model.QuestionTypeCategorize:
		result.TotalCount = len(q.Items)
		for _, item := range q.Items {
			if containsString(a.Buckets[item.Category], item.Text) {
				result.CorrectCount++
			}
		}
	case model.QuestionTypeCloze:
		result.TotalCount = len(q.Blanks)
		for i, expected := range q.Blanks {
			if i < len(a.Blanks) && a.Blanks[i] == expected {
				result.CorrectCount++
			}
		}
	case model.QuestionTypeComprehension:
		result.TotalCount = len(q.Questions)
		for i, sub := range q.Questions {
			if a.Selections[strconv.Itoa(i)] == sub.CorrectAnswer {
				result.CorrectCount++
			}
		}
	default:
		return result
	}
	result.Correct = result.TotalCount > 0 && result.CorrectCount == result.TotalCount
	return result
}
