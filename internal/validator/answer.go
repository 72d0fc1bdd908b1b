package validator

import (
	"formlab/internal/model"
)

// ValidateAnswer checks a submitted answer for completeness against its
// question. Correctness is not judged here; see Score.
func ValidateAnswer(q *model.Question, a *model.Answer) Result {
	switch q.Type {
	case model.QuestionTypeCategorize:
		// All items must be moved out of the holding bucket before submission.
		if n := len(a.Buckets[model.UncategorizedBucket]); n > 0 {
			return invalid(ReasonIncompleteCategorization, "Please categorize all items. %d item(s) left.", n)
		}
		return valid()
	case model.QuestionTypeCloze:
		if len(a.Blanks) != len(q.Blanks) {
			return invalid(ReasonBlankNotFilled, "Please fill in all blanks")
		}
		for _, b := range a.Blanks {
			if b == "" {
				return invalid(ReasonBlankNotFilled, "Please fill in all blanks")
			}
		}
		return valid()
	case model.QuestionTypeComprehension:
		if remaining := len(q.Questions) - len(a.Selections); remaining > 0 {
			return invalid(ReasonUnansweredSubQuestions, "Please answer all questions. %d question(s) left.", remaining)
		}
		return valid()
	default:
		return invalid(ReasonUnknownType, "unknown question type %q", string(q.Type))
	}
}

// ValidateResponse pairs each answer with the question at the same position
// and aggregates all invalid results keyed by position.
func ValidateResponse(f *model.Form, answers []model.Answer) []Issue {
	if len(answers) != len(f.Questions) {
		return []Issue{{
			Position: -1,
			Result:   invalid(ReasonAnswerCountMismatch, "form has %d questions but %d answers were submitted", len(f.Questions), len(answers)),
		}}
	}
	var issues []Issue
	for i := range f.Questions {
		if res := ValidateAnswer(&f.Questions[i], &answers[i]); !res.Ok() {
			issues = append(issues, Issue{Position: i, Result: res})
		}
	}
	return issues
}
