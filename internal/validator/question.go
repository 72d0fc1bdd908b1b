package validator

import (
	"formlab/internal/model"
)

// ValidateQuestion checks a single question against its variant's structural
// rules. Validation stops at the first violated rule, in the order the rules
// are stated for each variant; a pure function over its input.
func ValidateQuestion(q *model.Question) Result {
	switch q.Type {
	case model.QuestionTypeCategorize:
		return validateCategorize(q)
	case model.QuestionTypeCloze:
		return validateCloze(q)
	case model.QuestionTypeComprehension:
		return validateComprehension(q)
	default:
		return invalid(ReasonUnknownType, "unknown question type %q", string(q.Type))
	}
}

// ValidateForm runs the per-question check over every question and aggregates
// all invalid results keyed by question position. It does not short-circuit
// on the first bad question.
func ValidateForm(f *model.Form) []Issue {
	var issues []Issue
	for i := range f.Questions {
		if res := ValidateQuestion(&f.Questions[i]); !res.Ok() {
			issues = append(issues, Issue{Position: i, Result: res})
		}
	}
	return issues
}

func validateCategorize(q *model.Question) Result {
	if q.Question == "" || q.Categories == nil || q.Items == nil {
		return invalid(ReasonMissingField, "categorize question requires question text, categories and items")
	}
	if len(q.Categories) < 2 {
		return invalid(ReasonTooFewCategories, "at least 2 categories are required")
	}
	for _, c := range q.Categories {
		if c == "" {
			return invalid(ReasonEmptyCategory, "category names cannot be empty")
		}
	}
	declared := make(map[string]struct{}, len(q.Categories))
	for _, c := range q.Categories {
		if _, ok := declared[c]; ok {
			return invalid(ReasonDuplicateCategory, "duplicate category %q", c)
		}
		declared[c] = struct{}{}
	}
	if len(q.Items) < 1 {
		return invalid(ReasonTooFewItems, "at least 1 item is required")
	}
	for _, item := range q.Items {
		if item.Text == "" {
			return invalid(ReasonEmptyItemText, "item texts cannot be empty")
		}
	}
	seen := make(map[string]struct{}, len(q.Items))
	for _, item := range q.Items {
		if _, ok := seen[item.Text]; ok {
			return invalid(ReasonDuplicateItemText, "duplicate item %q", item.Text)
		}
		seen[item.Text] = struct{}{}
	}
	for _, item := range q.Items {
		if item.Category == "" {
			return invalid(ReasonItemCategoryUnassigned, "item %q is not assigned to a category", item.Text)
		}
		if _, ok := declared[item.Category]; !ok {
			return invalid(ReasonItemCategoryUnassigned, "item %q references undeclared category %q", item.Text, item.Category)
		}
	}
	return valid()
}

func validateCloze(q *model.Question) Result {
	if q.Text == "" {
		return invalid(ReasonEmptyClozeText, "cloze text is required")
	}
	if n := model.PlaceholderCount(q.Text); n != len(q.Blanks) {
		return invalid(ReasonBlankPlaceholderMismatch, "text has %d blank markers but %d blank values", n, len(q.Blanks))
	}
	for _, b := range q.Blanks {
		if b == "" {
			return invalid(ReasonEmptyBlank, "blank values cannot be empty")
		}
	}
	seen := make(map[string]struct{}, len(q.Blanks))
	for _, b := range q.Blanks {
		if _, ok := seen[b]; ok {
			return invalid(ReasonDuplicateBlank, "duplicate blank value %q", b)
		}
		seen[b] = struct{}{}
	}
	return valid()
}

func validateComprehension(q *model.Question) Result {
	if q.Passage == "" {
		return invalid(ReasonEmptyPassage, "comprehension passage is required")
	}
	if len(q.Questions) == 0 {
		return invalid(ReasonNoSubQuestions, "at least one sub-question is required")
	}
	for i, sub := range q.Questions {
		if sub.Question == "" {
			return invalid(ReasonEmptySubQuestionText, "sub-question %d needs question text", i+1)
		}
		if len(sub.Options) != 4 {
			return invalid(ReasonWrongOptionCount, "sub-question %d must have exactly 4 options, got %d", i+1, len(sub.Options))
		}
		for _, opt := range sub.Options {
			if opt == "" {
				return invalid(ReasonEmptyOption, "sub-question %d has an empty option", i+1)
			}
		}
		if !containsString(sub.Options, sub.CorrectAnswer) {
			return invalid(ReasonMissingCorrectAnswer, "sub-question %d correct answer %q is not one of its options", i+1, sub.CorrectAnswer)
		}
	}
	return valid()
}

func containsString(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}
