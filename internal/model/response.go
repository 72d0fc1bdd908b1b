package model

import "time"

// UncategorizedBucket is the reserved holding bucket a categorize answer
// starts from; submission requires it to be emptied.
const UncategorizedBucket = "uncategorized"

// Answer holds a respondent's answer to one question. Exactly one field group
// is populated, matching the variant of the question at the same position.
type Answer struct {
	// categorize: category name (or the reserved "uncategorized" bucket) to
	// ordered item texts
	Buckets map[string][]string `json:"buckets,omitempty" bson:"buckets,omitempty"`
	// cloze: one entry per blank slot, positionally aligned to the text's
	// placeholder markers
	Blanks []string `json:"blanks,omitempty" bson:"blanks,omitempty"`
	// comprehension: decimal sub-question index to selected option
	Selections map[string]string `json:"selections,omitempty" bson:"selections,omitempty"`
}

// NewAnswer returns the blank answer a respondent starts from for the given
// question: all items uncategorized, all blanks empty, nothing selected.
// Returns nil for an unknown question type.
func NewAnswer(q *Question) *Answer {
	switch q.Type {
	case QuestionTypeCategorize:
		buckets := make(map[string][]string, len(q.Categories)+1)
		for _, c := range q.Categories {
			buckets[c] = []string{}
		}
		uncategorized := make([]string, 0, len(q.Items))
		for _, item := range q.Items {
			uncategorized = append(uncategorized, item.Text)
		}
		buckets[UncategorizedBucket] = uncategorized
		return &Answer{Buckets: buckets}
	case QuestionTypeCloze:
		return &Answer{Blanks: make([]string, len(q.Blanks))}
	case QuestionTypeComprehension:
		return &Answer{Selections: map[string]string{}}
	}
	return nil
}

// FormResponse is a respondent's submission for a form. Created once at
// submission time and never mutated.
type FormResponse struct {
	ID          string    `json:"_id,omitempty" bson:"_id,omitempty"`
	FormID      string    `json:"formId" bson:"formId"`
	Answers     []Answer  `json:"answers" bson:"answers"`
	SubmittedAt time.Time `json:"submittedAt" bson:"submittedAt"`
}
