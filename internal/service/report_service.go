package service

import (
	"context"
	"log"
	"time"

	"formlab/internal/cache"
	"formlab/internal/model"
	"formlab/internal/repository"
	"formlab/internal/validator"
)

// ReportService computes read-side views over stored responses: per-response
// scores and form-level aggregates. Stored responses stay ungraded.
type ReportService struct {
	formRepo     repository.FormRepo
	responseRepo repository.ResponseRepo
	reportCache  cache.ReportCache
}

// NewReportService creates a new report service
func NewReportService(formRepo repository.FormRepo, responseRepo repository.ResponseRepo, reportCache cache.ReportCache) *ReportService {
	return &ReportService{
		formRepo:     formRepo,
		responseRepo: responseRepo,
		reportCache:  reportCache,
	}
}

// GetReport returns the aggregate report for a form, served from cache when
// fresh.
func (s *ReportService) GetReport(ctx context.Context, formID string) (*model.FormReport, error) {
	if cached, err := s.reportCache.Get(ctx, formID); err == nil && cached != nil {
		return cached, nil
	} else if err != nil {
		log.Printf("Report cache read failed for form %s: %v", formID, err)
	}

	form, err := s.formRepo.GetByID(ctx, formID)
	if err != nil {
		return nil, err
	}
	if form == nil {
		return nil, ErrFormNotFound
	}

	responses, err := s.responseRepo.ListByFormID(ctx, formID)
	if err != nil {
		return nil, err
	}

	report := &model.FormReport{
		FormID:        form.ID,
		Title:         form.Title,
		ResponseCount: len(responses),
		Questions:     make([]model.QuestionStat, len(form.Questions)),
		GeneratedAt:   time.Now(),
	}
	for i := range form.Questions {
		q := &form.Questions[i]
		stat := model.QuestionStat{Position: i, Type: q.Type}
		for _, response := range responses {
			answer := answerAt(response, i)
			if validator.ValidateAnswer(q, answer).Ok() {
				stat.AnsweredCount++
			}
			if validator.Score(q, answer).Correct {
				stat.CorrectCount++
			}
		}
		report.Questions[i] = stat
	}

	if err := s.reportCache.Set(ctx, report); err != nil {
		log.Printf("Report cache write failed for form %s: %v", formID, err)
	}
	return report, nil
}

// ScoreResponse returns the scored view of one stored response.
func (s *ReportService) ScoreResponse(ctx context.Context, formID, responseID string) (*model.ResponseScore, error) {
	form, err := s.formRepo.GetByID(ctx, formID)
	if err != nil {
		return nil, err
	}
	if form == nil {
		return nil, ErrFormNotFound
	}

	response, err := s.responseRepo.GetByID(ctx, responseID)
	if err != nil {
		return nil, err
	}
	if response == nil || response.FormID != form.ID {
		return nil, ErrResponseNotFound
	}

	score := &model.ResponseScore{
		ResponseID: response.ID,
		FormID:     form.ID,
		Questions:  make([]model.QuestionScore, len(form.Questions)),
	}
	for i := range form.Questions {
		q := &form.Questions[i]
		result := validator.Score(q, answerAt(response, i))
		score.Questions[i] = model.QuestionScore{
			Position:     i,
			Type:         q.Type,
			Correct:      result.Correct,
			CorrectParts: result.CorrectCount,
			TotalParts:   result.TotalCount,
		}
		score.CorrectCount += result.CorrectCount
		score.TotalCount += result.TotalCount
	}
	return score, nil
}

// answerAt returns the answer at position i, or an empty answer when the
// stored response is shorter than the form.
func answerAt(response *model.FormResponse, i int) *model.Answer {
	if i < len(response.Answers) {
		return &response.Answers[i]
	}
	return &model.Answer{}
}
