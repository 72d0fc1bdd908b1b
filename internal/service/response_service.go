package service

import (
	"context"
	"log"

	"formlab/internal/cache"
	"formlab/internal/model"
	"formlab/internal/repository"
	"formlab/internal/validator"
)

// ResponseService handles response submission and retrieval
type ResponseService struct {
	formRepo     repository.FormRepo
	responseRepo repository.ResponseRepo
	reportCache  cache.ReportCache
	broadcaster  Broadcaster
}

// NewResponseService creates a new response service
func NewResponseService(formRepo repository.FormRepo, responseRepo repository.ResponseRepo, reportCache cache.ReportCache) *ResponseService {
	return &ResponseService{
		formRepo:     formRepo,
		responseRepo: responseRepo,
		reportCache:  reportCache,
	}
}

// SetBroadcaster wires the live event channel
func (s *ResponseService) SetBroadcaster(b Broadcaster) {
	s.broadcaster = b
}

// Submit validates a respondent's answers against the form and persists the
// response. Answers are stored ungraded.
func (s *ResponseService) Submit(ctx context.Context, formID string, answers []model.Answer) (*model.FormResponse, error) {
	form, err := s.formRepo.GetByID(ctx, formID)
	if err != nil {
		return nil, err
	}
	if form == nil {
		return nil, ErrFormNotFound
	}

	if issues := validator.ValidateResponse(form, answers); len(issues) > 0 {
		return nil, &ValidationError{Issues: issues}
	}

	response := &model.FormResponse{
		FormID:  form.ID,
		Answers: answers,
	}
	if _, err := s.responseRepo.Create(ctx, response); err != nil {
		return nil, err
	}

	// The aggregate report is stale now
	if err := s.reportCache.Invalidate(ctx, form.ID); err != nil {
		log.Printf("Failed to invalidate report cache for form %s: %v", form.ID, err)
	}

	if s.broadcaster != nil {
		s.broadcaster.Broadcast(form.ID, "response_submitted", map[string]string{
			"formId":     form.ID,
			"responseId": response.ID,
		})
	}
	return response, nil
}

// ListByForm retrieves all stored responses for a form
func (s *ResponseService) ListByForm(ctx context.Context, formID string) ([]*model.FormResponse, error) {
	form, err := s.formRepo.GetByID(ctx, formID)
	if err != nil {
		return nil, err
	}
	if form == nil {
		return nil, ErrFormNotFound
	}
	return s.responseRepo.ListByFormID(ctx, formID)
}
