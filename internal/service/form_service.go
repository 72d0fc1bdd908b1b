package service

import (
	"context"

	"formlab/internal/model"
	"formlab/internal/repository"
	"formlab/internal/validator"
)

// FormService handles form CRUD operations. Every persisted form passes the
// full validation gate; there is no path into the store around it.
type FormService struct {
	formRepo    repository.FormRepo
	broadcaster Broadcaster
}

// NewFormService creates a new form service
func NewFormService(formRepo repository.FormRepo) *FormService {
	return &FormService{
		formRepo: formRepo,
	}
}

// SetBroadcaster wires the live event channel
func (s *FormService) SetBroadcaster(b Broadcaster) {
	s.broadcaster = b
}

// Create validates and persists a new form. Returns a *ValidationError when
// the form or any question violates its structural rules.
func (s *FormService) Create(ctx context.Context, form *model.Form) (*model.Form, error) {
	if form.Title == "" {
		return nil, formLevelError(validator.ReasonMissingField, "Title is required")
	}
	if len(form.Questions) == 0 {
		return nil, formLevelError(validator.ReasonMissingField, "At least one question is required")
	}
	if issues := validator.ValidateForm(form); len(issues) > 0 {
		return nil, &ValidationError{Issues: issues}
	}

	id, err := s.formRepo.Create(ctx, form)
	if err != nil {
		return nil, err
	}
	form.ID = id
	return form, nil
}

// GetByID retrieves a form by ID; nil when absent
func (s *FormService) GetByID(ctx context.Context, id string) (*model.Form, error) {
	return s.formRepo.GetByID(ctx, id)
}

// List retrieves summaries of all forms
func (s *FormService) List(ctx context.Context) ([]*model.FormSummary, error) {
	return s.formRepo.List(ctx)
}

// Delete removes a form and returns the deleted document; nil when absent
func (s *FormService) Delete(ctx context.Context, id string) (*model.Form, error) {
	form, err := s.formRepo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	if form != nil && s.broadcaster != nil {
		s.broadcaster.Broadcast(form.ID, "form_deleted", map[string]string{"formId": form.ID})
	}
	return form, nil
}
