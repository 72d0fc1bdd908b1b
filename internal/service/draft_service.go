package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"formlab/internal/cache"
	"formlab/internal/model"
	"formlab/internal/validator"
)

// DraftService owns the authoring lifecycle: a draft is created empty,
// mutated in place through the aggregate operations, and becomes an immutable
// persisted form only through Publish, which always runs the validator.
type DraftService struct {
	draftCache cache.DraftCache
	formSvc    *FormService
}

// NewDraftService creates a new draft service
func NewDraftService(draftCache cache.DraftCache, formSvc *FormService) *DraftService {
	return &DraftService{
		draftCache: draftCache,
		formSvc:    formSvc,
	}
}

// Create starts a new empty draft session
func (s *DraftService) Create(ctx context.Context) (*model.Draft, error) {
	now := time.Now()
	draft := &model.Draft{
		ID:        uuid.New().String(),
		Form:      model.Form{Questions: []model.Question{}},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.draftCache.Set(ctx, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

// Get retrieves a draft session
func (s *DraftService) Get(ctx context.Context, id string) (*model.Draft, error) {
	draft, err := s.draftCache.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if draft == nil {
		return nil, ErrDraftNotFound
	}
	return draft, nil
}

// SetMeta updates the draft's title and header image
func (s *DraftService) SetMeta(ctx context.Context, id, title, headerImage string) (*model.Draft, error) {
	return s.mutate(ctx, id, func(draft *model.Draft) error {
		draft.Form.Title = title
		draft.Form.HeaderImage = headerImage
		return nil
	})
}

// AddQuestion appends a defaulted question of the given variant
func (s *DraftService) AddQuestion(ctx context.Context, id string, t model.QuestionType) (*model.Draft, error) {
	q := model.NewQuestion(t)
	if q == nil {
		return nil, formLevelError(validator.ReasonUnknownType, "unknown question type "+string(t))
	}
	return s.mutate(ctx, id, func(draft *model.Draft) error {
		draft.Form.AppendQuestion(*q)
		return nil
	})
}

// UpdateQuestion replaces the question at the given position
func (s *DraftService) UpdateQuestion(ctx context.Context, id string, index int, q model.Question) (*model.Draft, error) {
	if !q.Type.Known() {
		return nil, formLevelError(validator.ReasonUnknownType, "unknown question type "+string(q.Type))
	}
	return s.mutate(ctx, id, func(draft *model.Draft) error {
		return draft.Form.UpdateQuestionAt(index, q)
	})
}

// RemoveQuestion deletes the question at the given position
func (s *DraftService) RemoveQuestion(ctx context.Context, id string, index int) (*model.Draft, error) {
	return s.mutate(ctx, id, func(draft *model.Draft) error {
		return draft.Form.RemoveQuestionAt(index)
	})
}

// MoveQuestion reorders a question from one position to another
func (s *DraftService) MoveQuestion(ctx context.Context, id string, from, to int) (*model.Draft, error) {
	return s.mutate(ctx, id, func(draft *model.Draft) error {
		return draft.Form.MoveQuestion(from, to)
	})
}

// Publish validates the draft and persists it as a form. The draft session
// is discarded on success.
func (s *DraftService) Publish(ctx context.Context, id string) (*model.Form, error) {
	draft, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	form, err := s.formSvc.Create(ctx, &draft.Form)
	if err != nil {
		return nil, err
	}

	// Best effort: an expired-but-published draft is harmless
	_ = s.draftCache.Delete(ctx, id)
	return form, nil
}

func (s *DraftService) mutate(ctx context.Context, id string, fn func(*model.Draft) error) (*model.Draft, error) {
	draft, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := fn(draft); err != nil {
		return nil, err
	}
	draft.UpdatedAt = time.Now()
	if err := s.draftCache.Set(ctx, draft); err != nil {
		return nil, err
	}
	return draft, nil
}
