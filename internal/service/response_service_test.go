package service

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"formlab/internal/model"
	"formlab/internal/validator"
)

// fakeResponseRepo is an in-memory stand-in for the Mongo-backed repository.
type fakeResponseRepo struct {
	responses map[string]*model.FormResponse
	nextID    int
}

func newFakeResponseRepo() *fakeResponseRepo {
	return &fakeResponseRepo{responses: map[string]*model.FormResponse{}}
}

func (r *fakeResponseRepo) Create(ctx context.Context, response *model.FormResponse) (string, error) {
	r.nextID++
	id := "resp-" + strconv.Itoa(r.nextID)
	response.ID = id
	stored := *response
	r.responses[id] = &stored
	return id, nil
}

func (r *fakeResponseRepo) GetByID(ctx context.Context, id string) (*model.FormResponse, error) {
	return r.responses[id], nil
}

func (r *fakeResponseRepo) ListByFormID(ctx context.Context, formID string) ([]*model.FormResponse, error) {
	var out []*model.FormResponse
	for _, resp := range r.responses {
		if resp.FormID == formID {
			out = append(out, resp)
		}
	}
	return out, nil
}

// fakeReportCache records invalidations; Get always misses.
type fakeReportCache struct {
	reports     map[string]*model.FormReport
	invalidated []string
}

func newFakeReportCache() *fakeReportCache {
	return &fakeReportCache{reports: map[string]*model.FormReport{}}
}

func (c *fakeReportCache) Set(ctx context.Context, report *model.FormReport) error {
	c.reports[report.FormID] = report
	return nil
}

func (c *fakeReportCache) Get(ctx context.Context, formID string) (*model.FormReport, error) {
	return c.reports[formID], nil
}

func (c *fakeReportCache) Invalidate(ctx context.Context, formID string) error {
	c.invalidated = append(c.invalidated, formID)
	delete(c.reports, formID)
	return nil
}

func completeAnswers() []model.Answer {
	return []model.Answer{
		{Blanks: []string{"fox", "fence"}},
	}
}

func newResponseServiceForTest(t *testing.T) (*ResponseService, *model.Form, *fakeResponseRepo, *fakeReportCache, *fakeBroadcaster) {
	t.Helper()
	formRepo := newFakeFormRepo()
	responseRepo := newFakeResponseRepo()
	reportCache := newFakeReportCache()

	form, err := NewFormService(formRepo).Create(context.Background(), validForm())
	require.NoError(t, err)

	svc := NewResponseService(formRepo, responseRepo, reportCache)
	b := &fakeBroadcaster{}
	svc.SetBroadcaster(b)
	return svc, form, responseRepo, reportCache, b
}

func TestResponseServiceSubmit(t *testing.T) {
	svc, form, repo, reportCache, b := newResponseServiceForTest(t)
	ctx := context.Background()

	response, err := svc.Submit(ctx, form.ID, completeAnswers())
	require.NoError(t, err)
	assert.NotEmpty(t, response.ID)
	assert.Equal(t, form.ID, response.FormID)
	assert.Len(t, repo.responses, 1)

	assert.Equal(t, []string{form.ID}, reportCache.invalidated)
	require.Len(t, b.calls, 1)
	assert.Equal(t, "response_submitted", b.calls[0].msgType)
	assert.Equal(t, form.ID, b.calls[0].formID)
}

func TestResponseServiceSubmitFormNotFound(t *testing.T) {
	svc, _, _, _, _ := newResponseServiceForTest(t)

	_, err := svc.Submit(context.Background(), "missing", completeAnswers())
	assert.ErrorIs(t, err, ErrFormNotFound)
}

// An incomplete submission is rejected whole; nothing is stored and no event
// fires.
func TestResponseServiceSubmitIncomplete(t *testing.T) {
	svc, form, repo, _, b := newResponseServiceForTest(t)

	answers := []model.Answer{{Blanks: []string{"fox", ""}}}
	_, err := svc.Submit(context.Background(), form.ID, answers)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, validator.ReasonBlankNotFilled, verr.Issues[0].Reason)
	assert.Equal(t, 0, verr.Issues[0].Position)
	assert.Empty(t, repo.responses)
	assert.Empty(t, b.calls)
}

func TestResponseServiceSubmitCountMismatch(t *testing.T) {
	svc, form, _, _, _ := newResponseServiceForTest(t)

	_, err := svc.Submit(context.Background(), form.ID, nil)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, validator.ReasonAnswerCountMismatch, verr.Issues[0].Reason)
}

func TestResponseServiceListByForm(t *testing.T) {
	svc, form, _, _, _ := newResponseServiceForTest(t)
	ctx := context.Background()

	_, err := svc.Submit(ctx, form.ID, completeAnswers())
	require.NoError(t, err)
	_, err = svc.Submit(ctx, form.ID, completeAnswers())
	require.NoError(t, err)

	responses, err := svc.ListByForm(ctx, form.ID)
	require.NoError(t, err)
	assert.Len(t, responses, 2)

	_, err = svc.ListByForm(ctx, "missing")
	assert.ErrorIs(t, err, ErrFormNotFound)
}
