package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"formlab/internal/model"
	"formlab/internal/service"
	"formlab/internal/transport/ws"
)

type fakeFormRepo struct {
	forms  map[string]*model.Form
	nextID int
}

func (r *fakeFormRepo) Create(ctx context.Context, form *model.Form) (string, error) {
	r.nextID++
	id := "form-" + strconv.Itoa(r.nextID)
	stored := *form
	stored.ID = id
	r.forms[id] = &stored
	return id, nil
}

func (r *fakeFormRepo) GetByID(ctx context.Context, id string) (*model.Form, error) {
	return r.forms[id], nil
}

func (r *fakeFormRepo) List(ctx context.Context) ([]*model.FormSummary, error) {
	var summaries []*model.FormSummary
	for _, f := range r.forms {
		summaries = append(summaries, &model.FormSummary{ID: f.ID, Title: f.Title, CreatedAt: f.CreatedAt})
	}
	return summaries, nil
}

func (r *fakeFormRepo) Delete(ctx context.Context, id string) (*model.Form, error) {
	form, ok := r.forms[id]
	if !ok {
		return nil, nil
	}
	delete(r.forms, id)
	return form, nil
}

type fakeResponseRepo struct {
	responses map[string]*model.FormResponse
	nextID    int
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

type fakeDraftCache struct {
	drafts map[string]*model.Draft
}

func (c *fakeDraftCache) Set(ctx context.Context, draft *model.Draft) error {
	stored := *draft
	c.drafts[draft.ID] = &stored
	return nil
}

func (c *fakeDraftCache) Get(ctx context.Context, id string) (*model.Draft, error) {
	return c.drafts[id], nil
}

func (c *fakeDraftCache) Delete(ctx context.Context, id string) error {
	delete(c.drafts, id)
	return nil
}

type fakeReportCache struct {
	reports map[string]*model.FormReport
}

func (c *fakeReportCache) Set(ctx context.Context, report *model.FormReport) error {
	c.reports[report.FormID] = report
	return nil
}

func (c *fakeReportCache) Get(ctx context.Context, formID string) (*model.FormReport, error) {
	return c.reports[formID], nil
}

func (c *fakeReportCache) Invalidate(ctx context.Context, formID string) error {
	delete(c.reports, formID)
	return nil
}

func newTestRouter() http.Handler {
	formRepo := &fakeFormRepo{forms: map[string]*model.Form{}}
	responseRepo := &fakeResponseRepo{responses: map[string]*model.FormResponse{}}
	draftCache := &fakeDraftCache{drafts: map[string]*model.Draft{}}
	reportCache := &fakeReportCache{reports: map[string]*model.FormReport{}}

	formSvc := service.NewFormService(formRepo)
	responseSvc := service.NewResponseService(formRepo, responseRepo, reportCache)
	draftSvc := service.NewDraftService(draftCache, formSvc)
	reportSvc := service.NewReportService(formRepo, responseRepo, reportCache)

	return NewRouter(&Container{
		FormService:     formSvc,
		ResponseService: responseSvc,
		DraftService:    draftSvc,
		ReportService:   reportSvc,
		WSHub:           ws.NewHub(),
	})
}

func doJSON(t *testing.T, router http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func validFormPayload() map[string]interface{} {
	return map[string]interface{}{
		"title": "Quiz",
		"questions": []map[string]interface{}{
			{
				"type":   "cloze",
				"text":   "The [...] jumped over the [...]",
				"blanks": []string{"fox", "fence"},
			},
		},
	}
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter()
	rec := doJSON(t, router, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestListFormsEmpty(t *testing.T) {
	router := newTestRouter()
	rec := doJSON(t, router, http.MethodGet, "/api/forms", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestCreateAndGetForm(t *testing.T) {
	router := newTestRouter()

	rec := doJSON(t, router, http.MethodPost, "/api/forms", validFormPayload())
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decodeBody(t, rec)
	id, _ := created["_id"].(string)
	require.NotEmpty(t, id)

	rec = doJSON(t, router, http.MethodGet, "/api/forms/"+id, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	got := decodeBody(t, rec)
	assert.Equal(t, "Quiz", got["title"])
}

func TestCreateFormValidationError(t *testing.T) {
	router := newTestRouter()

	payload := validFormPayload()
	payload["questions"] = []map[string]interface{}{
		{
			"type":       "categorize",
			"question":   "sort",
			"categories": []string{"Only one"},
			"items":      []map[string]string{{"text": "Apple", "category": "Only one"}},
		},
	}
	rec := doJSON(t, router, http.MethodPost, "/api/forms", payload)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	body := decodeBody(t, rec)
	issues, ok := body["errors"].([]interface{})
	require.True(t, ok)
	require.Len(t, issues, 1)
	issue := issues[0].(map[string]interface{})
	assert.Equal(t, "TooFewCategories", issue["reason"])
	assert.Equal(t, float64(0), issue["position"])
}

func TestGetFormNotFound(t *testing.T) {
	router := newTestRouter()
	rec := doJSON(t, router, http.MethodGet, "/api/forms/missing", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Form not found", decodeBody(t, rec)["message"])
}

func TestDeleteForm(t *testing.T) {
	router := newTestRouter()

	rec := doJSON(t, router, http.MethodPost, "/api/forms", validFormPayload())
	require.Equal(t, http.StatusCreated, rec.Code)
	id := decodeBody(t, rec)["_id"].(string)

	rec = doJSON(t, router, http.MethodDelete, "/api/forms/"+id, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Form deleted successfully", decodeBody(t, rec)["message"])

	rec = doJSON(t, router, http.MethodDelete, "/api/forms/"+id, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSubmitResponse(t *testing.T) {
	router := newTestRouter()

	rec := doJSON(t, router, http.MethodPost, "/api/forms", validFormPayload())
	require.Equal(t, http.StatusCreated, rec.Code)
	id := decodeBody(t, rec)["_id"].(string)

	rec = doJSON(t, router, http.MethodPost, "/api/forms/"+id+"/responses", map[string]interface{}{
		"answers": []map[string]interface{}{
			{"blanks": []string{"fox", "fence"}},
		},
	})
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "Form response submitted successfully", decodeBody(t, rec)["message"])

	rec = doJSON(t, router, http.MethodGet, "/api/forms/"+id+"/responses", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	var responses []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &responses))
	assert.Len(t, responses, 1)
}

func TestSubmitIncompleteResponse(t *testing.T) {
	router := newTestRouter()

	rec := doJSON(t, router, http.MethodPost, "/api/forms", validFormPayload())
	require.Equal(t, http.StatusCreated, rec.Code)
	id := decodeBody(t, rec)["_id"].(string)

	rec = doJSON(t, router, http.MethodPost, "/api/forms/"+id+"/responses", map[string]interface{}{
		"answers": []map[string]interface{}{
			{"blanks": []string{"fox", ""}},
		},
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	body := decodeBody(t, rec)
	issues := body["errors"].([]interface{})
	issue := issues[0].(map[string]interface{})
	assert.Equal(t, "BlankNotFilled", issue["reason"])
	assert.Equal(t, "Please fill in all blanks", issue["message"])
}

func TestSubmitResponseFormNotFound(t *testing.T) {
	router := newTestRouter()
	rec := doJSON(t, router, http.MethodPost, "/api/forms/missing/responses", map[string]interface{}{
		"answers": []map[string]interface{}{},
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDraftLifecycle(t *testing.T) {
	router := newTestRouter()

	rec := doJSON(t, router, http.MethodPost, "/api/drafts", nil)
	require.Equal(t, http.StatusCreated, rec.Code)
	draftID := decodeBody(t, rec)["draftId"].(string)
	require.NotEmpty(t, draftID)

	rec = doJSON(t, router, http.MethodPut, "/api/drafts/"+draftID, map[string]string{"title": "Quiz"})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/api/drafts/"+draftID+"/questions", map[string]string{"type": "cloze"})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, router, http.MethodPut, "/api/drafts/"+draftID+"/questions/0", map[string]interface{}{
		"type":   "cloze",
		"text":   "The [...] jumped",
		"blanks": []string{"fox"},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/api/drafts/"+draftID+"/publish", nil)
	require.Equal(t, http.StatusCreated, rec.Code)
	formID := decodeBody(t, rec)["_id"].(string)
	assert.NotEmpty(t, formID)

	// Draft is gone once published
	rec = doJSON(t, router, http.MethodGet, "/api/drafts/"+draftID, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPublishEmptyDraft(t *testing.T) {
	router := newTestRouter()

	rec := doJSON(t, router, http.MethodPost, "/api/drafts", nil)
	require.Equal(t, http.StatusCreated, rec.Code)
	draftID := decodeBody(t, rec)["draftId"].(string)

	rec = doJSON(t, router, http.MethodPost, "/api/drafts/"+draftID+"/publish", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDraftBadIndex(t *testing.T) {
	router := newTestRouter()

	rec := doJSON(t, router, http.MethodPost, "/api/drafts", nil)
	require.Equal(t, http.StatusCreated, rec.Code)
	draftID := decodeBody(t, rec)["draftId"].(string)

	rec = doJSON(t, router, http.MethodDelete, "/api/drafts/"+draftID+"/questions/5", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestReportEndpoint(t *testing.T) {
	router := newTestRouter()

	rec := doJSON(t, router, http.MethodPost, "/api/forms", validFormPayload())
	require.Equal(t, http.StatusCreated, rec.Code)
	id := decodeBody(t, rec)["_id"].(string)

	rec = doJSON(t, router, http.MethodPost, "/api/forms/"+id+"/responses", map[string]interface{}{
		"answers": []map[string]interface{}{
			{"blanks": []string{"fox", "fence"}},
		},
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/forms/"+id+"/report", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	report := decodeBody(t, rec)
	assert.Equal(t, float64(1), report["responseCount"])
}

func TestCORSPreflight(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodOptions, "/api/forms", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
