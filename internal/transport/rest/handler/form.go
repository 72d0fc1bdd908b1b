package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"formlab/internal/model"
	"formlab/internal/service"
)

// FormHandler handles form endpoints
type FormHandler struct {
	formSvc *service.FormService
}

// NewFormHandler creates a new form handler
func NewFormHandler(formSvc *service.FormService) *FormHandler {
	return &FormHandler{formSvc: formSvc}
}

// CreateFormRequest is the request body for creating a form
type CreateFormRequest struct {
	Title       string           `json:"title"`
	HeaderImage string           `json:"headerImage"`
	Questions   []model.Question `json:"questions"`
}

// List handles GET /api/forms
func (h *FormHandler) List(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.formSvc.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if summaries == nil {
		summaries = []*model.FormSummary{}
	}
	writeJSON(w, http.StatusOK, summaries)
}

// Create handles POST /api/forms
func (h *FormHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateFormRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	form := &model.Form{
		Title:       req.Title,
		HeaderImage: req.HeaderImage,
		Questions:   req.Questions,
	}

	created, err := h.formSvc.Create(r.Context(), form)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

// Get handles GET /api/forms/{formId}
func (h *FormHandler) Get(w http.ResponseWriter, r *http.Request) {
	formID := mux.Vars(r)["formId"]

	form, err := h.formSvc.GetByID(r.Context(), formID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if form == nil {
		writeError(w, http.StatusNotFound, "Form not found")
		return
	}

	writeJSON(w, http.StatusOK, form)
}

// Delete handles DELETE /api/forms/{formId}
func (h *FormHandler) Delete(w http.ResponseWriter, r *http.Request) {
	formID := mux.Vars(r)["formId"]

	form, err := h.formSvc.Delete(r.Context(), formID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if form == nil {
		writeError(w, http.StatusNotFound, "Form not found")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Form deleted successfully",
		"form":    form,
	})
}
