package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"formlab/internal/model"
	"formlab/internal/service"
)

// ResponseHandler handles response submission endpoints
type ResponseHandler struct {
	responseSvc *service.ResponseService
}

// NewResponseHandler creates a new response handler
func NewResponseHandler(responseSvc *service.ResponseService) *ResponseHandler {
	return &ResponseHandler{responseSvc: responseSvc}
}

// SubmitResponseRequest is the request body for submitting a response. The
// formId in the path wins over the one in the body.
type SubmitResponseRequest struct {
	FormID  string         `json:"formId"`
	Answers []model.Answer `json:"answers"`
}

// Submit handles POST /api/forms/{formId}/responses
func (h *ResponseHandler) Submit(w http.ResponseWriter, r *http.Request) {
	formID := mux.Vars(r)["formId"]

	var req SubmitResponseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if _, err := h.responseSvc.Submit(r.Context(), formID, req.Answers); err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{
		"message": "Form response submitted successfully",
	})
}

// List handles GET /api/forms/{formId}/responses
func (h *ResponseHandler) List(w http.ResponseWriter, r *http.Request) {
	formID := mux.Vars(r)["formId"]

	responses, err := h.responseSvc.ListByForm(r.Context(), formID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if responses == nil {
		responses = []*model.FormResponse{}
	}
	writeJSON(w, http.StatusOK, responses)
}
