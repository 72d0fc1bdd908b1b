package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"formlab/internal/model"
	"formlab/internal/service"
)

// DraftHandler handles draft authoring session endpoints
type DraftHandler struct {
	draftSvc *service.DraftService
}

// NewDraftHandler creates a new draft handler
func NewDraftHandler(draftSvc *service.DraftService) *DraftHandler {
	return &DraftHandler{draftSvc: draftSvc}
}

// DraftMetaRequest is the request body for updating draft metadata
type DraftMetaRequest struct {
	Title       string `json:"title"`
	HeaderImage string `json:"headerImage"`
}

// AddQuestionRequest is the request body for appending a question
type AddQuestionRequest struct {
	Type model.QuestionType `json:"type"`
}

// MoveQuestionRequest is the request body for reordering questions
type MoveQuestionRequest struct {
	From int `json:"from"`
	To   int `json:"to"`
}

// Create handles POST /api/drafts
func (h *DraftHandler) Create(w http.ResponseWriter, r *http.Request) {
	draft, err := h.draftSvc.Create(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, draft)
}

// Get handles GET /api/drafts/{draftId}
func (h *DraftHandler) Get(w http.ResponseWriter, r *http.Request) {
	draft, err := h.draftSvc.Get(r.Context(), mux.Vars(r)["draftId"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, draft)
}

// SetMeta handles PUT /api/drafts/{draftId}
func (h *DraftHandler) SetMeta(w http.ResponseWriter, r *http.Request) {
	var req DraftMetaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	draft, err := h.draftSvc.SetMeta(r.Context(), mux.Vars(r)["draftId"], req.Title, req.HeaderImage)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, draft)
}

// AddQuestion handles POST /api/drafts/{draftId}/questions
func (h *DraftHandler) AddQuestion(w http.ResponseWriter, r *http.Request) {
	var req AddQuestionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	draft, err := h.draftSvc.AddQuestion(r.Context(), mux.Vars(r)["draftId"], req.Type)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, draft)
}

// UpdateQuestion handles PUT /api/drafts/{draftId}/questions/{index}
func (h *DraftHandler) UpdateQuestion(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	index, err := strconv.Atoi(vars["index"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid question index")
		return
	}

	var q model.Question
	if err := json.NewDecoder(r.Body).Decode(&q); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	draft, err := h.draftSvc.UpdateQuestion(r.Context(), vars["draftId"], index, q)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, draft)
}

// RemoveQuestion handles DELETE /api/drafts/{draftId}/questions/{index}
func (h *DraftHandler) RemoveQuestion(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	index, err := strconv.Atoi(vars["index"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid question index")
		return
	}

	draft, err := h.draftSvc.RemoveQuestion(r.Context(), vars["draftId"], index)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, draft)
}

// MoveQuestion handles POST /api/drafts/{draftId}/questions/move
func (h *DraftHandler) MoveQuestion(w http.ResponseWriter, r *http.Request) {
	var req MoveQuestionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	draft, err := h.draftSvc.MoveQuestion(r.Context(), mux.Vars(r)["draftId"], req.From, req.To)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, draft)
}

// Publish handles POST /api/drafts/{draftId}/publish
func (h *DraftHandler) Publish(w http.ResponseWriter, r *http.Request) {
	form, err := h.draftSvc.Publish(r.Context(), mux.Vars(r)["draftId"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, form)
}
