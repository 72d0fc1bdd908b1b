package rest

import (
	"net/http"
	"os"

	"github.com/gorilla/mux"

	"formlab/internal/service"
	"formlab/internal/transport/rest/handler"
	"formlab/internal/transport/ws"
)

// Container holds all dependencies for the router
type Container struct {
	FormService     *service.FormService
	ResponseService *service.ResponseService
	DraftService    *service.DraftService
	ReportService   *service.ReportService
	WSHub           *ws.Hub
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	// Initialize handlers
	formHandler := handler.NewFormHandler(c.FormService)
	responseHandler := handler.NewResponseHandler(c.ResponseService)
	draftHandler := handler.NewDraftHandler(c.DraftService)
	reportHandler := handler.NewReportHandler(c.ReportService)
	wsHandler := ws.NewHandler(c.WSHub, c.FormService)

	// CORS middleware (apply first)
	r.Use(corsMiddleware)

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	api := r.PathPrefix("/api").Subrouter()

	// Form routes
	api.HandleFunc("/forms", formHandler.List).Methods("GET", "OPTIONS")
	api.HandleFunc("/forms", formHandler.Create).Methods("POST", "OPTIONS")
	api.HandleFunc("/forms/{formId}", formHandler.Get).Methods("GET", "OPTIONS")
	api.HandleFunc("/forms/{formId}", formHandler.Delete).Methods("DELETE", "OPTIONS")

	// Response routes
	api.HandleFunc("/forms/{formId}/responses", responseHandler.Submit).Methods("POST", "OPTIONS")
	api.HandleFunc("/forms/{formId}/responses", responseHandler.List).Methods("GET", "OPTIONS")
	api.HandleFunc("/forms/{formId}/responses/{responseId}/score", reportHandler.ScoreResponse).Methods("GET", "OPTIONS")
	api.HandleFunc("/forms/{formId}/report", reportHandler.GetReport).Methods("GET", "OPTIONS")

	// WebSocket route (live submission events)
	api.HandleFunc("/forms/{formId}/watch", wsHandler.Watch).Methods("GET")

	// Draft authoring session routes
	api.HandleFunc("/drafts", draftHandler.Create).Methods("POST", "OPTIONS")
	api.HandleFunc("/drafts/{draftId}", draftHandler.Get).Methods("GET", "OPTIONS")
	api.HandleFunc("/drafts/{draftId}", draftHandler.SetMeta).Methods("PUT", "OPTIONS")
	api.HandleFunc("/drafts/{draftId}/questions", draftHandler.AddQuestion).Methods("POST", "OPTIONS")
	api.HandleFunc("/drafts/{draftId}/questions/move", draftHandler.MoveQuestion).Methods("POST", "OPTIONS")
	api.HandleFunc("/drafts/{draftId}/questions/{index}", draftHandler.UpdateQuestion).Methods("PUT", "OPTIONS")
	api.HandleFunc("/drafts/{draftId}/questions/{index}", draftHandler.RemoveQuestion).Methods("DELETE", "OPTIONS")
	api.HandleFunc("/drafts/{draftId}/publish", draftHandler.Publish).Methods("POST", "OPTIONS")

	return r
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowedOrigins := os.Getenv("CORS_ALLOWED_ORIGINS")
		if allowedOrigins == "" {
			allowedOrigins = "*"
		}

		allowedMethods := os.Getenv("CORS_ALLOWED_METHODS")
		if allowedMethods == "" {
			allowedMethods = "GET, POST, PUT, DELETE, OPTIONS"
		}

		allowedHeaders := os.Getenv("CORS_ALLOWED_HEADERS")
		if allowedHeaders == "" {
			allowedHeaders = "Content-Type, Authorization"
		}

		w.Header().Set("Access-Control-Allow-Origin", allowedOrigins)
		w.Header().Set("Access-Control-Allow-Methods", allowedMethods)
		w.Header().Set("Access-Control-Allow-Headers", allowedHeaders)

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
