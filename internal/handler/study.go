package handler

import (
	"log/slog"
	"net/http"
	"time"

	"designvault/internal/domain/models"
	"designvault/internal/httputil"
	"designvault/internal/service"
)

// StudyHandler handles flashcard study HTTP requests
type StudyHandler struct {
	service *service.StudyService
	logger  *slog.Logger
}

// NewStudyHandler creates a new study handler
func NewStudyHandler(service *service.StudyService, logger *slog.Logger) *StudyHandler {
	return &StudyHandler{
		service: service,
		logger:  logger,
	}
}

// Grade records a single study event
// POST /api/flashcards/grade
func (h *StudyHandler) Grade(w http.ResponseWriter, r *http.Request) {
	var req models.GradeRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	grade, err := h.service.Grade(r.Context(), &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, grade)
}

// DueItems returns the items currently due for review
// GET /api/flashcards/due
func (h *StudyHandler) DueItems(w http.ResponseWriter, r *http.Request) {
	due, err := h.service.DueItems(r.Context(), time.Now().UTC())
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, due)
}

// Progress returns the grade tallies for one item
// GET /api/flashcards/progress/{itemId}
func (h *StudyHandler) Progress(w http.ResponseWriter, r *http.Request) {
	itemID := r.PathValue("itemId")

	progress, err := h.service.Progress(r.Context(), itemID)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, progress)
}

// ResetProgress clears the entire grade ledger
// DELETE /api/flashcards/progress
func (h *StudyHandler) ResetProgress(w http.ResponseWriter, r *http.Request) {
	if err := h.service.ResetLedger(r.Context()); err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondNoContent(w)
}

// CreateSession records a completed study session
// POST /api/flashcards/sessions
func (h *StudyHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	var req models.CreateSessionStatRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	stat, err := h.service.RecordSession(r.Context(), &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, stat)
}

// SessionStats returns aggregate statistics over all sessions
// GET /api/flashcards/sessions/stats
func (h *StudyHandler) SessionStats(w http.ResponseWriter, r *http.Request) {
	agg, err := h.service.SessionStats(r.Context())
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, agg)
}
