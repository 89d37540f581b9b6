package handler

import (
	"log/slog"
	"net/http"

	"designvault/internal/domain/models"
	"designvault/internal/httputil"
	"designvault/internal/service"
)

// ImportExportHandler handles catalogue backup HTTP requests
type ImportExportHandler struct {
	service *service.ImportExportService
	logger  *slog.Logger
}

// NewImportExportHandler creates a new import/export handler
func NewImportExportHandler(service *service.ImportExportService, logger *slog.Logger) *ImportExportHandler {
	return &ImportExportHandler{
		service: service,
		logger:  logger,
	}
}

// Export returns the full catalogue as a versioned bundle
// GET /api/items/export
func (h *ImportExportHandler) Export(w http.ResponseWriter, r *http.Request) {
	bundle, err := h.service.Export(r.Context())
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, bundle)
}

// Import replaces the entire catalogue from a bundle. A payload whose
// items field is missing or not an array is rejected before anything is
// deleted.
// POST /api/items/import
func (h *ImportExportHandler) Import(w http.ResponseWriter, r *http.Request) {
	var bundle models.ExportBundle
	if err := httputil.ParseJSON(w, r, &bundle); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid import format")
		return
	}

	count, err := h.service.Import(r.Context(), &bundle)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"imported": count,
	})
}
