package handler

import (
	"log/slog"
	"net/http"

	"designvault/internal/domain/models"
	"designvault/internal/httputil"
	"designvault/internal/service"
)

// AssetHandler handles asset metadata HTTP requests
type AssetHandler struct {
	service *service.AssetService
	logger  *slog.Logger
}

// NewAssetHandler creates a new asset handler
func NewAssetHandler(service *service.AssetService, logger *slog.Logger) *AssetHandler {
	return &AssetHandler{
		service: service,
		logger:  logger,
	}
}

// IngestAsset registers metadata for an externally-uploaded asset
// POST /api/assets/ingest
func (h *AssetHandler) IngestAsset(w http.ResponseWriter, r *http.Request) {
	var req models.IngestAssetRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	asset, err := h.service.Ingest(r.Context(), &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, asset)
}

// ListAssets returns all ingested asset metadata
// GET /api/assets
func (h *AssetHandler) ListAssets(w http.ResponseWriter, r *http.Request) {
	assets, err := h.service.List(r.Context())
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, assets)
}
