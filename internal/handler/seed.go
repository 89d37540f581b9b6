package handler

import (
	"log/slog"
	"net/http"

	"designvault/internal/httputil"
	"designvault/internal/seed"
)

// SeedHandler exposes the sample-data seeder. Only registered in dev.
type SeedHandler struct {
	seeder *seed.Seeder
	logger *slog.Logger
}

// NewSeedHandler creates a new seed handler
func NewSeedHandler(seeder *seed.Seeder, logger *slog.Logger) *SeedHandler {
	return &SeedHandler{
		seeder: seeder,
		logger: logger,
	}
}

// Seed inserts the sample fixture data
// POST /api/dev/seed
func (h *SeedHandler) Seed(w http.ResponseWriter, r *http.Request) {
	result, err := h.seeder.Run(r.Context())
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, result)
}
