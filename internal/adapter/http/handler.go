package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"campaign-studio/internal/core/port"
)

// Handler contains dependencies and routes. It is an inbound adapter for HTTP.
// It serves the JSON generation API and the server-rendered studio page, both
// backed by the same CampaignUseCase.
type Handler struct {
	svc    port.CampaignUseCase
	logger *zap.Logger
	pages  *pages
	router chi.Router
}

// NewHandler creates a handler with all routes configured.
func NewHandler(svc port.CampaignUseCase, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	h := &Handler{svc: svc, logger: logger.Named("http"), pages: loadPages()}

	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(h.requestLogger)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", h.handleHealth)
	r.Post("/api/generate-campaign", h.handleGenerateCampaign)

	r.Get("/", h.handleIndex)
	r.Post("/", h.handleSubmit)
	r.Post("/regenerate", h.handleRegenerate)

	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
