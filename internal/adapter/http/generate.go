package httpadapter

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"campaign-studio/internal/core/domain"
)

const msgInvalidBody = "invalid JSON body"

type errorResponse struct {
	Error string `json:"error"`
}

// handleGenerateCampaign decodes a CampaignRequest and returns the generated
// CampaignResult. Input errors produce HTTP 400, every other failure HTTP
// 500, both with an {"error": ...} body. A quota fallback is a normal 200.
func (h *Handler) handleGenerateCampaign(w http.ResponseWriter, r *http.Request) {
	var req domain.CampaignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: msgInvalidBody})
		return
	}
	res, err := h.svc.Generate(r.Context(), req)
	if err != nil {
		h.logger.Debug("generate campaign failed",
			zap.String("request_id", middleware.GetReqID(r.Context())),
			zap.Stringer("kind", domain.KindOf(err)),
			zap.Error(err),
		)
		h.writeJSON(w, statusFor(err), errorResponse{Error: errorMessage(err)})
		return
	}
	h.writeJSON(w, http.StatusOK, res)
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// encoding should rarely fail; the status line is already sent
		h.logger.Error("encode response error", zap.Error(err))
	}
}

func statusFor(err error) int {
	if domain.KindOf(err) == domain.InvalidInput {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// errorMessage returns the user-facing text for err. Errors that did not come
// from the usecase get the generic message so internals never leak.
func errorMessage(err error) string {
	var de *domain.Error
	if errors.As(err, &de) && de.Message != "" {
		return de.Message
	}
	return domain.MsgGenericFailure
}
