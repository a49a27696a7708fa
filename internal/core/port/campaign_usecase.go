package port

import (
	"context"

	"campaign-studio/internal/core/domain"
)

// CampaignUseCase defines the business operation exposed by the generation
// service. It is the primary port into the application domain; the HTTP
// adapter and the web shell both drive it.
type CampaignUseCase interface {
	// Generate validates req, asks the text generator for a campaign and
	// returns the parsed result. When the provider reports exhausted quota
	// a locally synthesized fallback result is returned instead of an
	// error. Failures are returned as *domain.Error.
	Generate(ctx context.Context, req domain.CampaignRequest) (*domain.CampaignResult, error)
}
