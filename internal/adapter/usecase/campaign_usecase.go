package usecase

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"campaign-studio/internal/core/domain"
	"campaign-studio/internal/core/port"
)

// CampaignUseCase implements port.CampaignUseCase. It validates requests,
// builds the prompt, calls the text generator exactly once and applies the
// quota fallback policy.
type CampaignUseCase struct {
	gen    port.TextGenerator
	logger *zap.Logger
}

// NewCampaignUseCase creates a usecase on top of gen. A nil logger disables
// logging.
func NewCampaignUseCase(gen port.TextGenerator, logger *zap.Logger) *CampaignUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CampaignUseCase{gen: gen, logger: logger.Named("campaign")}
}

// Generate returns the campaign for req. Invalid input never reaches the
// generator. Quota failures are answered with Fallback; every other failure
// is returned as a *domain.Error.
func (u *CampaignUseCase) Generate(ctx context.Context, req domain.CampaignRequest) (*domain.CampaignResult, error) {
	if err := req.Validate(); err != nil {
		u.logger.Info("campaign request rejected", zap.Stringer("kind", domain.InvalidInput))
		return nil, err
	}
	req = req.WithDefaults()

	raw, err := u.gen.Generate(ctx, BuildPrompt(req))
	if err != nil {
		if errors.Is(err, port.ErrQuotaExceeded) {
			u.logger.Warn("provider quota exhausted, serving fallback campaign",
				zap.Stringer("kind", domain.QuotaExceeded),
				zap.String("product", req.ProductName),
				zap.Error(err),
			)
			return Fallback(req), nil
		}
		derr := &domain.Error{Kind: domain.UpstreamFailure, Message: upstreamMessage(err), Err: err}
		u.logger.Error("campaign generation failed",
			zap.Stringer("kind", derr.Kind),
			zap.String("product", req.ProductName),
			zap.Error(err),
		)
		return nil, derr
	}

	res, err := ParseResult(raw)
	if err != nil {
		u.logger.Error("campaign reply rejected",
			zap.Stringer("kind", domain.UpstreamMalformed),
			zap.String("product", req.ProductName),
			zap.Int("reply_bytes", len(raw)),
			zap.Error(err),
		)
		return nil, &domain.Error{Kind: domain.UpstreamMalformed, Message: err.Error(), Err: err}
	}
	return res, nil
}

// upstreamMessage picks the provider message when there is one.
func upstreamMessage(err error) string {
	var uerr *port.UpstreamError
	if errors.As(err, &uerr) && uerr.Message != "" {
		return uerr.Message
	}
	if msg := err.Error(); msg != "" {
		return msg
	}
	return domain.MsgGenericFailure
}
