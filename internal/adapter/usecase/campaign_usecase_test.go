package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"campaign-studio/internal/core/domain"
	"campaign-studio/internal/core/port"
	"campaign-studio/internal/core/port/mocks"
)

const coldBrewReply = `{
  "tagline": "Cold Brew, warm mornings.",
  "brand_story": "Slow steeped for twelve hours.",
  "hooks": ["Hook one", "Hook two", "Hook three"],
  "captions": ["Caption one", "Caption two"],
  "hashtags": ["#ColdBrew", "#Organic", "#Coffee", "#Morning", "#Slow", "#Fresh", "#Brew", "#Daily"],
  "translated_caption_hi": "हिंदी",
  "translated_caption_kn": "ಕನ್ನಡ"
}`

func coldBrew() domain.CampaignRequest {
	return domain.CampaignRequest{ProductName: "Cold Brew", Description: "Organic coffee"}
}

// TestGenerateRejectsMissingFields ensures invalid input never reaches the generator.
func TestGenerateRejectsMissingFields(t *testing.T) {
	for _, req := range []domain.CampaignRequest{
		{ProductName: "Cold Brew"},
		{Description: "Organic coffee"},
		{},
	} {
		gen := mocks.NewMockTextGenerator(t)
		svc := NewCampaignUseCase(gen, nil)

		res, err := svc.Generate(context.Background(), req)
		require.Error(t, err)
		assert.Nil(t, res)
		assert.Equal(t, domain.InvalidInput, domain.KindOf(err))
		assert.Equal(t, domain.MsgRequiredFields, err.Error())
		gen.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything)
	}
}

// TestGeneratePassThrough ensures a valid model reply is returned unmodified.
func TestGeneratePassThrough(t *testing.T) {
	gen := mocks.NewMockTextGenerator(t)
	gen.EXPECT().
		Generate(mock.Anything, mock.AnythingOfType("string")).
		Return(coldBrewReply, nil).
		Once()

	svc := NewCampaignUseCase(gen, nil)
	res, err := svc.Generate(context.Background(), coldBrew())
	require.NoError(t, err)

	want := &domain.CampaignResult{
		Tagline:             "Cold Brew, warm mornings.",
		BrandStory:          "Slow steeped for twelve hours.",
		Hooks:               []string{"Hook one", "Hook two", "Hook three"},
		Captions:            []string{"Caption one", "Caption two"},
		Hashtags:            []string{"#ColdBrew", "#Organic", "#Coffee", "#Morning", "#Slow", "#Fresh", "#Brew", "#Daily"},
		TranslatedCaptionHi: "हिंदी",
		TranslatedCaptionKn: "ಕನ್ನಡ",
	}
	if diff := cmp.Diff(want, res); diff != "" {
		t.Fatalf("result mismatch (-want +got):\n%s", diff)
	}
	assert.False(t, res.IsFallback())
}

// TestGeneratePromptDefaults ensures defaults reach the prompt and the
// audience placeholder is used only there.
func TestGeneratePromptDefaults(t *testing.T) {
	var prompt string
	gen := mocks.NewMockTextGenerator(t)
	gen.EXPECT().
		Generate(mock.Anything, mock.AnythingOfType("string")).
		Run(func(_ context.Context, p string) { prompt = p }).
		Return(coldBrewReply, nil).
		Once()

	svc := NewCampaignUseCase(gen, nil)
	_, err := svc.Generate(context.Background(), coldBrew())
	require.NoError(t, err)

	assert.Contains(t, prompt, "Product: Cold Brew\n")
	assert.Contains(t, prompt, "Description: Organic coffee\n")
	assert.Contains(t, prompt, "Audience: Not specified\n")
	assert.Contains(t, prompt, "Platform: Instagram\n")
	assert.Contains(t, prompt, "Tone: Friendly\n")
	assert.Contains(t, prompt, "Return ONLY JSON")
}

// TestGenerateQuotaFallback covers the scenario where the provider reports
// exhausted quota for the Cold Brew request.
func TestGenerateQuotaFallback(t *testing.T) {
	cases := map[string]error{
		"status 429":         &port.UpstreamError{Provider: "openai", StatusCode: 429, Message: "Rate limit reached"},
		"insufficient quota": &port.UpstreamError{Provider: "openai", StatusCode: 400, Code: "insufficient_quota"},
		"gemini exhausted":   &port.UpstreamError{Provider: "gemini", Code: "RESOURCE_EXHAUSTED"},
	}
	for name, upstream := range cases {
		t.Run(name, func(t *testing.T) {
			gen := mocks.NewMockTextGenerator(t)
			gen.EXPECT().
				Generate(mock.Anything, mock.Anything).
				Return("", upstream).
				Once()

			svc := NewCampaignUseCase(gen, nil)
			res, err := svc.Generate(context.Background(), coldBrew())
			require.NoError(t, err)
			require.NotNil(t, res)

			assert.Equal(t, "Cold Brew that keeps you going.", res.Tagline)
			assert.NotEmpty(t, res.Note)
			assert.True(t, res.IsFallback())
			assert.Equal(t, FallbackHashtags, res.Hashtags)
			assert.Contains(t, res.BrandStory, "Instagram")
		})
	}
}

func TestGenerateUpstreamFailure(t *testing.T) {
	gen := mocks.NewMockTextGenerator(t)
	gen.EXPECT().
		Generate(mock.Anything, mock.Anything).
		Return("", &port.UpstreamError{Provider: "openai", StatusCode: 401, Code: "invalid_api_key", Message: "Incorrect API key provided"}).
		Once()

	svc := NewCampaignUseCase(gen, nil)
	res, err := svc.Generate(context.Background(), coldBrew())
	require.Error(t, err)
	assert.Nil(t, res)
	assert.Equal(t, domain.UpstreamFailure, domain.KindOf(err))
	assert.Equal(t, "Incorrect API key provided", err.Error())
}

func TestGenerateNetworkFailure(t *testing.T) {
	cause := errors.New("dial tcp 127.0.0.1:443: connect: connection refused")
	gen := mocks.NewMockTextGenerator(t)
	gen.EXPECT().Generate(mock.Anything, mock.Anything).Return("", cause).Once()

	svc := NewCampaignUseCase(gen, nil)
	_, err := svc.Generate(context.Background(), coldBrew())
	require.Error(t, err)
	assert.Equal(t, domain.UpstreamFailure, domain.KindOf(err))
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, cause.Error(), err.Error())
}

func TestGenerateMalformedReply(t *testing.T) {
	replies := map[string]string{
		"prose":       "Sure! Here is your campaign.",
		"missing key": `{"tagline": "x", "brand_story": "y"}`,
		"wrong type":  strings.Replace(coldBrewReply, `["Hook one", "Hook two", "Hook three"]`, `"Hook one"`, 1),
	}
	for name, reply := range replies {
		t.Run(name, func(t *testing.T) {
			gen := mocks.NewMockTextGenerator(t)
			gen.EXPECT().Generate(mock.Anything, mock.Anything).Return(reply, nil).Once()

			svc := NewCampaignUseCase(gen, nil)
			res, err := svc.Generate(context.Background(), coldBrew())
			require.Error(t, err)
			assert.Nil(t, res)
			assert.Equal(t, domain.UpstreamMalformed, domain.KindOf(err))
			assert.ErrorIs(t, err, ErrMalformedResult)
		})
	}
}
