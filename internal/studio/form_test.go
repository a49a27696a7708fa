package studio

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"campaign-studio/internal/core/domain"
)

func TestJoinPlatforms(t *testing.T) {
	assert.Equal(t, "Instagram, LinkedIn", JoinPlatforms([]string{"Instagram", "LinkedIn"}))
	assert.Equal(t, "Twitter", JoinPlatforms([]string{"Twitter"}))
	assert.Equal(t, "Instagram", JoinPlatforms(nil))
	assert.Equal(t, "Instagram", JoinPlatforms([]string{" ", ""}))
}

func TestSplitPlatforms(t *testing.T) {
	assert.Equal(t, []string{"Instagram", "WhatsApp Status"}, SplitPlatforms("Instagram, WhatsApp Status"))
	assert.Nil(t, SplitPlatforms(""))
}

func TestFormInputRequest(t *testing.T) {
	req := FormInput{
		ProductName: "Cold Brew",
		Description: "Organic coffee",
		Platforms:   []string{"Instagram", "LinkedIn"},
	}.Request()

	assert.Equal(t, domain.CampaignRequest{
		ProductName: "Cold Brew",
		Description: "Organic coffee",
		Platform:    "Instagram, LinkedIn",
		Tone:        "Friendly",
	}, req)
}

func TestRegenerateReplacesOnlyTone(t *testing.T) {
	last := domain.CampaignRequest{
		ProductName: "Cold Brew",
		Description: "Organic coffee",
		Audience:    "students",
		Platform:    "Instagram, LinkedIn",
		Tone:        "Friendly",
	}
	next := Regenerate(last, "Funny")

	want := last
	want.Tone = "Funny"
	assert.Equal(t, want, next)
	assert.Equal(t, "Friendly", last.Tone)
}

func TestNormalizeTone(t *testing.T) {
	assert.Equal(t, "Bold", NormalizeTone("Bold", RegenerateToneOptions, DefaultRegenerateTone))
	assert.Equal(t, "Funny", NormalizeTone("Sarcastic", RegenerateToneOptions, DefaultRegenerateTone))
	assert.Equal(t, "Friendly", NormalizeTone("Bold", ToneOptions, domain.DefaultTone))
}
