// Package studio holds the presentation rules shared by the web page and the
// terminal client: how form input becomes a CampaignRequest, how a result is
// regenerated with another tone and what each copy button copies.
package studio

import (
	"slices"
	"strings"

	"campaign-studio/internal/core/domain"
)

const (
	platformSeparator = ", "

	// DefaultRegenerateTone preselects the regenerate control. It never
	// affects the first request.
	DefaultRegenerateTone = "Funny"
)

var (
	// PlatformOptions are the checkbox choices, in display order.
	PlatformOptions = []string{"Instagram", "LinkedIn", "Twitter", "WhatsApp Status"}
	// ToneOptions are the tone choices of the main form.
	ToneOptions = []string{"Friendly", "Premium", "Funny", "Emotional"}
	// RegenerateToneOptions are the tone choices offered after a result.
	RegenerateToneOptions = []string{"Friendly", "Premium", "Funny", "Emotional", "Bold"}
)

// FormInput is what the user entered in the campaign form.
type FormInput struct {
	ProductName string
	Description string
	Audience    string
	Platforms   []string
	Tone        string
}

// Request converts the form into the outgoing request. Checked platforms are
// joined with ", "; no selection means Instagram. An empty tone means
// Friendly.
func (f FormInput) Request() domain.CampaignRequest {
	tone := strings.TrimSpace(f.Tone)
	if tone == "" {
		tone = domain.DefaultTone
	}
	return domain.CampaignRequest{
		ProductName: f.ProductName,
		Description: f.Description,
		Audience:    f.Audience,
		Platform:    JoinPlatforms(f.Platforms),
		Tone:        tone,
	}
}

// JoinPlatforms joins the non-blank selections, or returns the default
// platform when nothing is selected.
func JoinPlatforms(platforms []string) string {
	selected := make([]string, 0, len(platforms))
	for _, p := range platforms {
		if p = strings.TrimSpace(p); p != "" {
			selected = append(selected, p)
		}
	}
	if len(selected) == 0 {
		return domain.DefaultPlatform
	}
	return strings.Join(selected, platformSeparator)
}

// SplitPlatforms reverses JoinPlatforms so a previous request can re-check
// its boxes.
func SplitPlatforms(platform string) []string {
	if strings.TrimSpace(platform) == "" {
		return nil
	}
	parts := strings.Split(platform, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Regenerate returns last with only the tone replaced.
func Regenerate(last domain.CampaignRequest, tone string) domain.CampaignRequest {
	next := last
	next.Tone = tone
	return next
}

// NormalizeTone returns tone when it is one of options, otherwise def.
func NormalizeTone(tone string, options []string, def string) string {
	if slices.Contains(options, tone) {
		return tone
	}
	return def
}
