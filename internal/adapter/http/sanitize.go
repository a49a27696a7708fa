package httpadapter

import (
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"

	"campaign-studio/internal/core/domain"
)

var (
	scrubPolicyOnce sync.Once
	scrubPolicy     *bluemonday.Policy
)

// scrub strips any markup the model put into its text. The policy escapes
// what it keeps; the result is unescaped again so the template escapes it
// exactly once.
func scrub(raw string) string {
	scrubPolicyOnce.Do(func() {
		scrubPolicy = bluemonday.StrictPolicy()
	})
	return strings.TrimSpace(html.UnescapeString(scrubPolicy.Sanitize(raw)))
}

func scrubAll(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = scrub(s)
	}
	return out
}

func scrubResult(res *domain.CampaignResult) *domain.CampaignResult {
	return &domain.CampaignResult{
		Tagline:             scrub(res.Tagline),
		BrandStory:          scrub(res.BrandStory),
		Hooks:               scrubAll(res.Hooks),
		Captions:            scrubAll(res.Captions),
		Hashtags:            scrubAll(res.Hashtags),
		TranslatedCaptionHi: scrub(res.TranslatedCaptionHi),
		TranslatedCaptionKn: scrub(res.TranslatedCaptionKn),
		Note:                res.Note,
	}
}
