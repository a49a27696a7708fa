package usecase

import (
	"fmt"
	"strings"

	"campaign-studio/internal/core/domain"
)

// audienceNotSpecified stands in for an empty audience inside prompts only.
const audienceNotSpecified = "Not specified"

// resultKeys are the keys the model must return, in prompt order.
var resultKeys = []string{
	"tagline",
	"brand_story",
	"hooks",
	"captions",
	"hashtags",
	"translated_caption_hi",
	"translated_caption_kn",
}

// BuildPrompt renders the instruction sent to the model for req. Callers are
// expected to have applied defaults already.
func BuildPrompt(req domain.CampaignRequest) string {
	audience := req.Audience
	if audience == "" {
		audience = audienceNotSpecified
	}

	var b strings.Builder

	b.WriteString("You are a senior marketing strategist and AI copywriter.\n\n")
	b.WriteString("Create a marketing content package for:\n\n")
	b.WriteString(fmt.Sprintf("Product: %s\n", req.ProductName))
	b.WriteString(fmt.Sprintf("Description: %s\n", req.Description))
	b.WriteString(fmt.Sprintf("Audience: %s\n", audience))
	b.WriteString(fmt.Sprintf("Platform: %s\n", req.Platform))
	b.WriteString(fmt.Sprintf("Tone: %s\n\n", req.Tone))

	b.WriteString("Return STRICT JSON with:\n")
	b.WriteString("- tagline\n")
	b.WriteString("- brand_story (3–5 sentences)\n")
	b.WriteString("- hooks (array of 3 hooks)\n")
	b.WriteString("- captions (array of 2 platform-optimized captions)\n")
	b.WriteString("- hashtags (array of 8–12)\n")
	b.WriteString("- translated_caption_hi (Hindi translation)\n")
	b.WriteString("- translated_caption_kn (Kannada translation)\n\n")

	b.WriteString(fmt.Sprintf("Use exactly these keys: %s. ", strings.Join(resultKeys, ", ")))
	b.WriteString("Do not wrap the object in markdown code fences.\n")
	b.WriteString("Return ONLY JSON, no explanation.\n")

	return b.String()
}
