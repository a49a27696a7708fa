package domain

import "strings"

const (
	// DefaultPlatform is used when a request names no platform.
	DefaultPlatform = "Instagram"
	// DefaultTone is used when a request names no tone.
	DefaultTone = "Friendly"
)

// CampaignRequest carries the marketing inputs collected by the form. It is
// decoded straight from the JSON body of a generate request.
type CampaignRequest struct {
	ProductName string `json:"productName"`
	Description string `json:"description"`
	Audience    string `json:"audience"`
	Platform    string `json:"platform"`
	Tone        string `json:"tone"`
}

// Validate reports an InvalidInput error when a required field is empty.
func (r CampaignRequest) Validate() error {
	if r.ProductName == "" || r.Description == "" {
		return &Error{Kind: InvalidInput, Message: MsgRequiredFields}
	}
	return nil
}

// WithDefaults returns a copy with platform and tone filled in. Audience is
// left untouched; prompts substitute their own placeholder for it.
func (r CampaignRequest) WithDefaults() CampaignRequest {
	if strings.TrimSpace(r.Platform) == "" {
		r.Platform = DefaultPlatform
	}
	if strings.TrimSpace(r.Tone) == "" {
		r.Tone = DefaultTone
	}
	return r
}

// CampaignResult is the marketing package returned to the caller. Note is set
// only when the result was synthesized locally instead of by the model.
type CampaignResult struct {
	Tagline             string   `json:"tagline"`
	BrandStory          string   `json:"brand_story"`
	Hooks               []string `json:"hooks"`
	Captions            []string `json:"captions"`
	Hashtags            []string `json:"hashtags"`
	TranslatedCaptionHi string   `json:"translated_caption_hi"`
	TranslatedCaptionKn string   `json:"translated_caption_kn"`
	Note                string   `json:"note,omitempty"`
}

// IsFallback reports whether the result was produced by the quota fallback.
func (r *CampaignResult) IsFallback() bool {
	return r != nil && r.Note != ""
}
