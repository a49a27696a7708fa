package studio

import (
	"fmt"
	"strings"

	"campaign-studio/internal/core/domain"
)

// Section keys accepted by CopyText.
const (
	SectionTagline    = "tagline"
	SectionBrandStory = "brand_story"
	SectionHooks      = "hooks"
	SectionHashtags   = "hashtags"
	SectionCaptions   = "captions"
	SectionHindi      = "hindi"
	SectionKannada    = "kannada"
)

// Section is one rendered block of a result with the text its copy button
// puts on the clipboard.
type Section struct {
	Key   string
	Title string
	Copy  string
}

// Sections lists the result blocks in display order.
func Sections(res *domain.CampaignResult) []Section {
	if res == nil {
		return nil
	}
	return []Section{
		{Key: SectionTagline, Title: "Tagline", Copy: res.Tagline},
		{Key: SectionBrandStory, Title: "Brand Story", Copy: res.BrandStory},
		{Key: SectionHooks, Title: "Hooks", Copy: strings.Join(res.Hooks, "\n")},
		{Key: SectionHashtags, Title: "Hashtags", Copy: strings.Join(res.Hashtags, " ")},
		{Key: SectionCaptions, Title: "Captions", Copy: captionsCopy(res.Captions)},
		{Key: SectionHindi, Title: "Hindi Caption", Copy: res.TranslatedCaptionHi},
		{Key: SectionKannada, Title: "Kannada Caption", Copy: res.TranslatedCaptionKn},
	}
}

// CopyText returns the clipboard text for the section named key.
func CopyText(res *domain.CampaignResult, key string) (string, bool) {
	for _, s := range Sections(res) {
		if s.Key == key {
			return s.Copy, true
		}
	}
	return "", false
}

// SectionKeys lists every key CopyText accepts.
func SectionKeys() []string {
	return []string{SectionTagline, SectionBrandStory, SectionHooks, SectionHashtags, SectionCaptions, SectionHindi, SectionKannada}
}

func captionsCopy(captions []string) string {
	parts := make([]string, len(captions))
	for i, c := range captions {
		parts[i] = fmt.Sprintf("Caption %d:\n%s", i+1, c)
	}
	return strings.Join(parts, "\n\n")
}
