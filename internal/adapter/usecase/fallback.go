package usecase

import (
	"slices"
	"strings"

	"campaign-studio/internal/core/domain"
)

// FallbackNote marks a result that was synthesized because the provider
// refused the call for lack of quota.
const FallbackNote = "Fallback response used because the configured OpenAI API key has insufficient quota. " +
	"Replace OPENAI_API_KEY with a valid key to use live AI generation."

const (
	fallbackProduct         = "This product"
	fallbackStoryAudience   = "busy people"
	fallbackCaptionAudience = "busy creators"
)

// Templates use {placeholder} keys filled by fallbackReplacer.
const (
	fallbackTagline    = "{product_or_default} that keeps you going."
	fallbackBrandStory = "{product} is designed for {story_audience} who need more than just another product. " +
		"With {description}, it fits naturally into your daily routine and makes your {platform} presence " +
		"feel more intentional and professional."

	fallbackCaptionOne = "Tired of overthinking every {platform} post?\n\n" +
		"Meet {product} – built for {caption_audience} who want consistent, clean content without spending hours writing.\n\n" +
		"{description}\n\n" +
		"Save your energy for the work that matters. Let your content support you instead of stressing you out."
	fallbackCaptionTwo = "If you're juggling classes, meetings, deadlines *and* content… this is for you.\n\n" +
		"{product} helps you show up online with clarity, consistency, and a tone that actually sounds like you.\n\n" +
		"One tool. Sharper presence. More intentional {platform} posts."

	fallbackHindi   = "अब हर पोस्ट के लिए घंटों सोचने की ज़रूरत नहीं।\n\n{product} आपके लिए कंटेंट तैयार करने में मदद करता है ताकि आप पढ़ाई, काम और अपने सपनों पर ध्यान दे सकें – सोशल मीडिया अपने आप संभल जाए।"
	fallbackKannada = "ಪ್ರತಿ ಪೋಸ್ಟ್‌ಗಾಗಿ ಗಂಟೆಗಟ್ಟಲೆ ಯೋಚಿಸುವ ದಿನಗಳು ಮುಗಿದವು\n\n{product} ನಿಮ್ಮಗಾಗಿ ಕಂಟೆಂಟ್ ಸಿದ್ಧಪಡಿಸುತ್ತದೆ, ನೀವು ಓದು, ಕೆಲಸ ಮತ್ತು ಕನಸುಗಳ ಮೇಲೆ ಫೋಕಸ್ ಮಾಡಬಹುದು – ಸೋಷಿಯಲ್ ಮೀಡಿಯಾ ಸ್ವತಃ ಜಾಗ್ರತೆ ಪಡೆದುಕೊಳ್ಳುತ್ತದೆ."
)

var fallbackHooks = []string{
	"Why {product} is your next non-negotiable",
	"From “I should post” to “Just posted” in seconds",
	"Turn your everyday {platform} posts into a brand story",
}

// FallbackHashtags is the fixed tag list of every fallback result.
var FallbackHashtags = []string{
	"#ContentMadeEasy",
	"#AIPowered",
	"#CreatorTools",
	"#BuildYourBrand",
	"#StudentLife",
	"#WorkSmart",
	"#SocialMedia",
	"#DailyPost",
}

// Fallback synthesizes a campaign from the request fields alone. The output
// is a pure function of req.
func Fallback(req domain.CampaignRequest) *domain.CampaignResult {
	r := fallbackReplacer(req)

	hooks := make([]string, len(fallbackHooks))
	for i, h := range fallbackHooks {
		hooks[i] = r.Replace(h)
	}

	return &domain.CampaignResult{
		Tagline:             r.Replace(fallbackTagline),
		BrandStory:          r.Replace(fallbackBrandStory),
		Hooks:               hooks,
		Captions:            []string{r.Replace(fallbackCaptionOne), r.Replace(fallbackCaptionTwo)},
		Hashtags:            slices.Clone(FallbackHashtags),
		TranslatedCaptionHi: r.Replace(fallbackHindi),
		TranslatedCaptionKn: r.Replace(fallbackKannada),
		Note:                FallbackNote,
	}
}

// fallbackReplacer substitutes every placeholder in a single pass, so values
// that happen to contain braces are left alone.
func fallbackReplacer(req domain.CampaignRequest) *strings.Replacer {
	product := req.ProductName
	productOrDefault := orDefault(product, fallbackProduct)
	return strings.NewReplacer(
		"{product_or_default}", productOrDefault,
		"{product}", product,
		"{description}", req.Description,
		"{story_audience}", orDefault(req.Audience, fallbackStoryAudience),
		"{caption_audience}", orDefault(req.Audience, fallbackCaptionAudience),
		"{platform}", orDefault(req.Platform, domain.DefaultPlatform),
	)
}

func orDefault(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}
