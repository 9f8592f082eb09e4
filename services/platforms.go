package services

import (
	"contentpilot/models"
)

// DefaultMaxTokens bounds every completion request sent to a provider.
const DefaultMaxTokens = 1000

// PlatformGuideline describes how generated content should read on one
// platform. MaxLength is in characters of the finished post.
type PlatformGuideline struct {
	MaxLength int
	Style     string
	Format    string
}

var platformGuidelines = map[models.Platform]PlatformGuideline{
	models.PlatformLinkedIn: {
		MaxLength: 3000,
		Style:     "Professional, thought-leadership focused. Use line breaks for readability. Include relevant hashtags at the end.",
		Format:    "Start with a hook, provide value through insights or tips, end with engagement question.",
	},
	models.PlatformTwitter: {
		MaxLength: 280,
		Style:     "Concise, engaging. Use thread format for longer content. Include relevant hashtags.",
		Format:    "Hook in first tweet, numbered points for threads, call-to-action at the end.",
	},
	models.PlatformInstagram: {
		MaxLength: 2200,
		Style:     "Visual-first, storytelling approach. Use emojis and line breaks. Include hashtags.",
		Format:    "Engaging caption with story elements, bullet points for tips, relevant hashtags.",
	},
	models.PlatformTikTok: {
		MaxLength: 300,
		Style:     "Casual, trendy, hook-focused. Include trending hashtags and call-to-action.",
		Format:    "Strong hook, quick tips or insights, engagement prompt.",
	},
	models.PlatformYouTube: {
		MaxLength: 5000,
		Style:     "Detailed, educational. Include timestamps and clear structure.",
		Format:    "Introduction, main content sections, conclusion with call-to-action.",
	},
}

// GuidelineFor returns the content guideline for a platform and whether the
// platform has one. Generation only accepts platforms that do.
func GuidelineFor(platform models.Platform) (PlatformGuideline, bool) {
	g, ok := platformGuidelines[platform]
	return g, ok
}

var languageNames = map[string]string{
	"en": "English",
	"fr": "French",
	"es": "Spanish",
	"de": "German",
}

// LanguageName maps a language code to the name used in prompts. Unrecognized
// codes fall back to English.
func LanguageName(code string) string {
	if name, ok := languageNames[code]; ok {
		return name
	}
	return languageNames["en"]
}

// Provider identifiers for model routing.
const (
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
)

// modelRoutes maps the model names exposed by the API to a provider and the
// identifier that provider expects.
var modelRoutes = map[string]struct {
	Provider string
	APIModel string
}{
	"gpt-4o-mini":     {ProviderOpenAI, "gpt-4o-mini"},
	"gpt-4o":          {ProviderOpenAI, "gpt-4o"},
	"claude-3-sonnet": {ProviderAnthropic, "claude-3-sonnet-20240229"},
	"claude-3-haiku":  {ProviderAnthropic, "claude-3-haiku-20240307"},
}

// DefaultModel is used when a request does not name one.
const DefaultModel = "gpt-4o-mini"

// ResolveModel returns the provider and provider-side model id for a requested
// model name. ok is false for models outside the supported set.
func ResolveModel(model string) (provider, apiModel string, ok bool) {
	route, ok := modelRoutes[model]
	if !ok {
		return "", "", false
	}
	return route.Provider, route.APIModel, true
}

// SupportedModels lists the model names accepted by the generation API.
func SupportedModels() []string {
	return []string{"gpt-4o-mini", "gpt-4o", "claude-3-sonnet", "claude-3-haiku"}
}
