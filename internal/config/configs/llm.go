package configs

// LLM selects and tunes the text generation provider.
type LLM struct {
	// Provider is "openai" (default) or "gemini".
	Provider string `env:"PROVIDER" envDefault:"openai"`
	// Model overrides the provider default model.
	Model string `env:"MODEL"`
	// Temperature is sent with every request when positive.
	Temperature float64 `env:"TEMPERATURE" envDefault:"0.8"`
	// BaseURL points the provider client at a different endpoint.
	BaseURL string `env:"BASE_URL"`
}

// Credentials holds provider API keys. They are read without a prefix so the
// conventional variable names work unchanged.
type Credentials struct {
	OpenAIAPIKey string `env:"OPENAI_API_KEY"`
	GeminiAPIKey string `env:"GEMINI_API_KEY"`
}
