package config

// OpenAIKeyPlaceholder is the value generated .env files carry until the
// operator fills in a real key.
const OpenAIKeyPlaceholder = "your_openai_api_key_here"

// OpenAIConfig lists the variables the RAG service refuses to start without.
// Each field must be tagged required,notEmpty so a missing and an empty value
// are reported the same way.
type OpenAIConfig struct {
	APIKey string `env:"OPENAI_API_KEY,required,notEmpty"`
}

// IsPlaceholder reports whether v is a template value rather than a setting.
func IsPlaceholder(v string) bool {
	return v == OpenAIKeyPlaceholder
}
