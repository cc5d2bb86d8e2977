package envfile

import "github.com/sandevgo/ragstart/internal/config"

// APIKeyVar is the variable the RAG service cannot start without.
const APIKeyVar = "OPENAI_API_KEY"

// Placeholder marks an API key that was generated but never filled in.
const Placeholder = config.OpenAIKeyPlaceholder

// Template is written to backend/.env when neither a .env nor an env.example
// exists. Zero fields take their envDefault.
type Template struct {
	APIKey string `env:"OPENAI_API_KEY" envSection:"OpenAI API Configuration" envDefault:"your_openai_api_key_here"`

	Port    int    `env:"PORT" envSection:"Server Configuration" envDefault:"3001"`
	NodeEnv string `env:"NODE_ENV" envDefault:"development"`

	FrontendURL string `env:"FRONTEND_URL" envSection:"CORS Configuration" envDefault:"http://localhost:5173"`
}
