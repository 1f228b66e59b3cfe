package config

import (
	"time"

	"github.com/caarlos0/env/v10"
)

// Config centraliza la configuración del servicio.
type Config struct {
	HTTPPort              string `env:"HTTP_PORT" envDefault:"8080"`
	JWTSecret             string `env:"JWT_SECRET,required,notEmpty"`
	SessionTTLMinutes     int    `env:"SESSION_TTL_MINUTES" envDefault:"120"`
	CorpusPath            string `env:"CORPUS_PATH"`
	DatabaseURL           string `env:"DATABASE_URL"`
	LLMAPIKey             string `env:"LLM_API_KEY"`
	LLMBaseURL            string `env:"LLM_BASE_URL" envDefault:"https://api.openai.com/v1"`
	LLMModel              string `env:"LLM_MODEL" envDefault:"gpt-4o-mini"`
	RedisAddr             string `env:"REDIS_ADDR"`
	RedisPassword         string `env:"REDIS_PASSWORD"`
	RedisDB               int    `env:"REDIS_DB" envDefault:"0"`
	HistoryTTLMinutes     int    `env:"HISTORY_TTL_MINUTES" envDefault:"240"`
	ChatRateLimit         int    `env:"CHAT_RATE_LIMIT" envDefault:"30"`
	ChatRateWindowSeconds int    `env:"CHAT_RATE_WINDOW_SECONDS" envDefault:"60"`
	MatchTopK             int    `env:"MATCH_TOP_K" envDefault:"3"`
}

// ToolConfig es el subconjunto que usan las herramientas de línea de comandos (sin sesiones ni HTTP).
type ToolConfig struct {
	CorpusPath  string `env:"CORPUS_PATH"`
	DatabaseURL string `env:"DATABASE_URL"`
	LLMAPIKey   string `env:"LLM_API_KEY"`
	LLMBaseURL  string `env:"LLM_BASE_URL" envDefault:"https://api.openai.com/v1"`
	LLMModel    string `env:"LLM_MODEL" envDefault:"gpt-4o-mini"`
	MatchTopK   int    `env:"MATCH_TOP_K" envDefault:"3"`
}

// LoadToolConfig carga la configuración de las herramientas; no exige JWT_SECRET.
func LoadToolConfig() (*ToolConfig, error) {
	var cfg ToolConfig
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Server devuelve la parte compartida como Config, para reutilizar bootstrap.LoadCorpus.
func (c *ToolConfig) Server() *Config {
	return &Config{
		CorpusPath:  c.CorpusPath,
		DatabaseURL: c.DatabaseURL,
		LLMAPIKey:   c.LLMAPIKey,
		LLMBaseURL:  c.LLMBaseURL,
		LLMModel:    c.LLMModel,
		MatchTopK:   c.MatchTopK,
	}
}

// LoadConfig carga la configuración desde variables de entorno.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) SessionTTL() time.Duration {
	return time.Duration(c.SessionTTLMinutes) * time.Minute
}

func (c *Config) HistoryTTL() time.Duration {
	return time.Duration(c.HistoryTTLMinutes) * time.Minute
}

func (c *Config) ChatRateWindow() time.Duration {
	return time.Duration(c.ChatRateWindowSeconds) * time.Second
}

// LLMEnabled indica si hay credenciales para el proveedor de lenguaje.
// Sin ellas el compositor usa solo las respuestas del corpus.
func (c *Config) LLMEnabled() bool {
	return c.LLMAPIKey != ""
}
