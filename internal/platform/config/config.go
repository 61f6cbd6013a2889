// Package config loads runtime configuration from the environment, with an
// optional .env file for local runs. The advice credential is the only
// external secret, and its absence is a valid configuration.
package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config captures all runtime configuration organised by concern.
type Config struct {
	Server  ServerConfig
	Session SessionConfig
	Advice  AdviceConfig
	Auth    AuthConfig
	Chat    ChatConfig
}

// ServerConfig configures the HTTP surface.
type ServerConfig struct {
	Addr            string `envconfig:"STOREFRONT_ADDR" default:":8080"`
	ReadTimeoutSec  int    `envconfig:"STOREFRONT_READ_TIMEOUT_SEC" default:"15"`
	WriteTimeoutSec int    `envconfig:"STOREFRONT_WRITE_TIMEOUT_SEC" default:"30"`
	IdleTimeoutSec  int    `envconfig:"STOREFRONT_IDLE_TIMEOUT_SEC" default:"120"`
}

// SessionConfig controls the signed session cookie.
type SessionConfig struct {
	CookieName string `envconfig:"STOREFRONT_SESSION_COOKIE" default:"fakhama_session"`
	SigningKey string `envconfig:"STOREFRONT_SESSION_SIGNING_KEY"`
}

// AdviceConfig holds the optional generative-text credential. An empty
// APIKey switches the advice widget to its local fallback path.
type AdviceConfig struct {
	APIKey string `envconfig:"ADVICE_API_KEY"`
	Model  string `envconfig:"ADVICE_MODEL" default:"gemini-2.5-flash"`
}

// AuthConfig tunes the simulated sign-in exchange.
type AuthConfig struct {
	SignInDelayMS int `envconfig:"STOREFRONT_SIGNIN_DELAY_MS" default:"1500"`
}

// ChatConfig tunes the scripted support chat.
type ChatConfig struct {
	ReplyDelayMS int `envconfig:"STOREFRONT_CHAT_REPLY_DELAY_MS" default:"1500"`
}

// Load reads .env when present and populates the config from the
// environment. A missing .env file is not an error.
func Load() (Config, error) {
	_ = godotenv.Load(".env")

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("config: process environment: %w", err)
	}
	return cfg, nil
}

// AdviceConfigured reports whether the external credential is present.
func (c Config) AdviceConfigured() bool {
	return c.Advice.APIKey != ""
}
