package config

import "time"

// Config holds all configuration for the application.
type Config struct {
	DBName          string
	Port            string
	BaseURL         string
	Turso           TursoConfig
	Auth            AuthConfig
	Slack           SlackConfig
	ProjectID       string
	PubSubPushToken string
	Playtomic       PlaytomicConfig
}

type TursoConfig struct {
	PrimaryURL string
	AuthToken  string
}

type AuthConfig struct {
	JWTSecret string
	TokenTTL  time.Duration
}

type SlackConfig struct {
	Token         string
	ChannelID     string
	SigningSecret string
}

type PlaytomicConfig struct {
	TenantID string
}
