package model

// Environment is the deployment environment name.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)

// Scope carries the caller identity for a request.
type Scope struct {
	ConversationID string // stable per conversation session
	UserID         string // e.g. "telegram_12345" or an API caller ID
}
