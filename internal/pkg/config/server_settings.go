package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// ServerSettings holds the HTTP server configuration.
type ServerSettings struct {
	Port           int      `mapstructure:"port" validate:"required,min=1,max=65535"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// Validate checks that all fields in ServerSettings are valid
func (s *ServerSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for ServerSettings: %w", err)
	}
	return nil
}

// SessionSettings holds the cookie session configuration. The secret
// authenticates session cookies and must not be empty.
type SessionSettings struct {
	Secret     string `mapstructure:"secret" validate:"required,min=16"`
	CookieName string `mapstructure:"cookie_name" validate:"required"`
	MaxAge     int    `mapstructure:"max_age" validate:"min=0"`
}

// Validate checks that all fields in SessionSettings are valid
func (s *SessionSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for SessionSettings: %w", err)
	}
	return nil
}
