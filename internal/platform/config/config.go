// Copyright (c) 2026 Book2Screen. All rights reserved.

/*
Package config handles application-wide settings and environment parsing.

It leverages 'caarlos0/env' to map OS environment variables into a strongly-typed
Go struct, providing early validation and default values.

Usage:

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}

Architecture:

  - Immutability: Once loaded, configuration is read-only.
  - DI-Friendly: Passed to core components via constructors.
  - Zero Hidden State: No global variables are used to store config.

This ensures the application is Twelve-Factor compliant by storing config in the env.
*/
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/book2screen/book2screen/pkg/query"
)

// # Configuration Schema

// Config holds all runtime configuration for the Book2Screen API server.
type Config struct {

	// Server settings
	ServerPort  string `env:"SERVER_PORT"  envDefault:"8080"`
	Environment string `env:"ENVIRONMENT"  envDefault:"development"`
	Debug       bool   `env:"DEBUG"        envDefault:"false"`

	// Session token signing key (HMAC)
	SessionSecret string `env:"SESSION_SECRET,required"`

	// AdminEmail is the single reserved address that receives the admin role
	// on login. Any other address gets a regular user session.
	AdminEmail string `env:"ADMIN_EMAIL" envDefault:"admin@gmail.com"`

	// Assistant (generative language API) settings. When the key is empty,
	// every assistant request resolves to the canned fallback reply.
	AssistantAPIKey  string `env:"ASSISTANT_API_KEY"`
	AssistantModel   string `env:"ASSISTANT_MODEL"    envDefault:"gemini-2.5-flash"`
	AssistantBaseURL string `env:"ASSISTANT_BASE_URL" envDefault:"https://generativelanguage.googleapis.com"`

	// Cross-Origin Resource Sharing
	ExtraOrigins string `env:"EXTRA_ORIGINS"`
}

// # Configuration Loading

// Load parses environment variables into a [Config] struct.
func Load() (*Config, error) {

	// Initialize an empty config struct
	cfg := &Config{}

	// Use the 'env' package to map environment variables to struct fields.
	// This will fail if any field marked with 'required' is missing.
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	return cfg, nil
}

// IsDevelopment reports whether the server is running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction reports whether the server is running in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// ExtraOriginList returns the additional CORS origins as a slice.
func (c *Config) ExtraOriginList() []string {
	return query.StringSlice(c.ExtraOrigins)
}
