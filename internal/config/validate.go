package config

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Validate performs business-rule validation on the loaded configuration.
// Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if c.Auth.PasswordHashCost < bcrypt.MinCost || c.Auth.PasswordHashCost > bcrypt.MaxCost {
		return fmt.Errorf("auth.password_hash_cost must be between %d and %d (got %d)",
			bcrypt.MinCost, bcrypt.MaxCost, c.Auth.PasswordHashCost)
	}

	if c.Auth.AccessTokenTTL <= 0 {
		return fmt.Errorf("auth.access_token_ttl must be positive (got %v)", c.Auth.AccessTokenTTL)
	}
	if c.Auth.RefreshTokenTTL <= c.Auth.AccessTokenTTL {
		return fmt.Errorf("auth.refresh_token_ttl (%v) must exceed access_token_ttl (%v)",
			c.Auth.RefreshTokenTTL, c.Auth.AccessTokenTTL)
	}

	if c.Generator.Enabled() && c.Generator.MaxTokens <= 0 {
		return fmt.Errorf("generator.max_tokens must be positive (got %d)", c.Generator.MaxTokens)
	}

	if c.Server.AuthRatePerMinute <= 0 {
		return fmt.Errorf("server.auth_rate_per_minute must be positive (got %d)", c.Server.AuthRatePerMinute)
	}

	return nil
}
