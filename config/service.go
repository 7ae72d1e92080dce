package config

import (
	"fmt"

	"github.com/kbukum/authkit/auth"
	"github.com/kbukum/authkit/auth/jwt"
	"github.com/kbukum/authkit/cache/redis"
	"github.com/kbukum/authkit/logger"
	"github.com/kbukum/authkit/server"
	"github.com/kbukum/authkit/validation"
)

// AppConfig is the top-level configuration for a service built on
// authkit. Projects that need more sections embed it:
//
//	type MyConfig struct {
//	    config.AppConfig `yaml:",inline" mapstructure:",squash"`
//	    Database database.Config `yaml:"database" mapstructure:"database"`
//	}
type AppConfig struct {
	Name        string `yaml:"name" mapstructure:"name" validate:"required"`
	Environment string `yaml:"environment" mapstructure:"environment" validate:"omitempty,oneof=development staging production"`
	Version     string `yaml:"version" mapstructure:"version"`
	Debug       bool   `yaml:"debug" mapstructure:"debug"`

	Logging logger.Config `yaml:"logging" mapstructure:"logging"`
	Auth    auth.Config   `yaml:"auth" mapstructure:"auth"`
	JWT     jwt.Config    `yaml:"jwt" mapstructure:"jwt"`
	Server  server.Config `yaml:"server" mapstructure:"server"`

	// Cache configures the shared Redis credential store. When Addr is
	// empty the engine falls back to its in-process cache.
	Cache redis.Config `yaml:"cache" mapstructure:"cache"`
}

// ApplyDefaults fills in zero-value fields section by section.
func (c *AppConfig) ApplyDefaults() {
	if c.Environment == "" {
		c.Environment = "development"
	}
	if c.Environment == "development" {
		c.Debug = true
	}
	c.Logging.ApplyDefaults()
	c.Auth.ApplyDefaults()
	c.Server.ApplyDefaults()
	if c.Cache.Addr != "" {
		c.Cache.ApplyDefaults()
	}
}

// Validate checks the configuration after defaults have been applied.
// Tag-declared rules (required, oneof) run through the validation
// package; section configs carry their own Validate methods.
func (c *AppConfig) Validate() error {
	if err := validation.Validate(c); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if err := c.Auth.Validate(); err != nil {
		return fmt.Errorf("config.auth: %w", err)
	}
	if err := c.Server.Validate(); err != nil {
		return fmt.Errorf("config.server: %w", err)
	}
	if c.Cache.Addr != "" {
		if err := c.Cache.Validate(); err != nil {
			return fmt.Errorf("config.cache: %w", err)
		}
	}
	return nil
}

// UseSharedCache reports whether a Redis credential store is configured.
func (c *AppConfig) UseSharedCache() bool {
	return c.Cache.Addr != ""
}

// Describe returns a one-line summary for startup logs.
func (c *AppConfig) Describe() string {
	cacheKind := "memory"
	if c.UseSharedCache() {
		cacheKind = "redis@" + c.Cache.Addr
	}
	return fmt.Sprintf("%s (%s) auth=[%s] cache=%s log=%s",
		c.Name, c.Environment, c.Auth.Describe(), cacheKind, c.Logging.Describe())
}
