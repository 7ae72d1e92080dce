// Package config loads authkit application configuration from YAML
// files and environment variables.
//
// It uses Viper for file parsing and godotenv for .env support. Values
// resolve in order: YAML file, then .env file, then process environment,
// with later sources overriding earlier ones.
//
// # Usage
//
//	var cfg config.AppConfig
//	if err := config.Load("my-service", &cfg); err != nil {
//	    ...
//	}
//
// Environment variables map onto nested keys by underscore, so
// AUTH_SUBJECT_CLAIM overrides the auth.subject_claim key.
package config
