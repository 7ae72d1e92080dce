// Package logger provides structured logging for authkit components
// using zerolog.
//
// It supports JSON and console output, log level configuration, and
// component-scoped loggers with structured fields. The authentication
// engine reports the cause of every failed request here and nowhere
// else; callers only ever observe the outcome.
//
// # Configuration
//
//	logger:
//	  level: "info"
//	  format: "json"
//
// # Usage
//
//	log := logger.NewDefault("authkit")
//	log.Info("token verified", logger.Fields("subject", "alice"))
package logger
