// Package bootstrap orchestrates the lifecycle of an authkit service.
//
// It wires the pieces an authenticating service needs (configuration,
// logging, the credential cache, the token verifier, the authentication
// engine, and the HTTP server) and runs them with graceful shutdown on
// OS signals.
//
// # Quick Start
//
//	var cfg config.AppConfig
//	if err := config.Load("my-service", &cfg); err != nil {
//	    log.Fatal(err)
//	}
//	app, err := bootstrap.NewApp(&cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	api := app.Server.GinEngine().Group("/api", app.Protect())
//	api.GET("/me", meHandler)
//	app.Run(context.Background())
package bootstrap
