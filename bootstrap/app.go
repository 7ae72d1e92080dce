package bootstrap

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kbukum/authkit/auth"
	"github.com/kbukum/authkit/auth/jwt"
	"github.com/kbukum/authkit/cache"
	cacheredis "github.com/kbukum/authkit/cache/redis"
	"github.com/kbukum/authkit/config"
	"github.com/kbukum/authkit/logger"
	"github.com/kbukum/authkit/observability"
	"github.com/kbukum/authkit/server"
	"github.com/kbukum/authkit/server/middleware"
)

// App is a fully wired authkit service: configuration, logger,
// credential cache, token verifier, authentication engine, and HTTP
// server, with uniform lifecycle management.
type App struct {
	Name          string
	Cfg           *config.AppConfig
	Logger        *logger.Logger
	Authenticator *auth.Authenticator
	Registry      *auth.Registry
	Server        *server.Server

	redis           *cacheredis.Store
	gracefulTimeout time.Duration

	onStart []Hook
	onStop  []Hook
}

// NewApp builds an App from a loaded configuration. It applies defaults,
// validates the config, and constructs every component; nothing is
// started until Run.
func NewApp(cfg *config.AppConfig, opts ...Option) (*App, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	o := resolveOptions(opts)

	log := o.logger
	if log == nil {
		log = logger.New(&cfg.Logging, cfg.Name)
	}

	app := &App{
		Name:            cfg.Name,
		Cfg:             cfg,
		Logger:          log,
		Registry:        auth.NewRegistry(),
		gracefulTimeout: 15 * time.Second,
	}
	if o.gracefulTimeout != nil {
		app.gracefulTimeout = *o.gracefulTimeout
	}

	store := o.store
	if store == nil && cfg.UseSharedCache() {
		rs, err := cacheredis.New(cfg.Cache, log)
		if err != nil {
			return nil, fmt.Errorf("credential cache: %w", err)
		}
		app.redis = rs
		store = rs
	}
	if store == nil {
		store = cache.NewMemory()
	}

	verifier := o.verifier
	if verifier == nil {
		if !cfg.JWT.Configured() {
			return nil, fmt.Errorf("no verifier: configure the jwt section or pass WithVerifier")
		}
		svc, err := jwt.NewService(&cfg.JWT)
		if err != nil {
			return nil, fmt.Errorf("jwt verifier: %w", err)
		}
		verifier = svc
	}

	authn, err := auth.New(&cfg.Auth, verifier,
		auth.WithCache(store),
		auth.WithLogger(log),
	)
	if err != nil {
		return nil, fmt.Errorf("authenticator: %w", err)
	}
	app.Authenticator = authn
	app.Registry.Register(authn)

	srv := server.New(cfg.Server, log)
	srv.ApplyMiddleware()
	srv.RegisterDefaultEndpoints(cfg.Name, app.healthChecker)
	app.Server = srv

	log.Info("application configured", map[string]interface{}{
		"config": cfg.Describe(),
	})
	return app, nil
}

// Protect returns the authentication middleware for the app's engine.
// Attach it to route groups that require a verified identity.
func (a *App) Protect() gin.HandlerFunc {
	return middleware.Auth(a.Authenticator, middleware.AuthConfig{})
}

// healthChecker reports component health for /health and /ready.
func (a *App) healthChecker(ctx context.Context) []observability.Health {
	if a.redis == nil {
		return nil
	}
	return []observability.Health{a.redis.CheckHealth(ctx)}
}

// Run starts the server, blocks until an OS signal or context
// cancellation, then shuts down gracefully.
func (a *App) Run(ctx context.Context) error {
	if err := a.Server.Start(ctx); err != nil {
		return err
	}
	if err := runHooks(ctx, a.onStart); err != nil {
		a.stop()
		return fmt.Errorf("onStart hook failed: %w", err)
	}

	a.Logger.Info("application ready", map[string]interface{}{
		"addr": a.Server.Addr(),
	})
	a.waitForSignal(ctx)

	return a.stop()
}

// Shutdown performs graceful shutdown. Use when managing your own lifecycle.
func (a *App) Shutdown(ctx context.Context) error {
	return a.stop()
}

// waitForSignal blocks until an interrupt/term signal or context cancellation.
func (a *App) waitForSignal(ctx context.Context) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	select {
	case sig := <-sigCh:
		a.Logger.Info("received shutdown signal", map[string]interface{}{
			"signal": sig.String(),
		})
	case <-ctx.Done():
		a.Logger.Info("context canceled, shutting down")
	}
}

// stop shuts down the server and closes cache connections within the
// graceful timeout.
func (a *App) stop() error {
	ctx, cancel := context.WithTimeout(context.Background(), a.gracefulTimeout)
	defer cancel()

	var shutdownErr error

	if err := runHooks(ctx, a.onStop); err != nil {
		a.Logger.Error("onStop hook error", map[string]interface{}{
			"error": err.Error(),
		})
		shutdownErr = err
	}

	if err := a.Server.Stop(ctx); err != nil {
		a.Logger.Error("server shutdown error", map[string]interface{}{
			"error": err.Error(),
		})
		if shutdownErr == nil {
			shutdownErr = err
		}
	}

	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			a.Logger.Error("cache close error", map[string]interface{}{
				"error": err.Error(),
			})
			if shutdownErr == nil {
				shutdownErr = err
			}
		}
	}

	a.Logger.Info("application shutdown complete")
	return shutdownErr
}
