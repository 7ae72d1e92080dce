package bootstrap

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"

	"github.com/kbukum/authkit/auth"
	"github.com/kbukum/authkit/auth/jwt"
	"github.com/kbukum/authkit/config"
	"github.com/kbukum/authkit/logger"
)

func testConfig() *config.AppConfig {
	cfg := &config.AppConfig{Name: "test-service"}
	cfg.JWT.Secret = "test-secret"
	cfg.Logging.Level = "error"
	return cfg
}

func newTestApp(t *testing.T, cfg *config.AppConfig, opts ...Option) *App {
	t.Helper()
	gin.SetMode(gin.TestMode)
	opts = append(opts, WithLogger(logger.New(&logger.Config{Level: "error"}, "test")))
	app, err := NewApp(cfg, opts...)
	if err != nil {
		t.Fatalf("NewApp() error = %v", err)
	}
	return app
}

func TestNewApp_RequiresName(t *testing.T) {
	if _, err := NewApp(&config.AppConfig{}); err == nil {
		t.Fatal("expected config validation error")
	}
}

func TestNewApp_RequiresVerifier(t *testing.T) {
	cfg := &config.AppConfig{Name: "svc"}
	if _, err := NewApp(cfg); err == nil {
		t.Fatal("expected error without jwt config or WithVerifier")
	}
}

func TestNewApp_WiresAuthenticator(t *testing.T) {
	app := newTestApp(t, testConfig())
	if app.Authenticator == nil || app.Server == nil {
		t.Fatal("expected wired authenticator and server")
	}
	if _, ok := app.Registry.Get(app.Authenticator.Scheme()); !ok {
		t.Fatal("authenticator must be registered under its scheme")
	}
}

func TestApp_ProtectEndToEnd(t *testing.T) {
	cfg := testConfig()
	app := newTestApp(t, cfg)

	api := app.Server.GinEngine().Group("/api", app.Protect())
	api.GET("/me", func(c *gin.Context) {
		uid := c.GetString("user_id")
		c.String(http.StatusOK, uid)
	})

	svc, err := jwt.NewService(&cfg.JWT)
	if err != nil {
		t.Fatalf("jwt.NewService() error = %v", err)
	}
	tok, err := svc.Generate("alice", nil)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	w := httptest.NewRecorder()
	app.Server.GinEngine().ServeHTTP(w, req)
	if w.Code != http.StatusOK || w.Body.String() != "alice" {
		t.Fatalf("expected authenticated response, got %d %q", w.Code, w.Body.String())
	}

	// No credential: rejected.
	w = httptest.NewRecorder()
	app.Server.GinEngine().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/me", nil))
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without credential, got %d", w.Code)
	}
}

func TestApp_SharedCacheHealth(t *testing.T) {
	mini, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis: %v", err)
	}
	t.Cleanup(mini.Close)

	cfg := testConfig()
	cfg.Cache.Addr = mini.Addr()
	app := newTestApp(t, cfg)

	w := httptest.NewRecorder()
	app.Server.GinEngine().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected healthy app, got %d %q", w.Code, w.Body.String())
	}
}

func TestApp_RunAndShutdown(t *testing.T) {
	cfg := testConfig()
	cfg.Server.Host = "127.0.0.1"
	cfg.Server.Port = 0
	app := newTestApp(t, cfg, WithGracefulTimeout(2*time.Second))

	var started, stopped bool
	app.OnStart(func(ctx context.Context) error { started = true; return nil })
	app.OnStop(func(ctx context.Context) error { stopped = true; return nil })

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run() error = %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run() did not return after context cancellation")
	}
	if !started || !stopped {
		t.Fatalf("hooks not run: started=%v stopped=%v", started, stopped)
	}
}

func TestApp_WithVerifierOverride(t *testing.T) {
	cfg := &config.AppConfig{Name: "svc"}
	cfg.Logging.Level = "error"
	app := newTestApp(t, cfg, WithVerifier(auth.VerifierFunc(
		func(context.Context, string) error { return nil },
	)))
	if app.Authenticator == nil {
		t.Fatal("expected authenticator with custom verifier")
	}
}
