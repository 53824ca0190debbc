// Package bootstrap runs the quiz server until it is interrupted and shuts it down.
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"
)

const DefaultShutdownTimeout = 10 * time.Second

type shutdownHook struct {
	name string
	fn   func(ctx context.Context) error
}

// App manages application lifecycle with graceful shutdown support.
type App struct {
	mu              sync.Mutex
	hooks           []shutdownHook
	shutdownTimeout time.Duration
	logger          *slog.Logger
}

type Option func(*App)

func WithShutdownTimeout(timeout time.Duration) Option {
	return func(a *App) {
		a.shutdownTimeout = timeout
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(a *App) {
		a.logger = logger
	}
}

func New(opts ...Option) *App {
	a := &App{
		shutdownTimeout: DefaultShutdownTimeout,
		logger:          slog.Default(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// AddShutdownHook registers a function to call during graceful shutdown.
// Hooks run in reverse order (LIFO). Thread-safe.
func (a *App) AddShutdownHook(name string, fn func(ctx context.Context) error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.hooks = append(a.hooks, shutdownHook{name: name, fn: fn})
}

// Run executes run until it returns or the process receives SIGINT or SIGTERM.
// On a signal, the shutdown hooks run within the shutdown timeout.
// If run returns an error before a signal, that error is returned.
func (a *App) Run(ctx context.Context, run func(ctx context.Context) error) error {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	errCh := make(chan error, 1)
	go func() {
		if err := run(ctx); err != nil {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("shutting down")
		shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), a.shutdownTimeout)
		defer cancelShutdown()
		return a.shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}

// Serve runs the server and registers its graceful shutdown as a hook.
// It blocks like Run.
func (a *App) Serve(ctx context.Context, server *http.Server) error {
	a.AddShutdownHook("http server", server.Shutdown)
	return a.Run(ctx, func(ctx context.Context) error {
		a.logger.Info("starting server", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server.ListenAndServe > %w", err)
		}
		return nil
	})
}

func (a *App) shutdown(ctx context.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	var errs []error
	for i := len(a.hooks) - 1; i >= 0; i-- {
		hook := a.hooks[i]
		if err := hook.fn(ctx); err != nil {
			a.logger.Error("shutdown hook failed", "hook", hook.name, "error", err)
			errs = append(errs, fmt.Errorf("%s > %w", hook.name, err))
		}
	}
	return errors.Join(errs...)
}
