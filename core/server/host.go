package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"sync"
	"time"

	"insightflow-api/core/middleware/rayid"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
)

// Module is the root composition module: it mounts every route of the application.
type Module interface {
	LoadAll(router fiber.Router) error
}

// Options tune a Host beyond the bootstrap configuration calls.
type Options struct {
	// Guards run on the prefixed route group before any module route.
	Guards []fiber.Handler
	// ShutdownTimeout bounds the graceful shutdown. Zero waits for open connections
	// without a deadline.
	ShutdownTimeout time.Duration
}

// ListenInfo describes a bound listener.
type ListenInfo struct {
	Host    string
	Port    string
	BaseURL string
}

// Host is the application host. Configuration calls only record settings; the
// fiber application is materialised once, on the first App or Listen call, in a
// fixed order: recover, RayID, request log, CORS, unprefixed routes, guards, module.
type Host struct {
	app    *fiber.App
	module Module
	logger *zap.Logger
	opts   Options

	prefix     string
	cors       fiber.Handler
	publishers []func(fiber.Router) error
	onListen   []func(ListenInfo)

	initOnce sync.Once
	initErr  error
}

// NewHost creates an application host wired against the given composition module.
func NewHost(module Module, logg *zap.Logger, opts Options) (*Host, error) {
	if module == nil {
		return nil, errors.New("composition module is nil")
	}
	if logg == nil {
		logg = zap.NewNop()
	}

	h := &Host{
		module: module,
		logger: logg,
		opts:   opts,
	}

	h.app = fiber.New(fiber.Config{
		DisableStartupMessage: true, // startup lines are logged by the bootstrap
		ErrorHandler:          ErrorHandler,
	})

	return h, nil
}

// SetGlobalPrefix mounts every module route under "/<prefix>".
// Surrounding slashes are ignored; an empty prefix mounts at the root.
func (h *Host) SetGlobalPrefix(prefix string) {
	h.prefix = NormalizePath(prefix)
}

// GlobalPrefix returns the normalised global prefix.
func (h *Host) GlobalPrefix() string {
	return h.prefix
}

// EnableCORS restricts cross-origin access to exactly one origin, credentials allowed.
func (h *Host) EnableCORS(origin string) error {
	if err := ValidateOrigin(origin); err != nil {
		return err
	}
	h.cors = newCORS(origin)
	return nil
}

// Publish registers routes outside the global prefix. They are mounted before the
// prefixed group, so guards on the group never apply to them.
func (h *Host) Publish(register func(router fiber.Router) error) {
	h.publishers = append(h.publishers, register)
}

// OnListen registers a callback invoked once the listener is bound.
func (h *Host) OnListen(fn func(ListenInfo)) {
	h.onListen = append(h.onListen, fn)
}

// App materialises the host if needed and returns the underlying fiber application.
func (h *Host) App() (*fiber.App, error) {
	h.initOnce.Do(func() {
		h.initErr = h.materialize()
	})
	if h.initErr != nil {
		return nil, h.initErr
	}
	return h.app, nil
}

func (h *Host) materialize() error {
	h.app.Use(recover.New(recover.Config{
		EnableStackTrace:  true,
		StackTraceHandler: panicLogger(h.logger),
	}))
	// RayID must be first to trace everything
	h.app.Use(rayid.New())
	h.app.Use(requestLogger(h.logger))

	if h.cors != nil {
		h.app.Use(h.cors)
	}

	for _, publish := range h.publishers {
		if err := publish(h.app); err != nil {
			return fmt.Errorf("failed to publish routes: %w", err)
		}
	}

	var router fiber.Router = h.app
	if h.prefix != "" {
		router = h.app.Group("/" + h.prefix)
	}
	for _, guard := range h.opts.Guards {
		router.Use(guard)
	}

	if err := h.module.LoadAll(router); err != nil {
		return fmt.Errorf("failed to load composition module: %w", err)
	}

	h.app.Hooks().OnListen(func(ld fiber.ListenData) error {
		info := ListenInfo{
			Host:    ld.Host,
			Port:    ld.Port,
			BaseURL: fmt.Sprintf("http://localhost:%s", ld.Port),
		}
		for _, fn := range h.onListen {
			fn(info)
		}
		return nil
	})

	return nil
}

// Listen binds the host to the port and serves until ctx is cancelled or the
// server fails. Cancellation triggers a graceful shutdown and a nil return.
func (h *Host) Listen(ctx context.Context, port int) error {
	app, err := h.App()
	if err != nil {
		return err
	}

	addr := fmt.Sprintf(":%d", port)
	// IPv4 only, as fiber's default network. Clients resolving localhost to ::1 must
	// fall back to 127.0.0.1.
	ln, err := net.Listen(fiber.NetworkTCP4, addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- app.Listener(ln)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server stopped: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	h.logger.Info("Shutting down server...")
	var shutdownErr error
	if h.opts.ShutdownTimeout > 0 {
		shutdownErr = app.ShutdownWithTimeout(h.opts.ShutdownTimeout)
	} else {
		shutdownErr = app.Shutdown()
	}
	// Closing the listener also stops a server that had not reached Serve yet.
	_ = ln.Close()

	if err := <-errCh; err != nil {
		return fmt.Errorf("server stopped: %w", err)
	}
	if shutdownErr != nil {
		return fmt.Errorf("failed to shut down server: %w", shutdownErr)
	}
	return nil
}
