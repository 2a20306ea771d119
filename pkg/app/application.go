package app

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	bookingserrors "staybook/internal/bookings/errors"
	"staybook/internal/properties/handler"
	"staybook/pkg/config"
	"staybook/pkg/contracts"
	httputil "staybook/pkg/http"
	"staybook/pkg/middleware"
	"staybook/pkg/model"

	"github.com/julienschmidt/httprouter"
)

const idempotencyCacheSize = 10_000

type Application struct {
	cfg              *config.Config
	server           *http.Server
	idempotencyStore *middleware.CacheIdempotencyStore
	rateLimiter      *middleware.ClientRateLimiter
	healthHandler    http.Handler
	appHTTPHandler   http.Handler
	closers          []io.Closer
}

func NewApplication(cfg *config.Config) *Application {
	return &Application{cfg: cfg}
}

// SetApp wires the health endpoints and every application handler behind the
// middleware chain. database backs the readiness check and may be nil.
func (a *Application) SetApp(database contracts.Pinger, appHandlers ...contracts.Handler) {
	a.setHealthHandler(database)
	a.setAppHandler(appHandlers)
	a.setAppServer()
}

// OnShutdown registers resources closed after the server stops, in order.
func (a *Application) OnShutdown(closers ...io.Closer) {
	a.closers = append(a.closers, closers...)
}

// Handler returns the fully wired HTTP handler. Call SetApp first.
func (a *Application) Handler() http.Handler {
	return a.server.Handler
}

func (a *Application) setHealthHandler(database contracts.Pinger) {
	healthRouter := httprouter.New()
	handler.NewHealthHandler(database, a.cfg.Log).RegisterRoutes(healthRouter)

	var healthHTTPHandler http.Handler = healthRouter
	healthHTTPHandler = middleware.RequestLogging(a.cfg.Log)(healthHTTPHandler)
	healthHTTPHandler = middleware.Recovery(a.cfg.Log)(healthHTTPHandler)
	a.healthHandler = healthHTTPHandler
	a.cfg.Log.Info("Health endpoints configured with minimal middleware (Recovery + Logging only)")
}

func (a *Application) setAppHandler(appHandlers []contracts.Handler) {
	appRouter := httprouter.New()
	for _, h := range appHandlers {
		h.RegisterRoutes(appRouter)
	}

	a.idempotencyStore = middleware.NewCacheIdempotencyStore(a.cfg.IdempotencyTTL, idempotencyCacheSize)
	// Validate has already rejected a malformed list.
	proxies, _ := httputil.ParseTrustedProxies(a.cfg.TrustedProxies)
	a.rateLimiter = middleware.NewClientRateLimiter(a.cfg.RateLimitRequests, a.cfg.RateLimitWindow, proxies, a.cfg.Log)
	a.rateLimiter.Reject = a.rejectRateLimited

	var appHTTPHandler http.Handler = appRouter
	appHTTPHandler = middleware.ForMethods(middleware.Idempotency(a.idempotencyStore), http.MethodPost)(appHTTPHandler)
	appHTTPHandler = middleware.RequestTimeout(a.cfg.RequestTimeout)(appHTTPHandler)
	appHTTPHandler = middleware.ForMethods(middleware.RateLimit(a.rateLimiter), http.MethodPost)(appHTTPHandler)
	appHTTPHandler = middleware.MaxRequestSize(int64(a.cfg.MaxRequestSize))(appHTTPHandler)
	appHTTPHandler = middleware.RequestLogging(a.cfg.Log)(appHTTPHandler)
	appHTTPHandler = middleware.Recovery(a.cfg.Log)(appHTTPHandler)
	a.appHTTPHandler = appHTTPHandler
	a.cfg.Log.Info("Application endpoints configured with full middleware stack")
}

// rejectRateLimited answers in the booking envelope, the only POST surface.
func (a *Application) rejectRateLimited(w http.ResponseWriter, r *http.Request) {
	body := model.BookingResponse{Success: false, Message: bookingserrors.MessageRateLimited}
	if err := httputil.WriteJSON(w, http.StatusTooManyRequests, body); err != nil {
		a.cfg.Log.Error("failed to write JSON response", "handler", "RateLimit", "operation", "WriteJSON", "error", err)
	}
}

func (a *Application) setAppServer() {
	mux := http.NewServeMux()
	mux.Handle("/health", a.healthHandler)
	mux.Handle("/ready", a.healthHandler)
	mux.Handle("/", a.appHTTPHandler)

	a.server = &http.Server{
		Addr:         ":" + a.cfg.Port,
		Handler:      mux,
		ReadTimeout:  a.cfg.ReadTimeout,
		WriteTimeout: a.cfg.WriteTimeout,
		IdleTimeout:  a.cfg.IdleTimeout,
	}

	a.cfg.Log.Info("HTTP server configured", "port", a.cfg.Port)
}

func (a *Application) Run() {
	serverErrors := make(chan error, 1)

	go func() {
		a.cfg.Log.Info("Starting HTTP server", "address", a.server.Addr)
		serverErrors <- a.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			a.cfg.Log.Fatal("HTTP server failed", "error", err)
		}

	case sig := <-shutdown:
		a.cfg.Log.Info("Shutdown signal received", "signal", sig)
		a.Shutdown()
	}
}

// Shutdown drains in-flight requests, then stops background workers and
// closes registered resources.
func (a *Application) Shutdown() {
	a.cfg.Log.Info("Starting graceful shutdown...")

	ctx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()

	if err := a.server.Shutdown(ctx); err != nil {
		a.cfg.Log.Error("Server shutdown failed", "error", err)
		if err := a.server.Close(); err != nil {
			a.cfg.Log.Error("Could not stop server gracefully", "error", err)
		}
	}

	a.cfg.Log.Info("Stopping background workers...")
	a.idempotencyStore.Stop()
	a.rateLimiter.Stop()
	for _, c := range a.closers {
		if err := c.Close(); err != nil {
			a.cfg.Log.Error("Failed to close resource", "error", err)
		}
	}
	a.cfg.Log.Info("Background workers stopped")

	a.cfg.GracefulShutdown()
	a.cfg.Log.Info("Server stopped gracefully")
}
