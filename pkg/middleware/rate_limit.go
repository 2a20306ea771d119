package middleware

import (
	"net/http"
	"strconv"
	"time"

	apperrors "staybook/pkg/errors"
	httputil "staybook/pkg/http"
	"staybook/pkg/logger"

	"github.com/karlseguin/ccache/v3"
	"golang.org/x/time/rate"
)

const maxTrackedClients = 10_000

// ClientRateLimiter hands out one token bucket per client address. A bucket
// holds limit tokens and refills at limit per window. The address comes from
// the connection peer unless that peer is one of proxies.
type ClientRateLimiter struct {
	limiters *ccache.Cache[*rate.Limiter]
	limit    int
	window   time.Duration
	proxies  httputil.TrustedProxies
	log      *logger.Logger

	// Reject writes the 429 response. Defaults to the JSON error body.
	Reject http.HandlerFunc
}

func NewClientRateLimiter(limit int, window time.Duration, proxies httputil.TrustedProxies, log *logger.Logger) *ClientRateLimiter {
	return &ClientRateLimiter{
		limiters: ccache.New(ccache.Configure[*rate.Limiter]().MaxSize(maxTrackedClients)),
		limit:    limit,
		window:   window,
		proxies:  proxies,
		log:      log,
	}
}

// Allow consumes a token for client. An empty client is never limited.
func (rl *ClientRateLimiter) Allow(client string) bool {
	if client == "" {
		return true
	}

	// an idle bucket refills completely within one window, so dropping it
	// after that loses nothing
	item, err := rl.limiters.Fetch(client, rl.window, func() (*rate.Limiter, error) {
		return rate.NewLimiter(rate.Every(rl.window/time.Duration(rl.limit)), rl.limit), nil
	})
	if err != nil {
		return true
	}
	item.Extend(rl.window)
	return item.Value().Allow()
}

func (rl *ClientRateLimiter) Stop() {
	rl.limiters.Stop()
}

func RateLimit(limiter *ClientRateLimiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			client := httputil.ClientAddress(r, limiter.proxies)
			if limiter.Allow(client) {
				next.ServeHTTP(w, r)
				return
			}

			limiter.log.Warn("Rate limit exceeded",
				"request_id", RequestIDFromContext(r.Context()),
				"client", client,
				"path", r.URL.Path,
			)
			w.Header().Set("Retry-After", retryAfter(limiter.window, limiter.limit))
			if limiter.Reject != nil {
				limiter.Reject(w, r)
				return
			}
			_ = httputil.WriteError(w, apperrors.TooManyRequests("Rate limit exceeded"))
		})
	}
}

func retryAfter(window time.Duration, limit int) string {
	secs := int((window/time.Duration(limit) + time.Second - 1) / time.Second)
	if secs < 1 {
		secs = 1
	}
	return strconv.Itoa(secs)
}
