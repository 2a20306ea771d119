package middleware

import (
	"bytes"
	"net/http"
	"time"

	"github.com/karlseguin/ccache/v3"
)

const IdempotencyKeyHeader = "Idempotency-Key"

type IdempotencyStore interface {
	Get(key string) (*CachedResponse, bool)
	Set(key string, response *CachedResponse)
	Stop()
}

type CachedResponse struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
	CreatedAt  time.Time
}

// CacheIdempotencyStore keeps replayable responses in a bounded LRU. Entries
// expire after ttl; the least recently used are evicted past maxSize.
type CacheIdempotencyStore struct {
	cache *ccache.Cache[*CachedResponse]
	ttl   time.Duration
}

func NewCacheIdempotencyStore(ttl time.Duration, maxSize int64) *CacheIdempotencyStore {
	return &CacheIdempotencyStore{
		cache: ccache.New(ccache.Configure[*CachedResponse]().MaxSize(maxSize)),
		ttl:   ttl,
	}
}

func (s *CacheIdempotencyStore) Get(key string) (*CachedResponse, bool) {
	item := s.cache.Get(key)
	if item == nil || item.Expired() {
		return nil, false
	}
	return item.Value(), true
}

func (s *CacheIdempotencyStore) Set(key string, response *CachedResponse) {
	response.CreatedAt = time.Now()
	s.cache.Set(key, response, s.ttl)
}

func (s *CacheIdempotencyStore) Stop() {
	s.cache.Stop()
}

type responseCapture struct {
	http.ResponseWriter
	statusCode int
	body       *bytes.Buffer
	failed     bool
}

func (rc *responseCapture) WriteHeader(statusCode int) {
	rc.statusCode = statusCode
	rc.ResponseWriter.WriteHeader(statusCode)
}

// Write records only what reached the client. A rejected write, such as one
// after the request timed out, marks the capture as not replayable.
func (rc *responseCapture) Write(b []byte) (int, error) {
	n, err := rc.ResponseWriter.Write(b)
	rc.body.Write(b[:n])
	if err != nil {
		rc.failed = true
	}
	return n, err
}

// Idempotency replays the stored response for a repeated Idempotency-Key.
// Keys are scoped to method and path, and only 2xx responses are stored, so
// a rejected submission can be retried with the same key.
func Idempotency(store IdempotencyStore) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := r.Header.Get(IdempotencyKeyHeader)
			if key == "" {
				next.ServeHTTP(w, r)
				return
			}
			key = r.Method + " " + r.URL.Path + " " + key

			if cached, found := store.Get(key); found {
				replay(w, cached)
				return
			}

			capture := &responseCapture{
				ResponseWriter: w,
				statusCode:     http.StatusOK,
				body:           &bytes.Buffer{},
			}
			next.ServeHTTP(capture, r)

			if capture.failed || r.Context().Err() != nil {
				return
			}
			if capture.statusCode < 200 || capture.statusCode >= 300 {
				return
			}
			headers := w.Header().Clone()
			headers.Del(RequestIDHeader)
			store.Set(key, &CachedResponse{
				StatusCode: capture.statusCode,
				Headers:    headers,
				Body:       capture.body.Bytes(),
			})
		})
	}
}

func replay(w http.ResponseWriter, cached *CachedResponse) {
	for key, values := range cached.Headers {
		for _, value := range values {
			w.Header().Add(key, value)
		}
	}
	w.Header().Set("Idempotent-Replayed", "true")
	w.WriteHeader(cached.StatusCode)
	_, _ = w.Write(cached.Body)
}
