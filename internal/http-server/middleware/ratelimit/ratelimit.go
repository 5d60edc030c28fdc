// Package ratelimit provides a per-client token-bucket limiter.
package ratelimit

import (
	"net"
	"net/http"
	"sync"
	"time"

	"eventhub/internal/lib/api/response"

	"github.com/go-chi/render"
	"golang.org/x/time/rate"
)

type client struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

type Limiter struct {
	rps   rate.Limit
	burst int

	mu      sync.Mutex
	clients map[string]*client
}

// New creates a limiter granting rps tokens per second with the given
// burst per client key. Idle clients are dropped after a few minutes.
func New(rps float64, burst int) *Limiter {
	l := &Limiter{
		rps:     rate.Limit(rps),
		burst:   burst,
		clients: make(map[string]*client),
	}

	go l.cleanup()

	return l
}

func (l *Limiter) cleanup() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		now := time.Now()
		l.mu.Lock()
		for key, c := range l.clients {
			if now.Sub(c.lastSeen) > 3*time.Minute {
				delete(l.clients, key)
			}
		}
		l.mu.Unlock()
	}
}

func (l *Limiter) limiterFor(key string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	if c, ok := l.clients[key]; ok {
		c.lastSeen = time.Now()
		return c.limiter
	}

	lim := rate.NewLimiter(l.rps, l.burst)
	l.clients[key] = &client{limiter: lim, lastSeen: time.Now()}

	return lim
}

// Middleware limits requests per remote host, answering 429 when the
// client's bucket is empty.
func (l *Limiter) Middleware(next http.Handler) http.Handler {
	fn := func(w http.ResponseWriter, r *http.Request) {
		key := r.RemoteAddr
		if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
			key = host
		}

		if !l.limiterFor(key).Allow() {
			w.Header().Set("Retry-After", "1")
			render.Status(r, http.StatusTooManyRequests)
			render.JSON(w, r, response.Error("too many requests"))
			return
		}

		next.ServeHTTP(w, r)
	}

	return http.HandlerFunc(fn)
}
