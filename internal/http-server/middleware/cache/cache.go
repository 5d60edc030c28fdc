// Package cache provides a redis-backed response cache for event reads,
// invalidated whenever an event is mutated.
package cache

import (
	"bytes"
	"crypto/sha1"
	"encoding/gob"
	"encoding/hex"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "cache:events:"

type cachedBody struct {
	Status int
	Header map[string][]string
	Body   []byte
}

func cacheKey(r *http.Request) string {
	if r.Method != http.MethodGet || !strings.HasPrefix(r.URL.Path, "/events") {
		return ""
	}

	sum := sha1.Sum([]byte(r.Method + "|" + r.URL.Path + "|" + r.URL.RawQuery))

	return keyPrefix + hex.EncodeToString(sum[:])
}

// Responses serves cached 2xx bodies for event GETs and stores fresh ones
// with the given TTL.
func Responses(rdb *redis.Client, ttl time.Duration) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			key := cacheKey(r)
			if key == "" {
				next.ServeHTTP(w, r)
				return
			}

			if b, err := rdb.Get(r.Context(), key).Bytes(); err == nil && len(b) > 0 {
				var hit cachedBody
				if err = gob.NewDecoder(bytes.NewReader(b)).Decode(&hit); err == nil {
					for k, vals := range hit.Header {
						for _, v := range vals {
							w.Header().Add(k, v)
						}
					}
					w.Header().Set("X-Cache", "HIT")
					w.WriteHeader(hit.Status)
					_, _ = w.Write(hit.Body)
					return
				}
			}

			buf := &bytes.Buffer{}
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			ww.Tee(buf)
			ww.Header().Set("X-Cache", "MISS")

			next.ServeHTTP(ww, r)

			if ww.Status() >= 200 && ww.Status() < 300 {
				item := cachedBody{
					Status: ww.Status(),
					Header: ww.Header(),
					Body:   buf.Bytes(),
				}

				var out bytes.Buffer
				if err := gob.NewEncoder(&out).Encode(item); err == nil {
					_ = rdb.Set(r.Context(), key, out.Bytes(), ttl).Err()
				}
			}
		}

		return http.HandlerFunc(fn)
	}
}

// Invalidate purges all cached event responses after a successful
// mutation under /events.
func Invalidate(rdb *redis.Client) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodGet || !strings.HasPrefix(r.URL.Path, "/events") {
				next.ServeHTTP(w, r)
				return
			}

			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			if ww.Status() >= 200 && ww.Status() < 300 {
				iter := rdb.Scan(r.Context(), 0, keyPrefix+"*", 0).Iterator()
				for iter.Next(r.Context()) {
					_ = rdb.Del(r.Context(), iter.Val()).Err()
				}
			}
		}

		return http.HandlerFunc(fn)
	}
}
