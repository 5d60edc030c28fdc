package cache_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"eventhub/internal/http-server/middleware/cache"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedis(t *testing.T) *redis.Client {
	t.Helper()

	mr := miniredis.RunT(t)

	return redis.NewClient(&redis.Options{Addr: mr.Addr()})
}

func TestResponsesCachesEventReads(t *testing.T) {
	t.Parallel()

	rdb := newTestRedis(t)

	hits := 0
	handler := cache.Responses(rdb, time.Minute)(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			hits++
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"status":"OK"}`))
		}),
	)

	first := httptest.NewRecorder()
	handler.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/events", nil))

	require.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, "MISS", first.Header().Get("X-Cache"))
	assert.Equal(t, 1, hits)

	second := httptest.NewRecorder()
	handler.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/events", nil))

	require.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, "HIT", second.Header().Get("X-Cache"))
	assert.Equal(t, `{"status":"OK"}`, second.Body.String())
	assert.Equal(t, 1, hits, "cached response must not reach the handler")
}

func TestResponsesSkipsNonEventPaths(t *testing.T) {
	t.Parallel()

	rdb := newTestRedis(t)

	hits := 0
	handler := cache.Responses(rdb, time.Minute)(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			hits++
			w.WriteHeader(http.StatusOK)
		}),
	)

	for i := 0; i < 2; i++ {
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/reservations", nil))
		require.Equal(t, http.StatusOK, rr.Code)
	}

	assert.Equal(t, 2, hits)
}

func TestResponsesDoesNotCacheErrors(t *testing.T) {
	t.Parallel()

	rdb := newTestRedis(t)

	hits := 0
	handler := cache.Responses(rdb, time.Minute)(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			hits++
			w.WriteHeader(http.StatusNotFound)
		}),
	)

	for i := 0; i < 2; i++ {
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/events/404", nil))
		require.Equal(t, http.StatusNotFound, rr.Code)
	}

	assert.Equal(t, 2, hits)
}

func TestInvalidatePurgesOnWrite(t *testing.T) {
	t.Parallel()

	rdb := newTestRedis(t)

	hits := 0
	read := cache.Responses(rdb, time.Minute)(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			hits++
			_, _ = w.Write([]byte(`{"status":"OK"}`))
		}),
	)
	write := cache.Invalidate(rdb)(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusCreated)
		}),
	)

	read.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/events", nil))
	read.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/events", nil))
	require.Equal(t, 1, hits)

	write.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/events", nil))

	read.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/events", nil))
	assert.Equal(t, 2, hits, "write must purge the cached listing")
}

func TestInvalidateKeepsCacheOnFailedWrite(t *testing.T) {
	t.Parallel()

	rdb := newTestRedis(t)

	hits := 0
	read := cache.Responses(rdb, time.Minute)(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			hits++
			_, _ = w.Write([]byte(`{"status":"OK"}`))
		}),
	)
	write := cache.Invalidate(rdb)(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		}),
	)

	read.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/events", nil))
	write.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/events/1", nil))
	read.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/events", nil))

	assert.Equal(t, 1, hits)
}
