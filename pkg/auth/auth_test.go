package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seriousplay/MegaSpace/pkg/types"
)

func newIdentityServer(t *testing.T, validToken, userID string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/v1/user" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if r.Header.Get("Authorization") != "Bearer "+validToken {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"` + userID + `"}`))
	}))
}

func TestHTTPResolver(t *testing.T) {
	srv := newIdentityServer(t, "good-token", "user-1")
	defer srv.Close()

	resolver := NewHTTPResolver(IdentityServiceConfig{Endpoint: srv.URL})

	meta, err := resolver.Resolve(context.Background(), "good-token")
	require.NoError(t, err)
	assert.Equal(t, "user-1", meta.UserID)

	_, err = resolver.Resolve(context.Background(), "bad-token")
	assert.Error(t, err)

	_, err = resolver.Resolve(context.Background(), "")
	assert.Error(t, err)
}

type memCache struct {
	mu   sync.Mutex
	data map[string]string
}

func newMemCache() *memCache {
	return &memCache{data: make(map[string]string)}
}

func (c *memCache) Get(ctx context.Context, key string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.data[key], nil
}

func (c *memCache) SetEx(ctx context.Context, key, value string, expiresAt time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = value
	return nil
}

func (c *memCache) Expire(ctx context.Context, key string, expiration time.Duration) error {
	return nil
}

func (c *memCache) Del(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.data, key)
	return nil
}

type countingResolver struct {
	calls int
	meta  *types.UserTokenMeta
}

func (r *countingResolver) Resolve(ctx context.Context, token string) (*types.UserTokenMeta, error) {
	r.calls++
	return r.meta, nil
}

func TestCachedResolver(t *testing.T) {
	upstream := &countingResolver{meta: &types.UserTokenMeta{
		Appid:    types.DEFAULT_APPID,
		UserID:   "user-9",
		ExpireAt: time.Now().Add(time.Hour).Unix(),
	}}

	resolver := NewCachedResolver(upstream, newMemCache())

	for i := 0; i < 3; i++ {
		meta, err := resolver.Resolve(context.Background(), "token-x")
		require.NoError(t, err)
		assert.Equal(t, "user-9", meta.UserID)
	}

	assert.Equal(t, 1, upstream.calls)
}
