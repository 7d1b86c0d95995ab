package api

import (
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/cricbase/cricbase-data/internal/cache"
	"github.com/cricbase/cricbase-data/internal/config"
)

func TestRouterRegistersRoutes(t *testing.T) {
	cfg := &config.Config{RateLimitEnabled: false}
	r := NewRouter(nil, cache.New(false), cfg)

	registered := make(map[string]bool)
	walker := func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		registered[method+" "+route] = true
		return nil
	}
	require.NoError(t, chi.Walk(r, walker))

	for _, want := range []string{
		"GET /health/",
		"GET /health/db",
		"GET /health/cache",
		"GET /api/v1/stats/{activity}",
		"GET /api/v1/players/{name}",
		"GET /api/v1/matches/{matchID}",
		"GET /api/v1/matches/{matchID}/deliveries",
		"GET /api/v1/matches/{matchID}/players",
	} {
		require.True(t, registered[want], "missing route %s", want)
	}
}
