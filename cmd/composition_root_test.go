package cmd

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func memoryConfig() Config {
	return Config{
		Storage:              StorageMemory,
		JWTSecret:            "s",
		DispatchThreshold:    10,
		AutoDispatchSchedule: "@every 1h",
		AutoDispatchLocation: "depot",
	}
}

func TestCompositionRoot_MemoryStorage(t *testing.T) {
	logger := slog.New(slog.DiscardHandler)

	app, err := NewCompositionRoot(t.Context(), memoryConfig(), logger)
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Close() })

	e, err := app.NewRouter()
	require.NoError(t, err)

	body := `{"sender":{"name":"a","phone":1},"receiver":{"name":"b","phone":2},` +
		`"deliveryCharge":3,"destination":"x","dateSent":"d"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/parcels", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	dispatched, err := app.Registry().DispatchPaid(context.Background(), "depot", 10)
	require.NoError(t, err)
	assert.Equal(t, 1, dispatched)

	manager := app.NewJobManager()
	require.NoError(t, manager.StartAll())
	manager.StopAll()
}

func TestCompositionRoot_RedisCache(t *testing.T) {
	mr := miniredis.RunT(t)
	config := memoryConfig()
	config.RedisURL = "redis://" + mr.Addr()

	app, err := NewCompositionRoot(t.Context(), config, slog.New(slog.DiscardHandler))
	require.NoError(t, err)
	require.NoError(t, app.Close())
}
