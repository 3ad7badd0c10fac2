package seed_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"encly/internal/bench/seed"
)

type batchBody struct {
	URLs    []string `json:"urls"`
	TTLDays int      `json:"ttl_days"`
}

func TestRun_CollectsCodesInOrder(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		assert.Equal(t, "/links/batch", r.URL.Path)
		assert.Equal(t, "secret", r.Header.Get("X-Rate-Limit-Bypass"))

		var body batchBody
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, 3, body.TTLDays)

		links := make([]map[string]string, len(body.URLs))
		for i, u := range body.URLs {
			var n int
			_, err := fmt.Sscanf(u, "https://example.com/seed/%d", &n)
			require.NoError(t, err)
			links[i] = map[string]string{"short_code": fmt.Sprintf("c%05d", n)}
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]any{"links": links})
	}))
	defer srv.Close()

	codes, err := seed.Run(context.Background(), seed.Options{
		BaseURL:      srv.URL,
		Count:        25,
		BatchSize:    10,
		TTLDays:      3,
		BypassSecret: "secret",
		Workers:      4,
	})
	require.NoError(t, err)

	assert.Equal(t, int32(3), calls.Load())
	require.Len(t, codes, 25)
	for i, c := range codes {
		assert.Equal(t, fmt.Sprintf("c%05d", i), c)
	}
}

func TestRun_UnexpectedStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	_, err := seed.Run(context.Background(), seed.Options{BaseURL: srv.URL, Count: 5, BatchSize: 5})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status: 429")
}

func TestRun_InvalidBatchSize(t *testing.T) {
	_, err := seed.Run(context.Background(), seed.Options{Count: 5})
	assert.Error(t, err)
}
