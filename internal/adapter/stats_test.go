package adapter

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsClient_SeasonAverages(t *testing.T) {
	t.Run("forwards the provider payload untouched", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/players/10/season-averages", r.URL.Path)
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"pts":27.1,"seasons":21}`))
		}))
		defer srv.Close()

		client := NewStatsClient(StatsClientConfig{BaseURL: srv.URL, Timeout: time.Second})
		stats, err := client.SeasonAverages(context.Background(), 10)

		require.NoError(t, err)
		assert.JSONEq(t, `{"pts":27.1,"seasons":21}`, string(stats))
	})

	t.Run("non-2xx status → ErrStatsUnavailable", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer srv.Close()

		client := NewStatsClient(StatsClientConfig{BaseURL: srv.URL, Timeout: time.Second})
		_, err := client.SeasonAverages(context.Background(), 10)

		assert.ErrorIs(t, err, ErrStatsUnavailable)
	})

	t.Run("malformed body → ErrStatsUnavailable", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"pts":`))
		}))
		defer srv.Close()

		client := NewStatsClient(StatsClientConfig{BaseURL: srv.URL, Timeout: time.Second})
		_, err := client.SeasonAverages(context.Background(), 10)

		assert.ErrorIs(t, err, ErrStatsUnavailable)
	})

	t.Run("unreachable provider reports an error", func(t *testing.T) {
		client := NewStatsClient(StatsClientConfig{BaseURL: "http://127.0.0.1:1", Timeout: 200 * time.Millisecond})
		_, err := client.SeasonAverages(context.Background(), 10)

		assert.Error(t, err)
	})
}

func TestNopStatsProvider(t *testing.T) {
	_, err := NopStatsProvider{}.SeasonAverages(context.Background(), 10)
	assert.ErrorIs(t, err, ErrStatsUnavailable)
}
