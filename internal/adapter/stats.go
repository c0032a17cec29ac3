// Package adapter provides clients for external collaborators of the
// fanbase server.
//
// The only collaborator today is the season-average stats provider consulted
// by the player detail endpoint. The provider is out of process and best
// effort: a failed or slow lookup degrades to null stats instead of failing
// the request, so the [StatsProvider] interface reports errors for the
// caller to log, never to propagate to the client.
package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

var (
	// ErrStatsUnavailable is returned when the stats provider responds with
	// a non-2xx status or cannot be reached.
	ErrStatsUnavailable = errors.New("season-average stats unavailable")
)

// StatsProvider looks up season-average statistics for a player from an
// external data source. The returned structure is opaque to this server and
// is forwarded to API clients untouched.
type StatsProvider interface {
	SeasonAverages(ctx context.Context, playerID int64) (json.RawMessage, error)
}

// StatsClientConfig configures the HTTP stats client.
type StatsClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

type statsClient struct {
	client *resty.Client
}

// NewStatsClient constructs a [StatsProvider] backed by an HTTP API exposing
// GET {base}/players/{id}/season-averages.
func NewStatsClient(cfg StatsClientConfig) StatsProvider {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 5 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &statsClient{client: cli}
}

func (s *statsClient) SeasonAverages(ctx context.Context, playerID int64) (json.RawMessage, error) {
	resp, err := s.client.R().
		SetContext(ctx).
		Get("/players/" + strconv.FormatInt(playerID, 10) + "/season-averages")
	if err != nil {
		return nil, fmt.Errorf("season-averages request: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("%w: status %d", ErrStatsUnavailable, resp.StatusCode())
	}

	body := resp.Body()
	if !json.Valid(body) {
		return nil, fmt.Errorf("%w: malformed response body", ErrStatsUnavailable)
	}

	return json.RawMessage(body), nil
}

// NopStatsProvider always reports the stats source as unavailable. Used when
// no provider base URL is configured.
type NopStatsProvider struct{}

func (NopStatsProvider) SeasonAverages(ctx context.Context, playerID int64) (json.RawMessage, error) {
	return nil, ErrStatsUnavailable
}
