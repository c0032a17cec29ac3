package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"fanbase/internal/service"
	"fanbase/models"
)

func TestTopPlayers(t *testing.T) {
	h := newTestHandler(&service.Services{
		LeaderboardService: &mockLeaderboardService{
			topPlayersFn: func(ctx context.Context) ([]models.FanCount, error) {
				return []models.FanCount{
					{ID: 10, Name: "LeBron James", FanCount: 42, Picture: []byte("img")},
					{ID: 11, Name: "Stephen Curry", FanCount: 17},
				}, nil
			},
		},
	})

	req := injectNopLogger(httptest.NewRequest(http.MethodGet, "/top-players", nil))
	rr := httptest.NewRecorder()
	h.topPlayers(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	// the leaderboard is a bare JSON array, not an object wrapper
	assert.JSONEq(t, `[
		{"id": 10, "name": "LeBron James", "fan_count": 42, "picture": "aW1n"},
		{"id": 11, "name": "Stephen Curry", "fan_count": 17, "picture": null}
	]`, rr.Body.String())
}

func TestTopTeams_Empty(t *testing.T) {
	h := newTestHandler(&service.Services{
		LeaderboardService: &mockLeaderboardService{
			topTeamsFn: func(ctx context.Context) ([]models.FanCount, error) {
				return []models.FanCount{}, nil
			},
		},
	})

	req := injectNopLogger(httptest.NewRequest(http.MethodGet, "/top-teams", nil))
	rr := httptest.NewRecorder()
	h.topTeams(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[]`, rr.Body.String())
}

func TestHome(t *testing.T) {
	h := newTestHandler(nil)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()
	h.home(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "hey", rr.Body.String())
}
