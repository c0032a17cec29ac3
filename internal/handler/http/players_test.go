package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"

	"fanbase/internal/service"
	"fanbase/internal/store"
	"fanbase/models"
)

// newCatalogRequest builds a public request with the chi {id} path parameter
// set.
func newCatalogRequest(target, pathID string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	req = injectNopLogger(req)

	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", pathID)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestGetPlayer(t *testing.T) {
	t.Run("unknown player → 404", func(t *testing.T) {
		h := newTestHandler(&service.Services{
			CatalogService: &mockCatalogService{
				getPlayerFn: func(ctx context.Context, playerID int64) (models.Player, error) {
					return models.Player{}, store.ErrPlayerNotFound
				},
			},
		})

		rr := httptest.NewRecorder()
		h.getPlayer(rr, newCatalogRequest("/players/99", "99"))

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.JSONEq(t, `{"message":"Player does not exist"}`, rr.Body.String())
	})

	t.Run("stats source down degrades to null stats", func(t *testing.T) {
		h := newTestHandler(&service.Services{
			CatalogService: &mockCatalogService{
				getPlayerFn: func(ctx context.Context, playerID int64) (models.Player, error) {
					return models.Player{PlayerID: playerID, Name: "LeBron James"}, nil
				},
			},
		})

		rr := httptest.NewRecorder()
		h.getPlayer(rr, newCatalogRequest("/players/10", "10"))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{
			"player": {"player_id": 10, "player_name": "LeBron James", "picture": null},
			"picture": null,
			"stats": null
		}`, rr.Body.String())
	})

	t.Run("stats from the external source are forwarded untouched", func(t *testing.T) {
		h := newTestHandler(&service.Services{
			CatalogService: &mockCatalogService{
				getPlayerFn: func(ctx context.Context, playerID int64) (models.Player, error) {
					return models.Player{PlayerID: playerID, Name: "LeBron James"}, nil
				},
			},
		})
		h.stats = &mockStatsProvider{
			seasonAveragesFn: func(ctx context.Context, playerID int64) (json.RawMessage, error) {
				return json.RawMessage(`{"pts":27.1,"seasons":21}`), nil
			},
		}

		rr := httptest.NewRecorder()
		h.getPlayer(rr, newCatalogRequest("/players/10", "10"))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{
			"player": {"player_id": 10, "player_name": "LeBron James", "picture": null},
			"picture": null,
			"stats": {"pts": 27.1, "seasons": 21}
		}`, rr.Body.String())
	})
}

func TestSearchPlayers_TableTest(t *testing.T) {
	tests := []struct {
		name           string
		target         string
		searchFn       func(ctx context.Context, name string) ([]models.Player, error)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "no query → 400",
			target:         "/players/search",
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"message":"No search query provided"}`,
		},
		{
			name:   "no matches → 404",
			target: "/players/search?name=nobody",
			searchFn: func(ctx context.Context, name string) ([]models.Player, error) {
				return nil, nil
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"message":"No players found matching the search criteria"}`,
		},
		{
			name:   "matches → 200 with flat entries",
			target: "/players/search?name=james",
			searchFn: func(ctx context.Context, name string) ([]models.Player, error) {
				assert.Equal(t, "james", name)
				return []models.Player{{PlayerID: 10, Name: "LeBron James"}}, nil
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"players":[{"id":10,"name":"LeBron James","picture":null}]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(&service.Services{
				CatalogService: &mockCatalogService{searchPlayersFn: tt.searchFn},
			})

			req := injectNopLogger(httptest.NewRequest(http.MethodGet, tt.target, nil))
			rr := httptest.NewRecorder()
			h.searchPlayers(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.JSONEq(t, tt.expectedBody, rr.Body.String())
		})
	}
}
