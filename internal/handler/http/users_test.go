package http

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"

	"fanbase/internal/service"
	"fanbase/internal/store"
	"fanbase/internal/utils"
	"fanbase/models"
)

// newOwnedRequest builds a request that already passed the auth middleware:
// the chi {id} path parameter is set to pathID and the context carries
// authedID as the authenticated user.
func newOwnedRequest(method, target string, body io.Reader, pathID string, authedID int64) *http.Request {
	req := httptest.NewRequest(method, target, body)
	req = injectNopLogger(req)

	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", pathID)
	ctx := context.WithValue(req.Context(), chi.RouteCtxKey, rctx)
	ctx = context.WithValue(ctx, utils.UserIDCtxKey, authedID)

	return req.WithContext(ctx)
}

func TestGetUser(t *testing.T) {
	t.Run("foreign profile → 403", func(t *testing.T) {
		h := newTestHandler(nil)

		req := newOwnedRequest(http.MethodGet, "/users/2", nil, "2", 1)
		rr := httptest.NewRecorder()
		h.getUser(rr, req)

		assert.Equal(t, http.StatusForbidden, rr.Code)
		assert.JSONEq(t, `{"error":"Unauthorized access"}`, rr.Body.String())
	})

	t.Run("own profile → 200 with favorites", func(t *testing.T) {
		h := newTestHandler(&service.Services{
			UserService: &mockUserService{
				getProfileFn: func(ctx context.Context, userID int64) (models.Profile, error) {
					return models.Profile{
						User: models.User{UserID: userID, Username: "alice", Email: "alice@example.com"},
						FavoritePlayers: []models.Player{
							{PlayerID: 10, Name: "LeBron James", Picture: []byte("img")},
						},
						FavoriteTeams: []models.Team{
							{TeamID: 3, Name: "Los Angeles Lakers", Players: []models.Player{{PlayerID: 10, Name: "LeBron James"}}},
						},
					}, nil
				},
			},
		})

		req := newOwnedRequest(http.MethodGet, "/users/1", nil, "1", 1)
		rr := httptest.NewRecorder()
		h.getUser(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{
			"username": "alice",
			"email": "alice@example.com",
			"favorite_players": [
				{"player_id": 10, "player_name": "LeBron James", "picture": "aW1n"}
			],
			"favorite_teams": [
				{"team_id": 3, "team_name": "Los Angeles Lakers", "picture": null, "players": [
					{"player_id": 10, "player_name": "LeBron James", "picture": null}
				]}
			]
		}`, rr.Body.String())
	})
}

func TestUpdateUser(t *testing.T) {
	t.Run("foreign profile → 403", func(t *testing.T) {
		h := newTestHandler(nil)

		req := newOwnedRequest(http.MethodPut, "/users/2", strings.NewReader(`{"email":"x@y.z"}`), "2", 1)
		rr := httptest.NewRecorder()
		h.updateUser(rr, req)

		assert.Equal(t, http.StatusForbidden, rr.Code)
	})

	t.Run("success → 200", func(t *testing.T) {
		var gotEmail string
		h := newTestHandler(&service.Services{
			UserService: &mockUserService{
				updateEmailFn: func(ctx context.Context, userID int64, email string) error {
					gotEmail = email
					return nil
				},
			},
		})

		req := newOwnedRequest(http.MethodPut, "/users/1", strings.NewReader(`{"email":"new@example.com"}`), "1", 1)
		rr := httptest.NewRecorder()
		h.updateUser(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"message":"Profile updated successfully"}`, rr.Body.String())
		assert.Equal(t, "new@example.com", gotEmail)
	})

	t.Run("absent email leaves profile unchanged but still succeeds", func(t *testing.T) {
		updateCalled := false
		h := newTestHandler(&service.Services{
			UserService: &mockUserService{
				updateEmailFn: func(ctx context.Context, userID int64, email string) error {
					updateCalled = true
					return nil
				},
			},
		})

		req := newOwnedRequest(http.MethodPut, "/users/1", strings.NewReader(`{}`), "1", 1)
		rr := httptest.NewRecorder()
		h.updateUser(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.False(t, updateCalled)
	})

	t.Run("email taken → 409", func(t *testing.T) {
		h := newTestHandler(&service.Services{
			UserService: &mockUserService{
				updateEmailFn: func(ctx context.Context, userID int64, email string) error {
					return store.ErrEmailAlreadyRegistered
				},
			},
		})

		req := newOwnedRequest(http.MethodPut, "/users/1", strings.NewReader(`{"email":"taken@example.com"}`), "1", 1)
		rr := httptest.NewRecorder()
		h.updateUser(rr, req)

		assert.Equal(t, http.StatusConflict, rr.Code)
		assert.JSONEq(t, `{"error":"Email already registered"}`, rr.Body.String())
	})
}

func TestDeleteUser(t *testing.T) {
	t.Run("success → 200", func(t *testing.T) {
		h := newTestHandler(&service.Services{
			UserService: &mockUserService{},
		})

		req := newOwnedRequest(http.MethodDelete, "/users/1", nil, "1", 1)
		rr := httptest.NewRecorder()
		h.deleteUser(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"message":"User deleted successfully"}`, rr.Body.String())
	})

	t.Run("foreign profile → 403", func(t *testing.T) {
		h := newTestHandler(nil)

		req := newOwnedRequest(http.MethodDelete, "/users/2", nil, "2", 1)
		rr := httptest.NewRecorder()
		h.deleteUser(rr, req)

		assert.Equal(t, http.StatusForbidden, rr.Code)
	})
}
