package http

import (
	"context"
	"encoding/json"
	"net/http"

	"fanbase/internal/adapter"
	"fanbase/internal/logger"
	"fanbase/internal/service"
	"fanbase/models"
)

// ─────────────────────────────────────────────
// Func-field service mocks shared by the
// handler tests. A nil field means "succeed
// with the zero value".
// ─────────────────────────────────────────────

type mockAuthService struct {
	registerUserFn func(ctx context.Context, req models.RegisterRequest) (models.User, error)
	loginFn        func(ctx context.Context, username, password string) (models.User, error)
	createTokenFn  func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn   func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	if m.registerUserFn != nil {
		return m.registerUserFn(ctx, req)
	}
	return models.User{}, nil
}

func (m *mockAuthService) Login(ctx context.Context, username, password string) (models.User, error) {
	if m.loginFn != nil {
		return m.loginFn(ctx, username, password)
	}
	return models.User{}, nil
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	if m.createTokenFn != nil {
		return m.createTokenFn(ctx, user)
	}
	return models.Token{}, nil
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	if m.parseTokenFn != nil {
		return m.parseTokenFn(ctx, tokenString)
	}
	return models.Token{}, nil
}

type mockUserService struct {
	getUserFn     func(ctx context.Context, userID int64) (models.User, error)
	getProfileFn  func(ctx context.Context, userID int64) (models.Profile, error)
	updateEmailFn func(ctx context.Context, userID int64, email string) error
	deleteUserFn  func(ctx context.Context, userID int64) error
}

func (m *mockUserService) GetUser(ctx context.Context, userID int64) (models.User, error) {
	if m.getUserFn != nil {
		return m.getUserFn(ctx, userID)
	}
	return models.User{UserID: userID}, nil
}

func (m *mockUserService) GetProfile(ctx context.Context, userID int64) (models.Profile, error) {
	if m.getProfileFn != nil {
		return m.getProfileFn(ctx, userID)
	}
	return models.Profile{}, nil
}

func (m *mockUserService) UpdateEmail(ctx context.Context, userID int64, email string) error {
	if m.updateEmailFn != nil {
		return m.updateEmailFn(ctx, userID, email)
	}
	return nil
}

func (m *mockUserService) DeleteUser(ctx context.Context, userID int64) error {
	if m.deleteUserFn != nil {
		return m.deleteUserFn(ctx, userID)
	}
	return nil
}

type mockCatalogService struct {
	getPlayerFn     func(ctx context.Context, playerID int64) (models.Player, error)
	searchPlayersFn func(ctx context.Context, name string) ([]models.Player, error)
	getTeamFn       func(ctx context.Context, teamID int64) (models.Team, error)
	searchTeamsFn   func(ctx context.Context, name string) ([]models.Team, error)
}

func (m *mockCatalogService) GetPlayer(ctx context.Context, playerID int64) (models.Player, error) {
	if m.getPlayerFn != nil {
		return m.getPlayerFn(ctx, playerID)
	}
	return models.Player{PlayerID: playerID}, nil
}

func (m *mockCatalogService) SearchPlayers(ctx context.Context, name string) ([]models.Player, error) {
	if m.searchPlayersFn != nil {
		return m.searchPlayersFn(ctx, name)
	}
	return nil, nil
}

func (m *mockCatalogService) GetTeam(ctx context.Context, teamID int64) (models.Team, error) {
	if m.getTeamFn != nil {
		return m.getTeamFn(ctx, teamID)
	}
	return models.Team{TeamID: teamID}, nil
}

func (m *mockCatalogService) SearchTeams(ctx context.Context, name string) ([]models.Team, error) {
	if m.searchTeamsFn != nil {
		return m.searchTeamsFn(ctx, name)
	}
	return nil, nil
}

type mockFavoritesService struct {
	addFavoritePlayerFn    func(ctx context.Context, userID, playerID int64) error
	removeFavoritePlayerFn func(ctx context.Context, userID, playerID int64) error
	addFavoriteTeamFn      func(ctx context.Context, userID, teamID int64) error
	removeFavoriteTeamFn   func(ctx context.Context, userID, teamID int64) error
}

func (m *mockFavoritesService) AddFavoritePlayer(ctx context.Context, userID, playerID int64) error {
	if m.addFavoritePlayerFn != nil {
		return m.addFavoritePlayerFn(ctx, userID, playerID)
	}
	return nil
}

func (m *mockFavoritesService) RemoveFavoritePlayer(ctx context.Context, userID, playerID int64) error {
	if m.removeFavoritePlayerFn != nil {
		return m.removeFavoritePlayerFn(ctx, userID, playerID)
	}
	return nil
}

func (m *mockFavoritesService) AddFavoriteTeam(ctx context.Context, userID, teamID int64) error {
	if m.addFavoriteTeamFn != nil {
		return m.addFavoriteTeamFn(ctx, userID, teamID)
	}
	return nil
}

func (m *mockFavoritesService) RemoveFavoriteTeam(ctx context.Context, userID, teamID int64) error {
	if m.removeFavoriteTeamFn != nil {
		return m.removeFavoriteTeamFn(ctx, userID, teamID)
	}
	return nil
}

type mockLeaderboardService struct {
	topPlayersFn func(ctx context.Context) ([]models.FanCount, error)
	topTeamsFn   func(ctx context.Context) ([]models.FanCount, error)
}

func (m *mockLeaderboardService) TopPlayers(ctx context.Context) ([]models.FanCount, error) {
	if m.topPlayersFn != nil {
		return m.topPlayersFn(ctx)
	}
	return nil, nil
}

func (m *mockLeaderboardService) TopTeams(ctx context.Context) ([]models.FanCount, error) {
	if m.topTeamsFn != nil {
		return m.topTeamsFn(ctx)
	}
	return nil, nil
}

type mockStatsProvider struct {
	seasonAveragesFn func(ctx context.Context, playerID int64) (json.RawMessage, error)
}

func (m *mockStatsProvider) SeasonAverages(ctx context.Context, playerID int64) (json.RawMessage, error) {
	if m.seasonAveragesFn != nil {
		return m.seasonAveragesFn(ctx, playerID)
	}
	return nil, adapter.ErrStatsUnavailable
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

func newTestHandler(services *service.Services) *Handler {
	if services == nil {
		services = &service.Services{}
	}
	return &Handler{
		services: services,
		stats:    &mockStatsProvider{},
		logger:   logger.Nop(),
	}
}

// injectNopLogger puts a nop logger into the request context.
func injectNopLogger(r *http.Request) *http.Request {
	nop := logger.Nop()
	ctx := nop.Logger.WithContext(r.Context())
	return r.WithContext(ctx)
}
