package service

import (
	"context"

	"github.com/rs/zerolog"

	"fanbase/models"
)

// ─────────────────────────────────────────────
// Func-field repository mocks shared by the
// service tests. A nil field means "succeed
// with the zero value".
// ─────────────────────────────────────────────

type mockUserRepository struct {
	createUserFn         func(ctx context.Context, user models.User) (models.User, error)
	findUserByUsernameFn func(ctx context.Context, username string) (models.User, error)
	findUserByIDFn       func(ctx context.Context, userID int64) (models.User, error)
	updateUserEmailFn    func(ctx context.Context, userID int64, email string) error
	deleteUserFn         func(ctx context.Context, userID int64) error
}

func (m *mockUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if m.createUserFn != nil {
		return m.createUserFn(ctx, user)
	}
	return user, nil
}

func (m *mockUserRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	if m.findUserByUsernameFn != nil {
		return m.findUserByUsernameFn(ctx, username)
	}
	return models.User{}, nil
}

func (m *mockUserRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	if m.findUserByIDFn != nil {
		return m.findUserByIDFn(ctx, userID)
	}
	return models.User{UserID: userID}, nil
}

func (m *mockUserRepository) UpdateUserEmail(ctx context.Context, userID int64, email string) error {
	if m.updateUserEmailFn != nil {
		return m.updateUserEmailFn(ctx, userID, email)
	}
	return nil
}

func (m *mockUserRepository) DeleteUser(ctx context.Context, userID int64) error {
	if m.deleteUserFn != nil {
		return m.deleteUserFn(ctx, userID)
	}
	return nil
}

type mockPlayerRepository struct {
	findPlayerByIDFn      func(ctx context.Context, playerID int64) (models.Player, error)
	searchPlayersByNameFn func(ctx context.Context, name string) ([]models.Player, error)
}

func (m *mockPlayerRepository) FindPlayerByID(ctx context.Context, playerID int64) (models.Player, error) {
	if m.findPlayerByIDFn != nil {
		return m.findPlayerByIDFn(ctx, playerID)
	}
	return models.Player{PlayerID: playerID}, nil
}

func (m *mockPlayerRepository) SearchPlayersByName(ctx context.Context, name string) ([]models.Player, error) {
	if m.searchPlayersByNameFn != nil {
		return m.searchPlayersByNameFn(ctx, name)
	}
	return nil, nil
}

type mockTeamRepository struct {
	findTeamByIDFn      func(ctx context.Context, teamID int64) (models.Team, error)
	searchTeamsByNameFn func(ctx context.Context, name string) ([]models.Team, error)
	listTeamPlayersFn   func(ctx context.Context, teamID int64) ([]models.Player, error)
}

func (m *mockTeamRepository) FindTeamByID(ctx context.Context, teamID int64) (models.Team, error) {
	if m.findTeamByIDFn != nil {
		return m.findTeamByIDFn(ctx, teamID)
	}
	return models.Team{TeamID: teamID}, nil
}

func (m *mockTeamRepository) SearchTeamsByName(ctx context.Context, name string) ([]models.Team, error) {
	if m.searchTeamsByNameFn != nil {
		return m.searchTeamsByNameFn(ctx, name)
	}
	return nil, nil
}

func (m *mockTeamRepository) ListTeamPlayers(ctx context.Context, teamID int64) ([]models.Player, error) {
	if m.listTeamPlayersFn != nil {
		return m.listTeamPlayersFn(ctx, teamID)
	}
	return nil, nil
}

type mockFavoritesRepository struct {
	addFavoritePlayerFn    func(ctx context.Context, userID, playerID int64) error
	removeFavoritePlayerFn func(ctx context.Context, userID, playerID int64) error
	addFavoriteTeamFn      func(ctx context.Context, userID, teamID int64) error
	removeFavoriteTeamFn   func(ctx context.Context, userID, teamID int64) error
	listFavoritePlayersFn  func(ctx context.Context, userID int64) ([]models.Player, error)
	listFavoriteTeamsFn    func(ctx context.Context, userID int64) ([]models.Team, error)
}

func (m *mockFavoritesRepository) AddFavoritePlayer(ctx context.Context, userID, playerID int64) error {
	if m.addFavoritePlayerFn != nil {
		return m.addFavoritePlayerFn(ctx, userID, playerID)
	}
	return nil
}

func (m *mockFavoritesRepository) RemoveFavoritePlayer(ctx context.Context, userID, playerID int64) error {
	if m.removeFavoritePlayerFn != nil {
		return m.removeFavoritePlayerFn(ctx, userID, playerID)
	}
	return nil
}

func (m *mockFavoritesRepository) AddFavoriteTeam(ctx context.Context, userID, teamID int64) error {
	if m.addFavoriteTeamFn != nil {
		return m.addFavoriteTeamFn(ctx, userID, teamID)
	}
	return nil
}

func (m *mockFavoritesRepository) RemoveFavoriteTeam(ctx context.Context, userID, teamID int64) error {
	if m.removeFavoriteTeamFn != nil {
		return m.removeFavoriteTeamFn(ctx, userID, teamID)
	}
	return nil
}

func (m *mockFavoritesRepository) ListFavoritePlayers(ctx context.Context, userID int64) ([]models.Player, error) {
	if m.listFavoritePlayersFn != nil {
		return m.listFavoritePlayersFn(ctx, userID)
	}
	return nil, nil
}

func (m *mockFavoritesRepository) ListFavoriteTeams(ctx context.Context, userID int64) ([]models.Team, error) {
	if m.listFavoriteTeamsFn != nil {
		return m.listFavoriteTeamsFn(ctx, userID)
	}
	return nil, nil
}

func testContext() context.Context {
	l := zerolog.Nop()
	return l.WithContext(context.Background())
}
