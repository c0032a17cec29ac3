package store

import (
	"context"

	"fanbase/models"
)

// UserRepository persists user accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
	UpdateUserEmail(ctx context.Context, userID int64, email string) error
	DeleteUser(ctx context.Context, userID int64) error
}

// PlayerRepository reads the player directory.
type PlayerRepository interface {
	FindPlayerByID(ctx context.Context, playerID int64) (models.Player, error)
	SearchPlayersByName(ctx context.Context, name string) ([]models.Player, error)
}

// TeamRepository reads the team directory and rosters.
type TeamRepository interface {
	FindTeamByID(ctx context.Context, teamID int64) (models.Team, error)
	SearchTeamsByName(ctx context.Context, name string) ([]models.Team, error)
	ListTeamPlayers(ctx context.Context, teamID int64) ([]models.Player, error)
}

// FavoritesRepository maintains the user↔player and user↔team favorite
// relations. Add methods report the already-favorite sentinels when the
// relation exists; Remove methods report the not-favorite sentinels when
// it does not.
type FavoritesRepository interface {
	AddFavoritePlayer(ctx context.Context, userID, playerID int64) error
	RemoveFavoritePlayer(ctx context.Context, userID, playerID int64) error
	AddFavoriteTeam(ctx context.Context, userID, teamID int64) error
	RemoveFavoriteTeam(ctx context.Context, userID, teamID int64) error
	ListFavoritePlayers(ctx context.Context, userID int64) ([]models.Player, error)
	ListFavoriteTeams(ctx context.Context, userID int64) ([]models.Team, error)
}

// LeaderboardRepository aggregates favorite relations into top-5 rankings.
type LeaderboardRepository interface {
	TopPlayers(ctx context.Context) ([]models.FanCount, error)
	TopTeams(ctx context.Context) ([]models.FanCount, error)
}
