package service

import (
	"context"

	"fanbase/models"
)

// AuthService covers the account credential lifecycle: registration, login,
// and the JWT token round trip.
type AuthService interface {
	RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error)
	Login(ctx context.Context, username, password string) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// UserService covers profile reads and mutations for authenticated users.
type UserService interface {
	GetUser(ctx context.Context, userID int64) (models.User, error)
	GetProfile(ctx context.Context, userID int64) (models.Profile, error)
	UpdateEmail(ctx context.Context, userID int64, email string) error
	DeleteUser(ctx context.Context, userID int64) error
}

// CatalogService covers the public player/team directory.
type CatalogService interface {
	GetPlayer(ctx context.Context, playerID int64) (models.Player, error)
	SearchPlayers(ctx context.Context, name string) ([]models.Player, error)
	GetTeam(ctx context.Context, teamID int64) (models.Team, error)
	SearchTeams(ctx context.Context, name string) ([]models.Team, error)
}

// FavoritesService maintains the favorite relations between users and
// players/teams, enforcing existence and uniqueness invariants before any
// mutation. Check order is fixed: entity-ID presence, then user existence,
// then entity existence, then relation state.
type FavoritesService interface {
	AddFavoritePlayer(ctx context.Context, userID, playerID int64) error
	RemoveFavoritePlayer(ctx context.Context, userID, playerID int64) error
	AddFavoriteTeam(ctx context.Context, userID, teamID int64) error
	RemoveFavoriteTeam(ctx context.Context, userID, teamID int64) error
}

// LeaderboardService surfaces top-5 entities ranked by favorite count.
type LeaderboardService interface {
	TopPlayers(ctx context.Context) ([]models.FanCount, error)
	TopTeams(ctx context.Context) ([]models.FanCount, error)
}
