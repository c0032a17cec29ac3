package store

import (
	"context"
	"fmt"

	"fanbase/internal/config"
	"fanbase/internal/logger"
)

// Storages aggregates every repository backed by the shared database
// connection.
type Storages struct {
	UserRepository        UserRepository
	PlayerRepository      PlayerRepository
	TeamRepository        TeamRepository
	FavoritesRepository   FavoritesRepository
	LeaderboardRepository LeaderboardRepository
}

// NewStorages connects to PostgreSQL, applies pending migrations, and wires
// every repository over the shared connection.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting to postgres: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("error applying migrations: %w", err)
	}

	return &Storages{
		UserRepository:        NewUserRepository(db, log),
		PlayerRepository:      NewPlayerRepository(db, log),
		TeamRepository:        NewTeamRepository(db, log),
		FavoritesRepository:   NewFavoritesRepository(db, log),
		LeaderboardRepository: NewLeaderboardRepository(db, log),
	}, nil
}
