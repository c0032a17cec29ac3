package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"fanbase/internal/logger"
	"fanbase/models"
)

// playerRepository is the PostgreSQL-backed implementation of
// [PlayerRepository]. The player directory is read-mostly; this repository
// exposes lookups only.
type playerRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewPlayerRepository constructs a [PlayerRepository] backed by the provided
// database connection and logger.
func NewPlayerRepository(db *DB, logger *logger.Logger) PlayerRepository {
	logger.Debug().Msg("creating player repository")
	return &playerRepository{
		db:     db,
		logger: logger,
	}
}

// FindPlayerByID retrieves a player record by its primary key.
//
// Returns [ErrPlayerNotFound] when no record matches.
func (r *playerRepository) FindPlayerByID(ctx context.Context, playerID int64) (models.Player, error) {
	log := logger.FromContext(ctx)

	var player models.Player
	row := r.db.QueryRowContext(ctx, findPlayerByID, playerID)

	if err := row.Scan(&player.PlayerID, &player.Name, &player.Picture); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Player{}, ErrPlayerNotFound
		}

		log.Err(err).Str("func", "*playerRepository.FindPlayerByID").Int64("player_id", playerID).Msg("error scanning player row")
		return models.Player{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return player, nil
}

// SearchPlayersByName performs a case-insensitive substring search over
// player names (ILIKE '%name%').
//
// Returns an empty slice when nothing matches; the caller decides how an
// empty result set is reported.
func (r *playerRepository) SearchPlayersByName(ctx context.Context, name string) ([]models.Player, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, searchPlayersByName, name)
	if err != nil {
		log.Err(err).Str("func", "*playerRepository.SearchPlayersByName").Str("name", name).Msg("error executing player search")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	return scanPlayers(rows)
}

// scanPlayers drains rows produced by any query selecting
// (player_id, name, picture).
func scanPlayers(rows *sql.Rows) ([]models.Player, error) {
	players := make([]models.Player, 0)

	for rows.Next() {
		var player models.Player
		if err := rows.Scan(&player.PlayerID, &player.Name, &player.Picture); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		players = append(players, player)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return players, nil
}
