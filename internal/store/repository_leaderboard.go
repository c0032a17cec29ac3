package store

import (
	"context"
	"fmt"

	"fanbase/internal/logger"
	"fanbase/models"
)

// leaderboardRepository is the PostgreSQL-backed implementation of
// [LeaderboardRepository]. Rankings are computed entirely in SQL: join the
// favorite relations to the entity table, group, count, order descending,
// limit 5.
type leaderboardRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewLeaderboardRepository constructs a [LeaderboardRepository] backed by
// the provided database connection and logger.
func NewLeaderboardRepository(db *DB, logger *logger.Logger) LeaderboardRepository {
	logger.Debug().Msg("creating leaderboard repository")
	return &leaderboardRepository{
		db:     db,
		logger: logger,
	}
}

// TopPlayers returns up to five players ranked by favorite count, highest
// first. Tie order among equal counts is undefined.
func (r *leaderboardRepository) TopPlayers(ctx context.Context) ([]models.FanCount, error) {
	return r.top(ctx, topPlayers, "TopPlayers")
}

// TopTeams returns up to five teams ranked by favorite count, highest
// first. Tie order among equal counts is undefined.
func (r *leaderboardRepository) TopTeams(ctx context.Context) ([]models.FanCount, error) {
	return r.top(ctx, topTeams, "TopTeams")
}

func (r *leaderboardRepository) top(ctx context.Context, query string, op string) ([]models.FanCount, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		log.Err(err).Str("func", "*leaderboardRepository."+op).Msg("error executing leaderboard query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	counts := make([]models.FanCount, 0, 5)

	for rows.Next() {
		var row models.FanCount
		if err := rows.Scan(&row.ID, &row.Name, &row.Picture, &row.FanCount); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		counts = append(counts, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return counts, nil
}
