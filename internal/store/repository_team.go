package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"fanbase/internal/logger"
	"fanbase/models"
)

// teamRepository is the PostgreSQL-backed implementation of [TeamRepository].
// Besides directory lookups it resolves team rosters from the team_players
// join table; rosters are fetched explicitly, never lazily.
type teamRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewTeamRepository constructs a [TeamRepository] backed by the provided
// database connection and logger.
func NewTeamRepository(db *DB, logger *logger.Logger) TeamRepository {
	logger.Debug().Msg("creating team repository")
	return &teamRepository{
		db:     db,
		logger: logger,
	}
}

// FindTeamByID retrieves a team record by its primary key. The roster is
// not populated; use [TeamRepository.ListTeamPlayers] for that.
//
// Returns [ErrTeamNotFound] when no record matches.
func (r *teamRepository) FindTeamByID(ctx context.Context, teamID int64) (models.Team, error) {
	log := logger.FromContext(ctx)

	var team models.Team
	row := r.db.QueryRowContext(ctx, findTeamByID, teamID)

	if err := row.Scan(&team.TeamID, &team.Name, &team.Picture); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Team{}, ErrTeamNotFound
		}

		log.Err(err).Str("func", "*teamRepository.FindTeamByID").Int64("team_id", teamID).Msg("error scanning team row")
		return models.Team{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return team, nil
}

// SearchTeamsByName performs a case-insensitive substring search over team
// names (ILIKE '%name%').
//
// Returns an empty slice when nothing matches.
func (r *teamRepository) SearchTeamsByName(ctx context.Context, name string) ([]models.Team, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, searchTeamsByName, name)
	if err != nil {
		log.Err(err).Str("func", "*teamRepository.SearchTeamsByName").Str("name", name).Msg("error executing team search")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	return scanTeams(rows)
}

// ListTeamPlayers returns the roster of the given team.
func (r *teamRepository) ListTeamPlayers(ctx context.Context, teamID int64) ([]models.Player, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listTeamPlayers, teamID)
	if err != nil {
		log.Err(err).Str("func", "*teamRepository.ListTeamPlayers").Int64("team_id", teamID).Msg("error listing team players")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	return scanPlayers(rows)
}

// scanTeams drains rows produced by any query selecting
// (team_id, name, picture).
func scanTeams(rows *sql.Rows) ([]models.Team, error) {
	teams := make([]models.Team, 0)

	for rows.Next() {
		var team models.Team
		if err := rows.Scan(&team.TeamID, &team.Name, &team.Picture); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		teams = append(teams, team)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return teams, nil
}
