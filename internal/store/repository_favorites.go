package store

import (
	"context"
	"fmt"

	"fanbase/internal/logger"
	"fanbase/models"
)

// favoritesRepository is the PostgreSQL-backed implementation of
// [FavoritesRepository] over the favorite_players and favorite_teams join
// tables.
//
// Uniqueness is enforced by the composite primary keys: inserts use
// ON CONFLICT DO NOTHING and report the already-favorite sentinel when no
// row was inserted, so two concurrent adds for the same pair can never both
// succeed.
type favoritesRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewFavoritesRepository constructs a [FavoritesRepository] backed by the
// provided database connection and logger.
func NewFavoritesRepository(db *DB, logger *logger.Logger) FavoritesRepository {
	logger.Debug().Msg("creating favorites repository")
	return &favoritesRepository{
		db:     db,
		logger: logger,
	}
}

// AddFavoritePlayer inserts the (user, player) relation.
//
// Returns [ErrPlayerAlreadyFavorite] when the relation already exists.
func (r *favoritesRepository) AddFavoritePlayer(ctx context.Context, userID, playerID int64) error {
	return r.mutateRelation(ctx, addFavoritePlayer, userID, playerID, ErrPlayerAlreadyFavorite, "AddFavoritePlayer")
}

// RemoveFavoritePlayer deletes the (user, player) relation.
//
// Returns [ErrPlayerNotFavorite] when the relation does not exist.
func (r *favoritesRepository) RemoveFavoritePlayer(ctx context.Context, userID, playerID int64) error {
	return r.mutateRelation(ctx, removeFavoritePlayer, userID, playerID, ErrPlayerNotFavorite, "RemoveFavoritePlayer")
}

// AddFavoriteTeam inserts the (user, team) relation.
//
// Returns [ErrTeamAlreadyFavorite] when the relation already exists.
func (r *favoritesRepository) AddFavoriteTeam(ctx context.Context, userID, teamID int64) error {
	return r.mutateRelation(ctx, addFavoriteTeam, userID, teamID, ErrTeamAlreadyFavorite, "AddFavoriteTeam")
}

// RemoveFavoriteTeam deletes the (user, team) relation.
//
// Returns [ErrTeamNotFavorite] when the relation does not exist.
func (r *favoritesRepository) RemoveFavoriteTeam(ctx context.Context, userID, teamID int64) error {
	return r.mutateRelation(ctx, removeFavoriteTeam, userID, teamID, ErrTeamNotFavorite, "RemoveFavoriteTeam")
}

// mutateRelation executes a single-row favorite insert or delete and maps
// "zero affected rows" to the provided sentinel. The sentinel carries the
// relation-state meaning: already-favorite for inserts (ON CONFLICT DO
// NOTHING swallowed the row), not-favorite for deletes.
func (r *favoritesRepository) mutateRelation(ctx context.Context, query string, userID, entityID int64, onNoRows error, op string) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, query, userID, entityID)
	if err != nil {
		log.Err(err).
			Str("func", "*favoritesRepository."+op).
			Int64("user_id", userID).
			Int64("entity_id", entityID).
			Msg("error mutating favorite relation")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return onNoRows
	}

	return nil
}

// ListFavoritePlayers returns every player the user has favorited.
func (r *favoritesRepository) ListFavoritePlayers(ctx context.Context, userID int64) ([]models.Player, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listFavoritePlayers, userID)
	if err != nil {
		log.Err(err).Str("func", "*favoritesRepository.ListFavoritePlayers").Int64("user_id", userID).Msg("error listing favorite players")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	return scanPlayers(rows)
}

// ListFavoriteTeams returns every team the user has favorited.
func (r *favoritesRepository) ListFavoriteTeams(ctx context.Context, userID int64) ([]models.Team, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listFavoriteTeams, userID)
	if err != nil {
		log.Err(err).Str("func", "*favoritesRepository.ListFavoriteTeams").Int64("user_id", userID).Msg("error listing favorite teams")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	return scanTeams(rows)
}
