package service

import (
	"context"
	"fmt"

	"fanbase/internal/logger"
	"fanbase/internal/store"
)

// favoritesService is the concrete implementation of FavoritesService.
//
// Every mutation runs the same fixed check sequence so error precedence is
// deterministic: entity-ID presence, then user existence, then entity
// existence, then the relation mutation itself. The relation-state check is
// authoritative at the storage layer (composite primary key + affected-row
// count), so the pre-checks can never race a concurrent request into a
// duplicate relation.
type favoritesService struct {
	userRepository      store.UserRepository
	playerRepository    store.PlayerRepository
	teamRepository      store.TeamRepository
	favoritesRepository store.FavoritesRepository

	logger *logger.Logger
}

// NewFavoritesService constructs a FavoritesService over the given
// repositories.
func NewFavoritesService(users store.UserRepository, players store.PlayerRepository, teams store.TeamRepository, favorites store.FavoritesRepository, logger *logger.Logger) FavoritesService {
	return &favoritesService{
		userRepository:      users,
		playerRepository:    players,
		teamRepository:      teams,
		favoritesRepository: favorites,
		logger:              logger,
	}
}

// AddFavoritePlayer adds the player to the user's favorites.
//
// Failure precedence: ErrPlayerIDRequired, store.ErrNoUserWasFound,
// store.ErrPlayerNotFound, store.ErrPlayerAlreadyFavorite.
// A second add for the same pair is a conflict, not a no-op.
func (s *favoritesService) AddFavoritePlayer(ctx context.Context, userID, playerID int64) error {
	if err := s.checkPlayerRelation(ctx, userID, playerID); err != nil {
		return err
	}

	return s.favoritesRepository.AddFavoritePlayer(ctx, userID, playerID)
}

// RemoveFavoritePlayer removes the player from the user's favorites.
//
// Failure precedence: ErrPlayerIDRequired, store.ErrNoUserWasFound,
// store.ErrPlayerNotFound, store.ErrPlayerNotFavorite.
// A second remove for the same pair is a not-found, not a silent success.
func (s *favoritesService) RemoveFavoritePlayer(ctx context.Context, userID, playerID int64) error {
	if err := s.checkPlayerRelation(ctx, userID, playerID); err != nil {
		return err
	}

	return s.favoritesRepository.RemoveFavoritePlayer(ctx, userID, playerID)
}

// AddFavoriteTeam mirrors AddFavoritePlayer for teams.
func (s *favoritesService) AddFavoriteTeam(ctx context.Context, userID, teamID int64) error {
	if err := s.checkTeamRelation(ctx, userID, teamID); err != nil {
		return err
	}

	return s.favoritesRepository.AddFavoriteTeam(ctx, userID, teamID)
}

// RemoveFavoriteTeam mirrors RemoveFavoritePlayer for teams.
func (s *favoritesService) RemoveFavoriteTeam(ctx context.Context, userID, teamID int64) error {
	if err := s.checkTeamRelation(ctx, userID, teamID); err != nil {
		return err
	}

	return s.favoritesRepository.RemoveFavoriteTeam(ctx, userID, teamID)
}

// checkPlayerRelation runs the shared precondition sequence for player
// favorite mutations: ID presence, user existence, player existence.
func (s *favoritesService) checkPlayerRelation(ctx context.Context, userID, playerID int64) error {
	log := logger.FromContext(ctx)

	if playerID == 0 {
		return ErrPlayerIDRequired
	}

	if _, err := s.userRepository.FindUserByID(ctx, userID); err != nil {
		log.Err(err).Int64("user_id", userID).Msg("favorite mutation user lookup failed")
		return fmt.Errorf("favorite mutation user lookup failed: %w", err)
	}

	if _, err := s.playerRepository.FindPlayerByID(ctx, playerID); err != nil {
		log.Err(err).Int64("player_id", playerID).Msg("favorite mutation player lookup failed")
		return fmt.Errorf("favorite mutation player lookup failed: %w", err)
	}

	return nil
}

// checkTeamRelation runs the shared precondition sequence for team favorite
// mutations: ID presence, user existence, team existence.
func (s *favoritesService) checkTeamRelation(ctx context.Context, userID, teamID int64) error {
	log := logger.FromContext(ctx)

	if teamID == 0 {
		return ErrTeamIDRequired
	}

	if _, err := s.userRepository.FindUserByID(ctx, userID); err != nil {
		log.Err(err).Int64("user_id", userID).Msg("favorite mutation user lookup failed")
		return fmt.Errorf("favorite mutation user lookup failed: %w", err)
	}

	if _, err := s.teamRepository.FindTeamByID(ctx, teamID); err != nil {
		log.Err(err).Int64("team_id", teamID).Msg("favorite mutation team lookup failed")
		return fmt.Errorf("favorite mutation team lookup failed: %w", err)
	}

	return nil
}
