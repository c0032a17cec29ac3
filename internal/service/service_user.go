package service

import (
	"context"
	"fmt"

	"fanbase/internal/logger"
	"fanbase/internal/store"
	"fanbase/models"
)

// userService is the concrete implementation of UserService. Profile reads
// resolve the favorite lists through explicit join-relation queries; team
// favorites additionally carry their rosters.
type userService struct {
	userRepository      store.UserRepository
	teamRepository      store.TeamRepository
	favoritesRepository store.FavoritesRepository

	logger *logger.Logger
}

// NewUserService constructs a UserService over the given repositories.
func NewUserService(users store.UserRepository, teams store.TeamRepository, favorites store.FavoritesRepository, logger *logger.Logger) UserService {
	return &userService{
		userRepository:      users,
		teamRepository:      teams,
		favoritesRepository: favorites,
		logger:              logger,
	}
}

// GetUser resolves a user by ID. Used by the auth middleware to confirm
// that a token's claimed identity still exists.
func (s *userService) GetUser(ctx context.Context, userID int64) (models.User, error) {
	return s.userRepository.FindUserByID(ctx, userID)
}

// GetProfile returns the user together with their favorite players and
// favorite teams; each favorite team carries its roster.
func (s *userService) GetProfile(ctx context.Context, userID int64) (models.Profile, error) {
	log := logger.FromContext(ctx)

	user, err := s.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("profile user lookup failed")
		return models.Profile{}, fmt.Errorf("profile user lookup failed: %w", err)
	}

	favoritePlayers, err := s.favoritesRepository.ListFavoritePlayers(ctx, userID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("listing favorite players failed")
		return models.Profile{}, fmt.Errorf("listing favorite players failed: %w", err)
	}

	favoriteTeams, err := s.favoritesRepository.ListFavoriteTeams(ctx, userID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("listing favorite teams failed")
		return models.Profile{}, fmt.Errorf("listing favorite teams failed: %w", err)
	}

	for i := range favoriteTeams {
		roster, err := s.teamRepository.ListTeamPlayers(ctx, favoriteTeams[i].TeamID)
		if err != nil {
			log.Err(err).Int64("team_id", favoriteTeams[i].TeamID).Msg("listing team roster failed")
			return models.Profile{}, fmt.Errorf("listing team roster failed: %w", err)
		}
		favoriteTeams[i].Players = roster
	}

	return models.Profile{
		User:            user,
		FavoritePlayers: favoritePlayers,
		FavoriteTeams:   favoriteTeams,
	}, nil
}

// UpdateEmail replaces the user's email, the only mutable profile field.
func (s *userService) UpdateEmail(ctx context.Context, userID int64, email string) error {
	log := logger.FromContext(ctx)

	if email == "" {
		return ErrInvalidDataProvided
	}

	if err := s.userRepository.UpdateUserEmail(ctx, userID, email); err != nil {
		log.Err(err).Int64("user_id", userID).Msg("email update failed")
		return fmt.Errorf("email update failed: %w", err)
	}

	return nil
}

// DeleteUser removes the account. Favorite relations cascade at the storage
// level, so no separate cleanup pass is needed.
func (s *userService) DeleteUser(ctx context.Context, userID int64) error {
	log := logger.FromContext(ctx)

	if err := s.userRepository.DeleteUser(ctx, userID); err != nil {
		log.Err(err).Int64("user_id", userID).Msg("user deletion failed")
		return fmt.Errorf("user deletion failed: %w", err)
	}

	return nil
}
