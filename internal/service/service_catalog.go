package service

import (
	"context"
	"fmt"

	"fanbase/internal/logger"
	"fanbase/internal/store"
	"fanbase/models"
)

// catalogService is the concrete implementation of CatalogService: thin
// read-side glue over the player and team directories.
type catalogService struct {
	playerRepository store.PlayerRepository
	teamRepository   store.TeamRepository

	logger *logger.Logger
}

// NewCatalogService constructs a CatalogService over the given repositories.
func NewCatalogService(players store.PlayerRepository, teams store.TeamRepository, logger *logger.Logger) CatalogService {
	return &catalogService{
		playerRepository: players,
		teamRepository:   teams,
		logger:           logger,
	}
}

// GetPlayer resolves a player by ID.
func (s *catalogService) GetPlayer(ctx context.Context, playerID int64) (models.Player, error) {
	return s.playerRepository.FindPlayerByID(ctx, playerID)
}

// SearchPlayers performs a case-insensitive substring search over player
// names. An empty result is returned as an empty slice, not an error.
func (s *catalogService) SearchPlayers(ctx context.Context, name string) ([]models.Player, error) {
	return s.playerRepository.SearchPlayersByName(ctx, name)
}

// GetTeam resolves a team by ID with its roster populated.
func (s *catalogService) GetTeam(ctx context.Context, teamID int64) (models.Team, error) {
	log := logger.FromContext(ctx)

	team, err := s.teamRepository.FindTeamByID(ctx, teamID)
	if err != nil {
		return models.Team{}, err
	}

	roster, err := s.teamRepository.ListTeamPlayers(ctx, teamID)
	if err != nil {
		log.Err(err).Int64("team_id", teamID).Msg("listing team roster failed")
		return models.Team{}, fmt.Errorf("listing team roster failed: %w", err)
	}
	team.Players = roster

	return team, nil
}

// SearchTeams performs a case-insensitive substring search over team names.
func (s *catalogService) SearchTeams(ctx context.Context, name string) ([]models.Team, error) {
	return s.teamRepository.SearchTeamsByName(ctx, name)
}
