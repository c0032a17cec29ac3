package service

import (
	"context"

	"fanbase/internal/logger"
	"fanbase/internal/store"
	"fanbase/models"
)

// leaderboardService is the concrete implementation of LeaderboardService.
// Ranking is computed by the store; this layer only passes the aggregated
// rows through.
type leaderboardService struct {
	leaderboardRepository store.LeaderboardRepository

	logger *logger.Logger
}

// NewLeaderboardService constructs a LeaderboardService over the given
// repository.
func NewLeaderboardService(leaderboard store.LeaderboardRepository, logger *logger.Logger) LeaderboardService {
	return &leaderboardService{
		leaderboardRepository: leaderboard,
		logger:                logger,
	}
}

// TopPlayers returns up to five players ranked by favorite count,
// descending. Tie order among equal counts is undefined.
func (s *leaderboardService) TopPlayers(ctx context.Context) ([]models.FanCount, error) {
	return s.leaderboardRepository.TopPlayers(ctx)
}

// TopTeams returns up to five teams ranked by favorite count, descending.
// Tie order among equal counts is undefined.
func (s *leaderboardService) TopTeams(ctx context.Context) ([]models.FanCount, error) {
	return s.leaderboardRepository.TopTeams(ctx)
}
