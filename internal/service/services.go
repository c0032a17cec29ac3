package service

import (
	"fanbase/internal/config"
	"fanbase/internal/logger"
	"fanbase/internal/store"
)

// Services aggregates every domain service exposed to the transport layer.
type Services struct {
	AuthService        AuthService
	UserService        UserService
	CatalogService     CatalogService
	FavoritesService   FavoritesService
	LeaderboardService LeaderboardService
}

// NewServices wires every service over the shared repositories.
func NewServices(storages *store.Storages, cfg config.Auth, logger *logger.Logger) *Services {
	return &Services{
		AuthService:        NewAuthService(storages.UserRepository, cfg, logger),
		UserService:        NewUserService(storages.UserRepository, storages.TeamRepository, storages.FavoritesRepository, logger),
		CatalogService:     NewCatalogService(storages.PlayerRepository, storages.TeamRepository, logger),
		FavoritesService:   NewFavoritesService(storages.UserRepository, storages.PlayerRepository, storages.TeamRepository, storages.FavoritesRepository, logger),
		LeaderboardService: NewLeaderboardService(storages.LeaderboardRepository, logger),
	}
}
