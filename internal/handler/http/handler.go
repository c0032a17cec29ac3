package http

import (
	"fanbase/internal/adapter"
	"fanbase/internal/logger"
	"fanbase/internal/service"
)

type Handler struct {
	services *service.Services
	stats    adapter.StatsProvider

	logger *logger.Logger
}

func NewHandler(services *service.Services, stats adapter.StatsProvider, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		stats:    stats,
		logger:   logger,
	}
}
