package http

import (
	"github.com/velikanov/groupsync/internal/config"
	"github.com/velikanov/groupsync/internal/logger"
	"github.com/velikanov/groupsync/internal/service"
)

type Handler struct {
	services *service.Services
	app      config.App

	logger *logger.Logger
}

func NewHandler(services *service.Services, app config.App, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		app:      app,
		logger:   logger,
	}
}
