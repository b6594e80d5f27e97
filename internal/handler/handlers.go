package handler

import (
	"github.com/velikanov/groupsync/internal/config"
	"github.com/velikanov/groupsync/internal/handler/http"
	"github.com/velikanov/groupsync/internal/logger"
	"github.com/velikanov/groupsync/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg *config.StructuredConfig, logger *logger.Logger) *Handlers {
	logger.Info().Msg("creating new handlers...")

	return &Handlers{
		HTTP: http.NewHandler(services, cfg.App, logger),
	}
}
