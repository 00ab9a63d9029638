package http

import (
	"github.com/MKhiriev/go-dandelion/internal/asset"
	"github.com/MKhiriev/go-dandelion/internal/config"
	"github.com/MKhiriev/go-dandelion/internal/logger"
	"github.com/MKhiriev/go-dandelion/models"
)

// Handler serves the diagnostics endpoints of a resolved configuration.
type Handler struct {
	cfg       *config.Configuration
	resolver  *asset.Resolver
	assets    *asset.Registry
	buildInfo models.AppBuildInfo

	logger *logger.Logger
}

func NewHandler(
	cfg *config.Configuration,
	resolver *asset.Resolver,
	assets *asset.Registry,
	buildInfo models.AppBuildInfo,
	logger *logger.Logger,
) *Handler {
	logger.Info().Str("profile", cfg.ActiveRawProfile()).Msg("http handler created")
	return &Handler{
		cfg:       cfg,
		resolver:  resolver,
		assets:    assets,
		buildInfo: buildInfo,
		logger:    logger,
	}
}
