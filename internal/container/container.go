package container

import (
	"github.com/rs/zerolog"

	app "plate-sentry/internal/application"
	"plate-sentry/internal/domain/port"
	"plate-sentry/internal/notify"
)

type Container struct {
	Pipeline *app.PipelineService
	Notifier *notify.Service
}

func New(
	detector port.PlateDetector,
	recognizer port.PlateRecognizer,
	whitelist port.Whitelist,
	artifacts port.ArtifactStore,
	notifier *notify.Service,
	workers int,
	log zerolog.Logger,
) *Container {
	pipeline := app.NewPipelineService(detector, recognizer, whitelist, artifacts, notifier, workers, log)

	return &Container{
		Pipeline: pipeline,
		Notifier: notifier,
	}
}
