package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"plate-sentry/config"
	app "plate-sentry/internal/application"
	"plate-sentry/internal/container"
	"plate-sentry/internal/domain/port"
	"plate-sentry/internal/infrastructure/ocr"
	"plate-sentry/internal/infrastructure/storage"
	"plate-sentry/internal/infrastructure/vision"
	"plate-sentry/internal/notify"
)

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid config")
	}

	if level, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		log = log.Level(level)
	}

	log.Info().Msg("starting plate-sentry")

	// Инициализация движков фатальна: без детектора и OCR процесс бесполезен.
	engine, err := vision.NewONNXEngine(cfg.ModelPath)
	if err != nil {
		log.Fatal().Err(err).Str("model", cfg.ModelPath).Msg("failed to load detector model")
	}
	defer engine.Close()

	ocrEngine, err := ocr.NewTesseractEngine()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize OCR engine")
	}
	defer ocrEngine.Close()

	whitelist, err := storage.NewWhitelistStore(cfg.WhitelistPath, log)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.WhitelistPath).Msg("failed to load whitelist")
	}

	artifacts, err := storage.NewArtifactStore(cfg.DetectionsDir)
	if err != nil {
		log.Fatal().Err(err).Str("dir", cfg.DetectionsDir).Msg("failed to prepare detections dir")
	}

	notifier := notify.NewService(log,
		notify.NewLineChannel(cfg.LineToken),
		notify.NewTelegramChannel(cfg.TelegramToken, cfg.TelegramChatID),
	)

	detector := vision.NewDetector(engine, log)
	recognizer := ocr.NewRecognizer(ocrEngine, log)

	c := container.New(detector, recognizer, whitelist, artifacts, notifier, cfg.Workers, log)

	source, err := vision.NewCameraSource(cfg.CameraURL)
	if err != nil {
		log.Fatal().Err(err).Str("camera", cfg.CameraURL).Msg("failed to open camera")
	}
	defer source.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// SIGHUP перечитывает белый список без остановки процесса.
	reload := make(chan os.Signal, 1)
	signal.Notify(reload, syscall.SIGHUP)
	go func() {
		for range reload {
			if err := whitelist.Reload(); err != nil {
				log.Error().Err(err).Msg("failed to reload whitelist")
			}
		}
	}()

	log.Info().Str("camera", cfg.CameraURL).Msg("processing camera feed")

	if err := run(ctx, c.Pipeline, source, log); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal().Err(err).Msg("pipeline stopped")
	}

	log.Info().Msg("shutting down")
}

// run последовательно гонит кадры через конвейер до отмены контекста
func run(ctx context.Context, pipeline *app.PipelineService, source port.FrameSource, log zerolog.Logger) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		frame, err := source.Next(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return err
			}
			log.Error().Err(err).Msg("failed to read frame")
			time.Sleep(time.Second)
			continue
		}

		if _, err := pipeline.ProcessFrame(ctx, frame); err != nil {
			log.Error().Err(err).Msg("failed to process frame")
		}
	}
}
