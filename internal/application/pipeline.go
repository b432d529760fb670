package app

import (
	"context"
	"fmt"
	"image"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"plate-sentry/internal/domain/entity"
	"plate-sentry/internal/domain/port"
	"plate-sentry/internal/infrastructure/imaging"
)

// PipelineService гонит кадр через все стадии: детекция, вырезание,
// распознавание, решение о допуске, снимок и уведомление.
type PipelineService struct {
	detector   port.PlateDetector
	recognizer port.PlateRecognizer
	whitelist  port.Whitelist
	artifacts  port.ArtifactStore
	notifier   port.AlertNotifier
	workers    int
	log        zerolog.Logger
}

// NewPipelineService собирает конвейер обработки кадров
func NewPipelineService(
	detector port.PlateDetector,
	recognizer port.PlateRecognizer,
	whitelist port.Whitelist,
	artifacts port.ArtifactStore,
	notifier port.AlertNotifier,
	workers int,
	log zerolog.Logger,
) *PipelineService {
	if workers < 1 {
		workers = 1
	}
	return &PipelineService{
		detector:   detector,
		recognizer: recognizer,
		whitelist:  whitelist,
		artifacts:  artifacts,
		notifier:   notifier,
		workers:    workers,
		log:        log,
	}
}

// ProcessFrame обрабатывает один кадр и возвращает события обнаружений
// в порядке убывания уверенности детектора. Ошибка одной рамки не
// прерывает обработку остальных рамок кадра.
func (s *PipelineService) ProcessFrame(ctx context.Context, frame image.Image) ([]entity.DetectionEvent, error) {
	boxes, err := s.detector.Detect(ctx, frame)
	if err != nil {
		return nil, err
	}
	if len(boxes) == 0 {
		return nil, nil
	}

	// Рамки обрабатываются ограниченным пулом воркеров; результат
	// собирается по индексу, чтобы сохранить порядок по уверенности.
	results := make([]*entity.DetectionEvent, len(boxes))
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(s.workers)

	for i, box := range boxes {
		i, box := i, box
		group.Go(func() error {
			event, err := s.processBox(groupCtx, frame, box)
			if err != nil {
				s.log.Warn().Err(err).
					Float64("confidence", box.Confidence).
					Msg("skipping box")
				return nil
			}
			results[i] = event
			return nil
		})
	}
	_ = group.Wait()

	events := make([]entity.DetectionEvent, 0, len(boxes))
	for _, event := range results {
		if event == nil {
			continue
		}
		events = append(events, *event)
	}

	for _, event := range events {
		s.log.Info().
			Str("plate", event.PlateNumber).
			Str("status", string(event.AccessStatus)).
			Float64("confidence", event.Confidence).
			Str("image", event.ImagePath).
			Msg("processed plate")

		if event.AccessStatus == entity.AccessSuspicious && s.notifier != nil {
			if err := s.notifier.SendAlert(ctx, event); err != nil {
				s.log.Error().Err(err).Str("plate", event.PlateNumber).Msg("failed to send alert")
			}
		}
	}

	return events, nil
}

// processBox обрабатывает одну рамку: вырезание, распознавание,
// решение о допуске и сохранение снимка
func (s *PipelineService) processBox(ctx context.Context, frame image.Image, box entity.DetectionBox) (*entity.DetectionEvent, error) {
	rect := box.ClampTo(frame.Bounds())
	if rect.Empty() {
		return nil, fmt.Errorf("%w: box is outside the frame", entity.ErrImageProcessing)
	}

	crop := imaging.Crop(frame, rect)

	text, err := s.recognizer.Recognize(ctx, crop)
	if err != nil {
		return nil, err
	}

	status := entity.AccessSuspicious
	if s.whitelist.Contains(text.Normalized) {
		status = entity.AccessAllowed
	}

	var imagePath string
	if s.artifacts != nil {
		imagePath, err = s.artifacts.Save(frame, box)
		if err != nil {
			// Снимок вспомогательный, его потеря не отменяет событие.
			s.log.Error().Err(err).Msg("failed to save detection image")
			imagePath = ""
		}
	}

	return &entity.DetectionEvent{
		ID:           uuid.New(),
		Timestamp:    time.Now().UTC(),
		PlateNumber:  text.Normalized,
		Confidence:   text.Confidence,
		ImagePath:    imagePath,
		AccessStatus: status,
	}, nil
}
