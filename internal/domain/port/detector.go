package port

import (
	"context"
	"image"

	"plate-sentry/internal/domain/entity"
)

// InferenceEngine интерфейс внешнего движка нейросетевого инференса
type InferenceEngine interface {
	// Infer прогоняет входной тензор через модель и возвращает
	// сырые строки-кандидаты (cx, cy, w, h, confidence)
	Infer(ctx context.Context, tensor []float32) ([][]float32, error)

	// Close освобождает ресурсы движка
	Close() error
}

// PlateDetector интерфейс детектора номерных знаков
type PlateDetector interface {
	// Detect возвращает рамки найденных номеров в пикселях кадра,
	// отсортированные по убыванию уверенности
	Detect(ctx context.Context, frame image.Image) ([]entity.DetectionBox, error)
}
