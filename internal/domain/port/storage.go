package port

import (
	"image"

	"plate-sentry/internal/domain/entity"
)

// ArtifactStore интерфейс хранилища снимков обнаружений
type ArtifactStore interface {
	// Save сохраняет кадр с обведённой рамкой и возвращает путь к файлу
	Save(frame image.Image, box entity.DetectionBox) (string, error)
}
