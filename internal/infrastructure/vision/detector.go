package vision

import (
	"context"
	"fmt"
	"image"

	"github.com/rs/zerolog"

	"plate-sentry/internal/domain/entity"
	"plate-sentry/internal/domain/port"
)

// Detector находит номерные знаки на кадре через внешний движок инференса
type Detector struct {
	engine port.InferenceEngine
	log    zerolog.Logger
}

// NewDetector создаёт детектор поверх движка инференса
func NewDetector(engine port.InferenceEngine, log zerolog.Logger) *Detector {
	return &Detector{
		engine: engine,
		log:    log,
	}
}

// Detect возвращает рамки найденных номеров в пикселях кадра,
// отсортированные по убыванию уверенности
func (d *Detector) Detect(ctx context.Context, frame image.Image) ([]entity.DetectionBox, error) {
	tensor, err := PreprocessFrame(frame)
	if err != nil {
		return nil, err
	}

	rows, err := d.engine.Infer(ctx, tensor)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", entity.ErrInference, err)
	}

	boxes, err := DecodeDetections(rows)
	if err != nil {
		return nil, err
	}

	boxes = NonMaxSuppression(boxes, IoUThreshold)

	// Переводим координаты из пространства входа модели в пиксели кадра.
	bounds := frame.Bounds()
	scaleX := float64(bounds.Dx()) / float64(InputWidth)
	scaleY := float64(bounds.Dy()) / float64(InputHeight)
	for i := range boxes {
		boxes[i].XMin *= scaleX
		boxes[i].XMax *= scaleX
		boxes[i].YMin *= scaleY
		boxes[i].YMax *= scaleY
	}

	d.log.Debug().Int("plates", len(boxes)).Msg("detected license plates")

	return boxes, nil
}

// Проверка реализации интерфейса
var _ port.PlateDetector = (*Detector)(nil)
