package ocr

import (
	"context"
	"fmt"
	"image"
	"strings"

	"github.com/rs/zerolog"

	"plate-sentry/internal/domain/entity"
	"plate-sentry/internal/domain/port"
)

// Recognizer распознаёт текст номерного знака через внешний OCR-движок
type Recognizer struct {
	engine port.OCREngine
	log    zerolog.Logger
}

// NewRecognizer создаёт распознаватель поверх OCR-движка
func NewRecognizer(engine port.OCREngine, log zerolog.Logger) *Recognizer {
	return &Recognizer{
		engine: engine,
		log:    log,
	}
}

// Recognize возвращает нормализованный и проверенный текст номера.
// Уверенность движка пересчитывается из шкалы [0,100] в [0,1].
func (r *Recognizer) Recognize(ctx context.Context, plate image.Image) (entity.RecognizedText, error) {
	prepared, err := PreprocessPlate(plate)
	if err != nil {
		return entity.RecognizedText{}, err
	}

	bounds := prepared.Bounds()
	text, confidence, err := r.engine.Recognize(ctx, prepared.Pix, bounds.Dx(), bounds.Dy())
	if err != nil {
		return entity.RecognizedText{}, fmt.Errorf("%w: %v", entity.ErrInference, err)
	}

	normalized := entity.NormalizePlate(text)
	if err := entity.ValidatePlate(normalized); err != nil {
		return entity.RecognizedText{}, err
	}

	result := entity.RecognizedText{
		Raw:        strings.TrimSpace(text),
		Normalized: normalized,
		Confidence: confidence / 100.0,
	}

	r.log.Debug().
		Str("raw", result.Raw).
		Str("normalized", result.Normalized).
		Float64("confidence", result.Confidence).
		Msg("recognized plate text")

	return result, nil
}

// Проверка реализации интерфейса
var _ port.PlateRecognizer = (*Recognizer)(nil)
