package port

import (
	"context"
	"image"

	"plate-sentry/internal/domain/entity"
)

// OCREngine интерфейс внешнего движка распознавания текста
type OCREngine interface {
	// Recognize распознаёт текст на одноканальном растре.
	// Уверенность возвращается в шкале [0,100].
	Recognize(ctx context.Context, pixels []byte, width, height int) (string, float64, error)

	// Close освобождает ресурсы движка
	Close() error
}

// PlateRecognizer интерфейс распознавателя текста вырезанного номера
type PlateRecognizer interface {
	// Recognize возвращает нормализованный и проверенный текст номера
	Recognize(ctx context.Context, plate image.Image) (entity.RecognizedText, error)
}
