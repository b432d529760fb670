package port

import (
	"context"
	"image"
)

// FrameSource интерфейс источника кадров видеопотока
type FrameSource interface {
	// Next возвращает следующий кадр
	Next(ctx context.Context) (image.Image, error)

	// Close освобождает ресурсы захвата
	Close() error
}
