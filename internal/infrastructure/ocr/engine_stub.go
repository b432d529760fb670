//go:build !tesseract
// +build !tesseract

package ocr

import (
	"context"
	"errors"

	"plate-sentry/internal/domain/port"
)

// TesseractEngine заглушка OCR-движка (сборка без Tesseract)
type TesseractEngine struct{}

// NewTesseractEngine возвращает ошибку, если сборка без тега tesseract
func NewTesseractEngine() (*TesseractEngine, error) {
	return nil, errors.New("tesseract build tag is not enabled")
}

// Recognize возвращает ошибку, если сборка без тега tesseract
func (e *TesseractEngine) Recognize(ctx context.Context, pixels []byte, width, height int) (string, float64, error) {
	_ = ctx
	_ = pixels
	_ = width
	_ = height
	return "", 0, errors.New("tesseract build tag is not enabled")
}

// Close ничего не делает в заглушке
func (e *TesseractEngine) Close() error {
	return nil
}

// Проверка реализации интерфейса
var _ port.OCREngine = (*TesseractEngine)(nil)
