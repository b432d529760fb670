//go:build tesseract
// +build tesseract

package ocr

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"
	"sync"

	"github.com/otiai10/gosseract/v2"

	"plate-sentry/internal/domain/entity"
	"plate-sentry/internal/domain/port"
)

// Алфавит номерных знаков для Tesseract
const plateCharWhitelist = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ-"

// TesseractEngine OCR-движок на базе Tesseract
type TesseractEngine struct {
	mu     sync.Mutex
	client *gosseract.Client
}

// NewTesseractEngine инициализирует Tesseract с английским языком
// и алфавитом номерных знаков
func NewTesseractEngine() (*TesseractEngine, error) {
	client := gosseract.NewClient()

	if err := client.SetLanguage("eng"); err != nil {
		client.Close()
		return nil, fmt.Errorf("%w: cannot set tesseract language: %v", entity.ErrConfiguration, err)
	}
	if err := client.SetWhitelist(plateCharWhitelist); err != nil {
		client.Close()
		return nil, fmt.Errorf("%w: cannot set tesseract whitelist: %v", entity.ErrConfiguration, err)
	}

	return &TesseractEngine{client: client}, nil
}

// Recognize распознаёт текст на одноканальном растре.
// Уверенность возвращается в шкале [0,100].
func (e *TesseractEngine) Recognize(ctx context.Context, pixels []byte, width, height int) (string, float64, error) {
	if err := ctx.Err(); err != nil {
		return "", 0, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	gray := &image.Gray{
		Pix:    pixels,
		Stride: width,
		Rect:   image.Rect(0, 0, width, height),
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, gray); err != nil {
		return "", 0, fmt.Errorf("%w: cannot encode plate image: %v", entity.ErrImageProcessing, err)
	}

	if err := e.client.SetImageFromBytes(buf.Bytes()); err != nil {
		return "", 0, fmt.Errorf("%w: cannot set tesseract image: %v", entity.ErrInference, err)
	}

	text, err := e.client.Text()
	if err != nil {
		return "", 0, fmt.Errorf("%w: tesseract: %v", entity.ErrInference, err)
	}

	// Обёртка не выводит MeanTextConf, считаем среднее по словам сами.
	words, err := e.client.GetBoundingBoxes(gosseract.RIL_WORD)
	if err != nil || len(words) == 0 {
		return text, 0, nil
	}

	var sum float64
	for _, word := range words {
		sum += word.Confidence
	}

	return text, sum / float64(len(words)), nil
}

// Close освобождает ресурсы Tesseract
func (e *TesseractEngine) Close() error {
	return e.client.Close()
}

// Проверка реализации интерфейса
var _ port.OCREngine = (*TesseractEngine)(nil)
