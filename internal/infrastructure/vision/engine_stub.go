//go:build !gocv
// +build !gocv

package vision

import (
	"context"
	"errors"

	"plate-sentry/internal/domain/port"
)

// ONNXEngine заглушка движка инференса (сборка без OpenCV)
type ONNXEngine struct{}

// NewONNXEngine возвращает ошибку, если сборка без тега gocv
func NewONNXEngine(modelPath string) (*ONNXEngine, error) {
	_ = modelPath
	return nil, errors.New("gocv build tag is not enabled")
}

// Infer возвращает ошибку, если сборка без тега gocv
func (e *ONNXEngine) Infer(ctx context.Context, tensor []float32) ([][]float32, error) {
	_ = ctx
	_ = tensor
	return nil, errors.New("gocv build tag is not enabled")
}

// Close ничего не делает в заглушке
func (e *ONNXEngine) Close() error {
	return nil
}

// Проверка реализации интерфейса
var _ port.InferenceEngine = (*ONNXEngine)(nil)
