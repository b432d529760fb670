//go:build !gocv
// +build !gocv

package vision

import (
	"context"
	"errors"
	"image"

	"plate-sentry/internal/domain/port"
)

// CameraSource заглушка источника кадров (сборка без OpenCV)
type CameraSource struct{}

// NewCameraSource возвращает ошибку, если сборка без тега gocv
func NewCameraSource(cameraURL string) (*CameraSource, error) {
	_ = cameraURL
	return nil, errors.New("gocv build tag is not enabled")
}

// Next возвращает ошибку, если сборка без тега gocv
func (s *CameraSource) Next(ctx context.Context) (image.Image, error) {
	_ = ctx
	return nil, errors.New("gocv build tag is not enabled")
}

// Close ничего не делает в заглушке
func (s *CameraSource) Close() error {
	return nil
}

// Проверка реализации интерфейса
var _ port.FrameSource = (*CameraSource)(nil)
