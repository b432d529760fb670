//go:build gocv
// +build gocv

package vision

import (
	"context"
	"fmt"
	"image"

	"gocv.io/x/gocv"

	"plate-sentry/internal/domain/entity"
	"plate-sentry/internal/domain/port"
)

// CameraSource читает кадры с камеры или видеопотока через OpenCV
type CameraSource struct {
	capture *gocv.VideoCapture
	mat     gocv.Mat
}

// NewCameraSource открывает видеопоток по URL или индексу устройства
func NewCameraSource(cameraURL string) (*CameraSource, error) {
	capture, err := gocv.OpenVideoCapture(cameraURL)
	if err != nil {
		return nil, fmt.Errorf("%w: cannot open camera %s: %v", entity.ErrConfiguration, cameraURL, err)
	}
	return &CameraSource{
		capture: capture,
		mat:     gocv.NewMat(),
	}, nil
}

// Next возвращает следующий кадр потока
func (s *CameraSource) Next(ctx context.Context) (image.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if ok := s.capture.Read(&s.mat); !ok || s.mat.Empty() {
		return nil, fmt.Errorf("%w: cannot read frame from camera", entity.ErrImageProcessing)
	}

	frame, err := s.mat.ToImage()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", entity.ErrImageProcessing, err)
	}

	return frame, nil
}

// Close освобождает ресурсы захвата
func (s *CameraSource) Close() error {
	s.mat.Close()
	return s.capture.Close()
}

// Проверка реализации интерфейса
var _ port.FrameSource = (*CameraSource)(nil)
