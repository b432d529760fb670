package vision

import (
	"fmt"
	"image"

	"github.com/nfnt/resize"

	"plate-sentry/internal/domain/entity"
)

// Размер входа модели детектора
const (
	InputWidth  = 640
	InputHeight = 640
)

// PreprocessFrame приводит кадр к плоскому тензору модели: каналы RGB,
// значения в [0,1], раскладка CHW. Пропорции не сохраняются — кадр
// растягивается точно до входного размера, под это обучалась модель.
func PreprocessFrame(frame image.Image) ([]float32, error) {
	if frame == nil || frame.Bounds().Empty() {
		return nil, fmt.Errorf("%w: empty source frame", entity.ErrImageProcessing)
	}

	resized := resize.Resize(InputWidth, InputHeight, frame, resize.Bilinear)

	plane := InputHeight * InputWidth
	tensor := make([]float32, 3*plane)
	bounds := resized.Bounds()
	for y := 0; y < InputHeight; y++ {
		for x := 0; x < InputWidth; x++ {
			r, g, b, _ := resized.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			idx := y*InputWidth + x
			tensor[idx] = float32(r>>8) / 255.0
			tensor[plane+idx] = float32(g>>8) / 255.0
			tensor[2*plane+idx] = float32(b>>8) / 255.0
		}
	}

	return tensor, nil
}
