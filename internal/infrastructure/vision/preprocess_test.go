package vision

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"

	"plate-sentry/internal/domain/entity"
)

func TestPreprocessFrameEmpty(t *testing.T) {
	_, err := PreprocessFrame(image.NewRGBA(image.Rect(0, 0, 0, 0)))
	require.ErrorIs(t, err, entity.ErrImageProcessing)

	_, err = PreprocessFrame(nil)
	require.ErrorIs(t, err, entity.ErrImageProcessing)
}

func TestPreprocessFrameShapeAndRange(t *testing.T) {
	frame := image.NewRGBA(image.Rect(0, 0, 120, 80))
	for y := 0; y < 80; y++ {
		for x := 0; x < 120; x++ {
			frame.Set(x, y, color.RGBA{R: 255, G: 128, B: 0, A: 255})
		}
	}

	tensor, err := PreprocessFrame(frame)
	require.NoError(t, err)
	require.Len(t, tensor, 3*InputHeight*InputWidth)

	for _, v := range tensor {
		require.GreaterOrEqual(t, v, float32(0))
		require.LessOrEqual(t, v, float32(1))
	}

	// Однотонный кадр: плоскости каналов хранят R, G и B раздельно.
	plane := InputHeight * InputWidth
	center := (InputHeight/2)*InputWidth + InputWidth/2
	require.InDelta(t, 1.0, tensor[center], 0.01)
	require.InDelta(t, 128.0/255.0, tensor[plane+center], 0.01)
	require.InDelta(t, 0.0, tensor[2*plane+center], 0.01)
}
