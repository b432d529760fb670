package ocr

import (
	"fmt"
	"image"
	"image/color"

	"github.com/nfnt/resize"

	"plate-sentry/internal/domain/entity"
	"plate-sentry/internal/infrastructure/imaging"
)

// Параметры нормализации изображения номера перед распознаванием
const (
	minWidth             = 100
	minHeight            = 30
	maxWidth             = 1000
	maxHeight            = 300
	contrastTolerance    = 50
	thresholdBlockRadius = 15
)

// PreprocessPlate готовит вырезанный номер к распознаванию: перевод в
// оттенки серого, масштабирование, растяжение контраста и адаптивная
// бинаризация. Стадия детерминированная, внешнего состояния нет.
func PreprocessPlate(plate image.Image) (*image.Gray, error) {
	if plate == nil || plate.Bounds().Empty() {
		return nil, fmt.Errorf("%w: empty plate image", entity.ErrImageProcessing)
	}

	gray := imaging.ToGray(plate)

	// Мелкие вырезы увеличиваем вдвое, чтобы OCR было за что зацепиться,
	// слишком крупные ужимаем до рабочего размера.
	w := gray.Bounds().Dx()
	h := gray.Bounds().Dy()
	switch {
	case w < minWidth || h < minHeight:
		gray = resizeGray(gray, uint(w*2), uint(h*2))
	case w > maxWidth || h > maxHeight:
		gray = resizeGray(gray, maxWidth, maxHeight)
	}

	StretchContrast(gray, contrastTolerance)

	return AdaptiveThreshold(gray, thresholdBlockRadius), nil
}

func resizeGray(gray *image.Gray, w, h uint) *image.Gray {
	return imaging.ToGray(resize.Resize(w, h, gray, resize.Lanczos3))
}

// StretchContrast линейно растягивает яркость на месте: диапазон
// [tolerance, 255-tolerance] отображается на полный [0, 255],
// хвосты за его пределами обрезаются.
func StretchContrast(img *image.Gray, tolerance uint8) {
	lo := float64(tolerance)
	hi := float64(255 - tolerance)
	scale := 255.0 / (hi - lo)

	for i, v := range img.Pix {
		stretched := (float64(v) - lo) * scale
		switch {
		case stretched <= 0:
			img.Pix[i] = 0
		case stretched >= 255:
			img.Pix[i] = 255
		default:
			img.Pix[i] = uint8(stretched + 0.5)
		}
	}
}

// AdaptiveThreshold бинаризует изображение по локальному среднему в окне
// заданного радиуса: пиксель не темнее среднего становится белым.
// Суммы окон считаются через интегральное изображение за O(1) на пиксель.
func AdaptiveThreshold(img *image.Gray, radius int) *image.Gray {
	bounds := img.Bounds()
	w := bounds.Dx()
	h := bounds.Dy()
	out := image.NewGray(image.Rect(0, 0, w, h))

	integral := make([]uint64, (w+1)*(h+1))
	for y := 0; y < h; y++ {
		var rowSum uint64
		for x := 0; x < w; x++ {
			rowSum += uint64(img.GrayAt(bounds.Min.X+x, bounds.Min.Y+y).Y)
			integral[(y+1)*(w+1)+x+1] = integral[y*(w+1)+x+1] + rowSum
		}
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			x0 := max(x-radius, 0)
			y0 := max(y-radius, 0)
			x1 := min(x+radius, w-1)
			y1 := min(y+radius, h-1)

			count := uint64((x1 - x0 + 1) * (y1 - y0 + 1))
			sum := integral[(y1+1)*(w+1)+x1+1] -
				integral[y0*(w+1)+x1+1] -
				integral[(y1+1)*(w+1)+x0] +
				integral[y0*(w+1)+x0]

			v := uint64(img.GrayAt(bounds.Min.X+x, bounds.Min.Y+y).Y)
			if v*count >= sum {
				out.SetGray(x, y, color.Gray{Y: 255})
			}
		}
	}

	return out
}
