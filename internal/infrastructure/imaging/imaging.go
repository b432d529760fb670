// Package imaging содержит чистые операции над изображениями,
// общие для стадий конвейера.
package imaging

import (
	"image"
	"image/color"
	"image/draw"
)

// ToGray переводит изображение в одноканальные оттенки серого
func ToGray(img image.Image) *image.Gray {
	if gray, ok := img.(*image.Gray); ok {
		return gray
	}

	bounds := img.Bounds()
	gray := image.NewGray(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(gray, gray.Bounds(), img, bounds.Min, draw.Src)
	return gray
}

// Crop вырезает прямоугольник из изображения. Прямоугольник должен быть
// заранее ограничен границами изображения.
func Crop(img image.Image, rect image.Rectangle) *image.RGBA {
	out := image.NewRGBA(image.Rect(0, 0, rect.Dx(), rect.Dy()))
	draw.Draw(out, out.Bounds(), img, rect.Min, draw.Src)
	return out
}

// DrawRect рисует полый прямоугольник заданной толщины поверх изображения
func DrawRect(img draw.Image, rect image.Rectangle, clr color.Color, thickness int) {
	bounds := img.Bounds()
	for t := 0; t < thickness; t++ {
		r := rect.Inset(t)
		if r.Empty() {
			return
		}
		for x := r.Min.X; x < r.Max.X; x++ {
			setIfInside(img, bounds, x, r.Min.Y, clr)
			setIfInside(img, bounds, x, r.Max.Y-1, clr)
		}
		for y := r.Min.Y; y < r.Max.Y; y++ {
			setIfInside(img, bounds, r.Min.X, y, clr)
			setIfInside(img, bounds, r.Max.X-1, y, clr)
		}
	}
}

func setIfInside(img draw.Image, bounds image.Rectangle, x, y int, clr color.Color) {
	if image.Pt(x, y).In(bounds) {
		img.Set(x, y, clr)
	}
}
