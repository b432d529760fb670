package entity

import (
	"image"
	"math"
)

// DetectionBox представляет рамку найденного номерного знака в угловой форме
type DetectionBox struct {
	XMin       float64 // левая граница
	YMin       float64 // верхняя граница
	XMax       float64 // правая граница
	YMax       float64 // нижняя граница
	Confidence float64 // уверенность детектора, [0,1]
}

// Width возвращает ширину рамки
func (b DetectionBox) Width() float64 {
	return b.XMax - b.XMin
}

// Height возвращает высоту рамки
func (b DetectionBox) Height() float64 {
	return b.YMax - b.YMin
}

// Area возвращает площадь рамки
func (b DetectionBox) Area() float64 {
	return b.Width() * b.Height()
}

// IoU считает отношение площади пересечения к площади объединения.
// Для рамок без общей области возвращает 0.
func (b DetectionBox) IoU(other DetectionBox) float64 {
	left := math.Max(b.XMin, other.XMin)
	top := math.Max(b.YMin, other.YMin)
	right := math.Min(b.XMax, other.XMax)
	bottom := math.Min(b.YMax, other.YMax)

	if right < left || bottom < top {
		return 0
	}

	intersection := (right - left) * (bottom - top)
	union := b.Area() + other.Area() - intersection
	if union <= 0 {
		return 0
	}

	return intersection / union
}

// ClampTo обрезает рамку по границам кадра и возвращает пиксельный прямоугольник
func (b DetectionBox) ClampTo(bounds image.Rectangle) image.Rectangle {
	rect := image.Rect(
		int(math.Floor(b.XMin)),
		int(math.Floor(b.YMin)),
		int(math.Ceil(b.XMax)),
		int(math.Ceil(b.YMax)),
	)
	return rect.Intersect(bounds)
}
