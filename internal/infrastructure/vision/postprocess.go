package vision

import (
	"fmt"
	"sort"

	"plate-sentry/internal/domain/entity"
)

// Пороги постобработки выхода детектора
const (
	ConfidenceThreshold = 0.5
	IoUThreshold        = 0.5
)

// DecodeDetections переводит сырые строки модели из центральной формы
// в угловую, отбрасывая кандидатов с уверенностью не выше порога.
// Строка с числом колонок, отличным от пяти, считается ошибкой инференса.
func DecodeDetections(rows [][]float32) ([]entity.DetectionBox, error) {
	boxes := make([]entity.DetectionBox, 0, len(rows))
	for i, row := range rows {
		if len(row) != 5 {
			return nil, fmt.Errorf("%w: row %d has %d columns, want 5", entity.ErrInference, i, len(row))
		}

		confidence := float64(row[4])
		if confidence <= ConfidenceThreshold {
			continue
		}

		cx := float64(row[0])
		cy := float64(row[1])
		w := float64(row[2])
		h := float64(row[3])

		boxes = append(boxes, entity.DetectionBox{
			XMin:       cx - w/2,
			YMin:       cy - h/2,
			XMax:       cx + w/2,
			YMax:       cy + h/2,
			Confidence: confidence,
		})
	}

	return boxes, nil
}

// NonMaxSuppression жадно убирает рамки, перекрывающие более уверенную
// сильнее порога. Результат отсортирован по убыванию уверенности,
// порядок рамок с равной уверенностью сохраняется.
func NonMaxSuppression(boxes []entity.DetectionBox, iouThreshold float64) []entity.DetectionBox {
	sorted := make([]entity.DetectionBox, len(boxes))
	copy(sorted, boxes)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Confidence > sorted[j].Confidence
	})

	keep := make([]bool, len(sorted))
	for i := range keep {
		keep[i] = true
	}

	for i := 0; i < len(sorted); i++ {
		if !keep[i] {
			continue
		}
		for j := i + 1; j < len(sorted); j++ {
			if !keep[j] {
				continue
			}
			if sorted[i].IoU(sorted[j]) > iouThreshold {
				keep[j] = false
			}
		}
	}

	result := make([]entity.DetectionBox, 0, len(sorted))
	for i, box := range sorted {
		if keep[i] {
			result = append(result, box)
		}
	}

	return result
}
