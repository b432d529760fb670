package vision

import (
	"testing"

	"github.com/stretchr/testify/require"

	"plate-sentry/internal/domain/entity"
)

func TestDecodeDetections(t *testing.T) {
	rows := [][]float32{
		{320, 240, 100, 50, 0.9},
		{100, 100, 40, 20, 0.4}, // ниже порога
		{500, 300, 80, 30, 0.6},
	}

	boxes, err := DecodeDetections(rows)
	require.NoError(t, err)
	require.Len(t, boxes, 2)

	require.InDelta(t, 270.0, boxes[0].XMin, 1e-6)
	require.InDelta(t, 215.0, boxes[0].YMin, 1e-6)
	require.InDelta(t, 370.0, boxes[0].XMax, 1e-6)
	require.InDelta(t, 265.0, boxes[0].YMax, 1e-6)
	require.InDelta(t, 0.9, boxes[0].Confidence, 1e-6)

	for _, box := range boxes {
		require.LessOrEqual(t, box.XMin, box.XMax)
		require.LessOrEqual(t, box.YMin, box.YMax)
	}
}

func TestDecodeDetectionsThresholdIsExclusive(t *testing.T) {
	boxes, err := DecodeDetections([][]float32{{10, 10, 4, 4, 0.5}})
	require.NoError(t, err)
	require.Empty(t, boxes)
}

func TestDecodeDetectionsBadRow(t *testing.T) {
	_, err := DecodeDetections([][]float32{{10, 10, 4, 4}})
	require.ErrorIs(t, err, entity.ErrInference)

	_, err = DecodeDetections([][]float32{{10, 10, 4, 4, 0.9, 1}})
	require.ErrorIs(t, err, entity.ErrInference)
}

func TestNonMaxSuppressionRemovesOverlapping(t *testing.T) {
	// Две почти совпадающие рамки: остаётся более уверенная.
	boxes := []entity.DetectionBox{
		{XMin: 0, YMin: 0, XMax: 100, YMax: 50, Confidence: 0.6},
		{XMin: 2, YMin: 0, XMax: 102, YMax: 50, Confidence: 0.9},
	}
	require.Greater(t, boxes[0].IoU(boxes[1]), 0.8)

	kept := NonMaxSuppression(boxes, IoUThreshold)
	require.Len(t, kept, 1)
	require.InDelta(t, 0.9, kept[0].Confidence, 1e-9)
}

func TestNonMaxSuppressionKeepsDisjoint(t *testing.T) {
	boxes := []entity.DetectionBox{
		{XMin: 0, YMin: 0, XMax: 50, YMax: 50, Confidence: 0.6},
		{XMin: 200, YMin: 0, XMax: 250, YMax: 50, Confidence: 0.9},
		{XMin: 400, YMin: 0, XMax: 450, YMax: 50, Confidence: 0.7},
	}

	kept := NonMaxSuppression(boxes, IoUThreshold)
	require.Len(t, kept, 3)

	// Результат отсортирован по убыванию уверенности.
	require.InDelta(t, 0.9, kept[0].Confidence, 1e-9)
	require.InDelta(t, 0.7, kept[1].Confidence, 1e-9)
	require.InDelta(t, 0.6, kept[2].Confidence, 1e-9)
}

func TestNonMaxSuppressionStableOnTies(t *testing.T) {
	boxes := []entity.DetectionBox{
		{XMin: 0, YMin: 0, XMax: 50, YMax: 50, Confidence: 0.8},
		{XMin: 200, YMin: 0, XMax: 250, YMax: 50, Confidence: 0.8},
	}

	kept := NonMaxSuppression(boxes, IoUThreshold)
	require.Len(t, kept, 2)
	require.Equal(t, boxes[0].XMin, kept[0].XMin)
	require.Equal(t, boxes[1].XMin, kept[1].XMin)
}

func TestNonMaxSuppressionPairwiseProperty(t *testing.T) {
	boxes := []entity.DetectionBox{
		{XMin: 0, YMin: 0, XMax: 100, YMax: 50, Confidence: 0.95},
		{XMin: 10, YMin: 5, XMax: 110, YMax: 55, Confidence: 0.9},
		{XMin: 60, YMin: 0, XMax: 160, YMax: 50, Confidence: 0.85},
		{XMin: 300, YMin: 0, XMax: 400, YMax: 50, Confidence: 0.8},
		{XMin: 305, YMin: 2, XMax: 405, YMax: 52, Confidence: 0.75},
	}

	kept := NonMaxSuppression(boxes, IoUThreshold)
	for i := 0; i < len(kept); i++ {
		for j := i + 1; j < len(kept); j++ {
			require.LessOrEqual(t, kept[i].IoU(kept[j]), IoUThreshold)
		}
	}
}
