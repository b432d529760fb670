package app

import (
	"context"
	"errors"
	"image"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"plate-sentry/internal/domain/entity"
)

type fakeDetector struct {
	boxes []entity.DetectionBox
	err   error
}

func (d *fakeDetector) Detect(ctx context.Context, frame image.Image) ([]entity.DetectionBox, error) {
	return d.boxes, d.err
}

// fakeRecognizer выбирает ответ по ширине выреза, чтобы не зависеть
// от порядка обработки рамок воркерами.
type fakeRecognizer struct {
	byWidth map[int]entity.RecognizedText
	errFor  map[int]error
}

func (r *fakeRecognizer) Recognize(ctx context.Context, plate image.Image) (entity.RecognizedText, error) {
	w := plate.Bounds().Dx()
	if err, ok := r.errFor[w]; ok {
		return entity.RecognizedText{}, err
	}
	text, ok := r.byWidth[w]
	if !ok {
		return entity.RecognizedText{}, errors.New("unexpected crop width")
	}
	return text, nil
}

type fakeWhitelist struct {
	plates map[string]struct{}
}

func (w *fakeWhitelist) Contains(plate string) bool {
	_, ok := w.plates[plate]
	return ok
}

func (w *fakeWhitelist) Reload() error { return nil }

type fakeArtifacts struct {
	saved int
}

func (a *fakeArtifacts) Save(frame image.Image, box entity.DetectionBox) (string, error) {
	a.saved++
	return "detections/test.jpg", nil
}

type fakeNotifier struct {
	events []entity.DetectionEvent
}

func (n *fakeNotifier) SendAlert(ctx context.Context, event entity.DetectionEvent) error {
	n.events = append(n.events, event)
	return nil
}

func testFrame() image.Image {
	return image.NewRGBA(image.Rect(0, 0, 640, 480))
}

func TestPipelineAllowedAndSuspicious(t *testing.T) {
	detector := &fakeDetector{boxes: []entity.DetectionBox{
		{XMin: 0, YMin: 0, XMax: 100, YMax: 40, Confidence: 0.9},
		{XMin: 200, YMin: 0, XMax: 250, YMax: 40, Confidence: 0.8},
	}}
	recognizer := &fakeRecognizer{byWidth: map[int]entity.RecognizedText{
		100: {Raw: "ABC123", Normalized: "ABC123", Confidence: 0.95},
		50:  {Raw: "XYZ999", Normalized: "XYZ999", Confidence: 0.7},
	}}
	whitelist := &fakeWhitelist{plates: map[string]struct{}{"ABC123": {}}}
	artifacts := &fakeArtifacts{}
	notifier := &fakeNotifier{}

	svc := NewPipelineService(detector, recognizer, whitelist, artifacts, notifier, 2, zerolog.Nop())

	events, err := svc.ProcessFrame(context.Background(), testFrame())
	require.NoError(t, err)
	require.Len(t, events, 2)

	// Порядок следует за уверенностью детектора.
	require.Equal(t, "ABC123", events[0].PlateNumber)
	require.Equal(t, entity.AccessAllowed, events[0].AccessStatus)
	require.Equal(t, "XYZ999", events[1].PlateNumber)
	require.Equal(t, entity.AccessSuspicious, events[1].AccessStatus)

	require.Equal(t, 2, artifacts.saved)

	// Уведомление уходит только по подозрительному номеру.
	require.Len(t, notifier.events, 1)
	require.Equal(t, "XYZ999", notifier.events[0].PlateNumber)
}

func TestPipelineValidationFailureSkipsOnlyThatBox(t *testing.T) {
	detector := &fakeDetector{boxes: []entity.DetectionBox{
		{XMin: 0, YMin: 0, XMax: 100, YMax: 40, Confidence: 0.9},
		{XMin: 200, YMin: 0, XMax: 250, YMax: 40, Confidence: 0.8},
	}}
	recognizer := &fakeRecognizer{
		byWidth: map[int]entity.RecognizedText{
			50: {Raw: "XYZ999", Normalized: "XYZ999", Confidence: 0.7},
		},
		errFor: map[int]error{
			100: entity.ErrValidation,
		},
	}
	whitelist := &fakeWhitelist{plates: map[string]struct{}{}}
	notifier := &fakeNotifier{}

	svc := NewPipelineService(detector, recognizer, whitelist, nil, notifier, 1, zerolog.Nop())

	events, err := svc.ProcessFrame(context.Background(), testFrame())
	require.NoError(t, err)
	require.Len(t, events, 1)
	require.Equal(t, "XYZ999", events[0].PlateNumber)
}

func TestPipelineBoxOutsideFrameIsSkipped(t *testing.T) {
	detector := &fakeDetector{boxes: []entity.DetectionBox{
		{XMin: 1000, YMin: 1000, XMax: 1100, YMax: 1100, Confidence: 0.9},
	}}
	recognizer := &fakeRecognizer{}

	svc := NewPipelineService(detector, recognizer, &fakeWhitelist{}, nil, nil, 1, zerolog.Nop())

	events, err := svc.ProcessFrame(context.Background(), testFrame())
	require.NoError(t, err)
	require.Empty(t, events)
}

func TestPipelineDetectorErrorIsFatalForFrame(t *testing.T) {
	detector := &fakeDetector{err: entity.ErrInference}

	svc := NewPipelineService(detector, &fakeRecognizer{}, &fakeWhitelist{}, nil, nil, 1, zerolog.Nop())

	_, err := svc.ProcessFrame(context.Background(), testFrame())
	require.ErrorIs(t, err, entity.ErrInference)
}

func TestPipelineNoDetections(t *testing.T) {
	svc := NewPipelineService(&fakeDetector{}, &fakeRecognizer{}, &fakeWhitelist{}, nil, nil, 1, zerolog.Nop())

	events, err := svc.ProcessFrame(context.Background(), testFrame())
	require.NoError(t, err)
	require.Empty(t, events)
}
