package storage

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/jpeg"
	"os"
	"path/filepath"
	"time"

	"plate-sentry/internal/domain/entity"
	"plate-sentry/internal/domain/port"
	"plate-sentry/internal/infrastructure/imaging"
)

// ArtifactStore сохраняет кадры сработавших обнаружений на диск
type ArtifactStore struct {
	dir string
}

// NewArtifactStore создаёт каталог для снимков обнаружений
func NewArtifactStore(dir string) (*ArtifactStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: cannot create detections dir %s: %v", entity.ErrConfiguration, dir, err)
	}
	return &ArtifactStore{dir: dir}, nil
}

// Save записывает кадр с обведённой рамкой в JPEG и возвращает путь к файлу.
// Имя файла складывается из времени с точностью до миллисекунд.
func (s *ArtifactStore) Save(frame image.Image, box entity.DetectionBox) (string, error) {
	bounds := frame.Bounds()
	overlay := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(overlay, overlay.Bounds(), frame, bounds.Min, draw.Src)

	red := color.RGBA{R: 255, A: 255}
	imaging.DrawRect(overlay, box.ClampTo(overlay.Bounds()), red, 2)

	name := time.Now().Format("20060102_150405.000") + ".jpg"
	path := filepath.Join(s.dir, name)

	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("%w: cannot create %s: %v", entity.ErrImageProcessing, path, err)
	}
	defer file.Close()

	if err := jpeg.Encode(file, overlay, &jpeg.Options{Quality: 90}); err != nil {
		return "", fmt.Errorf("%w: cannot encode %s: %v", entity.ErrImageProcessing, path, err)
	}

	return path, nil
}

// Проверка реализации интерфейса
var _ port.ArtifactStore = (*ArtifactStore)(nil)
