//go:build gocv
// +build gocv

package vision

import (
	"context"
	"encoding/binary"
	"fmt"
	"math"
	"sync"

	"gocv.io/x/gocv"

	"plate-sentry/internal/domain/entity"
	"plate-sentry/internal/domain/port"
)

// ONNXEngine движок инференса на базе DNN-модуля OpenCV
type ONNXEngine struct {
	mu  sync.Mutex
	net gocv.Net
}

// NewONNXEngine загружает ONNX-модель детектора
func NewONNXEngine(modelPath string) (*ONNXEngine, error) {
	net := gocv.ReadNetFromONNX(modelPath)
	if net.Empty() {
		return nil, fmt.Errorf("%w: cannot load model %s", entity.ErrConfiguration, modelPath)
	}
	return &ONNXEngine{net: net}, nil
}

// Infer прогоняет тензор через сеть и возвращает строки-кандидаты.
// Сеть не потокобезопасна, вызовы сериализуются мьютексом.
func (e *ONNXEngine) Infer(ctx context.Context, tensor []float32) ([][]float32, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	blob, err := gocv.NewMatWithSizesFromBytes(
		[]int{1, 3, InputHeight, InputWidth},
		gocv.MatTypeCV32F,
		float32sToBytes(tensor),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: cannot build input blob: %v", entity.ErrInference, err)
	}
	defer blob.Close()

	e.net.SetInput(blob, "")
	out := e.net.Forward("")
	defer out.Close()

	// Выход ожидается формы (1, N, 5) либо (N, 5)
	sizes := out.Size()
	var n, cols int
	switch len(sizes) {
	case 3:
		if sizes[0] != 1 {
			return nil, fmt.Errorf("%w: unexpected output shape %v", entity.ErrInference, sizes)
		}
		n, cols = sizes[1], sizes[2]
	case 2:
		n, cols = sizes[0], sizes[1]
	default:
		return nil, fmt.Errorf("%w: unexpected output shape %v", entity.ErrInference, sizes)
	}

	data, err := out.DataPtrFloat32()
	if err != nil {
		return nil, fmt.Errorf("%w: cannot read output tensor: %v", entity.ErrInference, err)
	}
	if len(data) < n*cols {
		return nil, fmt.Errorf("%w: output tensor is truncated", entity.ErrInference)
	}

	rows := make([][]float32, n)
	for i := 0; i < n; i++ {
		row := make([]float32, cols)
		copy(row, data[i*cols:(i+1)*cols])
		rows[i] = row
	}

	return rows, nil
}

// Close освобождает ресурсы сети
func (e *ONNXEngine) Close() error {
	return e.net.Close()
}

func float32sToBytes(values []float32) []byte {
	data := make([]byte, 4*len(values))
	for i, v := range values {
		binary.LittleEndian.PutUint32(data[i*4:], math.Float32bits(v))
	}
	return data
}

// Проверка реализации интерфейса
var _ port.InferenceEngine = (*ONNXEngine)(nil)
