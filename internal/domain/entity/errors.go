package entity

import "errors"

// Классы ошибок конвейера
var (
	ErrConfiguration   = errors.New("configuration error")
	ErrImageProcessing = errors.New("image processing failed")
	ErrInference       = errors.New("inference failed")
	ErrValidation      = errors.New("invalid license plate format")
	ErrAPI             = errors.New("api request failed")
)
