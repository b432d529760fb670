package entity

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// AccessStatus решение о допуске по распознанному номеру
type AccessStatus string

const (
	AccessAllowed    AccessStatus = "allowed"    // Номер есть в белом списке
	AccessDenied     AccessStatus = "denied"     // Зарезервировано под будущий чёрный список
	AccessSuspicious AccessStatus = "suspicious" // Номер не найден в белом списке
)

// Label возвращает человекочитаемую метку статуса
func (s AccessStatus) Label() string {
	switch s {
	case AccessAllowed:
		return "✅ Allowed"
	case AccessDenied:
		return "❌ Denied"
	case AccessSuspicious:
		return "⚠️ Suspicious"
	default:
		return string(s)
	}
}

// RecognizedText результат распознавания текста номера
type RecognizedText struct {
	Raw        string  // сырой текст из OCR
	Normalized string  // нормализованный текст
	Confidence float64 // средняя уверенность OCR, [0,1]
}

// DetectionEvent одно сработавшее обнаружение номера
type DetectionEvent struct {
	ID           uuid.UUID
	Timestamp    time.Time
	PlateNumber  string
	Confidence   float64
	ImagePath    string
	AccessStatus AccessStatus
}

var platePattern = regexp.MustCompile(`^[A-Z0-9-]{4,10}$`)

// NormalizePlate убирает пробелы и переводы строк и переводит текст в верхний регистр
func NormalizePlate(raw string) string {
	normalized := strings.TrimSpace(raw)
	normalized = strings.ReplaceAll(normalized, "\n", "")
	normalized = strings.ReplaceAll(normalized, " ", "")
	return strings.ToUpper(normalized)
}

// ValidatePlate проверяет нормализованный текст по формату номерного знака
func ValidatePlate(normalized string) error {
	if !platePattern.MatchString(normalized) {
		return fmt.Errorf("%w: text %q does not match license plate pattern", ErrValidation, normalized)
	}
	return nil
}
