package notify

import (
	"fmt"

	"plate-sentry/internal/domain/entity"
)

// FormatMessage собирает текст уведомления об обнаружении
func FormatMessage(event entity.DetectionEvent) string {
	return fmt.Sprintf(
		"🚗 License Plate Detection\n\nPlate: %s\nStatus: %s\nConfidence: %.1f%%\nTime: %s",
		event.PlateNumber,
		event.AccessStatus.Label(),
		event.Confidence*100,
		event.Timestamp.Format("2006-01-02 15:04:05"),
	)
}
