package port

import (
	"context"

	"plate-sentry/internal/domain/entity"
)

// AlertChannel интерфейс канала доставки уведомлений
type AlertChannel interface {
	// Name возвращает имя канала для логов
	Name() string

	// Configured сообщает, заданы ли учётные данные канала
	Configured() bool

	// Send отправляет сообщение с необязательным снимком
	Send(ctx context.Context, message, imagePath string) error
}

// AlertNotifier интерфейс рассылки уведомлений об обнаружениях
type AlertNotifier interface {
	// SendAlert отправляет уведомление о событии по всем настроенным каналам
	SendAlert(ctx context.Context, event entity.DetectionEvent) error
}
