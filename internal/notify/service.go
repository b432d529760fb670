package notify

import (
	"context"

	"github.com/rs/zerolog"

	"plate-sentry/internal/domain/entity"
	"plate-sentry/internal/domain/port"
)

// Service рассылает уведомления по всем настроенным каналам.
// Доставка негарантированная: отказ одного канала логируется
// и не мешает остальным.
type Service struct {
	channels []port.AlertChannel
	log      zerolog.Logger
}

// NewService создаёт рассылку по переданным каналам
func NewService(log zerolog.Logger, channels ...port.AlertChannel) *Service {
	return &Service{
		channels: channels,
		log:      log,
	}
}

// SendAlert отправляет уведомление о событии по каждому каналу.
// Канал без учётных данных пропускается, это не ошибка.
func (s *Service) SendAlert(ctx context.Context, event entity.DetectionEvent) error {
	message := FormatMessage(event)

	s.log.Info().Str("plate", event.PlateNumber).Msg("sending alert")

	for _, channel := range s.channels {
		if !channel.Configured() {
			s.log.Debug().Str("channel", channel.Name()).Msg("channel is not configured, skipping")
			continue
		}

		if err := channel.Send(ctx, message, event.ImagePath); err != nil {
			s.log.Error().Err(err).Str("channel", channel.Name()).Msg("failed to send notification")
			continue
		}

		s.log.Debug().Str("channel", channel.Name()).Msg("notification sent")
	}

	return nil
}

// Проверка реализации интерфейса
var _ port.AlertNotifier = (*Service)(nil)
