package notify

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"strings"
	"time"

	"plate-sentry/internal/domain/entity"
	"plate-sentry/internal/domain/port"
)

const lineNotifyURL = "https://notify-api.line.me/api/notify"

// LineChannel отправляет уведомления через LINE Notify
type LineChannel struct {
	token   string
	baseURL string
	client  *http.Client
}

// NewLineChannel создаёт канал LINE Notify. Пустой токен делает
// канал ненастроенным, это не ошибка.
func NewLineChannel(token string) *LineChannel {
	return &LineChannel{
		token:   token,
		baseURL: lineNotifyURL,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

// Name возвращает имя канала для логов
func (c *LineChannel) Name() string {
	return "line"
}

// Configured сообщает, задан ли токен
func (c *LineChannel) Configured() bool {
	return c.token != ""
}

// Send отправляет сообщение с необязательным снимком как
// multipart-форму с bearer-авторизацией
func (c *LineChannel) Send(ctx context.Context, message, imagePath string) error {
	var body bytes.Buffer
	form := multipart.NewWriter(&body)

	if err := form.WriteField("message", message); err != nil {
		return fmt.Errorf("%w: line: %v", entity.ErrAPI, err)
	}

	if imagePath != "" {
		data, err := os.ReadFile(imagePath)
		if err != nil {
			return fmt.Errorf("%w: line: cannot read image %s: %v", entity.ErrImageProcessing, imagePath, err)
		}

		part, err := form.CreateFormFile("imageFile", "detection.jpg")
		if err != nil {
			return fmt.Errorf("%w: line: %v", entity.ErrAPI, err)
		}
		if _, err := part.Write(data); err != nil {
			return fmt.Errorf("%w: line: %v", entity.ErrAPI, err)
		}
	}

	if err := form.Close(); err != nil {
		return fmt.Errorf("%w: line: %v", entity.ErrAPI, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, &body)
	if err != nil {
		return fmt.Errorf("%w: line: %v", entity.ErrAPI, err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", form.FormDataContentType())

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: line: %v", entity.ErrAPI, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		text, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: line: status %d: %s", entity.ErrAPI, resp.StatusCode, strings.TrimSpace(string(text)))
	}

	return nil
}

// Проверка реализации интерфейса
var _ port.AlertChannel = (*LineChannel)(nil)
