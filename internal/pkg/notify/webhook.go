package notify

import (
	"Manorakshak/internal/api/config"
	"Manorakshak/internal/model"
	"context"
	"fmt"
	log "log/slog"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/goccy/go-json"
)

// AlertPayload 推送到 webhook 的消息体
type AlertPayload struct {
	UserID    string          `json:"userId"`
	ID        int64           `json:"id"`
	Type      model.AlertType `json:"type"`
	Message   string          `json:"message"`
	Platform  string          `json:"platform"`
	Timestamp time.Time       `json:"timestamp"`
}

// WebhookNotifier 将严重提醒推送到外部 webhook
type WebhookNotifier struct {
	url        string
	userID     string
	httpClient *resty.Client
}

// NewWebhookNotifier WebhookURL 为空时返回 nil
func NewWebhookNotifier(cfg config.NotifyConfig, userID string) *WebhookNotifier {
	if cfg.WebhookURL == "" {
		return nil
	}
	timeout := time.Duration(cfg.Timeout) * time.Second
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	client := resty.New().
		SetTimeout(timeout).
		SetRetryCount(2).
		SetRetryWaitTime(200*time.Millisecond).
		SetHeader("Content-Type", "application/json")
	client.JSONMarshal = json.Marshal
	client.JSONUnmarshal = json.Unmarshal

	return &WebhookNotifier{
		url:        cfg.WebhookURL,
		userID:     userID,
		httpClient: client,
	}
}

// NotifyAlert 推送一条提醒
func (s *WebhookNotifier) NotifyAlert(ctx context.Context, alert model.Alert) error {
	payload := &AlertPayload{
		UserID:    s.userID,
		ID:        alert.ID,
		Type:      alert.Type,
		Message:   alert.Message,
		Platform:  alert.Platform,
		Timestamp: alert.Timestamp,
	}
	resp, err := s.httpClient.R().SetContext(ctx).SetBody(payload).Post(s.url)
	if err != nil {
		log.ErrorContext(ctx, "webhook 推送失败", "err", err)
		return err
	}
	if resp.IsError() {
		log.ErrorContext(ctx, "webhook 返回异常", "status", resp.StatusCode())
		return fmt.Errorf("webhook status %d", resp.StatusCode())
	}
	return nil
}
