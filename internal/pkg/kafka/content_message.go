package kafka

import (
	"Manorakshak/internal/model"
	"Manorakshak/internal/pkg/util"
	"fmt"

	"github.com/IBM/sarama"
	"github.com/goccy/go-json"
)

// ContentMessage 插件或爬虫写入 topic 的内容消息
type ContentMessage struct {
	Text        string `json:"text" validate:"required"`
	Platform    string `json:"platform" validate:"required,max=64"`
	ContentType string `json:"contentType" validate:"omitempty,max=32"`
}

// ToContentObservation 解析消息，格式错误或缺少字段时返回 ErrSkipMessage。记录时间以入库时间为准
func ToContentObservation(msg *sarama.ConsumerMessage) (*model.ContentObservation, error) {
	var m ContentMessage
	if err := json.Unmarshal(msg.Value, &m); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSkipMessage, err)
	}
	if err := util.ValidateDTO(&m); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSkipMessage, err)
	}
	return &model.ContentObservation{
		Text:        m.Text,
		Platform:    m.Platform,
		ContentType: m.ContentType,
	}, nil
}
