package kafka

import (
	"Manorakshak/internal/model"
	"Manorakshak/internal/pkg/logger"
	"context"
	"fmt"
	log "log/slog"

	"github.com/IBM/sarama"
	"github.com/google/uuid"
)

// ContentAnalyzer 内容分析入口
type ContentAnalyzer interface {
	AnalyzeContent(ctx context.Context, obs *model.ContentObservation) (model.Sentiment, error)
}

// ContentHandler 消费内容消息并交给分析服务
type ContentHandler struct {
	analyzer   ContentAnalyzer
	isRejected func(error) bool
}

// NewContentHandler isRejected 判断分析错误是否属于参数错误，参数错误的消息直接跳过
func NewContentHandler(analyzer ContentAnalyzer, isRejected func(error) bool) *ContentHandler {
	return &ContentHandler{
		analyzer:   analyzer,
		isRejected: isRejected,
	}
}

func (h *ContentHandler) Setup(_ sarama.ConsumerGroupSession) error {
	return nil
}

func (h *ContentHandler) Cleanup(_ sarama.ConsumerGroupSession) error {
	return nil
}

func (h *ContentHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	return pullMessageBatch(session, claim, h.handle)
}

func (h *ContentHandler) handle(ctx context.Context, msg *sarama.ConsumerMessage) error {
	ctx = logger.WithTraceID(ctx, "kafka-"+uuid.NewString())
	obs, err := ToContentObservation(msg)
	if err != nil {
		return err
	}
	label, err := h.analyzer.AnalyzeContent(ctx, obs)
	if err != nil {
		if h.isRejected != nil && h.isRejected(err) {
			return fmt.Errorf("%w: %v", ErrSkipMessage, err)
		}
		return err
	}
	log.DebugContext(ctx, "content message consumed", "platform", obs.Platform, "sentiment", label)
	return nil
}
