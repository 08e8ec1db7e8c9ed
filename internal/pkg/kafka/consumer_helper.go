package kafka

import (
	"context"
	"errors"
	log "log/slog"
	"time"

	"github.com/IBM/sarama"
)

const (
	batchSize    = 32
	batchTimeout = 1 * time.Second
	maxRetryWait = 5 * time.Second
)

// ErrSkipMessage 消息无法处理且重试无意义，记录后跳过
var ErrSkipMessage = errors.New("skip message")

type LogicFunc func(ctx context.Context, msg *sarama.ConsumerMessage) error

// pullMessageBatch 拉取一批消息并执行业务逻辑
func pullMessageBatch(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim, logic LogicFunc) error {
	batch := make([]*sarama.ConsumerMessage, 0, batchSize)
	ticker := time.NewTicker(batchTimeout)
	defer ticker.Stop()
	for {
		select {
		case msg, ok := <-claim.Messages():
			if !ok {
				if len(batch) > 0 {
					processBatch(session, batch, logic)
				}
				return nil
			}
			batch = append(batch, msg)
			if len(batch) >= batchSize {
				processBatch(session, batch, logic)
				// 清空缓冲区 & 重值定时器
				batch = make([]*sarama.ConsumerMessage, 0, batchSize)
				ticker.Reset(batchTimeout)
			}
		case <-ticker.C:
			if len(batch) > 0 {
				processBatch(session, batch, logic)
				batch = make([]*sarama.ConsumerMessage, 0, batchSize)
			}
		case <-session.Context().Done():
			return nil
		}
	}
}

// processBatch 按分区顺序逐条处理，情绪趋势依赖到达顺序
func processBatch(session sarama.ConsumerGroupSession, messages []*sarama.ConsumerMessage, logic LogicFunc) {
	ctx := session.Context()
	for _, msg := range messages {
		retryInterval := 100 * time.Millisecond
		for {
			err := logic(ctx, msg)
			if err == nil {
				break
			}
			if errors.Is(err, ErrSkipMessage) {
				log.WarnContext(ctx, "skip message", "topic", msg.Topic, "offset", msg.Offset, "err", err)
				break
			}

			log.ErrorContext(ctx, "process message error", "err", err)
			select {
			case <-ctx.Done():
				return
			case <-time.After(retryInterval):
			}
			retryInterval = min(retryInterval*2, maxRetryWait)
		}
		session.MarkMessage(msg, "")
	}
	session.Commit()
}
