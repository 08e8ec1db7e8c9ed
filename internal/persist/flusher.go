package persist

import (
	"Manorakshak/internal/model"
	"context"
	"errors"
	log "log/slog"
	"sync"
	"time"
)

// Snapshotter 提供一致的状态快照
type Snapshotter interface {
	Snapshot() model.UserState
}

type FlusherConfig struct {
	Timeout    time.Duration // 单次保存超时
	MaxRetries int           // 失败后的重试次数
	Backoff    time.Duration // 首次重试间隔，之后翻倍
	MaxBackoff time.Duration
}

func (c FlusherConfig) withDefaults() FlusherConfig {
	if c.Timeout <= 0 {
		c.Timeout = 5 * time.Second
	}
	if c.MaxRetries < 0 {
		c.MaxRetries = 0
	}
	if c.Backoff <= 0 {
		c.Backoff = 100 * time.Millisecond
	}
	if c.MaxBackoff < c.Backoff {
		c.MaxBackoff = 5 * time.Second
	}
	return c
}

// Status 最近一次保存结果
type Status struct {
	LastSuccess time.Time `json:"lastSuccess"`
	LastAttempt time.Time `json:"lastAttempt"`
	LastError   string    `json:"lastError,omitempty"`
	Flushes     int64     `json:"flushes"`
	Failures    int64     `json:"failures"`
}

// Flusher 后台异步保存聚合状态。Request 合并重复请求且永不阻塞
type Flusher struct {
	store  Store
	source Snapshotter
	userID string
	cfg    FlusherConfig

	requests chan struct{}
	cancel   context.CancelFunc
	done     chan struct{}
	start    sync.Once
	closed   sync.Once

	saveMu sync.Mutex
	mu     sync.RWMutex
	status Status
}

func NewFlusher(store Store, source Snapshotter, userID string, cfg FlusherConfig) *Flusher {
	return &Flusher{
		store:    store,
		source:   source,
		userID:   userID,
		cfg:      cfg.withDefaults(),
		requests: make(chan struct{}, 1),
		done:     make(chan struct{}),
	}
}

// Start 启动后台循环
func (f *Flusher) Start(ctx context.Context) {
	f.start.Do(func() {
		loopCtx, cancel := context.WithCancel(ctx)
		f.cancel = cancel
		go f.loop(loopCtx)
	})
}

// Request 请求一次保存
func (f *Flusher) Request() {
	select {
	case f.requests <- struct{}{}:
	default:
	}
}

func (f *Flusher) loop(ctx context.Context) {
	defer close(f.done)
	for {
		select {
		case <-ctx.Done():
			return
		case <-f.requests:
			_ = f.Flush(ctx)
		}
	}
}

// Flush 同步保存当前快照，失败按退避重试
func (f *Flusher) Flush(ctx context.Context) error {
	f.saveMu.Lock()
	defer f.saveMu.Unlock()

	backoff := f.cfg.Backoff
	var err error
	for attempt := 0; attempt <= f.cfg.MaxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				f.record(ctx.Err())
				return ctx.Err()
			case <-time.After(backoff):
			}
			backoff = min(backoff*2, f.cfg.MaxBackoff)
		}

		err = f.saveOnce(ctx)
		f.record(err)
		if err == nil {
			return nil
		}
		log.WarnContext(ctx, "flush user state failed",
			"user_id", f.userID, "attempt", attempt+1, "err", err)
		if ctx.Err() != nil {
			return err
		}
	}

	log.ErrorContext(ctx, "flush user state gave up, will retry on next schedule",
		"user_id", f.userID, "err", err)
	return err
}

func (f *Flusher) saveOnce(ctx context.Context) error {
	snap := f.source.Snapshot()
	snap.LastUpdated = time.Now()

	saveCtx, cancel := context.WithTimeout(ctx, f.cfg.Timeout)
	defer cancel()
	return f.store.Save(saveCtx, f.userID, &snap)
}

func (f *Flusher) record(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	now := time.Now()
	f.status.LastAttempt = now
	if err != nil {
		f.status.Failures++
		f.status.LastError = err.Error()
		return
	}
	f.status.Flushes++
	f.status.LastSuccess = now
	f.status.LastError = ""
}

func (f *Flusher) Status() Status {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.status
}

// Close 停止后台循环并在 ctx 期限内做最后一次保存
func (f *Flusher) Close(ctx context.Context) error {
	var err error
	f.closed.Do(func() {
		if f.cancel != nil {
			f.cancel()
			select {
			case <-f.done:
			case <-ctx.Done():
				err = ctx.Err()
				return
			}
		}
		log.InfoContext(ctx, "saving user state before exit", "user_id", f.userID)
		err = f.Flush(ctx)
	})
	if errors.Is(err, context.DeadlineExceeded) {
		log.ErrorContext(ctx, "final flush timed out", "user_id", f.userID)
	}
	return err
}
