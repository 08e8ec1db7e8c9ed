package service

import (
	"Manorakshak/internal/model"
	"Manorakshak/internal/persist"
	"Manorakshak/internal/pkg/llm"
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"
)

var errFake = errors.New("fake failure")

type fakeNotifier struct {
	alerts chan model.Alert
}

func newFakeNotifier() *fakeNotifier {
	return &fakeNotifier{alerts: make(chan model.Alert, 16)}
}

func (f *fakeNotifier) NotifyAlert(_ context.Context, alert model.Alert) error {
	f.alerts <- alert
	return nil
}

// blockingNotifier 在 release 关闭前阻塞每次推送
type blockingNotifier struct {
	inFlight atomic.Int32
	release  chan struct{}
}

func (f *blockingNotifier) NotifyAlert(ctx context.Context, _ model.Alert) error {
	f.inFlight.Add(1)
	select {
	case <-f.release:
	case <-ctx.Done():
	}
	return nil
}

type fakeAssistant struct {
	report      string
	suggestions []model.Suggestion
	summary     string
	err         error
	lastInput   *llm.WellbeingInput
}

func (f *fakeAssistant) Report(_ context.Context, in *llm.WellbeingInput) (string, error) {
	f.lastInput = in
	return f.report, f.err
}

func (f *fakeAssistant) Suggestions(_ context.Context, in *llm.WellbeingInput) ([]model.Suggestion, error) {
	f.lastInput = in
	return f.suggestions, f.err
}

func (f *fakeAssistant) Summarize(_ context.Context, _ string) (string, error) {
	return f.summary, f.err
}

type fakeMetricCache struct {
	mu      sync.Mutex
	lists   map[string][]string
	locked  map[string]string
	deleted []string
	ttl     time.Duration
}

func newFakeMetricCache() *fakeMetricCache {
	return &fakeMetricCache{
		lists:  make(map[string][]string),
		locked: make(map[string]string),
	}
}

func (f *fakeMetricCache) GetList(_ context.Context, key string) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lists[key], nil
}

func (f *fakeMetricCache) SetList(_ context.Context, key string, values []string, expiration time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lists[key] = values
	f.ttl = expiration
	return nil
}

func (f *fakeMetricCache) Delete(_ context.Context, keys ...string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, k := range keys {
		delete(f.lists, k)
		f.deleted = append(f.deleted, k)
	}
	return nil
}

func (f *fakeMetricCache) TryLock(_ context.Context, key, value string, _ time.Duration) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.locked[key]; ok {
		return false, nil
	}
	f.locked[key] = value
	return true, nil
}

func (f *fakeMetricCache) UnLock(_ context.Context, key, value string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.locked[key] == value {
		delete(f.locked, key)
	}
}

type fakeMoodMetricRepo struct {
	mu      sync.Mutex
	metrics []*model.MoodDailyMetric
	reads   int
	err     error
}

func (f *fakeMoodMetricRepo) AutoMigrate() error { return nil }

func (f *fakeMoodMetricRepo) SaveOrUpdateMetric(_ context.Context, metric *model.MoodDailyMetric) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	for i, m := range f.metrics {
		if m.UserID == metric.UserID && m.MetricDate.Equal(metric.MetricDate) {
			f.metrics[i] = metric
			return nil
		}
	}
	f.metrics = append(f.metrics, metric)
	return nil
}

func (f *fakeMoodMetricRepo) GetMetricsSince(_ context.Context, userID string, since time.Time) ([]*model.MoodDailyMetric, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reads++
	if f.err != nil {
		return nil, f.err
	}
	out := make([]*model.MoodDailyMetric, 0)
	for _, m := range f.metrics {
		if m.UserID == userID && !m.MetricDate.Before(since) {
			out = append(out, m)
		}
	}
	return out, nil
}

type fixedStatus struct {
	lastError string
}

func (f fixedStatus) Status() persist.Status {
	return persist.Status{LastError: f.lastError}
}
