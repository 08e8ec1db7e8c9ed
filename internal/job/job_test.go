package job

import (
	"Manorakshak/internal/model"
	"Manorakshak/internal/service"
	"context"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

type countingFlusher struct {
	requests atomic.Int32
}

func (c *countingFlusher) Request() {
	c.requests.Add(1)
}

type fakeMoodMetricService struct {
	calls atomic.Int32
	err   error
}

func (f *fakeMoodMetricService) SaveDailyMetric(_ context.Context) error {
	f.calls.Add(1)
	return f.err
}

func (f *fakeMoodMetricService) GetMoodMetricsBy7Days(_ context.Context) ([]*model.MoodDailyMetric, error) {
	return nil, nil
}

func (f *fakeMoodMetricService) GetMoodMetricsBy30Days(_ context.Context) ([]*model.MoodDailyMetric, error) {
	return nil, nil
}

func TestStateFlushJob_Run(t *testing.T) {
	t.Parallel()

	flusher := &countingFlusher{}
	NewStateFlushJob(flusher).Run()
	NewStateFlushJob(flusher).Run()
	assert.Equal(t, int32(2), flusher.requests.Load())
}

func TestMoodMetricJob_Run(t *testing.T) {
	t.Parallel()

	for _, err := range []error{nil, service.ErrMetricsDisabled, service.ErrLockNotAcquired, service.UnExpectedError} {
		svc := &fakeMoodMetricService{err: err}
		NewMoodMetricJob(svc).Run()
		assert.Equal(t, int32(1), svc.calls.Load())
	}
}
