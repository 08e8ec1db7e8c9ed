package job

import (
	"Manorakshak/internal/pkg/logger"
	"Manorakshak/internal/service"
	"context"
	"errors"
	log "log/slog"
	"time"

	"github.com/google/uuid"
)

type MoodMetricJob struct {
	moodMetricSvc service.MoodMetricService
}

func NewMoodMetricJob(moodMetricSvc service.MoodMetricService) *MoodMetricJob {
	return &MoodMetricJob{
		moodMetricSvc: moodMetricSvc,
	}
}

func (s *MoodMetricJob) Run() {
	traceID := "job-" + uuid.NewString()
	ctx := logger.WithTraceID(context.Background(), traceID)
	ctx, cancel := context.WithTimeout(ctx, time.Minute)
	defer cancel()

	err := s.moodMetricSvc.SaveDailyMetric(ctx)
	switch {
	case err == nil:
		log.InfoContext(ctx, "sync mood metrics success", "date", time.Now().Format(time.DateOnly))
	case errors.Is(err, service.ErrMetricsDisabled):
		log.DebugContext(ctx, "mood metrics disabled, skip")
	case errors.Is(err, service.ErrLockNotAcquired):
		log.WarnContext(ctx, "mood metrics job already running")
	default:
		log.ErrorContext(ctx, "sync mood metrics error", "err", err)
	}
}
