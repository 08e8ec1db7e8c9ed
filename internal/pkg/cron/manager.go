package cron

import (
	"Manorakshak/internal/job"
	log "log/slog"

	"github.com/robfig/cron/v3"
)

const moodMetricSpec = "0 55 23 * * *"

type Manager struct {
	engine        *cron.Cron
	flushSpec     string
	stateFlushJob *job.StateFlushJob
	moodMetricJob *job.MoodMetricJob
}

func NewCronManager(flushSpec string, stateFlushJob *job.StateFlushJob, moodMetricJob *job.MoodMetricJob) *Manager {
	if flushSpec == "" {
		flushSpec = "@every 30s"
	}
	return &Manager{
		engine:        cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger))),
		flushSpec:     flushSpec,
		stateFlushJob: stateFlushJob,
		moodMetricJob: moodMetricJob,
	}
}

// RegisterJobs 注册定时任务
func (s *Manager) RegisterJobs() error {
	if _, err := s.engine.AddJob(s.flushSpec, s.stateFlushJob); err != nil {
		return err
	}
	if s.moodMetricJob != nil {
		if _, err := s.engine.AddJob(moodMetricSpec, s.moodMetricJob); err != nil {
			return err
		}
	}
	return nil
}

// Entries 已注册任务数
func (s *Manager) Entries() int {
	return len(s.engine.Entries())
}

func (s *Manager) Start() {
	log.Info("Cron 定时任务引擎启动")
	s.engine.Start()
}

func (s *Manager) Stop() {
	log.Info("Cron 定时任务引擎停止")
	<-s.engine.Stop().Done()
}
