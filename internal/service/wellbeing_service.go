package service

import (
	"Manorakshak/internal/aggregate"
	"Manorakshak/internal/model"
	"Manorakshak/internal/persist"
	"Manorakshak/internal/pkg/consts"
	"Manorakshak/internal/pkg/sentiment"
	"context"
	"fmt"
	log "log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/sync/semaphore"
)

// maxPendingNotify 同时推送中的严重提醒上限，超出时丢弃推送
const maxPendingNotify = 4

// AlertNotifier 严重提醒的外部推送
type AlertNotifier interface {
	NotifyAlert(ctx context.Context, alert model.Alert) error
}

// FlushStatusReporter 持久化状态
type FlushStatusReporter interface {
	Status() persist.Status
}

type WellbeingService interface {
	AnalyzeContent(ctx context.Context, obs *model.ContentObservation) (model.Sentiment, error)
	AddAlert(ctx context.Context, message string, alertType model.AlertType, platform string) (*model.Alert, error)
	AddGoal(ctx context.Context, text string) (*model.Goal, error)
	GetGoals(ctx context.Context) []model.Goal
	SetCalmMode(ctx context.Context, enabled bool)
	SetMoodScore(ctx context.Context, score int) int
	AddVideo(ctx context.Context, entry *model.VideoHistoryEntry) *model.VideoHistoryEntry
	GetDashboard(ctx context.Context) *model.UserState
	GetInsights(ctx context.Context) ([]model.Insight, []model.AnalyzedContent)
	GetVideoAnalytics(ctx context.Context) *model.VideoAnalytics
	GetFlushStatus(ctx context.Context) *persist.Status
}

type wellbeingServiceImpl struct {
	store         *aggregate.Store
	classifier    *sentiment.Classifier
	notifier      AlertNotifier
	flushStatus   FlushStatusReporter
	notifyTimeout time.Duration
	notifySem     *semaphore.Weighted
}

// NewWellbeingService notifier 与 flushStatus 可以为 nil
func NewWellbeingService(
	store *aggregate.Store,
	classifier *sentiment.Classifier,
	notifier AlertNotifier,
	flushStatus FlushStatusReporter,
) WellbeingService {
	return &wellbeingServiceImpl{
		store:         store,
		classifier:    classifier,
		notifier:      notifier,
		flushStatus:   flushStatus,
		notifyTimeout: 10 * time.Second,
		notifySem:     semaphore.NewWeighted(maxPendingNotify),
	}
}

func (s *wellbeingServiceImpl) AnalyzeContent(ctx context.Context, obs *model.ContentObservation) (model.Sentiment, error) {
	if obs == nil || strings.TrimSpace(obs.Text) == "" || strings.TrimSpace(obs.Platform) == "" {
		return "", ErrParamInvalid
	}

	label := s.classifier.Classify(obs.Text, s.store.Goals())
	score, err := s.store.ApplyClassification(label, obs.Platform, obs.ContentType, obs.Text)
	if err != nil {
		log.ErrorContext(ctx, "apply classification error", "err", err)
		return "", UnExpectedError
	}
	log.DebugContext(ctx, "content analyzed", "platform", obs.Platform, "sentiment", label, "mood_score", score)

	alertType, ok := alertTypeFor(label)
	if !ok {
		return label, nil
	}
	if _, err = s.AddAlert(ctx, alertMessage(label, obs.Text), alertType, obs.Platform); err != nil {
		log.ErrorContext(ctx, "add alert error", "err", err)
	}
	return label, nil
}

func (s *wellbeingServiceImpl) AddAlert(ctx context.Context, message string, alertType model.AlertType, platform string) (*model.Alert, error) {
	if strings.TrimSpace(message) == "" || !alertType.Valid() {
		return nil, ErrParamInvalid
	}
	alert, err := s.store.AddAlert(message, alertType, platform)
	if err != nil {
		return nil, ErrParamInvalid
	}
	if alert.Type == model.AlertCritical && s.notifier != nil {
		if !s.notifySem.TryAcquire(1) {
			log.WarnContext(ctx, "too many pending alert notifications, skip", "alert_id", alert.ID)
			return &alert, nil
		}
		go s.notify(context.WithoutCancel(ctx), alert)
	}
	return &alert, nil
}

func (s *wellbeingServiceImpl) notify(ctx context.Context, alert model.Alert) {
	defer s.notifySem.Release(1)
	ctx, cancel := context.WithTimeout(ctx, s.notifyTimeout)
	defer cancel()
	if err := s.notifier.NotifyAlert(ctx, alert); err != nil {
		log.WarnContext(ctx, "notify alert error", "alert_id", alert.ID, "err", err)
	}
}

func (s *wellbeingServiceImpl) AddGoal(ctx context.Context, text string) (*model.Goal, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrGoalEmpty
	}
	goal := s.store.AddGoal(text)
	log.InfoContext(ctx, "goal added", "goal_id", goal.ID)
	return &goal, nil
}

func (s *wellbeingServiceImpl) GetGoals(_ context.Context) []model.Goal {
	return s.store.Goals()
}

func (s *wellbeingServiceImpl) SetCalmMode(ctx context.Context, enabled bool) {
	s.store.SetCalmMode(enabled)
	log.InfoContext(ctx, "calm mode changed", "enabled", enabled)
}

func (s *wellbeingServiceImpl) SetMoodScore(_ context.Context, score int) int {
	return s.store.SetMoodScore(score)
}

func (s *wellbeingServiceImpl) AddVideo(_ context.Context, entry *model.VideoHistoryEntry) *model.VideoHistoryEntry {
	saved := s.store.AddVideoHistory(*entry)
	return &saved
}

func (s *wellbeingServiceImpl) GetDashboard(_ context.Context) *model.UserState {
	snapshot := s.store.Snapshot()
	return &snapshot
}

func (s *wellbeingServiceImpl) GetInsights(_ context.Context) ([]model.Insight, []model.AnalyzedContent) {
	snapshot := s.store.Snapshot()
	recent := snapshot.AnalyzedContent
	if len(recent) > consts.RecentContentLimit {
		recent = recent[len(recent)-consts.RecentContentLimit:]
	}
	return aggregate.GenerateInsights(snapshot), recent
}

func (s *wellbeingServiceImpl) GetVideoAnalytics(_ context.Context) *model.VideoAnalytics {
	snapshot := s.store.Snapshot()
	analytics := aggregate.BuildVideoAnalytics(snapshot.VideoHistory, time.Now())
	return &analytics
}

func (s *wellbeingServiceImpl) GetFlushStatus(_ context.Context) *persist.Status {
	if s.flushStatus == nil {
		return &persist.Status{}
	}
	status := s.flushStatus.Status()
	return &status
}

// alertTypeFor 有害内容为严重提醒，消极内容为警告
func alertTypeFor(label model.Sentiment) (model.AlertType, bool) {
	switch label {
	case model.SentimentToxic:
		return model.AlertCritical, true
	case model.SentimentNegative:
		return model.AlertWarning, true
	default:
		return "", false
	}
}

func alertMessage(label model.Sentiment, text string) string {
	snippet := text
	if utf8.RuneCountInString(snippet) > consts.AlertSnippetLen {
		snippet = string([]rune(snippet)[:consts.AlertSnippetLen])
	}
	return fmt.Sprintf("%s content detected: \"%s...\"", label, snippet)
}
