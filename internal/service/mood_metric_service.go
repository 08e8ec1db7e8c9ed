package service

import (
	"Manorakshak/internal/aggregate"
	"Manorakshak/internal/model"
	"Manorakshak/internal/pkg/consts"
	"Manorakshak/internal/pkg/redis"
	"Manorakshak/internal/repository"
	"context"
	log "log/slog"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
)

type MoodMetricService interface {
	SaveDailyMetric(ctx context.Context) error
	GetMoodMetricsBy7Days(ctx context.Context) ([]*model.MoodDailyMetric, error)
	GetMoodMetricsBy30Days(ctx context.Context) ([]*model.MoodDailyMetric, error)
}

type moodMetricServiceImpl struct {
	store          *aggregate.Store
	moodMetricRepo repository.MoodMetricRepo
	cache          MetricCache
	userID         string
	now            func() time.Time
}

// MetricCache 统计列表缓存，默认实现基于 redis
type MetricCache interface {
	GetList(ctx context.Context, key string) ([]string, error)
	SetList(ctx context.Context, key string, values []string, expiration time.Duration) error
	Delete(ctx context.Context, keys ...string) error
	TryLock(ctx context.Context, key, value string, expiration time.Duration) (bool, error)
	UnLock(ctx context.Context, key, value string)
}

// NewMoodMetricService moodMetricRepo 为 nil 时所有接口返回 ErrMetricsDisabled
func NewMoodMetricService(store *aggregate.Store, moodMetricRepo repository.MoodMetricRepo, cache MetricCache, userID string) MoodMetricService {
	if cache == nil {
		cache = redisMetricCache{}
	}
	return &moodMetricServiceImpl{
		store:          store,
		moodMetricRepo: moodMetricRepo,
		cache:          cache,
		userID:         userID,
		now:            time.Now,
	}
}

// SaveDailyMetric 将当前快照写入当天的统计，同一天重复执行覆盖
func (s *moodMetricServiceImpl) SaveDailyMetric(ctx context.Context) error {
	if s.moodMetricRepo == nil {
		return ErrMetricsDisabled
	}

	lockKey := consts.MoodMetricDailyLock + s.userID
	lockValue := uuid.NewString()
	lock, err := s.cache.TryLock(ctx, lockKey, lockValue, time.Minute*5)
	if err != nil {
		return err
	}
	if !lock {
		return ErrLockNotAcquired
	}
	defer s.cache.UnLock(ctx, lockKey, lockValue)

	snapshot := s.store.Snapshot()
	metric := &model.MoodDailyMetric{
		UserID:     s.userID,
		MetricDate: getMidnight(s.now()),
		MoodScore:  snapshot.MoodScore,
		Uplifting:  snapshot.ContentBreakdown.Uplifting,
		Negative:   snapshot.ContentBreakdown.Negative,
		Neutral:    snapshot.ContentBreakdown.Neutral,
		Toxic:      snapshot.ContentBreakdown.Toxic,
	}
	if err = s.moodMetricRepo.SaveOrUpdateMetric(ctx, metric); err != nil {
		return err
	}

	// 当天数据变化后旧缓存失效
	if err = s.cache.Delete(ctx, consts.MoodMetrics7DaysKey+s.userID, consts.MoodMetrics30DaysKey+s.userID); err != nil {
		log.WarnContext(ctx, "delete mood metric cache error", "err", err)
	}
	return nil
}

func (s *moodMetricServiceImpl) GetMoodMetricsBy7Days(ctx context.Context) ([]*model.MoodDailyMetric, error) {
	return s.getMoodMetricsByDays(ctx, consts.MoodMetrics7DaysKey+s.userID, 7)
}

func (s *moodMetricServiceImpl) GetMoodMetricsBy30Days(ctx context.Context) ([]*model.MoodDailyMetric, error) {
	return s.getMoodMetricsByDays(ctx, consts.MoodMetrics30DaysKey+s.userID, 30)
}

func (s *moodMetricServiceImpl) getMoodMetricsByDays(ctx context.Context, key string, days int) ([]*model.MoodDailyMetric, error) {
	if s.moodMetricRepo == nil {
		return nil, ErrMetricsDisabled
	}

	list, err := s.cache.GetList(ctx, key)
	if err != nil {
		log.WarnContext(ctx, "get mood metric cache error", "err", err)
	}

	if len(list) != 0 {
		metrics := make([]*model.MoodDailyMetric, 0, len(list))
		for _, v := range list {
			var metric *model.MoodDailyMetric
			if err := json.Unmarshal([]byte(v), &metric); err != nil {
				return nil, err
			}
			metrics = append(metrics, metric)
		}
		return metrics, nil
	}

	since := getMidnight(s.now()).AddDate(0, 0, -(days - 1))
	metrics, err := s.moodMetricRepo.GetMetricsSince(ctx, s.userID, since)
	if err != nil {
		return nil, err
	}

	s.cacheMetrics(ctx, key, metrics)
	return metrics, nil
}

func (s *moodMetricServiceImpl) cacheMetrics(ctx context.Context, key string, metrics []*model.MoodDailyMetric) {
	metricJsons := make([]string, 0, len(metrics))
	for _, v := range metrics {
		metricJson, err := json.Marshal(v)
		if err != nil {
			return
		}
		metricJsons = append(metricJsons, string(metricJson))
	}

	// 计算距离午夜的时间，提前5分钟过期
	now := s.now()
	midnight := time.Date(now.Year(), now.Month(), now.Day()+1, 0, 0, 0, 0, now.Location())
	expiration := midnight.Sub(now) - time.Minute*5
	if expiration < 0 {
		return
	}

	_ = s.cache.SetList(ctx, key, metricJsons, expiration)
}

func getMidnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

type redisMetricCache struct{}

func (redisMetricCache) GetList(ctx context.Context, key string) ([]string, error) {
	return redis.GetList(ctx, key)
}

func (redisMetricCache) SetList(ctx context.Context, key string, values []string, expiration time.Duration) error {
	return redis.SetListWithExpiration(ctx, key, values, expiration)
}

func (redisMetricCache) Delete(ctx context.Context, keys ...string) error {
	return redis.DeleteKey(ctx, keys...)
}

func (redisMetricCache) TryLock(ctx context.Context, key, value string, expiration time.Duration) (bool, error) {
	return redis.TryLock(ctx, key, value, expiration, 3)
}

func (redisMetricCache) UnLock(ctx context.Context, key, value string) {
	redis.UnLock(ctx, key, value)
}
