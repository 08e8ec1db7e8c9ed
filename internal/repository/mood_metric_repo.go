package repository

import (
	"Manorakshak/internal/model"
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type MoodMetricRepo interface {
	AutoMigrate() error
	SaveOrUpdateMetric(ctx context.Context, metric *model.MoodDailyMetric) error
	GetMetricsSince(ctx context.Context, userID string, since time.Time) ([]*model.MoodDailyMetric, error)
}

type moodMetricRepoImpl struct {
	db *gorm.DB
}

func NewMoodMetricRepository(db *gorm.DB) MoodMetricRepo {
	return &moodMetricRepoImpl{db: db}
}

func (s *moodMetricRepoImpl) AutoMigrate() error {
	return s.db.AutoMigrate(&model.MoodDailyMetric{})
}

// SaveOrUpdateMetric 同一天重复执行时覆盖当天的数据
func (s *moodMetricRepoImpl) SaveOrUpdateMetric(ctx context.Context, metric *model.MoodDailyMetric) error {
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "metric_date"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"mood_score", "uplifting", "negative", "neutral", "toxic", "updated_at",
		}),
	}).Create(metric).Error
}

func (s *moodMetricRepoImpl) GetMetricsSince(ctx context.Context, userID string, since time.Time) ([]*model.MoodDailyMetric, error) {
	metrics := make([]*model.MoodDailyMetric, 0)
	result := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Where("metric_date >= ?", since).
		Order("metric_date ASC").
		Find(&metrics)
	if result.Error != nil {
		return nil, result.Error
	}
	return metrics, nil
}
