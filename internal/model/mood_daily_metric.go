package model

import "time"

// MoodDailyMetric 每日心情快照
type MoodDailyMetric struct {
	ID         uint64    `gorm:"primaryKey" json:"-"`
	UserID     string    `gorm:"type:varchar(64);not null;uniqueIndex:idx_mood_user_date,priority:1" json:"userId"`
	MetricDate time.Time `gorm:"type:date;not null;uniqueIndex:idx_mood_user_date,priority:2" json:"metricDate"`
	MoodScore  int       `gorm:"type:int;not null;default:0" json:"moodScore"`
	Uplifting  int       `gorm:"type:int;not null;default:0" json:"uplifting"`
	Negative   int       `gorm:"type:int;not null;default:0" json:"negative"`
	Neutral    int       `gorm:"type:int;not null;default:0" json:"neutral"`
	Toxic      int       `gorm:"type:int;not null;default:0" json:"toxic"`
	CreatedAt  time.Time `json:"-"`
	UpdatedAt  time.Time `json:"-"`
}

func (MoodDailyMetric) TableName() string {
	return "mood_daily_metrics"
}
