package dto

// MoodMetricDTO 每日心情趋势点
type MoodMetricDTO struct {
	Date      string `json:"date"` // 2006-01-02
	MoodScore int    `json:"moodScore"`
	Uplifting int    `json:"uplifting"`
	Negative  int    `json:"negative"`
	Neutral   int    `json:"neutral"`
	Toxic     int    `json:"toxic"`
}

// MoodTrendDTO 趋势返回包装
type MoodTrendDTO struct {
	Days int              `json:"days"` // 7 或 30
	List []*MoodMetricDTO `json:"list"`
}
