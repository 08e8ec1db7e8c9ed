package model

// Sentiment 内容情感标签
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNegative Sentiment = "negative"
	SentimentNeutral  Sentiment = "neutral"
	SentimentToxic    Sentiment = "toxic"
)

// Valid 是否为已知标签
func (s Sentiment) Valid() bool {
	switch s {
	case SentimentPositive, SentimentNegative, SentimentNeutral, SentimentToxic:
		return true
	}
	return false
}

// AlertType 提醒级别
type AlertType string

const (
	AlertWarning  AlertType = "warning"
	AlertCritical AlertType = "critical"
	AlertInfo     AlertType = "info"
)

func (t AlertType) Valid() bool {
	switch t {
	case AlertWarning, AlertCritical, AlertInfo:
		return true
	}
	return false
}
