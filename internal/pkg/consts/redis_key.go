package consts

const (
	UserStateKey         = "manorakshak:state:"
	MoodMetrics7DaysKey  = "manorakshak:mood:metrics:7days:"
	MoodMetrics30DaysKey = "manorakshak:mood:metrics:30days:"
)

const (
	MoodMetricDailyLock = "manorakshak:lock:mood:daily:"
)
