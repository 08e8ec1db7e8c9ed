package aggregate

import (
	"Manorakshak/internal/model"
	"sync"
	"time"
	"unicode/utf8"
)

// Limits 各列表容量
type Limits struct {
	TrendLength int // 趋势窗口长度
	AlertCap    int // 提醒上限，超出丢弃最旧
	ContentMax  int // 已分析内容超过该值时压缩
	ContentKeep int // 压缩后保留最新条数
	VideoCap    int // 观看记录上限
	SnippetLen  int // 保存文本的最大长度
}

// DefaultLimits 与线上行为一致的默认值
func DefaultLimits() Limits {
	return Limits{
		TrendLength: 7,
		AlertCap:    10,
		ContentMax:  50,
		ContentKeep: 30,
		VideoCap:    100,
		SnippetLen:  100,
	}
}

func (l Limits) withDefaults() Limits {
	d := DefaultLimits()
	if l.TrendLength <= 0 {
		l.TrendLength = d.TrendLength
	}
	if l.AlertCap <= 0 {
		l.AlertCap = d.AlertCap
	}
	if l.ContentMax <= 0 {
		l.ContentMax = d.ContentMax
	}
	if l.ContentKeep <= 0 || l.ContentKeep > l.ContentMax {
		l.ContentKeep = min(d.ContentKeep, l.ContentMax)
	}
	if l.VideoCap <= 0 {
		l.VideoCap = d.VideoCap
	}
	if l.SnippetLen <= 0 {
		l.SnippetLen = d.SnippetLen
	}
	return l
}

// Store 单个用户的内存聚合状态，所有写操作串行执行
type Store struct {
	mu       sync.RWMutex
	state    *model.UserState
	limits   Limits
	lastID   int64
	now      func() time.Time
	onChange func()
}

func NewStore(userID string, limits Limits) *Store {
	s := &Store{
		limits: limits.withDefaults(),
		now:    time.Now,
	}
	s.state = s.normalize(model.NewDefaultUserState(userID))
	return s
}

// OnChange 注册变更回调（触发持久化），回调不能阻塞
func (s *Store) OnChange(fn func()) {
	s.mu.Lock()
	s.onChange = fn
	s.mu.Unlock()
}

// SetClock 测试用
func (s *Store) SetClock(now func() time.Time) {
	s.mu.Lock()
	s.now = now
	s.mu.Unlock()
}

func (s *Store) Limits() Limits {
	return s.limits
}

// Replace 用持久化中加载的数据替换当前状态
func (s *Store) Replace(state *model.UserState) {
	if state == nil {
		return
	}
	cp := state.Clone()
	s.mu.Lock()
	cp.UserID = s.state.UserID
	s.state = s.normalize(&cp)
	for _, g := range s.state.Goals {
		s.lastID = max(s.lastID, g.ID)
	}
	for _, a := range s.state.Alerts {
		s.lastID = max(s.lastID, a.ID)
	}
	for _, v := range s.state.VideoHistory {
		s.lastID = max(s.lastID, v.ID)
	}
	s.mu.Unlock()
}

// Snapshot 返回一致的深拷贝
func (s *Store) Snapshot() model.UserState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Clone()
}

// ApplyClassification 记录一次分类结果并返回新的心情分
func (s *Store) ApplyClassification(label model.Sentiment, platform, contentType, text string) (int, error) {
	if !label.Valid() {
		return 0, ErrUnknownSentiment
	}

	s.mu.Lock()
	st := s.state
	now := s.now()

	switch label {
	case model.SentimentPositive:
		st.ContentBreakdown.Uplifting++
	case model.SentimentNegative:
		st.ContentBreakdown.Negative++
	case model.SentimentToxic:
		st.ContentBreakdown.Toxic++
	default:
		st.ContentBreakdown.Neutral++
	}

	st.AnalyzedContent = append(st.AnalyzedContent, model.AnalyzedContent{
		Text:        truncate(text, s.limits.SnippetLen),
		Sentiment:   label,
		Platform:    platform,
		ContentType: contentType,
		Timestamp:   now,
	})
	if len(st.AnalyzedContent) > s.limits.ContentMax {
		keep := st.AnalyzedContent[len(st.AnalyzedContent)-s.limits.ContentKeep:]
		st.AnalyzedContent = append(make([]model.AnalyzedContent, 0, s.limits.ContentMax+1), keep...)
	}

	st.MoodScore = ComputeScore(st.ContentBreakdown, st.MoodScore)
	pushTrend(st.SentimentTrend, st.MoodScore)
	st.LastUpdated = now
	score := st.MoodScore
	notify := s.onChange
	s.mu.Unlock()

	if notify != nil {
		notify()
	}
	return score, nil
}

// AddAlert 新提醒插入头部，超出上限丢弃尾部
func (s *Store) AddAlert(message string, alertType model.AlertType, platform string) (model.Alert, error) {
	if !alertType.Valid() {
		return model.Alert{}, ErrUnknownAlertType
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	alert := model.Alert{
		ID:        s.nextID(),
		Message:   message,
		Type:      alertType,
		Platform:  platform,
		Timestamp: s.now(),
	}
	alerts := make([]model.Alert, 0, len(s.state.Alerts)+1)
	alerts = append(alerts, alert)
	alerts = append(alerts, s.state.Alerts...)
	if len(alerts) > s.limits.AlertCap {
		alerts = alerts[:s.limits.AlertCap]
	}
	s.state.Alerts = alerts
	s.state.LastUpdated = alert.Timestamp
	return alert, nil
}

// AddGoal 追加目标
func (s *Store) AddGoal(text string) model.Goal {
	s.mu.Lock()
	goal := model.Goal{
		ID:        s.nextID(),
		Text:      text,
		CreatedAt: s.now(),
	}
	s.state.Goals = append(s.state.Goals, goal)
	s.state.LastUpdated = goal.CreatedAt
	notify := s.onChange
	s.mu.Unlock()

	if notify != nil {
		notify()
	}
	return goal
}

// Goals 当前目标列表的拷贝
func (s *Store) Goals() []model.Goal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Goal{}, s.state.Goals...)
}

// AddVideoHistory 追加观看记录，补全默认字段，仅保留最新 VideoCap 条
func (s *Store) AddVideoHistory(entry model.VideoHistoryEntry) model.VideoHistoryEntry {
	if entry.Title == "" {
		entry.Title = "Unknown Video"
	}
	if entry.Category == "" {
		entry.Category = "General"
	}
	if entry.Sentiment == "" {
		entry.Sentiment = model.SentimentNeutral
	}
	if entry.Platform == "" {
		entry.Platform = "YouTube"
	}
	if entry.Duration < 0 {
		entry.Duration = 0
	}

	s.mu.Lock()
	now := s.now()
	entry.ID = s.nextID()
	entry.Timestamp = now
	entry.Date = now.UTC().Format(time.DateOnly)

	s.state.VideoHistory = append(s.state.VideoHistory, entry)
	if over := len(s.state.VideoHistory) - s.limits.VideoCap; over > 0 {
		s.state.VideoHistory = append([]model.VideoHistoryEntry{}, s.state.VideoHistory[over:]...)
	}
	s.state.LastUpdated = now
	notify := s.onChange
	s.mu.Unlock()

	if notify != nil {
		notify()
	}
	return entry
}

// SetCalmMode 设置平静模式
func (s *Store) SetCalmMode(enabled bool) {
	s.mu.Lock()
	s.state.CalmMode = enabled
	s.state.LastUpdated = s.now()
	notify := s.onChange
	s.mu.Unlock()

	if notify != nil {
		notify()
	}
}

// SetMoodScore 手动设置心情分，不写入趋势
func (s *Store) SetMoodScore(score int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.MoodScore = clampScore(score)
	s.state.LastUpdated = s.now()
	return s.state.MoodScore
}

// nextID 毫秒时间戳，同一毫秒内递增保证唯一，调用方需持有写锁
func (s *Store) nextID() int64 {
	id := s.now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return id
}

func (s *Store) normalize(st *model.UserState) *model.UserState {
	n := s.limits.TrendLength
	trend := st.SentimentTrend
	switch {
	case len(trend) > n:
		trend = append([]int(nil), trend[len(trend)-n:]...)
	case len(trend) < n:
		padded := make([]int, n-len(trend), n)
		for i := range padded {
			padded[i] = st.MoodScore
		}
		trend = append(padded, trend...)
	}
	st.SentimentTrend = trend
	st.MoodScore = clampScore(st.MoodScore)

	if st.Alerts == nil {
		st.Alerts = []model.Alert{}
	}
	if len(st.Alerts) > s.limits.AlertCap {
		st.Alerts = st.Alerts[:s.limits.AlertCap]
	}
	if st.Goals == nil {
		st.Goals = []model.Goal{}
	}
	if st.AnalyzedContent == nil {
		st.AnalyzedContent = []model.AnalyzedContent{}
	}
	if len(st.AnalyzedContent) > s.limits.ContentMax {
		st.AnalyzedContent = st.AnalyzedContent[len(st.AnalyzedContent)-s.limits.ContentKeep:]
	}
	if st.VideoHistory == nil {
		st.VideoHistory = []model.VideoHistoryEntry{}
	}
	if len(st.VideoHistory) > s.limits.VideoCap {
		st.VideoHistory = st.VideoHistory[len(st.VideoHistory)-s.limits.VideoCap:]
	}
	return st
}

func pushTrend(trend []int, score int) {
	if len(trend) == 0 {
		return
	}
	copy(trend, trend[1:])
	trend[len(trend)-1] = score
}

func truncate(text string, limit int) string {
	if utf8.RuneCountInString(text) <= limit {
		return text
	}
	runes := []rune(text)
	return string(runes[:limit])
}
