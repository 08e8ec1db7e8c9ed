package aggregate

import (
	"Manorakshak/internal/model"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s := NewStore(model.DefaultUserID, DefaultLimits())
	fixed := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)
	s.SetClock(func() time.Time { return fixed })
	return s
}

func TestNewStore_Defaults(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	snap := s.Snapshot()

	assert.Equal(t, model.DefaultUserID, snap.UserID)
	assert.Equal(t, 60, snap.MoodScore)
	assert.Equal(t, []int{45, 52, 48, 65, 70, 58, 60}, snap.SentimentTrend)
	assert.Equal(t, model.ContentBreakdown{Uplifting: 40, Negative: 25, Neutral: 30, Toxic: 5}, snap.ContentBreakdown)
	assert.Empty(t, snap.Alerts)
	assert.NotNil(t, snap.Goals)
}

func TestStore_ApplyClassification(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	score, err := s.ApplyClassification(model.SentimentPositive, "YouTube", "title", "hello")
	require.NoError(t, err)

	snap := s.Snapshot()
	// 41 / 101
	assert.Equal(t, 41, score)
	assert.Equal(t, 41, snap.MoodScore)
	assert.Equal(t, 41, snap.ContentBreakdown.Uplifting)
	assert.Equal(t, []int{52, 48, 65, 70, 58, 60, 41}, snap.SentimentTrend)
	require.Len(t, snap.AnalyzedContent, 1)
	assert.Equal(t, model.AnalyzedContent{
		Text:        "hello",
		Sentiment:   model.SentimentPositive,
		Platform:    "YouTube",
		ContentType: "title",
		Timestamp:   time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC),
	}, snap.AnalyzedContent[0])
}

func TestStore_ApplyClassification_Counters(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	before := s.Snapshot().ContentBreakdown
	labels := []model.Sentiment{
		model.SentimentPositive, model.SentimentNegative, model.SentimentNegative,
		model.SentimentToxic, model.SentimentNeutral, model.SentimentNeutral, model.SentimentNeutral,
	}
	for _, l := range labels {
		_, err := s.ApplyClassification(l, "x", "", "t")
		require.NoError(t, err)
	}
	after := s.Snapshot().ContentBreakdown

	assert.Equal(t, before.Uplifting+1, after.Uplifting)
	assert.Equal(t, before.Negative+2, after.Negative)
	assert.Equal(t, before.Toxic+1, after.Toxic)
	assert.Equal(t, before.Neutral+3, after.Neutral)
	assert.Equal(t, before.Total()+len(labels), after.Total())
}

func TestStore_ApplyClassification_UnknownLabel(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	before := s.Snapshot()

	_, err := s.ApplyClassification(model.Sentiment("joyful"), "x", "", "t")

	require.ErrorIs(t, err, ErrUnknownSentiment)
	assert.Equal(t, before, s.Snapshot())
}

func TestStore_ApplyClassification_TruncatesText(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	long := ""
	for i := 0; i < 30; i++ {
		long += "héllo"
	}
	_, err := s.ApplyClassification(model.SentimentNeutral, "x", "", long)
	require.NoError(t, err)

	got := s.Snapshot().AnalyzedContent[0].Text
	assert.Equal(t, 100, len([]rune(got)))
}

func TestStore_TrendLengthInvariant(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	for i := 0; i < 200; i++ {
		_, err := s.ApplyClassification(model.SentimentNegative, "x", "", "t")
		require.NoError(t, err)
		require.Len(t, s.Snapshot().SentimentTrend, 7)
	}
}

func TestStore_AnalyzedContentCompaction(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	for i := 1; i <= 51; i++ {
		_, err := s.ApplyClassification(model.SentimentNeutral, "x", "", fmt.Sprintf("item-%d", i))
		require.NoError(t, err)
		n := len(s.Snapshot().AnalyzedContent)
		require.LessOrEqual(t, n, 50)
		if i <= 50 {
			require.Equal(t, i, n)
		}
	}

	content := s.Snapshot().AnalyzedContent
	require.Len(t, content, 30)
	assert.Equal(t, "item-22", content[0].Text)
	assert.Equal(t, "item-51", content[29].Text)
}

func TestStore_AddAlert_CapAndOrder(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	for i := 1; i <= 11; i++ {
		_, err := s.AddAlert(fmt.Sprintf("alert-%d", i), model.AlertWarning, "YouTube")
		require.NoError(t, err)
		require.LessOrEqual(t, len(s.Snapshot().Alerts), 10)
	}

	alerts := s.Snapshot().Alerts
	require.Len(t, alerts, 10)
	assert.Equal(t, "alert-11", alerts[0].Message)
	assert.Equal(t, "alert-2", alerts[9].Message)
	for _, a := range alerts {
		assert.NotEqual(t, "alert-1", a.Message)
	}
}

func TestStore_AddAlert_UnknownType(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	_, err := s.AddAlert("x", model.AlertType("panic"), "p")

	require.ErrorIs(t, err, ErrUnknownAlertType)
	assert.Empty(t, s.Snapshot().Alerts)
}

func TestStore_UniqueIDsWithinSameMillisecond(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	g1 := s.AddGoal("fitness")
	g2 := s.AddGoal("reading")
	a, err := s.AddAlert("m", model.AlertInfo, "p")
	require.NoError(t, err)

	assert.Less(t, g1.ID, g2.ID)
	assert.Less(t, g2.ID, a.ID)
	assert.Equal(t, []model.Goal{g1, g2}, s.Goals())
}

func TestStore_AddVideoHistory(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	v := s.AddVideoHistory(model.VideoHistoryEntry{Duration: -5})

	assert.Equal(t, "Unknown Video", v.Title)
	assert.Equal(t, "General", v.Category)
	assert.Equal(t, model.SentimentNeutral, v.Sentiment)
	assert.Equal(t, "YouTube", v.Platform)
	assert.Equal(t, 0, v.Duration)
	assert.Equal(t, "2025-03-14", v.Date)

	for i := 0; i < 120; i++ {
		s.AddVideoHistory(model.VideoHistoryEntry{Title: fmt.Sprintf("v-%d", i)})
	}
	history := s.Snapshot().VideoHistory
	require.Len(t, history, 100)
	assert.Equal(t, "v-20", history[0].Title)
	assert.Equal(t, "v-119", history[99].Title)
}

func TestStore_OnChange(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	var calls atomic.Int32
	s.OnChange(func() { calls.Add(1) })

	_, _ = s.ApplyClassification(model.SentimentNeutral, "x", "", "t")
	s.AddGoal("g")
	s.AddVideoHistory(model.VideoHistoryEntry{})
	s.SetCalmMode(true)
	_, _ = s.AddAlert("m", model.AlertInfo, "p")
	s.SetMoodScore(10)

	assert.Equal(t, int32(4), calls.Load())
	assert.True(t, s.Snapshot().CalmMode)
}

func TestStore_SetMoodScore_Clamped(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	trend := s.Snapshot().SentimentTrend

	assert.Equal(t, 100, s.SetMoodScore(250))
	assert.Equal(t, 0, s.SetMoodScore(-3))
	assert.Equal(t, trend, s.Snapshot().SentimentTrend)
}

func TestStore_Replace_Normalizes(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	loaded := &model.UserState{
		UserID:         "someone-else",
		MoodScore:      33,
		SentimentTrend: []int{1, 2},
		Goals:          []model.Goal{{ID: 9_999_999_999_999, Text: "piano"}},
	}
	s.Replace(loaded)

	snap := s.Snapshot()
	assert.Equal(t, model.DefaultUserID, snap.UserID)
	assert.Equal(t, []int{33, 33, 33, 33, 33, 1, 2}, snap.SentimentTrend)
	assert.NotNil(t, snap.Alerts)
	assert.NotNil(t, snap.AnalyzedContent)

	// 新 ID 必须大于已加载的 ID
	g := s.AddGoal("guitar")
	assert.Greater(t, g.ID, int64(9_999_999_999_999))
}

func TestStore_SnapshotIsolation(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	snap := s.Snapshot()
	snap.SentimentTrend[0] = -1
	snap.ContentBreakdown.Toxic = 1000

	fresh := s.Snapshot()
	assert.Equal(t, 45, fresh.SentimentTrend[0])
	assert.Equal(t, 5, fresh.ContentBreakdown.Toxic)
}

func TestStore_ConcurrentMutations(t *testing.T) {
	t.Parallel()

	s := NewStore(model.DefaultUserID, DefaultLimits())
	before := s.Snapshot().ContentBreakdown.Total()

	const workers, perWorker = 8, 100
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				_, _ = s.ApplyClassification(model.SentimentNegative, "x", "", "t")
				_, _ = s.AddAlert("m", model.AlertWarning, "x")
				snap := s.Snapshot()
				assert.Len(t, snap.SentimentTrend, 7)
				assert.LessOrEqual(t, len(snap.AnalyzedContent), 50)
				assert.LessOrEqual(t, len(snap.Alerts), 10)
			}
		}()
	}
	wg.Wait()

	snap := s.Snapshot()
	assert.Equal(t, before+workers*perWorker, snap.ContentBreakdown.Total())
	assert.Len(t, snap.Alerts, 10)
}
