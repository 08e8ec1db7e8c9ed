package aggregate

import (
	"Manorakshak/internal/model"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeScore(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		b        model.ContentBreakdown
		previous int
		want     int
	}{
		{name: "zero total keeps previous", b: model.ContentBreakdown{}, previous: 60, want: 60},
		{name: "zero total clamps previous", b: model.ContentBreakdown{}, previous: 140, want: 100},
		{name: "no uplifting", b: model.ContentBreakdown{Negative: 3, Toxic: 1}, want: 0},
		{name: "all uplifting", b: model.ContentBreakdown{Uplifting: 7}, want: 100},
		{name: "seed data", b: model.ContentBreakdown{Uplifting: 40, Negative: 25, Neutral: 30, Toxic: 5}, want: 40},
		{name: "rounds half up", b: model.ContentBreakdown{Uplifting: 1, Neutral: 7}, want: 13},
		{name: "rounds down", b: model.ContentBreakdown{Uplifting: 1, Neutral: 2}, want: 33},
		{name: "rounds up", b: model.ContentBreakdown{Uplifting: 2, Neutral: 1}, want: 67},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ComputeScore(tt.b, tt.previous))
		})
	}
}

func TestComputeScore_Range(t *testing.T) {
	t.Parallel()

	for up := 0; up <= 20; up++ {
		for other := 0; other <= 20; other++ {
			b := model.ContentBreakdown{Uplifting: up, Negative: other}
			if b.Total() == 0 {
				continue
			}
			got := ComputeScore(b, 50)
			assert.GreaterOrEqual(t, got, 0)
			assert.LessOrEqual(t, got, 100)
		}
	}
}
