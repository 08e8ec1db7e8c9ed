package cron

import (
	"Manorakshak/internal/job"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type noopFlusher struct{}

func (noopFlusher) Request() {}

func TestManager_RegisterJobs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		spec      string
		withDaily bool
		want      int
		wantErr   bool
	}{
		{name: "default spec", spec: "", want: 1},
		{name: "with daily metrics", spec: "@every 10s", withDaily: true, want: 2},
		{name: "bad spec", spec: "every now and then", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var daily *job.MoodMetricJob
			if tt.withDaily {
				daily = job.NewMoodMetricJob(nil)
			}
			mgr := NewCronManager(tt.spec, job.NewStateFlushJob(noopFlusher{}), daily)
			err := mgr.RegisterJobs()
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, mgr.Entries())
		})
	}
}
