package persist

import (
	"Manorakshak/internal/model"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTieredStore_SaveWritesBoth(t *testing.T) {
	t.Parallel()

	primary, mirror := newFakeStore(), newFakeStore()
	s := NewTieredStore(primary, mirror)
	state := model.NewDefaultUserState(model.DefaultUserID)

	require.NoError(t, s.Save(context.Background(), model.DefaultUserID, state))

	_, ok := primary.stored(model.DefaultUserID)
	assert.True(t, ok)
	_, ok = mirror.stored(model.DefaultUserID)
	assert.True(t, ok)
}

func TestTieredStore_SavePrimaryFailure(t *testing.T) {
	t.Parallel()

	primary, mirror := newFakeStore(), newFakeStore()
	primary.failures = 1
	s := NewTieredStore(primary, mirror)

	err := s.Save(context.Background(), model.DefaultUserID, model.NewDefaultUserState(model.DefaultUserID))

	require.ErrorIs(t, err, errUnavailable)
	_, ok := mirror.stored(model.DefaultUserID)
	assert.True(t, ok)
}

func TestTieredStore_MirrorFailureIsNotFatal(t *testing.T) {
	t.Parallel()

	primary, mirror := newFakeStore(), newFakeStore()
	mirror.failures = 1
	s := NewTieredStore(primary, mirror)

	require.NoError(t, s.Save(context.Background(), model.DefaultUserID, model.NewDefaultUserState(model.DefaultUserID)))
}

func TestTieredStore_LoadFallsBackToMirror(t *testing.T) {
	t.Parallel()

	primary, mirror := newFakeStore(), newFakeStore()
	primary.loadErr = errUnavailable
	state := model.NewDefaultUserState(model.DefaultUserID)
	state.MoodScore = 88
	require.NoError(t, mirror.Save(context.Background(), model.DefaultUserID, state))

	got, err := NewTieredStore(primary, mirror).Load(context.Background(), model.DefaultUserID)

	require.NoError(t, err)
	assert.Equal(t, 88, got.MoodScore)
}

func TestTieredStore_LoadReturnsPrimaryError(t *testing.T) {
	t.Parallel()

	primary, mirror := newFakeStore(), newFakeStore()
	primary.loadErr = errUnavailable

	_, err := NewTieredStore(primary, mirror).Load(context.Background(), model.DefaultUserID)

	require.ErrorIs(t, err, errUnavailable)
}

func TestLoadInto(t *testing.T) {
	t.Parallel()

	store := newFakeStore()
	var applied *model.UserState
	apply := func(s *model.UserState) { applied = s }

	assert.False(t, LoadInto(context.Background(), store, model.DefaultUserID, apply))
	assert.Nil(t, applied)

	state := model.NewDefaultUserState(model.DefaultUserID)
	state.CalmMode = true
	require.NoError(t, store.Save(context.Background(), model.DefaultUserID, state))

	assert.True(t, LoadInto(context.Background(), store, model.DefaultUserID, apply))
	require.NotNil(t, applied)
	assert.True(t, applied.CalmMode)
}
