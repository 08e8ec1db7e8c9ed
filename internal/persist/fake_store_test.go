package persist

import (
	"Manorakshak/internal/model"
	"context"
	"errors"
	"sync"
)

var errUnavailable = errors.New("store unavailable")

type fakeStore struct {
	mu       sync.Mutex
	states   map[string]model.UserState
	failures int // 前 N 次 Save 失败
	loadErr  error
	saves    int
	block    chan struct{}
}

func newFakeStore() *fakeStore {
	return &fakeStore{states: map[string]model.UserState{}}
}

func (s *fakeStore) Load(_ context.Context, userID string) (*model.UserState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loadErr != nil {
		return nil, s.loadErr
	}
	st, ok := s.states[userID]
	if !ok {
		return nil, ErrNotFound
	}
	cp := st.Clone()
	return &cp, nil
}

func (s *fakeStore) Save(ctx context.Context, userID string, state *model.UserState) error {
	if s.block != nil {
		select {
		case <-s.block:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saves++
	if s.failures > 0 {
		s.failures--
		return errUnavailable
	}
	s.states[userID] = state.Clone()
	return nil
}

func (s *fakeStore) saveCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saves
}

func (s *fakeStore) stored(userID string) (model.UserState, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, ok := s.states[userID]
	return st, ok
}

type staticSource struct {
	mu    sync.Mutex
	state model.UserState
}

func (s *staticSource) Snapshot() model.UserState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

func (s *staticSource) setMood(score int) {
	s.mu.Lock()
	s.state.MoodScore = score
	s.mu.Unlock()
}
