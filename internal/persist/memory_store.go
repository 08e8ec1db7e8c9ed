package persist

import (
	"Manorakshak/internal/model"
	"context"
	"sync"
)

// MemoryStore 进程内存储，未配置任何外部存储时使用，重启后数据丢失
type MemoryStore struct {
	mu     sync.RWMutex
	states map[string]model.UserState
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{states: make(map[string]model.UserState)}
}

func (s *MemoryStore) Load(_ context.Context, userID string) (*model.UserState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	state, ok := s.states[userID]
	if !ok {
		return nil, ErrNotFound
	}
	cp := state.Clone()
	return &cp, nil
}

func (s *MemoryStore) Save(_ context.Context, userID string, state *model.UserState) error {
	cp := state.Clone()
	s.mu.Lock()
	s.states[userID] = cp
	s.mu.Unlock()
	return nil
}
