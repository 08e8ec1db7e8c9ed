package redis

import (
	"Manorakshak/internal/model"
	"Manorakshak/internal/persist"
	"Manorakshak/internal/pkg/consts"
	"context"
	"errors"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
)

// StateMirror 以 JSON 快照形式在 Redis 中保存一份用户状态，作为主存储不可用时的备份
type StateMirror struct {
	rdb *redis.Client
}

func NewStateMirror(rdb *redis.Client) *StateMirror {
	return &StateMirror{rdb: rdb}
}

func (s *StateMirror) Load(ctx context.Context, userID string) (*model.UserState, error) {
	raw, err := s.rdb.Get(ctx, consts.UserStateKey+userID).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, persist.ErrNotFound
		}
		return nil, err
	}
	var state model.UserState
	if err = json.Unmarshal(raw, &state); err != nil {
		return nil, err
	}
	return &state, nil
}

func (s *StateMirror) Save(ctx context.Context, userID string, state *model.UserState) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, consts.UserStateKey+userID, raw, 0).Err()
}
