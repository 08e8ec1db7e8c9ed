package persist

import (
	"Manorakshak/internal/model"
	"context"
	"errors"
	log "log/slog"
)

// ErrNotFound 存储中没有该用户的数据
var ErrNotFound = errors.New("user state not found")

// Store 聚合状态的持久化边界
type Store interface {
	Load(ctx context.Context, userID string) (*model.UserState, error)
	Save(ctx context.Context, userID string, state *model.UserState) error
}

// TieredStore 主存储 + 镜像，主存储不可用时从镜像加载
type TieredStore struct {
	primary Store
	mirror  Store
}

func NewTieredStore(primary, mirror Store) *TieredStore {
	return &TieredStore{primary: primary, mirror: mirror}
}

func (s *TieredStore) Load(ctx context.Context, userID string) (*model.UserState, error) {
	state, err := s.primary.Load(ctx, userID)
	if err == nil || s.mirror == nil {
		return state, err
	}

	log.WarnContext(ctx, "primary store load failed, trying mirror", "user_id", userID, "err", err)
	mirrored, mErr := s.mirror.Load(ctx, userID)
	if mErr != nil {
		return nil, err
	}
	return mirrored, nil
}

func (s *TieredStore) Save(ctx context.Context, userID string, state *model.UserState) error {
	err := s.primary.Save(ctx, userID, state)
	if s.mirror != nil {
		if mErr := s.mirror.Save(ctx, userID, state); mErr != nil {
			log.WarnContext(ctx, "mirror store save failed", "user_id", userID, "err", mErr)
		}
	}
	return err
}

// LoadInto 启动时加载一次，失败则保留默认数据
func LoadInto(ctx context.Context, store Store, userID string, apply func(*model.UserState)) bool {
	state, err := store.Load(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			log.InfoContext(ctx, "no stored user state, using defaults", "user_id", userID)
		} else {
			log.WarnContext(ctx, "load user state failed, using defaults", "user_id", userID, "err", err)
		}
		return false
	}
	apply(state)
	log.InfoContext(ctx, "user state loaded", "user_id", userID)
	return true
}
