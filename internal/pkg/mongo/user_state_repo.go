package mongo

import (
	"Manorakshak/internal/model"
	"Manorakshak/internal/persist"
	"context"
	"errors"
	"time"

	pkgerrors "github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type UserStateRepo interface {
	persist.Store
	EnsureIndexes(ctx context.Context) error
}

type userStateRepoImpl struct {
	col *mongo.Collection
}

func NewUserStateRepo(db *mongo.Database, collection string) UserStateRepo {
	if collection == "" {
		collection = "user_state"
	}
	return &userStateRepoImpl{
		col: db.Collection(collection),
	}
}

// EnsureIndexes user_id 唯一索引
func (s *userStateRepoImpl) EnsureIndexes(ctx context.Context) error {
	_, err := s.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "user_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return pkgerrors.Wrap(err, "create user_state index")
}

// Load 按 user_id 读取，不存在时返回 persist.ErrNotFound
func (s *userStateRepoImpl) Load(ctx context.Context, userID string) (*model.UserState, error) {
	var state model.UserState
	err := s.col.FindOne(ctx, bson.M{"user_id": userID}).Decode(&state)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, persist.ErrNotFound
		}
		return nil, pkgerrors.Wrapf(err, "load user state %s", userID)
	}
	return &state, nil
}

// Save 整体覆盖写入（upsert）
func (s *userStateRepoImpl) Save(ctx context.Context, userID string, state *model.UserState) error {
	doc := *state
	doc.UserID = userID
	if doc.LastUpdated.IsZero() {
		doc.LastUpdated = time.Now()
	}
	_, err := s.col.ReplaceOne(ctx,
		bson.M{"user_id": userID},
		doc,
		options.Replace().SetUpsert(true),
	)
	return pkgerrors.Wrapf(err, "save user state %s", userID)
}
