package wire

import (
	"Manorakshak/internal/aggregate"
	"Manorakshak/internal/api"
	"Manorakshak/internal/api/config"
	"Manorakshak/internal/api/handler"
	"Manorakshak/internal/job"
	"Manorakshak/internal/model"
	"Manorakshak/internal/persist"
	"Manorakshak/internal/pkg/cron"
	"Manorakshak/internal/pkg/kafka"
	"Manorakshak/internal/pkg/llm"
	"Manorakshak/internal/pkg/mongo"
	"Manorakshak/internal/pkg/notify"
	"Manorakshak/internal/pkg/redis"
	"Manorakshak/internal/pkg/sentiment"
	"Manorakshak/internal/repository"
	"Manorakshak/internal/service"
	"context"
	"errors"
	log "log/slog"
	"time"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	mongodriver "go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"
)

// Infra 已建立的外部连接，任一项为 nil 表示未启用
type Infra struct {
	Mongo *mongodriver.Database
	Redis *goredis.Client
	DB    *gorm.DB
}

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router       *gin.Engine
	Store        *aggregate.Store
	StateStore   persist.Store
	Flusher      *persist.Flusher
	CronMgr      *cron.Manager
	KafkaManager *kafka.ConsumerManager
	UserID       string
}

func BuildApplication(infra *Infra, cfg *config.Config) (*ApplicationContainer, error) {
	userID := cfg.Aggregate.UserID
	if userID == "" {
		userID = model.DefaultUserID
	}

	store := aggregate.NewStore(userID, aggregate.Limits{
		TrendLength: cfg.Aggregate.TrendLength,
		AlertCap:    cfg.Aggregate.AlertCap,
		ContentMax:  cfg.Aggregate.ContentMax,
		ContentKeep: cfg.Aggregate.ContentKeep,
		VideoCap:    cfg.Aggregate.VideoCap,
	})
	classifier := sentiment.NewClassifier(sentiment.NewLexicon(sentiment.WordLists{
		Version:  cfg.Lexicon.Version,
		Positive: cfg.Lexicon.Positive,
		Negative: cfg.Lexicon.Negative,
		Toxic:    cfg.Lexicon.Toxic,
		Fighting: cfg.Lexicon.Fighting,
	}))

	stateStore, err := buildStateStore(infra, cfg.Mongo)
	if err != nil {
		return nil, err
	}
	flusher := persist.NewFlusher(stateStore, store, userID, persist.FlusherConfig{
		Timeout:    time.Duration(cfg.Persist.SaveTimeout) * time.Second,
		MaxRetries: cfg.Persist.MaxRetries,
		Backoff:    time.Duration(cfg.Persist.BackoffMs) * time.Millisecond,
	})
	store.OnChange(flusher.Request)

	var notifier service.AlertNotifier
	if n := notify.NewWebhookNotifier(cfg.Notify, userID); n != nil {
		notifier = n
	}
	var assistant service.Assistant
	if llm.Enabled() {
		assistant = llm.NewAssistant()
	}

	var moodMetricRepo repository.MoodMetricRepo
	if infra.DB != nil && infra.Redis != nil {
		moodMetricRepo = repository.NewMoodMetricRepository(infra.DB)
		if err = moodMetricRepo.AutoMigrate(); err != nil {
			return nil, err
		}
	}

	wellbeingService := service.NewWellbeingService(store, classifier, notifier, flusher)
	reportService := service.NewReportService(store, assistant)
	moodMetricService := service.NewMoodMetricService(store, moodMetricRepo, nil, userID)

	handlers := &api.HandlersGroup{
		ContentHandler:    handler.NewContentHandler(wellbeingService),
		DashboardHandler:  handler.NewDashboardHandler(wellbeingService),
		GoalHandler:       handler.NewGoalHandler(wellbeingService),
		VideoHandler:      handler.NewVideoHandler(wellbeingService),
		ReportHandler:     handler.NewReportHandler(reportService),
		MoodMetricHandler: handler.NewMoodMetricHandler(moodMetricService),
	}

	router := api.SetupRouter(handlers)

	var moodMetricJob *job.MoodMetricJob
	if moodMetricRepo != nil {
		moodMetricJob = job.NewMoodMetricJob(moodMetricService)
	}
	cronMgr := cron.NewCronManager(cfg.Persist.FlushSpec, job.NewStateFlushJob(flusher), moodMetricJob)

	var kafkaMgr *kafka.ConsumerManager
	if cfg.Kafka.Enable {
		contentHandler := kafka.NewContentHandler(wellbeingService, func(err error) bool {
			return errors.Is(err, service.ErrParamInvalid)
		})
		kafkaMgr, err = kafka.NewConsumerManager(cfg.Kafka, contentHandler)
		if err != nil {
			return nil, err
		}
	}

	return &ApplicationContainer{
		Router:       router,
		Store:        store,
		StateStore:   stateStore,
		Flusher:      flusher,
		CronMgr:      cronMgr,
		KafkaManager: kafkaMgr,
		UserID:       userID,
	}, nil
}

// buildStateStore Mongo 为主存储，Redis 为镜像，都不可用时只保存在内存
func buildStateStore(infra *Infra, mongoCfg config.MongoConfig) (persist.Store, error) {
	var primary persist.Store
	if infra.Mongo != nil {
		repo := mongo.NewUserStateRepo(infra.Mongo, mongoCfg.Collection)
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := repo.EnsureIndexes(ctx); err != nil {
			return nil, err
		}
		primary = repo
	}

	var mirror persist.Store
	if infra.Redis != nil {
		mirror = redis.NewStateMirror(infra.Redis)
	}

	switch {
	case primary != nil:
		return persist.NewTieredStore(primary, mirror), nil
	case mirror != nil:
		log.Warn("MongoDB 不可用，使用 Redis 保存用户状态")
		return mirror, nil
	default:
		log.Warn("没有可用的外部存储，用户状态只保存在内存中")
		return persist.NewMemoryStore(), nil
	}
}
