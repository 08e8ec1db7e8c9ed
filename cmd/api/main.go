package main

import (
	"Manorakshak/internal/api/config"
	"Manorakshak/internal/persist"
	"Manorakshak/internal/pkg/cron"
	"Manorakshak/internal/pkg/database"
	"Manorakshak/internal/pkg/llm"
	"Manorakshak/internal/pkg/logger"
	"Manorakshak/internal/pkg/mongo"
	"Manorakshak/internal/pkg/redis"
	"Manorakshak/internal/wire"
	"context"
	"errors"
	"fmt"
	log "log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"
)

func main() {
	// 加载配置
	if err := config.LoadConfig(); err != nil {
		log.Error("Fatal error: failed to load configuration", "err", err)
		panic(err)
	}
	cfg := config.Cfg

	// 初始化日志
	logger.InitLogger(cfg.Logstash)

	infra := &wire.Infra{}

	// Mongo 连接，失败时使用默认数据启动
	mongoConn, err := mongo.InitMongo(cfg.Mongo)
	if err != nil {
		log.Warn("MongoDB connection failed, using local data", "err", err)
	} else {
		infra.Mongo = mongoConn
	}

	// Redis 连接
	if err = redis.InitRedis(cfg.Redis); err != nil {
		log.Warn("Redis connection failed, mirror and metric cache disabled", "err", err)
	} else {
		infra.Redis = redis.Rdb
	}

	// 数据库连接，仅用于每日心情统计
	if cfg.DB.DSN != "" {
		dbCfg := cfg.DB
		db, err := database.NewGormDB(&dbCfg)
		if err != nil {
			log.Error("Fatal error: failed to create database connection", "err", err)
			panic(err)
		}
		infra.DB = db
	}

	// llm 模型初始化
	if err = llm.InitLLM(cfg.LLM); err != nil {
		log.Warn("llm init failed, using fallback reports", "err", err)
	}

	// 依赖注入
	app, err := wire.BuildApplication(infra, cfg)
	if err != nil {
		log.Error("Fatal error: failed to create application", "err", err)
		panic(err)
	}

	// 加载持久化的用户状态
	loadCtx, loadCancel := context.WithTimeout(context.Background(), 10*time.Second)
	persist.LoadInto(loadCtx, app.StateStore, app.UserID, app.Store.Replace)
	loadCancel()
	app.Flusher.Start(context.Background())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	g, ctx := errgroup.WithContext(ctx)

	// 定时任务
	err = cron.InitCron(app.CronMgr)
	if err != nil {
		log.Error("Fatal error: failed to start cron jobs", "err", err)
		panic(err)
	}
	g.Go(func() error {
		<-ctx.Done()
		log.Info("Cron Jobs stopping...")
		app.CronMgr.Stop()
		return nil
	})

	// Kafka 消费者
	if app.KafkaManager != nil {
		g.Go(func() error {
			log.Info("Kafka Consumers starting...")
			return app.KafkaManager.Start(ctx)
		})
	}

	// HTTP 服务器
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           app.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	g.Go(func() error {
		log.Info("HTTP Server starting...", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	// 优雅退出
	g.Go(func() error {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

		select {
		case <-ctx.Done():
		case sig := <-quit:
			log.Info("Received signal, shutting down...", "signal", sig)
			cancel()
		}

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
		defer shutdownCancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("HTTP Server shutdown failed", "err", err)
		}
		return nil
	})

	if err = g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		log.Error("App exited with error", "err", err)
	}

	// 最后一次保存
	finalCtx, finalCancel := context.WithTimeout(context.Background(), time.Duration(cfg.Persist.FinalTimeout)*time.Second)
	if err = app.Flusher.Close(finalCtx); err != nil {
		log.Error("Final flush failed", "err", err)
	}
	finalCancel()

	closeCtx, closeCancel := context.WithTimeout(context.Background(), 5*time.Second)
	mongo.Close(closeCtx, infra.Mongo)
	closeCancel()
	redis.Close()

	log.Info("App exited successfully.")
}
