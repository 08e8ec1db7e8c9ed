package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Cfg 全局可访问的配置实例
var Cfg *Config

// LoadConfig 从文件加载配置并填充到 Cfg
func LoadConfig() error {
	cfg, err := Load(viper.New(), "./configs")
	if err != nil {
		return err
	}
	Cfg = cfg
	return nil
}

// Load 读取 path 下的 config.yaml，环境变量 MANORAKSHAK_* 优先。配置文件不存在时使用默认值
// AutomaticEnv 只对已注册的 key 生效，所以 setDefaults 需要覆盖 Config 的所有字段
func Load(v *viper.Viper, paths ...string) (*Config, error) {
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	for _, p := range paths {
		v.AddConfigPath(p)
	}
	v.SetEnvPrefix("MANORAKSHAK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 3000)
	v.SetDefault("server.shutdown_timeout", 5)

	v.SetDefault("logstash.address", "")
	v.SetDefault("logstash.index", "")
	v.SetDefault("logstash.token", "")

	v.SetDefault("mongo.url", "mongodb://localhost:27017")
	v.SetDefault("mongo.database", "manorakshak")
	v.SetDefault("mongo.collection", "user_state")

	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.pool_size", 10)

	v.SetDefault("database.dsn", "")
	v.SetDefault("database.max_idle", 5)
	v.SetDefault("database.max_open", 20)
	v.SetDefault("database.max_lifetime", 30)

	v.SetDefault("llm.url", "")
	v.SetDefault("llm.api_key", "")
	v.SetDefault("llm.text_model", "gpt-4o-mini")
	v.SetDefault("llm.temperature", 0.7)
	v.SetDefault("llm.concurrency", 2)

	v.SetDefault("kafka.enable", false)
	v.SetDefault("kafka.brokers", []string{})
	v.SetDefault("kafka.sasl.enable", false)
	v.SetDefault("kafka.sasl.username", "")
	v.SetDefault("kafka.sasl.password", "")
	v.SetDefault("kafka.content.topic", "content-observations")
	v.SetDefault("kafka.content.group_id", "manorakshak-content")
	v.SetDefault("kafka.consumer.session_timeout", 10)
	v.SetDefault("kafka.consumer.heartbeat_interval", 3)
	v.SetDefault("kafka.consumer.rebalance_timeout", 60)
	v.SetDefault("kafka.consumer.max_processing_time", 5)

	v.SetDefault("notify.webhook_url", "")
	v.SetDefault("notify.timeout", 5)

	v.SetDefault("aggregate.user_id", "default")
	v.SetDefault("aggregate.trend_length", 7)
	v.SetDefault("aggregate.alert_cap", 10)
	v.SetDefault("aggregate.content_max", 50)
	v.SetDefault("aggregate.content_keep", 30)
	v.SetDefault("aggregate.video_cap", 100)

	v.SetDefault("persist.flush_spec", "@every 30s")
	v.SetDefault("persist.save_timeout", 5)
	v.SetDefault("persist.max_retries", 3)
	v.SetDefault("persist.backoff_ms", 100)
	v.SetDefault("persist.final_timeout", 5)

	v.SetDefault("lexicon.version", "")
	v.SetDefault("lexicon.positive", []string{})
	v.SetDefault("lexicon.negative", []string{})
	v.SetDefault("lexicon.toxic", []string{})
	v.SetDefault("lexicon.fighting", []string{})
}
