package config

// Config 配置主体
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Logstash  LogstashConfig  `mapstructure:"logstash"`
	Mongo     MongoConfig     `mapstructure:"mongo"`
	Redis     RedisConfig     `mapstructure:"redis"`
	DB        DBConfig        `mapstructure:"database"`
	LLM       LLMConfig       `mapstructure:"llm"`
	Kafka     KafkaConfig     `mapstructure:"kafka"`
	Notify    NotifyConfig    `mapstructure:"notify"`
	Aggregate AggregateConfig `mapstructure:"aggregate"`
	Persist   PersistConfig   `mapstructure:"persist"`
	Lexicon   LexiconConfig   `mapstructure:"lexicon"`
}

// ServerConfig Server配置
type ServerConfig struct {
	Port            int `mapstructure:"port"`
	ShutdownTimeout int `mapstructure:"shutdown_timeout"` // 秒
}

type LogstashConfig struct {
	Address string `mapstructure:"address"`
	Index   string `mapstructure:"index"`
	Token   string `mapstructure:"token"`
}

type MongoConfig struct {
	URL        string `mapstructure:"url"`
	Database   string `mapstructure:"database"`
	Collection string `mapstructure:"collection"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	PoolSize int    `mapstructure:"pool_size"`
}

// DBConfig MySQL 配置，DSN 为空时不启用每日心情统计
type DBConfig struct {
	DSN         string `mapstructure:"dsn"`
	MaxIdle     int    `mapstructure:"max_idle"`
	MaxOpen     int    `mapstructure:"max_open"`
	MaxLifetime int    `mapstructure:"max_lifetime"`
}

// LLMConfig ApiKey 为空时报告接口使用固定模板
type LLMConfig struct {
	URL         string  `mapstructure:"url"`
	TextModel   string  `mapstructure:"text_model"`
	ApiKey      string  `mapstructure:"api_key"`
	Temperature float64 `mapstructure:"temperature"`
	Concurrency int64   `mapstructure:"concurrency"`
}

type KafkaConfig struct {
	Enable   bool           `mapstructure:"enable"`
	Brokers  []string       `mapstructure:"brokers"`
	Sasl     SaslConfig     `mapstructure:"sasl"`
	Consumer ConsumerConfig `mapstructure:"consumer"`
	Content  KafkaTopic     `mapstructure:"content"`
}

type SaslConfig struct {
	Enable   bool   `mapstructure:"enable"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
}

type ConsumerConfig struct {
	SessionTimeout    int `mapstructure:"session_timeout"`
	HeartbeatInterval int `mapstructure:"heartbeat_interval"`
	RebalanceTimeout  int `mapstructure:"rebalance_timeout"`
	MaxProcessingTime int `mapstructure:"max_processing_time"`
}

type KafkaTopic struct {
	Topic   string `mapstructure:"topic"`
	GroupID string `mapstructure:"group_id"`
}

// NotifyConfig 严重提醒推送，WebhookURL 为空时关闭
type NotifyConfig struct {
	WebhookURL string `mapstructure:"webhook_url"`
	Timeout    int    `mapstructure:"timeout"` // 秒
}

type AggregateConfig struct {
	UserID      string `mapstructure:"user_id"`
	TrendLength int    `mapstructure:"trend_length"`
	AlertCap    int    `mapstructure:"alert_cap"`
	ContentMax  int    `mapstructure:"content_max"`
	ContentKeep int    `mapstructure:"content_keep"`
	VideoCap    int    `mapstructure:"video_cap"`
}

type PersistConfig struct {
	FlushSpec    string `mapstructure:"flush_spec"`    // cron 表达式
	SaveTimeout  int    `mapstructure:"save_timeout"`  // 秒
	MaxRetries   int    `mapstructure:"max_retries"`
	BackoffMs    int    `mapstructure:"backoff_ms"`
	FinalTimeout int    `mapstructure:"final_timeout"` // 秒
}

// LexiconConfig 覆盖内置词表，留空的列表使用内置值
type LexiconConfig struct {
	Version  string   `mapstructure:"version"`
	Positive []string `mapstructure:"positive"`
	Negative []string `mapstructure:"negative"`
	Toxic    []string `mapstructure:"toxic"`
	Fighting []string `mapstructure:"fighting"`
}
