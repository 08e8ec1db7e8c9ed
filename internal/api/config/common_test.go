package config

import (
	"os"
	"path/filepath"
	"reflect"
	"slices"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(viper.New(), t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 3000, cfg.Server.Port)
	assert.Equal(t, "default", cfg.Aggregate.UserID)
	assert.Equal(t, 7, cfg.Aggregate.TrendLength)
	assert.Equal(t, "@every 30s", cfg.Persist.FlushSpec)
	assert.Equal(t, "user_state", cfg.Mongo.Collection)
	assert.False(t, cfg.Kafka.Enable)
	assert.Empty(t, cfg.Lexicon.Positive)
}

func TestLoad_FileAndEnv(t *testing.T) {
	dir := t.TempDir()
	yaml := `
server:
  port: 9090
aggregate:
  trend_length: 14
lexicon:
  version: "v2"
  positive: ["sunny", "cozy"]
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o644))
	t.Setenv("MANORAKSHAK_SERVER_PORT", "8088")

	cfg, err := Load(viper.New(), dir)
	require.NoError(t, err)

	assert.Equal(t, 8088, cfg.Server.Port)
	assert.Equal(t, 14, cfg.Aggregate.TrendLength)
	assert.Equal(t, "v2", cfg.Lexicon.Version)
	assert.Equal(t, []string{"sunny", "cozy"}, cfg.Lexicon.Positive)
	assert.Equal(t, 30, cfg.Aggregate.ContentKeep)
}

func TestLoad_BadFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("server: [oops"), 0o644))

	_, err := Load(viper.New(), dir)
	require.Error(t, err)
}

func TestLoad_EnvWithoutFile(t *testing.T) {
	t.Setenv("MANORAKSHAK_LLM_API_KEY", "sk-test")
	t.Setenv("MANORAKSHAK_DATABASE_DSN", "root:pw@tcp(localhost:3306)/manorakshak")
	t.Setenv("MANORAKSHAK_NOTIFY_WEBHOOK_URL", "http://hooks.local/alert")
	t.Setenv("MANORAKSHAK_KAFKA_ENABLE", "true")
	t.Setenv("MANORAKSHAK_REDIS_PASSWORD", "secret")

	cfg, err := Load(viper.New(), t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "sk-test", cfg.LLM.ApiKey)
	assert.Equal(t, "root:pw@tcp(localhost:3306)/manorakshak", cfg.DB.DSN)
	assert.Equal(t, "http://hooks.local/alert", cfg.Notify.WebhookURL)
	assert.True(t, cfg.Kafka.Enable)
	assert.Equal(t, "secret", cfg.Redis.Password)
}

func TestSetDefaults_CoversAllKeys(t *testing.T) {
	t.Parallel()
	v := viper.New()
	setDefaults(v)
	known := v.AllKeys()

	for _, key := range configKeys(reflect.TypeOf(Config{}), "") {
		assert.True(t, slices.Contains(known, key), "missing default for %s", key)
	}
}

func configKeys(typ reflect.Type, prefix string) []string {
	var keys []string
	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		key := prefix + field.Tag.Get("mapstructure")
		if field.Type.Kind() == reflect.Struct {
			keys = append(keys, configKeys(field.Type, key+".")...)
			continue
		}
		keys = append(keys, key)
	}
	return keys
}
