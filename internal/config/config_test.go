package config

import (
	"bytes"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newViper(t *testing.T, doc string) *viper.Viper {
	t.Helper()
	v := viper.New()
	v.SetConfigType("yaml")
	require.NoError(t, v.ReadConfig(bytes.NewBufferString(doc)))
	return v
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(newViper(t, ""))

	require.NoError(t, err)
	assert.Equal(t, 8090, cfg.Server.Port)
	assert.Equal(t, 20*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "./web", cfg.Source.Dir)
	assert.Equal(t, "questions.json", cfg.Source.StructuredName)
	assert.Equal(t, "README.md", cfg.Source.RawName)
	assert.Equal(t, 10*time.Second, cfg.Source.Timeout)
	assert.Equal(t, 24*time.Hour, cfg.Cache.RenderedAnswerTTL)
	assert.False(t, cfg.RedisEnabled())
}

func TestLoad_FromYAML(t *testing.T) {
	doc := `
server:
  port: 9000
  static_dir: /srv/www
source:
  base_url: https://example.org/devops
  timeout: 3s
redis:
  address: localhost:6379
  db: 2
logger:
  level: debug
  env: production
`
	cfg, err := Load(newViper(t, doc))

	require.NoError(t, err)
	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, "/srv/www", cfg.Server.StaticDir)
	assert.Equal(t, "https://example.org/devops", cfg.Source.BaseURL)
	assert.Equal(t, 3*time.Second, cfg.Source.Timeout)
	assert.Equal(t, 2, cfg.Redis.DB)
	assert.True(t, cfg.RedisEnabled())
	assert.Equal(t, LoggerConfig{Level: "debug", Env: "production"}, cfg.Logger)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("SERVER_PORT", "7000")
	t.Setenv("SOURCE_BASE_URL", "http://assets.local")

	cfg, err := Load(newViper(t, "server:\n  port: 9000\n"))

	require.NoError(t, err)
	assert.Equal(t, 7000, cfg.Server.Port)
	assert.Equal(t, "http://assets.local", cfg.Source.BaseURL)
}

func TestLoad_Invalid(t *testing.T) {
	_, err := Load(newViper(t, "server:\n  port: 70000\n"))
	assert.Error(t, err)

	_, err = Load(newViper(t, "source:\n  dir: \"\"\n"))
	assert.Error(t, err)
}
