package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"handeval-server/internal/util"
)

func TestInstance(t *testing.T) {
	clear1 := util.SetEnv("HANDEVAL_CONFIG_FILE", "testdata/config.yaml")
	defer clear1()
	clear2 := util.SetEnv("HANDEVAL_LOG_LEVEL", "warn")
	defer clear2()

	config = Config{}

	a := assert.New(t)
	cfg := Instance()
	a.Equal(":8080", cfg.Addr)
	a.Equal(time.Second*2, cfg.ReadTimeout)
	a.Equal(time.Second*10, cfg.WriteTimeout)
	a.Equal("json", cfg.Log.Format)
	a.Equal("warn", cfg.Log.Level)
	a.Equal([]string{"https://example.com"}, cfg.CORS.AllowedOrigins)

	// ensure that it's only loaded once
	_ = os.Setenv("HANDEVAL_LOG_LEVEL", "error")
	// ensure we aren't using a pointer
	cfg.Log.Level = "bad"
	cfg = Instance()
	a.Equal("warn", cfg.Log.Level)
}

func TestDefaults(t *testing.T) {
	clear1 := util.SetEnv("HANDEVAL_CONFIG_FILE", "testdata/does-not-exist.yaml")
	defer clear1()

	assert.NoError(t, Load())
	cfg := Instance()
	assert.Equal(t, ":3000", cfg.Addr)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.False(t, cfg.Log.DisableAccessLogs)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
}

func TestLoad_Env(t *testing.T) {
	clear1 := util.SetEnv("HANDEVAL_CONFIG_FILE", "testdata/does-not-exist.yaml")
	defer clear1()
	clear2 := util.SetEnv("HANDEVAL_LOG_DISABLE_ACCESS_LOGS", "true")
	defer clear2()
	clear3 := util.SetEnv("HANDEVAL_CORS_ALLOWED_ORIGINS", "https://a.example,https://b.example")
	defer clear3()

	assert.NoError(t, Load())
	cfg := Instance()
	assert.True(t, cfg.Log.DisableAccessLogs)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORS.AllowedOrigins)
}

func TestLoad_BadFile(t *testing.T) {
	clear1 := util.SetEnv("HANDEVAL_CONFIG_FILE", "testdata/bad.yaml")
	defer clear1()

	assert.Error(t, Load())
}
