package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hermes-rf/cstmcp/config"
)

func Test_LoadConfig(t *testing.T) {
	t.Setenv("CST_BRIDGE_TOKEN", "secret-token")

	cfg, err := config.LoadConfig("testdata/server.yaml")
	require.NoError(t, err)

	assert.Equal(t, "http://127.0.0.1:8090", cfg.Bridge.URL)
	assert.Equal(t, "secret-token", cfg.Bridge.AuthToken)
	assert.Equal(t, "C:/Projects/patch_antenna.cst", cfg.Bridge.ProjectFile)

	assert.Equal(t, "http", cfg.Server.Transport)
	assert.Equal(t, "127.0.0.1:8080", cfg.Server.ListenAddr)

	assert.Equal(t, "redis", cfg.Cache.Backend)
	assert.Equal(t, "redis://127.0.0.1:6379/0", cfg.Cache.RedisURL)
	assert.Equal(t, "cstmcp", cfg.Cache.Prefix)
	assert.Equal(t, "1h", cfg.Cache.TTL)

	assert.Equal(t, "/opt/cst/materials", cfg.MaterialsDir)
}

func Test_LoadConfig_Empty(t *testing.T) {
	cfg, err := config.LoadConfig("")
	require.NoError(t, err)
	assert.Empty(t, cfg.Bridge.URL)

	_, err = config.LoadConfig("testdata/missing.yaml")
	assert.Error(t, err)
}
