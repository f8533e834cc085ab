package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadReadsEnvironment(t *testing.T) {
	t.Setenv("APP_ENV", "test")
	t.Setenv("APP_PORT", "8080")
	t.Setenv("DB_USER", "dealer")
	t.Setenv("DB_PASS", "")
	t.Setenv("DB_HOST", "127.0.0.1")
	t.Setenv("DB_PORT", "3306")
	t.Setenv("DB_NAME", "dealer")
	t.Setenv("BCRYPT_COST", "10")
	t.Setenv("SEQUENCE_START", "")

	cfg := Load()
	assert.Equal(t, "test", cfg.Env)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 10, cfg.BcryptCost)
	assert.Equal(t, uint64(DefaultSequenceStart), cfg.SequenceStart)
}

func TestLoadSequenceStartOverride(t *testing.T) {
	t.Setenv("APP_ENV", "test")
	t.Setenv("APP_PORT", "8080")
	t.Setenv("DB_USER", "dealer")
	t.Setenv("DB_HOST", "127.0.0.1")
	t.Setenv("DB_PORT", "3306")
	t.Setenv("DB_NAME", "dealer")
	t.Setenv("BCRYPT_COST", "10")
	t.Setenv("SEQUENCE_START", "1000")

	cfg := Load()
	assert.Equal(t, uint64(1000), cfg.SequenceStart)
}

func TestLoadCacheConfigDefaults(t *testing.T) {
	cfg := LoadCacheConfig()
	assert.True(t, cfg.Enabled)
	assert.True(t, cfg.Methods["GET"])
	assert.False(t, cfg.Methods["POST"])
	assert.Equal(t, 30*time.Second, cfg.TTL)
	assert.Equal(t, "cache", cfg.Prefix)
}

func TestParseMethodsNormalizes(t *testing.T) {
	m := parseMethods("get, head ,")
	require.Len(t, m, 2)
	assert.True(t, m["GET"])
	assert.True(t, m["HEAD"])
}
