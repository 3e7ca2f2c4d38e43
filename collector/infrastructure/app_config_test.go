package infrastructure

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	collectorDomain "github.com/csilab/sensor-attest/collector/domain"
	"github.com/csilab/sensor-attest/pkg/telemetry"
)

func TestLoadConfig_Defaults(t *testing.T) {
	config, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, collectorDomain.BindAddress(":8080"), config.BindAddress)
	assert.Equal(t, collectorDomain.QueryLimit(100), config.QueryLimit)
	assert.Equal(t, telemetry.DefaultKey(), config.Key)
	assert.Equal(t, "memory", config.Database.Driver)
	assert.Equal(t, "sensor_data", config.Database.TableName)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("SERVER_BIND_ADDRESS", ":9090")
	t.Setenv("CIPHER_KEY", "000102030405060708090a0b0c0d0e0f")
	t.Setenv("DATABASE_DRIVER", "postgres")

	config, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, collectorDomain.BindAddress(":9090"), config.BindAddress)
	assert.Equal(t, byte(0x0f), config.Key[15])
	assert.Equal(t, "postgres", config.Database.Driver)
}

func TestLoadConfig_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	yaml := []byte("server:\n  bind_address: \":7070\"\n  query_limit: 25\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), yaml, 0o644))

	config, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, collectorDomain.BindAddress(":7070"), config.BindAddress)
	assert.Equal(t, collectorDomain.QueryLimit(25), config.QueryLimit)
}

func TestLoadConfig_InvalidValues(t *testing.T) {
	t.Run("bad cipher key", func(t *testing.T) {
		t.Setenv("CIPHER_KEY", "too-short")
		_, err := LoadConfig(t.TempDir())
		assert.Error(t, err)
	})

	t.Run("bad bind address", func(t *testing.T) {
		t.Setenv("SERVER_BIND_ADDRESS", "no-port-here")
		_, err := LoadConfig(t.TempDir())
		assert.Error(t, err)
	})

	t.Run("bad query limit", func(t *testing.T) {
		t.Setenv("SERVER_QUERY_LIMIT", "0")
		_, err := LoadConfig(t.TempDir())
		assert.Error(t, err)
	})
}

func TestAppConfig_ConnString(t *testing.T) {
	config := &AppConfig{
		Database: DatabaseConfig{
			Host:     "db.internal",
			Port:     5433,
			User:     "collector",
			Password: "secret",
			DBName:   "telemetry",
			SSLMode:  "require",
		},
	}
	assert.Equal(t,
		"host=db.internal port=5433 user=collector password=secret dbname=telemetry sslmode=require",
		config.ConnString())
}
