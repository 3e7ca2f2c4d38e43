// Package infrastructure provides concrete implementations of the collector's
// domain abstractions: configuration loading, the HTTP ingestion boundary,
// and the record stores.
package infrastructure

import (
	"fmt"

	"github.com/spf13/viper"

	collectorDomain "github.com/csilab/sensor-attest/collector/domain"
	"github.com/csilab/sensor-attest/pkg/telemetry"
)

// DatabaseConfig holds Postgres connection configuration.
type DatabaseConfig struct {
	Driver    string `mapstructure:"driver"`
	Host      string `mapstructure:"host"`
	Port      int    `mapstructure:"port"`
	User      string `mapstructure:"user"`
	Password  string `mapstructure:"password"`
	DBName    string `mapstructure:"dbname"`
	SSLMode   string `mapstructure:"sslmode"`
	TableName string `mapstructure:"table_name"`
}

// AppConfig holds all validated configuration parameters for the collector.
// Raw values read by viper are validated into domain types before use, so an
// AppConfig in hand is always safe to wire.
type AppConfig struct {
	BindAddress collectorDomain.BindAddress
	QueryLimit  collectorDomain.QueryLimit
	Key         telemetry.CipherKey
	Database    DatabaseConfig
}

// rawConfig mirrors the configuration file layout before validation.
type rawConfig struct {
	Server struct {
		BindAddress string `mapstructure:"bind_address"`
		QueryLimit  int    `mapstructure:"query_limit"`
	} `mapstructure:"server"`
	Cipher struct {
		Key string `mapstructure:"key"`
	} `mapstructure:"cipher"`
	Database DatabaseConfig `mapstructure:"database"`
}

// LoadConfig loads collector configuration with three precedence levels:
// built-in defaults, an optional config.yaml in the given path, and
// environment variables (SERVER_BIND_ADDRESS, CIPHER_KEY, DATABASE_HOST, ...).
func LoadConfig(path string) (*AppConfig, error) {
	v := viper.New()

	v.SetDefault("server.bind_address", ":8080")
	v.SetDefault("server.query_limit", 100)
	v.SetDefault("cipher.key", "2b7e151628aed2a6abf7158809cf4f3c")
	v.SetDefault("database.driver", "memory")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "sensor_attestation")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.table_name", "sensor_data")

	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	v.BindEnv("server.bind_address", "SERVER_BIND_ADDRESS")
	v.BindEnv("server.query_limit", "SERVER_QUERY_LIMIT")
	v.BindEnv("cipher.key", "CIPHER_KEY")
	v.BindEnv("database.driver", "DATABASE_DRIVER")
	v.BindEnv("database.host", "DATABASE_HOST")
	v.BindEnv("database.port", "DATABASE_PORT")
	v.BindEnv("database.user", "DATABASE_USER")
	v.BindEnv("database.password", "DATABASE_PASSWORD")
	v.BindEnv("database.dbname", "DATABASE_DBNAME")
	v.BindEnv("database.sslmode", "DATABASE_SSLMODE")
	v.BindEnv("database.table_name", "DATABASE_TABLE_NAME")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// No config file is fine: environment variables and defaults apply.
	}

	var raw rawConfig
	if err := v.Unmarshal(&raw); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	bindAddress, err := collectorDomain.NewBindAddress(raw.Server.BindAddress)
	if err != nil {
		return nil, err
	}

	queryLimit, err := collectorDomain.NewQueryLimit(raw.Server.QueryLimit)
	if err != nil {
		return nil, err
	}

	key, err := telemetry.ParseCipherKey(raw.Cipher.Key)
	if err != nil {
		return nil, err
	}

	return &AppConfig{
		BindAddress: bindAddress,
		QueryLimit:  queryLimit,
		Key:         key,
		Database:    raw.Database,
	}, nil
}

// ConnString returns the pgx connection string for the configured database.
func (c *AppConfig) ConnString() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.DBName,
		c.Database.SSLMode,
	)
}
