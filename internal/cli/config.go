package cli

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/aretw0/hotdeck/internal/logging"
	"github.com/aretw0/hotdeck/pkg/adapters/file"
	"github.com/aretw0/hotdeck/pkg/adapters/mqtt"
	"github.com/aretw0/hotdeck/pkg/adapters/redis"
)

// Storage backends.
const (
	BackendMemory = "memory"
	BackendFile   = "file"
	BackendRedis  = "redis"
	BackendSQLite = "sqlite"
)

// Action targets.
const (
	TargetSimulator = "simulator"
	TargetNone      = "none"
)

// EnvPrefix prefixes every environment override, e.g. HOTDECK_STORAGE_BACKEND.
const EnvPrefix = "HOTDECK"

// Config is the CLI configuration, read from hotdeck.yaml, the environment and flags.
type Config struct {
	Storage  StorageConfig  `mapstructure:"storage"`
	MQTT     MQTTConfig     `mapstructure:"mqtt"`
	HTTP     HTTPConfig     `mapstructure:"http"`
	Log      LogConfig      `mapstructure:"log"`
	Learning LearningConfig `mapstructure:"learning"`
	// Target selects what actions drive: the in-process simulator or nothing.
	Target string `mapstructure:"target"`
}

// StorageConfig selects and configures the settings store.
type StorageConfig struct {
	Backend string        `mapstructure:"backend"`
	File    FileConfig    `mapstructure:"file"`
	Redis   RedisConfig   `mapstructure:"redis"`
	SQLite  SQLiteConfig  `mapstructure:"sqlite"`
	Encrypt EncryptConfig `mapstructure:"encryption"`
}

type FileConfig struct {
	Path string `mapstructure:"path"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	Prefix   string `mapstructure:"prefix"`
	// Lock serializes snapshot writes across processes sharing the database.
	Lock bool `mapstructure:"lock"`
}

type SQLiteConfig struct {
	Path string `mapstructure:"path"`
}

// EncryptConfig enables AES-GCM encryption of stored values when Key is set.
type EncryptConfig struct {
	Key          string   `mapstructure:"key"`
	FallbackKeys []string `mapstructure:"fallback_keys"`
}

type MQTTConfig struct {
	Broker      string `mapstructure:"broker"`
	TopicPrefix string `mapstructure:"topic_prefix"`
	ClientID    string `mapstructure:"client_id"`
	Username    string `mapstructure:"username"`
	Password    string `mapstructure:"password"`
	QoS         int    `mapstructure:"qos"`
}

// Enabled reports whether a broker is configured.
func (c MQTTConfig) Enabled() bool {
	return c.Broker != ""
}

type HTTPConfig struct {
	Addr string `mapstructure:"addr"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

type LearningConfig struct {
	Debounce time.Duration `mapstructure:"debounce"`
}

// SetDefaults registers every key so environment overrides reach Unmarshal.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("target", TargetSimulator)

	v.SetDefault("storage.backend", BackendFile)
	v.SetDefault("storage.file.path", file.DefaultPath)
	v.SetDefault("storage.redis.addr", "localhost:6379")
	v.SetDefault("storage.redis.password", "")
	v.SetDefault("storage.redis.db", 0)
	v.SetDefault("storage.redis.prefix", redis.DefaultPrefix)
	v.SetDefault("storage.redis.lock", false)
	v.SetDefault("storage.sqlite.path", ".hotdeck/settings.db")
	v.SetDefault("storage.encryption.key", "")
	v.SetDefault("storage.encryption.fallback_keys", []string{})

	v.SetDefault("mqtt.broker", "")
	v.SetDefault("mqtt.topic_prefix", mqtt.DefaultTopicPrefix)
	v.SetDefault("mqtt.client_id", "")
	v.SetDefault("mqtt.username", "")
	v.SetDefault("mqtt.password", "")
	v.SetDefault("mqtt.qos", 0)

	v.SetDefault("http.addr", ":8080")
	v.SetDefault("log.level", "info")
	v.SetDefault("learning.debounce", 500*time.Millisecond)
}

// NewViper returns a viper instance with defaults and environment bindings.
// An empty path searches for hotdeck.yaml in the working directory.
func NewViper(path string) *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("hotdeck")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}
	return v
}

// LoadConfig reads the configuration file, if any, and decodes it.
// A missing default file is not an error; a missing explicit file is.
func LoadConfig(v *viper.Viper) (*Config, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects unknown backends, targets and log levels.
func (c *Config) Validate() error {
	c.Storage.Backend = strings.ToLower(strings.TrimSpace(c.Storage.Backend))
	switch c.Storage.Backend {
	case BackendMemory, BackendFile, BackendRedis, BackendSQLite:
	default:
		return fmt.Errorf("unknown storage backend %q (want memory, file, redis or sqlite)", c.Storage.Backend)
	}

	switch c.Target {
	case TargetSimulator, TargetNone:
	default:
		return fmt.Errorf("unknown target %q (want simulator or none)", c.Target)
	}

	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return err
	}
	if c.MQTT.QoS < 0 || c.MQTT.QoS > 2 {
		return fmt.Errorf("mqtt qos must be 0, 1 or 2, got %d", c.MQTT.QoS)
	}
	if c.Learning.Debounce < 0 {
		return fmt.Errorf("learning debounce must not be negative")
	}
	return nil
}
