package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/aretw0/hotdeck"
	"github.com/aretw0/hotdeck/pkg/adapters/file"
	"github.com/aretw0/hotdeck/pkg/adapters/memory"
	"github.com/aretw0/hotdeck/pkg/adapters/mqtt"
	"github.com/aretw0/hotdeck/pkg/adapters/redis"
	"github.com/aretw0/hotdeck/pkg/adapters/simulator"
	"github.com/aretw0/hotdeck/pkg/adapters/sqlite"
	"github.com/aretw0/hotdeck/pkg/persistence/middleware"
	"github.com/aretw0/hotdeck/pkg/ports"
)

// Backend is an opened settings store and the resources behind it.
type Backend struct {
	Store  ports.SettingsStore
	Locker ports.DistributedLocker
	close  []func() error
}

// Close releases connections held by the store.
func (b *Backend) Close() error {
	var errs []error
	for _, c := range b.close {
		errs = append(errs, c())
	}
	return errors.Join(errs...)
}

// OpenBackend builds the configured store, wrapped in encryption when a key is set.
func OpenBackend(cfg StorageConfig) (*Backend, error) {
	b := &Backend{}

	switch cfg.Backend {
	case BackendMemory:
		b.Store = memory.NewStore()
	case BackendFile:
		b.Store = file.New(cfg.File.Path)
	case BackendRedis:
		store := redis.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, redis.WithPrefix(cfg.Redis.Prefix))
		b.Store = store
		b.close = append(b.close, store.Close)
		if cfg.Redis.Lock {
			b.Locker = redis.NewLocker(store.Client(), cfg.Redis.Prefix)
		}
	case BackendSQLite:
		store, err := sqlite.Open(cfg.SQLite.Path)
		if err != nil {
			return nil, err
		}
		b.Store = store
		b.close = append(b.close, store.Close)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}

	if cfg.Encrypt.Key == "" {
		return b, nil
	}
	active, err := middleware.ParseKey(cfg.Encrypt.Key)
	if err != nil {
		_ = b.Close()
		return nil, fmt.Errorf("encryption key: %w", err)
	}
	encCfg := middleware.EncryptionConfig{ActiveKey: active}
	for i, k := range cfg.Encrypt.FallbackKeys {
		key, err := middleware.ParseKey(k)
		if err != nil {
			_ = b.Close()
			return nil, fmt.Errorf("fallback key %d: %w", i, err)
		}
		encCfg.FallbackKeys = append(encCfg.FallbackKeys, key)
	}
	b.Store = middleware.Chain(b.Store, middleware.NewEncryptionMiddleware(encCfg))
	return b, nil
}

// Session is an engine together with the resources the CLI opened for it.
type Session struct {
	Engine   *hotdeck.Engine
	Studio   *simulator.Studio
	Registry *prometheus.Registry
	backend  *Backend
}

// Close stops the engine and releases the store.
func (s *Session) Close() error {
	return errors.Join(s.Engine.Close(), s.backend.Close())
}

// NewSession initializes an engine with standard CLI conventions.
// Metrics are always registered on a private registry so serve can expose them.
func NewSession(ctx context.Context, cfg *Config, logger *slog.Logger) (*Session, error) {
	backend, err := OpenBackend(cfg.Storage)
	if err != nil {
		return nil, err
	}

	reg := prometheus.NewRegistry()
	opts := []hotdeck.Option{
		hotdeck.WithStore(backend.Store),
		hotdeck.WithLogger(logger),
		hotdeck.WithMetrics(reg),
	}
	if cfg.Learning.Debounce > 0 {
		opts = append(opts, hotdeck.WithLearningDebounce(cfg.Learning.Debounce))
	}
	if backend.Locker != nil {
		opts = append(opts, hotdeck.WithLocker(backend.Locker))
	}

	var studio *simulator.Studio
	if cfg.Target == TargetSimulator {
		studio = simulator.New(simulator.WithLogger(logger))
		opts = append(opts, hotdeck.WithBroadcaster(studio), hotdeck.WithMixer(studio))
	}

	engine, err := hotdeck.New(ctx, opts...)
	if err != nil {
		_ = backend.Close()
		return nil, fmt.Errorf("error initializing engine: %w", err)
	}

	logger.Debug("engine ready", "backend", cfg.Storage.Backend, "target", cfg.Target,
		"encrypted", cfg.Storage.Encrypt.Key != "")
	return &Session{Engine: engine, Studio: studio, Registry: reg, backend: backend}, nil
}

// NewMQTTSource builds the MQTT trigger source, or nil when no broker is configured.
func NewMQTTSource(cfg MQTTConfig, logger *slog.Logger) *mqtt.Source {
	if !cfg.Enabled() {
		return nil
	}
	return mqtt.New(mqtt.Config{
		Broker:      cfg.Broker,
		TopicPrefix: cfg.TopicPrefix,
		ClientID:    cfg.ClientID,
		Username:    cfg.Username,
		Password:    cfg.Password,
		QoS:         byte(cfg.QoS),
	}, mqtt.WithLogger(logger))
}
