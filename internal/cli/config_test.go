package cli

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := LoadConfig(NewViper(""))
	require.NoError(t, err)

	assert.Equal(t, BackendFile, cfg.Storage.Backend)
	assert.Equal(t, filepath.Join(".hotdeck", "settings.json"), cfg.Storage.File.Path)
	assert.Equal(t, "hotdeck:", cfg.Storage.Redis.Prefix)
	assert.Equal(t, TargetSimulator, cfg.Target)
	assert.Equal(t, ":8080", cfg.HTTP.Addr)
	assert.Equal(t, 500*time.Millisecond, cfg.Learning.Debounce)
	assert.False(t, cfg.MQTT.Enabled())
}

func TestLoadConfig_FileAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "hotdeck.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
storage:
  backend: SQLite
  sqlite:
    path: /tmp/decks.db
mqtt:
  broker: tcp://broker:1883
  qos: 1
learning:
  debounce: 250ms
log:
  level: debug
`), 0o644))

	t.Setenv("HOTDECK_HTTP_ADDR", "127.0.0.1:9090")
	t.Setenv("HOTDECK_MQTT_TOPIC_PREFIX", "studio/in")

	cfg, err := LoadConfig(NewViper(path))
	require.NoError(t, err)

	assert.Equal(t, BackendSQLite, cfg.Storage.Backend)
	assert.Equal(t, "/tmp/decks.db", cfg.Storage.SQLite.Path)
	assert.Equal(t, "127.0.0.1:9090", cfg.HTTP.Addr)
	assert.True(t, cfg.MQTT.Enabled())
	assert.Equal(t, "studio/in", cfg.MQTT.TopicPrefix)
	assert.Equal(t, 1, cfg.MQTT.QoS)
	assert.Equal(t, 250*time.Millisecond, cfg.Learning.Debounce)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadConfig_Errors(t *testing.T) {
	_, err := LoadConfig(NewViper(filepath.Join(t.TempDir(), "missing.yaml")))
	assert.Error(t, err, "an explicit config file must exist")

	tests := []struct {
		name string
		env  map[string]string
		want string
	}{
		{"Backend", map[string]string{"HOTDECK_STORAGE_BACKEND": "etcd"}, "unknown storage backend"},
		{"Target", map[string]string{"HOTDECK_TARGET": "obs"}, "unknown target"},
		{"Level", map[string]string{"HOTDECK_LOG_LEVEL": "loud"}, "invalid log level"},
		{"QoS", map[string]string{"HOTDECK_MQTT_QOS": "3"}, "qos"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Chdir(t.TempDir())
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := LoadConfig(NewViper(""))
			assert.ErrorContains(t, err, tt.want)
		})
	}
}
