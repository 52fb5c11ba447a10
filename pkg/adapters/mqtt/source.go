// Package mqtt delivers trigger input published on an MQTT broker.
//
// Hardware bridges (a MIDI controller attached to another machine, a
// networked keypad) publish JSON events under a topic prefix:
//
//	<prefix>/midi  {"type":"controlchange","channel":0,"controller":7,"value":100}
//	<prefix>/key   {"key":"s","code":"KeyS","ctrlKey":true}
package mqtt

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"
	"github.com/google/uuid"

	"github.com/aretw0/hotdeck/pkg/domain"
	"github.com/aretw0/hotdeck/pkg/ports"
)

// DefaultTopicPrefix is used when Config.TopicPrefix is empty.
const DefaultTopicPrefix = "hotdeck/input"

var _ ports.TriggerSource = (*Source)(nil)

// ErrUnknownTopic is returned by Decode for topics outside the input tree.
var ErrUnknownTopic = errors.New("unknown input topic")

// Config holds broker connection settings.
type Config struct {
	Broker         string
	TopicPrefix    string
	ClientID       string
	Username       string
	Password       string
	QoS            byte
	ConnectTimeout time.Duration
	Buffer         int
}

// Source is a ports.TriggerSource subscribed to an MQTT topic tree.
type Source struct {
	config Config
	logger *slog.Logger

	// NewClient builds the paho client. Tests replace it.
	NewClient func(*paho.ClientOptions) paho.Client
}

// Option configures a Source.
type Option func(*Source)

// WithLogger sets the logger for dropped or malformed messages.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Source) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New creates a Source. Nothing connects until Start.
func New(cfg Config, opts ...Option) *Source {
	if cfg.TopicPrefix == "" {
		cfg.TopicPrefix = DefaultTopicPrefix
	}
	cfg.TopicPrefix = strings.TrimSuffix(cfg.TopicPrefix, "/")
	if cfg.ClientID == "" {
		cfg.ClientID = "hotdeck-" + uuid.NewString()
	}
	if cfg.ConnectTimeout <= 0 {
		cfg.ConnectTimeout = 30 * time.Second
	}
	if cfg.Buffer <= 0 {
		cfg.Buffer = 64
	}
	s := &Source{
		config:    cfg,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		NewClient: paho.NewClient,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Config returns the effective configuration.
func (s *Source) Config() Config {
	return s.config
}

// Topic is the subscription filter covering every input topic.
func (s *Source) Topic() string {
	return s.config.TopicPrefix + "/#"
}

// Start connects to the broker and subscribes to the input topics. The
// returned channel is closed once ctx is done and the client disconnected.
func (s *Source) Start(ctx context.Context) (<-chan domain.InputEvent, error) {
	if s.config.Broker == "" {
		return nil, errors.New("mqtt broker address is required")
	}

	out := make(chan domain.InputEvent, s.config.Buffer)
	var (
		mu     sync.RWMutex
		closed bool
	)

	handler := func(_ paho.Client, msg paho.Message) {
		ev, err := s.Decode(msg.Topic(), msg.Payload())
		if err != nil {
			s.logger.Warn("dropping mqtt message", "topic", msg.Topic(), "err", err)
			return
		}
		mu.RLock()
		defer mu.RUnlock()
		if closed {
			return
		}
		select {
		case out <- ev:
		case <-ctx.Done():
		}
	}

	opts := paho.NewClientOptions()
	opts.AddBroker(s.config.Broker)
	opts.SetClientID(s.config.ClientID)
	opts.SetUsername(s.config.Username)
	opts.SetPassword(s.config.Password)
	opts.SetCleanSession(true)
	opts.SetAutoReconnect(true)
	opts.SetConnectTimeout(s.config.ConnectTimeout)
	// Clean sessions drop subscriptions, so every (re)connect subscribes again.
	opts.SetOnConnectHandler(func(c paho.Client) {
		token := c.Subscribe(s.Topic(), s.config.QoS, handler)
		if token.WaitTimeout(s.config.ConnectTimeout) && token.Error() != nil {
			s.logger.Error("mqtt subscribe failed", "topic", s.Topic(), "err", token.Error())
			return
		}
		s.logger.Info("mqtt input subscribed", "broker", s.config.Broker, "topic", s.Topic())
	})
	opts.SetConnectionLostHandler(func(_ paho.Client, err error) {
		s.logger.Warn("mqtt connection lost", "broker", s.config.Broker, "err", err)
	})

	client := s.NewClient(opts)
	token := client.Connect()
	if !token.WaitTimeout(s.config.ConnectTimeout) {
		return nil, fmt.Errorf("mqtt connection to %s timed out", s.config.Broker)
	}
	if err := token.Error(); err != nil {
		return nil, fmt.Errorf("mqtt connection error: %w", err)
	}

	go func() {
		<-ctx.Done()
		client.Unsubscribe(s.Topic()).WaitTimeout(time.Second)
		client.Disconnect(250)
		mu.Lock()
		closed = true
		close(out)
		mu.Unlock()
	}()

	return out, nil
}

// Decode turns a message on one of the input topics into an input event.
func (s *Source) Decode(topic string, payload []byte) (domain.InputEvent, error) {
	kind, ok := strings.CutPrefix(topic, s.config.TopicPrefix+"/")
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTopic, topic)
	}
	switch kind {
	case "midi":
		var m domain.MIDIMessage
		if err := json.Unmarshal(payload, &m); err != nil {
			return nil, fmt.Errorf("invalid midi payload: %w", err)
		}
		switch m.Type {
		case domain.MIDIControlChange, domain.MIDINoteOn, domain.MIDINoteOff:
		default:
			return nil, fmt.Errorf("invalid midi payload: unsupported type %q", m.Type)
		}
		if m.Channel < 0 || m.Channel > 15 {
			return nil, fmt.Errorf("invalid midi payload: channel %d out of range", m.Channel)
		}
		return m, nil
	case "key", "keyboard":
		var k domain.KeyEvent
		if err := json.Unmarshal(payload, &k); err != nil {
			return nil, fmt.Errorf("invalid key payload: %w", err)
		}
		if k.Key == "" && k.Code == "" {
			return nil, errors.New("invalid key payload: key or code is required")
		}
		return k, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownTopic, topic)
}
