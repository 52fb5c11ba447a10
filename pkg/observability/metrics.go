package observability

import (
	"fmt"

	"github.com/aretw0/hotdeck/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "hotdeck"

// Metrics holds the Prometheus metrics derived from domain events.
type Metrics struct {
	Events           *prometheus.CounterVec
	HotkeyExecutions *prometheus.CounterVec
	ActionExecutions *prometheus.CounterVec
	ActionDuration   *prometheus.HistogramVec
	DeckSwitches     prometheus.Counter
	Learning         prometheus.Gauge
	Hotkeys          prometheus.Gauge
	Decks            prometheus.Gauge
}

// NewMetrics creates the metrics and registers them with registry.
func NewMetrics(registry prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		Events: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "events_total",
			Help:      "Domain events published, by type",
		}, []string{"type"}),
		HotkeyExecutions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "hotkey_executions_total",
			Help:      "Hotkey runs, by result",
		}, []string{"result"}),
		ActionExecutions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "action_executions_total",
			Help:      "Dispatched actions, by type and result",
		}, []string{"action_type", "result"}),
		ActionDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "action_duration_seconds",
			Help:      "Time spent dispatching an action, delays excluded",
			Buckets:   prometheus.ExponentialBuckets(0.001, 2, 12),
		}, []string{"action_type"}),
		DeckSwitches: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "deck_switches_total",
			Help:      "Deck and sub-deck switches",
		}),
		Learning: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "learning_active",
			Help:      "1 while a learning cycle is listening",
		}),
		Hotkeys: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "hotkeys",
			Help:      "Number of hotkeys",
		}),
		Decks: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "decks",
			Help:      "Number of decks",
		}),
	}
	if err := registry.Register(m); err != nil {
		return nil, fmt.Errorf("failed to register metrics: %w", err)
	}
	return m, nil
}

func (m *Metrics) collectors() []prometheus.Collector {
	return []prometheus.Collector{
		m.Events,
		m.HotkeyExecutions,
		m.ActionExecutions,
		m.ActionDuration,
		m.DeckSwitches,
		m.Learning,
		m.Hotkeys,
		m.Decks,
	}
}

// Describe implements prometheus.Collector.
func (m *Metrics) Describe(ch chan<- *prometheus.Desc) {
	for _, c := range m.collectors() {
		c.Describe(ch)
	}
}

// Collect implements prometheus.Collector.
func (m *Metrics) Collect(ch chan<- prometheus.Metric) {
	for _, c := range m.collectors() {
		c.Collect(ch)
	}
}

// Attach subscribes m to every event on bus.
func (m *Metrics) Attach(bus *Bus) (detach func()) {
	return bus.Subscribe(m.Observe)
}

// Observe updates the metrics for one event.
func (m *Metrics) Observe(ev domain.Event) {
	m.Events.WithLabelValues(string(ev.EventType())).Inc()

	switch e := ev.(type) {
	case domain.Initialized:
		m.Hotkeys.Set(float64(e.Hotkeys))
		m.Decks.Set(float64(e.Decks))
	case domain.ConfigurationImported:
		m.Hotkeys.Set(float64(e.Hotkeys))
		m.Decks.Set(float64(e.Decks))
	case domain.HotkeyEvent:
		switch e.Type {
		case domain.EventHotkeyCreated:
			m.Hotkeys.Inc()
		case domain.EventHotkeyDeleted:
			m.Hotkeys.Dec()
		}
	case domain.DeckEvent:
		switch e.Type {
		case domain.EventDeckCreated:
			m.Decks.Inc()
		case domain.EventDeckDeleted:
			m.Decks.Dec()
		}
	case domain.HotkeyExecuted:
		m.HotkeyExecutions.WithLabelValues(result(e.Success)).Inc()
	case domain.ActionExecuted:
		typ := string(e.Action.Type)
		m.ActionExecutions.WithLabelValues(typ, result(e.Error == "")).Inc()
		m.ActionDuration.WithLabelValues(typ).Observe(e.Duration.Seconds())
	case domain.DeckSwitched:
		if !e.AlreadyActive {
			m.DeckSwitches.Inc()
		}
	case domain.SubDeckSwitched:
		if !e.Refresh {
			m.DeckSwitches.Inc()
		}
	case domain.LearningStarted:
		m.Learning.Set(1)
	case domain.LearningStopped:
		m.Learning.Set(0)
	}
}

func result(ok bool) string {
	if ok {
		return "success"
	}
	return "failure"
}
