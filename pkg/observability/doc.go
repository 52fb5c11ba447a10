/*
Package observability provides the in-process event bus and the Prometheus
collector for the hotkey engine.

The Bus implements ports.EventPublisher, so it can be handed to the engine
directly. Subscribers either register a handler (called synchronously on the
publishing goroutine) or open a buffered Stream, which is what the HTTP event
feed uses. Metrics subscribes to the bus and turns domain events into
counters, gauges and histograms.
*/
package observability
