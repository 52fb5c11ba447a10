package ports

import "github.com/aretw0/hotdeck/pkg/domain"

// EventPublisher receives domain events synchronously on the goroutine that
// caused them. Implementations must not call back into the engine while
// holding their own locks.
type EventPublisher interface {
	Publish(event domain.Event)
}

// PublisherFunc adapts a function to EventPublisher.
type PublisherFunc func(domain.Event)

// Publish calls f(event).
func (f PublisherFunc) Publish(event domain.Event) { f(event) }
