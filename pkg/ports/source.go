package ports

import (
	"context"

	"github.com/aretw0/hotdeck/pkg/domain"
)

// TriggerSource delivers normalized input events.
// Implementations close the returned channel when ctx is cancelled or the
// underlying transport ends.
type TriggerSource interface {
	Start(ctx context.Context) (<-chan domain.InputEvent, error)
}
