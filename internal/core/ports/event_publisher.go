package ports

import (
	"context"

	"fleet/internal/core/domain/model/order"
)

// EventPublisher delivers order events to other services. It is called after commit.
type EventPublisher interface {
	Publish(ctx context.Context, events ...order.Event) error
}
