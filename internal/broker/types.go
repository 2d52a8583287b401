package broker

import (
	"context"

	"logalert/pkg/models"
)

// Publisher sends one notification to a topic and returns the broker's
// acknowledgment id. Implementations must not retry.
type Publisher interface {
	Publish(ctx context.Context, topic string, msg models.Notification) (string, error)
	Close() error
}
