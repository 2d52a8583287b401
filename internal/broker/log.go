package broker

import (
	"context"

	"github.com/google/uuid"

	"logalert/internal/logger"
	apperrors "logalert/pkg/errors"
	"logalert/pkg/models"
)

// LogPublisher writes notifications to the logger instead of a broker. It
// backs the CLI's dry-run mode.
type LogPublisher struct {
	logger logger.Logger
}

func NewLogPublisher(log logger.Logger) *LogPublisher {
	return &LogPublisher{logger: log}
}

func (p *LogPublisher) Publish(ctx context.Context, topic string, msg models.Notification) (string, error) {
	body, err := msg.Payload()
	if err != nil {
		return "", apperrors.ErrPublish.WithCause(err)
	}

	id := uuid.NewString()
	p.logger.InfowCtx(ctx, "Dry run notification",
		"topic", topic,
		"subject", msg.Subject,
		"message", body,
		"message_id", id,
	)
	return id, nil
}

func (p *LogPublisher) Close() error {
	return nil
}
