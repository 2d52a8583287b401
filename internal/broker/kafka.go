package broker

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"logalert/internal/config"
	"logalert/internal/constants"
	"logalert/internal/logger"
	apperrors "logalert/pkg/errors"
	"logalert/pkg/models"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher fans notifications out through a Kafka topic instead of SNS.
// The subject travels as a header and the generated message key doubles as
// the acknowledgment id.
type KafkaPublisher struct {
	writer messageWriter
	logger logger.Logger
}

func NewKafkaPublisher(cfg config.KafkaConfig, log logger.Logger) *KafkaPublisher {
	w := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: constants.KafkaBatchTimeout,
		WriteTimeout: constants.KafkaWriteTimeout,
		RequiredAcks: kafka.RequireAll,
		MaxAttempts:  1,
		Async:        false,
	}
	return &KafkaPublisher{writer: w, logger: log}
}

func (p *KafkaPublisher) Publish(ctx context.Context, topic string, msg models.Notification) (string, error) {
	body, err := msg.Payload()
	if err != nil {
		return "", apperrors.ErrPublish.WithCause(err)
	}

	key := uuid.NewString()
	err = p.writer.WriteMessages(ctx,
		kafka.Message{
			Topic: topic,
			Key:   []byte(key),
			Value: []byte(body),
			Headers: []kafka.Header{
				{Key: constants.KafkaSubjectHeader, Value: []byte(msg.Subject)},
			},
			Time: time.Now(),
		},
	)
	if err != nil {
		return "", apperrors.ErrPublish.WithCause(err)
	}

	p.logger.DebugwCtx(ctx, "Kafka message written", "topic", topic, "key", key)
	return key, nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}
