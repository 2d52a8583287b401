package pipeline

import (
	"context"

	"github.com/aws/aws-lambda-go/events"

	"logalert/internal/awslogs"
	"logalert/internal/broker"
	"logalert/internal/logger"
	"logalert/internal/notification"
	apperrors "logalert/pkg/errors"
	"logalert/pkg/logging"
	"logalert/pkg/models"
)

// Stages are the pure transformations run before publishing, in order.
type Stages struct {
	Decode  func(events.CloudwatchLogsEvent) ([]byte, error)
	Inflate func([]byte) ([]byte, error)
	Parse   func([]byte) (awslogs.Batch, error)
	Format  func(awslogs.Batch) (models.Notification, error)
}

func DefaultStages() Stages {
	return Stages{
		Decode:  awslogs.Decode,
		Inflate: awslogs.Inflate,
		Parse:   awslogs.Parse,
		Format:  notification.Format,
	}
}

type TopicResolver interface {
	Resolve() (string, error)
}

// Pipeline turns one CloudWatch Logs subscription event into one published
// notification. The first failing step ends the run and its error is
// returned unchanged; later steps are never invoked.
type Pipeline struct {
	stages    Stages
	resolver  TopicResolver
	publisher broker.Publisher
	logger    logger.Logger
}

func New(resolver TopicResolver, publisher broker.Publisher, log logger.Logger) *Pipeline {
	return NewWithStages(DefaultStages(), resolver, publisher, log)
}

func NewWithStages(stages Stages, resolver TopicResolver, publisher broker.Publisher, log logger.Logger) *Pipeline {
	return &Pipeline{
		stages:    stages,
		resolver:  resolver,
		publisher: publisher,
		logger:    log,
	}
}

// Run returns the publish acknowledgment id.
func (p *Pipeline) Run(ctx context.Context, event events.CloudwatchLogsEvent) (string, error) {
	blob, err := p.stages.Decode(event)
	if err != nil {
		return "", p.fail(ctx, "decode", err)
	}
	p.logger.DebugwCtx(ctx, "Decoded payload", "bytes", len(blob))

	text, err := p.stages.Inflate(blob)
	if err != nil {
		return "", p.fail(ctx, "inflate", err)
	}
	p.logger.DebugwCtx(ctx, "Inflated payload", "bytes", len(text))

	batch, err := p.stages.Parse(text)
	if err != nil {
		return "", p.fail(ctx, "parse", err)
	}
	ctx = logging.WithLogGroup(ctx, batch.LogGroup)
	p.logger.DebugwCtx(ctx, "Parsed log batch",
		"log_stream", batch.LogStream,
		"events", len(batch.LogEvents),
	)

	msg, err := p.stages.Format(batch)
	if err != nil {
		return "", p.fail(ctx, "format", err)
	}

	topic, err := p.resolver.Resolve()
	if err != nil {
		return "", p.fail(ctx, "resolve", err)
	}

	id, err := p.publisher.Publish(ctx, topic, msg)
	if err != nil {
		return "", p.fail(ctx, "publish", err)
	}

	p.logger.InfowCtx(ctx, "Notification published",
		"topic", topic,
		"message_id", id,
		"lambda_name", msg.Body.LambdaName,
		"events", len(msg.Body.Messages),
	)
	return id, nil
}

func (p *Pipeline) fail(ctx context.Context, stage string, err error) error {
	p.logger.ErrorwCtx(ctx, "Pipeline stopped",
		"stage", stage,
		"code", apperrors.CodeOf(err),
		"error", err,
	)
	return err
}
