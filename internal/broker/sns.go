package broker

import (
	"context"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/sns"
	"github.com/aws/aws-sdk-go/service/sns/snsiface"

	"logalert/internal/config"
	"logalert/internal/constants"
	"logalert/internal/logger"
	apperrors "logalert/pkg/errors"
	"logalert/pkg/models"
)

type SNSPublisher struct {
	client snsiface.SNSAPI
	logger logger.Logger
}

// NewSNSPublisher creates an SNS client from the default credential chain.
// No request is made until the first Publish.
func NewSNSPublisher(cfg config.SNSConfig, log logger.Logger) (*SNSPublisher, error) {
	awsCfg := aws.NewConfig().
		WithRegion(cfg.Region).
		WithMaxRetries(0)
	if cfg.Endpoint != "" {
		awsCfg = awsCfg.WithEndpoint(cfg.Endpoint)
	}

	sess, err := session.NewSession(awsCfg)
	if err != nil {
		return nil, err
	}

	return NewSNSPublisherWithClient(sns.New(sess), log), nil
}

func NewSNSPublisherWithClient(client snsiface.SNSAPI, log logger.Logger) *SNSPublisher {
	return &SNSPublisher{client: client, logger: log}
}

func (p *SNSPublisher) Publish(ctx context.Context, topic string, msg models.Notification) (string, error) {
	body, err := msg.Payload()
	if err != nil {
		return "", apperrors.ErrPublish.WithCause(err)
	}

	out, err := p.client.PublishWithContext(ctx, &sns.PublishInput{
		TopicArn: aws.String(topic),
		Subject:  aws.String(truncateSubject(msg.Subject)),
		Message:  aws.String(body),
	})
	if err != nil {
		return "", apperrors.ErrPublish.WithCause(err)
	}

	if out == nil || out.MessageId == nil {
		p.logger.WarnwCtx(ctx, "SNS response carried no message id", "topic", topic)
		return constants.UnknownMessageID, nil
	}

	return *out.MessageId, nil
}

func (p *SNSPublisher) Close() error {
	return nil
}

// truncateSubject cuts the subject to the SNS limit on a rune boundary.
func truncateSubject(subject string) string {
	runes := []rune(subject)
	if len(runes) <= constants.SNSMaxSubjectLength {
		return subject
	}
	return string(runes[:constants.SNSMaxSubjectLength])
}
