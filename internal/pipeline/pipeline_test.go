package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-lambda-go/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"logalert/internal/awslogs"
	"logalert/internal/logger"
	"logalert/pkg/models"
)

type fakePublisher struct {
	calls  int
	topics []string
	msgs   []models.Notification
	id     string
	err    error
}

func (p *fakePublisher) Publish(_ context.Context, topic string, msg models.Notification) (string, error) {
	p.calls++
	p.topics = append(p.topics, topic)
	p.msgs = append(p.msgs, msg)
	if p.err != nil {
		return "", p.err
	}
	return p.id, nil
}

func (p *fakePublisher) Close() error { return nil }

type fakeResolver struct {
	calls int
	topic string
	err   error
}

func (r *fakeResolver) Resolve() (string, error) {
	r.calls++
	return r.topic, r.err
}

// countingStages records how often each stage ran and fails the stage named
// in failAt with failErr.
type countingStages struct {
	counts  map[string]int
	failAt  string
	failErr error
}

func (c *countingStages) stages() Stages {
	c.counts = map[string]int{}
	return Stages{
		Decode: func(events.CloudwatchLogsEvent) ([]byte, error) {
			c.counts["decode"]++
			if c.failAt == "decode" {
				return nil, c.failErr
			}
			return []byte("blob"), nil
		},
		Inflate: func([]byte) ([]byte, error) {
			c.counts["inflate"]++
			if c.failAt == "inflate" {
				return nil, c.failErr
			}
			return []byte("text"), nil
		},
		Parse: func([]byte) (awslogs.Batch, error) {
			c.counts["parse"]++
			if c.failAt == "parse" {
				return awslogs.Batch{}, c.failErr
			}
			return awslogs.Batch{LogGroup: "/aws/lambda/fn", LogStream: "s"}, nil
		},
		Format: func(awslogs.Batch) (models.Notification, error) {
			c.counts["format"]++
			if c.failAt == "format" {
				return models.Notification{}, c.failErr
			}
			return models.Notification{Subject: "Lambda Error for fn"}, nil
		},
	}
}

func TestRunShortCircuits(t *testing.T) {
	order := []string{"decode", "inflate", "parse", "format", "resolve", "publish"}

	for k, failing := range order {
		t.Run(failing, func(t *testing.T) {
			stageErr := errors.New(failing + " failed")
			cs := &countingStages{failAt: failing, failErr: stageErr}
			resolver := &fakeResolver{topic: "topic"}
			publisher := &fakePublisher{id: "id"}
			if failing == "resolve" {
				resolver.err = stageErr
			}
			if failing == "publish" {
				publisher.err = stageErr
			}

			p := NewWithStages(cs.stages(), resolver, publisher, logger.NopLogger())
			id, err := p.Run(context.Background(), events.CloudwatchLogsEvent{})

			require.Error(t, err)
			assert.Same(t, stageErr, err)
			assert.Empty(t, id)

			calls := map[string]int{
				"decode":  cs.counts["decode"],
				"inflate": cs.counts["inflate"],
				"parse":   cs.counts["parse"],
				"format":  cs.counts["format"],
				"resolve": resolver.calls,
				"publish": publisher.calls,
			}
			for i, stage := range order {
				if i <= k {
					assert.Equal(t, 1, calls[stage], "stage %s should run once", stage)
				} else {
					assert.Equal(t, 0, calls[stage], "stage %s should not run", stage)
				}
			}
		})
	}
}

func TestRunSuccess(t *testing.T) {
	cs := &countingStages{}
	resolver := &fakeResolver{topic: "topic"}
	publisher := &fakePublisher{id: "msg-1"}

	p := NewWithStages(cs.stages(), resolver, publisher, logger.NopLogger())
	id, err := p.Run(context.Background(), events.CloudwatchLogsEvent{})

	require.NoError(t, err)
	assert.Equal(t, "msg-1", id)
	assert.Equal(t, []string{"topic"}, publisher.topics)
	assert.Equal(t, "Lambda Error for fn", publisher.msgs[0].Subject)
}
