package pipeline

import (
	"context"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/google/uuid"

	"logalert/internal/logger"
	apperrors "logalert/pkg/errors"
	"logalert/pkg/logging"
)

// Handler adapts the pipeline to the Lambda handler contract: a value on
// success, an error otherwise. The runtime marks the invocation failed on a
// non-nil error.
type Handler struct {
	pipeline *Pipeline
	logger   logger.Logger
}

func NewHandler(p *Pipeline, log logger.Logger) *Handler {
	return &Handler{pipeline: p, logger: log}
}

func (h *Handler) Handle(ctx context.Context, event events.CloudwatchLogsEvent) (result string, err error) {
	ctx = invocationContext(ctx)

	defer func() {
		if r := recover(); r != nil {
			err = apperrors.RecoverPanic(r)
			result = ""
			h.logger.ErrorwCtx(ctx, "Panic recovered during invocation", "error", err)
		}
	}()

	return h.pipeline.Run(ctx, event)
}

func invocationContext(ctx context.Context) context.Context {
	requestID := ""
	if lc, ok := lambdacontext.FromContext(ctx); ok {
		requestID = lc.AwsRequestID
	}
	if requestID == "" {
		requestID = uuid.NewString()
	}
	ctx = logging.WithRequestID(ctx, requestID)

	if lambdacontext.FunctionName != "" {
		ctx = logging.WithFunctionName(ctx, lambdacontext.FunctionName)
	}
	return ctx
}
