package notification

import (
	"strings"

	"logalert/internal/awslogs"
	"logalert/internal/constants"
	apperrors "logalert/pkg/errors"
	"logalert/pkg/models"
)

// Format turns a parsed batch into the alert subject and body. The batch must
// have carried logGroup and logStream keys; empty values are fine.
func Format(batch awslogs.Batch) (models.Notification, error) {
	if !batch.HasLogGroup {
		return models.Notification{}, apperrors.ErrNotification.WithCause(&models.ValidationError{
			Field:   "logGroup",
			Message: "log batch has no logGroup",
		})
	}
	if !batch.HasLogStream {
		return models.Notification{}, apperrors.ErrNotification.WithCause(&models.ValidationError{
			Field:   "logStream",
			Message: "log batch has no logStream",
		})
	}

	name := LambdaName(batch.LogGroup)

	n := models.Notification{
		Subject: constants.SubjectPrefix + name,
		Body: models.NotificationBody{
			LambdaName: name,
			LogGroup:   batch.LogGroup,
			LogStream:  batch.LogStream,
			Messages:   batch.LogEvents,
		},
	}

	if err := models.ValidateNotification(&n); err != nil {
		return models.Notification{}, apperrors.ErrNotification.WithCause(err)
	}

	return n, nil
}

// LambdaName returns the function name segment of a "/aws/lambda/<name>" log
// group, or the unknown-name sentinel when the group is too short.
func LambdaName(logGroup string) string {
	segments := strings.Split(logGroup, "/")
	if len(segments) <= constants.LambdaNameSegment {
		return constants.UnknownLambdaName
	}
	return segments[constants.LambdaNameSegment]
}
