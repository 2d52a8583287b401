package awslogs

import (
	"encoding/base64"
	"errors"

	"github.com/aws/aws-lambda-go/events"

	apperrors "logalert/pkg/errors"
)

var ErrMissingData = errors.New("event has no awslogs.data payload")

// Decode extracts awslogs.data from the subscription event and base64-decodes
// it into the compressed batch.
func Decode(event events.CloudwatchLogsEvent) ([]byte, error) {
	if event.AWSLogs.Data == "" {
		return nil, apperrors.ErrDecode.WithCause(ErrMissingData)
	}

	blob, err := base64.StdEncoding.DecodeString(event.AWSLogs.Data)
	if err != nil {
		return nil, apperrors.ErrDecode.WithCause(err)
	}

	return blob, nil
}
