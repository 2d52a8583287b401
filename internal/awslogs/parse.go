package awslogs

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-lambda-go/events"

	apperrors "logalert/pkg/errors"
)

var (
	ErrMissingLogEvents = errors.New("log batch has no logEvents field")
	ErrNoJSONBody       = errors.New("log message contains no '{'")
	ErrTrailingData     = errors.New("unexpected data after JSON value")
)

// Parse decodes the inflated text as a subscription record and replaces each
// log event with the JSON value embedded in its message. A single bad entry
// fails the whole batch.
func Parse(text []byte) (Batch, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(text, &fields); err != nil {
		return Batch{}, apperrors.ErrParse.WithCause(err)
	}
	if !present(fields, "logEvents") {
		return Batch{}, apperrors.ErrParse.WithCause(ErrMissingLogEvents)
	}

	var data events.CloudwatchLogsData
	if err := json.Unmarshal(text, &data); err != nil {
		return Batch{}, apperrors.ErrParse.WithCause(err)
	}

	parsed := make([]interface{}, 0, len(data.LogEvents))
	for i, event := range data.LogEvents {
		value, err := ParseEntry(event.Message)
		if err != nil {
			var appErr *apperrors.Error
			if errors.As(err, &appErr) {
				return Batch{}, appErr.WithDetail("log_event_index", i).WithDetail("log_event_id", event.ID)
			}
			return Batch{}, err
		}
		parsed = append(parsed, value)
	}

	return Batch{
		MessageType:         data.MessageType,
		Owner:               data.Owner,
		LogGroup:            data.LogGroup,
		LogStream:           data.LogStream,
		SubscriptionFilters: data.SubscriptionFilters,
		LogEvents:           parsed,
		HasLogGroup:         present(fields, "logGroup"),
		HasLogStream:        present(fields, "logStream"),
	}, nil
}

// present reports whether key exists in the record with a non-null value.
func present(fields map[string]json.RawMessage, key string) bool {
	raw, ok := fields[key]
	return ok && string(raw) != "null"
}

// RepairEntry drops whatever the runtime prefixed to a log line (timestamp,
// request id, level) and returns the text from the first '{' onwards.
func RepairEntry(message string) (string, error) {
	idx := strings.IndexByte(message, '{')
	if idx < 0 {
		return "", apperrors.ErrFormat.WithCause(ErrNoJSONBody)
	}
	return message[idx:], nil
}

// ParseEntry repairs a log message and parses the remainder as one JSON
// value. Numbers are kept as json.Number so large ids survive re-encoding.
func ParseEntry(message string) (interface{}, error) {
	body, err := RepairEntry(message)
	if err != nil {
		return nil, err
	}

	value, err := decodeJSONValue(body)
	if err != nil {
		return nil, apperrors.ErrParse.WithCause(err)
	}
	return value, nil
}

func decodeJSONValue(s string) (interface{}, error) {
	dec := json.NewDecoder(strings.NewReader(s))
	dec.UseNumber()

	var value interface{}
	if err := dec.Decode(&value); err != nil {
		return nil, err
	}

	if tok, err := dec.Token(); err != io.EOF {
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrTrailingData, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrTrailingData, tok)
	}

	return value, nil
}
