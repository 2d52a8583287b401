package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Notification is the alert sent to the fan-out topic for one log batch.
type Notification struct {
	Subject string
	Body    NotificationBody
}

type NotificationBody struct {
	LambdaName string        `json:"lambdaName"`
	LogGroup   string        `json:"logGroup"`
	LogStream  string        `json:"logStream"`
	Messages   []interface{} `json:"messages"`
}

// Payload serializes the body as the JSON message string that goes on the
// wire. HTML characters are left unescaped so stack traces stay readable.
func (n Notification) Payload() (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(n.Body); err != nil {
		return "", fmt.Errorf("failed to marshal notification body: %w", err)
	}
	return string(bytes.TrimRight(buf.Bytes(), "\n")), nil
}

type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error for field '%s': %s", e.Field, e.Message)
}

func ValidateNotification(n *Notification) error {
	if n == nil {
		return &ValidationError{
			Field:   "notification",
			Message: "notification cannot be nil",
		}
	}

	if n.Subject == "" {
		return &ValidationError{
			Field:   "subject",
			Message: "subject is required",
		}
	}

	return nil
}
