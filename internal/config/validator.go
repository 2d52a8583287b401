package config

import (
	"fmt"
	"strings"

	"logalert/internal/constants"
)

type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error for field '%s': %s", e.Field, e.Message)
}

func ValidateStatic(cfg *Config) error {
	var errors []error

	if err := validateTopics(cfg.Topics); err != nil {
		errors = append(errors, err)
	}

	if err := validateBroker(cfg.Broker); err != nil {
		errors = append(errors, err)
	}

	if err := validateLogging(cfg.Logging); err != nil {
		errors = append(errors, err)
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed: %v", errors)
	}

	return nil
}

func validateTopics(cfg TopicsConfig) error {
	topics := []struct {
		field string
		value string
	}{
		{"topics.qa", cfg.QA},
		{"topics.stage", cfg.Stage},
		{"topics.prod", cfg.Prod},
	}

	seen := make(map[string]string, len(topics))
	for _, t := range topics {
		if strings.TrimSpace(t.value) == "" {
			return &ValidationError{
				Field:   t.field,
				Message: "topic is required",
			}
		}
		if other, ok := seen[t.value]; ok {
			return &ValidationError{
				Field:   t.field,
				Message: fmt.Sprintf("topic %s is already used by %s", t.value, other),
			}
		}
		seen[t.value] = t.field
	}

	return nil
}

func validateBroker(cfg BrokerConfig) error {
	switch cfg.Type {
	case constants.BrokerTypeSNS:
		return validateSNS(cfg.SNS)
	case constants.BrokerTypeKafka:
		return validateKafka(cfg.Kafka)
	case constants.BrokerTypeLog:
		return nil
	case "":
		return &ValidationError{
			Field:   "broker.type",
			Message: "broker type is required",
		}
	default:
		return &ValidationError{
			Field:   "broker.type",
			Message: fmt.Sprintf("unknown broker type: %s (supported: sns, kafka, log)", cfg.Type),
		}
	}
}

func validateSNS(cfg SNSConfig) error {
	if cfg.Region == "" {
		return &ValidationError{
			Field:   "broker.sns.region",
			Message: "AWS region is required",
		}
	}

	if cfg.Endpoint != "" && !strings.HasPrefix(cfg.Endpoint, "http://") && !strings.HasPrefix(cfg.Endpoint, "https://") {
		return &ValidationError{
			Field:   "broker.sns.endpoint",
			Message: "endpoint must start with http:// or https://",
		}
	}

	return nil
}

func validateKafka(cfg KafkaConfig) error {
	if len(cfg.Brokers) == 0 {
		return &ValidationError{
			Field:   "broker.kafka.brokers",
			Message: "at least one Kafka broker is required",
		}
	}

	for i, broker := range cfg.Brokers {
		if broker == "" {
			return &ValidationError{
				Field:   fmt.Sprintf("broker.kafka.brokers[%d]", i),
				Message: "broker address cannot be empty",
			}
		}
	}

	return nil
}

func validateLogging(cfg LoggingConfig) error {
	switch cfg.Level {
	case "", "debug", "info", "warn", "error":
		return nil
	default:
		return &ValidationError{
			Field:   "logging.level",
			Message: fmt.Sprintf("invalid log level: %s (valid: debug, info, warn, error)", cfg.Level),
		}
	}
}
