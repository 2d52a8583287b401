package broker

import (
	"fmt"

	"logalert/internal/config"
	"logalert/internal/constants"
	"logalert/internal/logger"
)

func NewPublisher(cfg config.BrokerConfig, log logger.Logger) (Publisher, error) {
	switch cfg.Type {
	case constants.BrokerTypeSNS:
		p, err := NewSNSPublisher(cfg.SNS, log)
		if err != nil {
			return nil, fmt.Errorf("failed to create SNS publisher: %w", err)
		}
		return p, nil
	case constants.BrokerTypeKafka:
		return NewKafkaPublisher(cfg.Kafka, log), nil
	case constants.BrokerTypeLog:
		return NewLogPublisher(log), nil
	default:
		return nil, fmt.Errorf("unknown broker type: %s", cfg.Type)
	}
}
