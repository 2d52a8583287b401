package config

type Config struct {
	Topics  TopicsConfig  `mapstructure:"topics"`
	Broker  BrokerConfig  `mapstructure:"broker"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// TopicsConfig holds the destination topic for each deployment environment.
type TopicsConfig struct {
	QA    string `mapstructure:"qa"`
	Stage string `mapstructure:"stage"`
	Prod  string `mapstructure:"prod"`
}

type BrokerConfig struct {
	Type  string      `mapstructure:"type"`
	SNS   SNSConfig   `mapstructure:"sns"`
	Kafka KafkaConfig `mapstructure:"kafka"`
}

type SNSConfig struct {
	Region   string `mapstructure:"region"`
	Endpoint string `mapstructure:"endpoint"` // optional, e.g. a LocalStack URL
}

type KafkaConfig struct {
	Brokers []string `mapstructure:"brokers"`
}

type LoggingConfig struct {
	Level string `mapstructure:"level"`
}

func Load(configFile string) (*Config, error) {
	return LoadConfig(configFile)
}
