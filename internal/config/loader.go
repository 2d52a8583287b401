package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"logalert/internal/constants"
)

// LoadConfig reads the optional YAML file, applies environment overrides and
// validates the result. An empty configFile means defaults plus environment
// only, which is how the function runs inside Lambda.
func LoadConfig(configFile string) (*Config, error) {
	viper.Reset()

	viper.SetConfigType("yaml")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	setDefaults()
	bindEnvVariables()

	if configFile != "" {
		viper.SetConfigFile(configFile)
		if err := viper.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configFile, err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	applyEnvOverrides(&cfg)

	if err := ValidateStatic(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

func setDefaults() {
	viper.SetDefault("topics.qa", constants.DefaultQATopic)
	viper.SetDefault("topics.stage", constants.DefaultStageTopic)
	viper.SetDefault("topics.prod", constants.DefaultProdTopic)

	viper.SetDefault("broker.type", constants.BrokerTypeSNS)
	viper.SetDefault("broker.sns.region", constants.DefaultRegion)
	viper.SetDefault("broker.sns.endpoint", "")
	viper.SetDefault("broker.kafka.brokers", []string{})

	viper.SetDefault("logging.level", constants.DefaultLogLevel)
}

func bindEnvVariables() {
	viper.BindEnv("topics.qa", "TOPICS_QA")
	viper.BindEnv("topics.stage", "TOPICS_STAGE")
	viper.BindEnv("topics.prod", "TOPICS_PROD")

	viper.BindEnv("broker.type", "BROKER_TYPE")
	viper.BindEnv("broker.sns.region", "BROKER_SNS_REGION", "AWS_REGION")
	viper.BindEnv("broker.sns.endpoint", "BROKER_SNS_ENDPOINT")

	viper.BindEnv("logging.level", "LOGGING_LEVEL")
}

func applyEnvOverrides(cfg *Config) {
	if brokersEnv := viper.GetString("BROKER_KAFKA_BROKERS"); brokersEnv != "" {
		brokers := strings.Split(brokersEnv, ",")
		for i := range brokers {
			brokers[i] = strings.TrimSpace(brokers[i])
		}
		if len(brokers) > 0 && brokers[0] != "" {
			cfg.Broker.Kafka.Brokers = brokers
		}
	}
}
