package constants

import "time"

const (
	ServiceName = "logalert"
)

const (
	EnvVarEnvironment = "PY_ENV"
	EnvVarConfigFile  = "CONFIG_FILE"
)

const (
	EnvironmentQA    = "qa"
	EnvironmentStage = "stage"
	EnvironmentProd  = "prod"
)

const (
	DefaultQATopic    = "arn:aws:sns:us-east-1:123123123123:app-dev-alerts-alarm"
	DefaultStageTopic = "arn:aws:sns:us-east-1:123123123123:app-stage-alerts-alarm"
	DefaultProdTopic  = "arn:aws:sns:us-east-1:123123123123:app-prod-alerts-alarm"
)

const (
	UnknownLambdaName = "Unknown Lambda name."
	UnknownMessageID  = "unknown message ID"
	SubjectPrefix     = "Lambda Error for "

	// LambdaNameSegment is the index of the function name in a log group
	// such as "/aws/lambda/<name>".
	LambdaNameSegment = 3
)

const (
	BrokerTypeSNS   = "sns"
	BrokerTypeKafka = "kafka"
	BrokerTypeLog   = "log"
)

const (
	DefaultRegion       = "us-east-1"
	SNSMaxSubjectLength = 100
)

const (
	KafkaBatchTimeout  = 10 * time.Millisecond
	KafkaWriteTimeout  = 10 * time.Second
	KafkaSubjectHeader = "subject"
)

const (
	DefaultLogLevel = "info"
)
