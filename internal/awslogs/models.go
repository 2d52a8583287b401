package awslogs

// Batch is a CloudWatch Logs subscription record whose log events have been
// repaired and parsed into JSON values. Everything except LogEvents is carried
// over from the delivered record unchanged. HasLogGroup and HasLogStream
// report whether the record carried those keys at all, since an empty group
// or stream is still a valid record.
type Batch struct {
	MessageType         string        `json:"messageType"`
	Owner               string        `json:"owner"`
	LogGroup            string        `json:"logGroup"`
	LogStream           string        `json:"logStream"`
	SubscriptionFilters []string      `json:"subscriptionFilters"`
	LogEvents           []interface{} `json:"logEvents"`

	HasLogGroup  bool `json:"-"`
	HasLogStream bool `json:"-"`
}
