package logging

import (
	"context"
)

type contextKey string

const (
	RequestIDKey    contextKey = "request_id"
	FunctionNameKey contextKey = "function_name"
	LogGroupKey     contextKey = "log_group"
)

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, RequestIDKey, requestID)
}

func WithFunctionName(ctx context.Context, functionName string) context.Context {
	return context.WithValue(ctx, FunctionNameKey, functionName)
}

// WithLogGroup records the CloudWatch log group whose batch is being
// processed.
func WithLogGroup(ctx context.Context, logGroup string) context.Context {
	return context.WithValue(ctx, LogGroupKey, logGroup)
}

func GetRequestID(ctx context.Context) string {
	return stringValue(ctx, RequestIDKey)
}

func GetFunctionName(ctx context.Context) string {
	return stringValue(ctx, FunctionNameKey)
}

func GetLogGroup(ctx context.Context) string {
	return stringValue(ctx, LogGroupKey)
}

func stringValue(ctx context.Context, key contextKey) string {
	if v, ok := ctx.Value(key).(string); ok {
		return v
	}
	return ""
}

// GetLogFields returns the context values as alternating key/value pairs for
// a sugared logger.
func GetLogFields(ctx context.Context) []interface{} {
	fields := make([]interface{}, 0, 6)

	if requestID := GetRequestID(ctx); requestID != "" {
		fields = append(fields, string(RequestIDKey), requestID)
	}

	if functionName := GetFunctionName(ctx); functionName != "" {
		fields = append(fields, string(FunctionNameKey), functionName)
	}

	if logGroup := GetLogGroup(ctx); logGroup != "" {
		fields = append(fields, string(LogGroupKey), logGroup)
	}

	return fields
}
