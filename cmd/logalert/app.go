package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"

	"logalert/internal/config"
	"logalert/internal/environment"
	"logalert/internal/logger"
	"logalert/internal/pipeline"
	"logalert/pkg/bootstrap"
)

type App struct {
	*bootstrap.Base
	handler *pipeline.Handler
}

func NewApp(cfg *config.Config, log logger.Logger) *App {
	return &App{
		Base: bootstrap.NewBase(cfg, log),
	}
}

// Initialize builds the publisher and handler once per process; warm Lambda
// containers reuse them across invocations.
func (a *App) Initialize() error {
	if err := a.InitPublisher(); err != nil {
		return fmt.Errorf("failed to initialize publisher: %w", err)
	}

	resolver := environment.NewResolver(a.Config.Topics)
	p := pipeline.New(resolver, a.Publisher, a.Logger)
	a.handler = pipeline.NewHandler(p, a.Logger)
	return nil
}

// Run hands control to the Lambda runtime and does not return.
func (a *App) Run() {
	lambda.Start(a.handler.Handle)
}

func (a *App) Invoke(ctx context.Context, eventFile string) (string, error) {
	raw, err := os.ReadFile(eventFile)
	if err != nil {
		return "", fmt.Errorf("failed to read event file %s: %w", eventFile, err)
	}

	var event events.CloudwatchLogsEvent
	if err := json.Unmarshal(raw, &event); err != nil {
		return "", fmt.Errorf("failed to decode event file %s: %w", eventFile, err)
	}

	return a.handler.Handle(ctx, event)
}

func (a *App) Shutdown(ctx context.Context) error {
	return a.Base.Shutdown(ctx, nil)
}
