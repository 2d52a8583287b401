package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"logalert/internal/config"
	"logalert/internal/constants"
	"logalert/internal/logger"
	"logalert/pkg/logging"
)

var (
	configFile string
	eventFile  string
	dryRun     bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "logalert",
		Short: "Forward Lambda error logs to an alerting topic",
		Long: "logalert receives CloudWatch Logs subscription events, extracts the JSON error " +
			"entries and publishes one notification per batch to the topic for PY_ENV",
		RunE: lambdaCmd().RunE,
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Path to config file (optional)")

	rootCmd.AddCommand(lambdaCmd())
	rootCmd.AddCommand(invokeCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func lambdaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lambda",
		Short: "Serve invocations from the AWS Lambda runtime",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, log, err := setup(false)
			if err != nil {
				return err
			}
			defer log.Sync()

			log.Infow("Starting Lambda handler", "broker", app.Config.Broker.Type)
			app.Run()
			return nil
		},
	}
}

func invokeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "invoke",
		Short: "Run the pipeline once against a subscription event stored in a file",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, log, err := setup(dryRun)
			if err != nil {
				return err
			}
			defer log.Sync()

			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer cancel()
			defer app.Shutdown(ctx)

			id, err := app.Invoke(ctx, eventFile)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), id)
			return nil
		},
	}

	cmd.Flags().StringVar(&eventFile, "event", "", "Path to a CloudWatch Logs subscription event (JSON)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Log the notification instead of publishing it")
	_ = cmd.MarkFlagRequired("event")

	return cmd
}

func setup(dryRun bool) (*App, logger.Logger, error) {
	earlyLog := logging.NewEarlyLog()

	if configFile == "" {
		configFile = os.Getenv(constants.EnvVarConfigFile)
	}

	cfg, err := config.Load(configFile)
	if err != nil {
		earlyLog.Error("Failed to load config: %v", err)
		return nil, nil, err
	}

	if dryRun {
		cfg.Broker.Type = constants.BrokerTypeLog
	}

	log, err := logger.New(cfg.Logging.Level, constants.ServiceName)
	if err != nil {
		earlyLog.Error("Failed to init logger: %v", err)
		return nil, nil, err
	}

	app := NewApp(cfg, log)
	if err := app.Initialize(); err != nil {
		log.Errorw("Failed to initialize application", "error", err)
		return nil, nil, err
	}

	return app, log, nil
}
