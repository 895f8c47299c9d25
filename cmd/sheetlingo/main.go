package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/oklog/run"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"sheetlingo/internal/cli"
	"sheetlingo/internal/models"
	"sheetlingo/internal/processor"
)

func main() {
	// Create flags instance
	flags := cli.NewFlags()

	// Create root command
	rootCmd := cli.CreateRootCommand(flags)

	// Set up command initialization
	cobra.OnInitialize(func() {
		cli.InitConfig(flags.CfgFile)
	})

	// Set the run function
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runCommand(cmd, args, flags)
	}

	rootCmd.AddCommand(cli.CreateSnapshotsCommand(flags))
	rootCmd.AddCommand(cli.CreatePresetsCommand(flags))

	// Execute command
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

func runCommand(cmd *cobra.Command, args []string, flags *cli.Flags) error {
	// Handle --list-models flag
	if flags.ListModels {
		lister := models.NewLister(cli.GetOpenAIKey())
		return lister.ListAvailableModels()
	}

	logger, closeLog, err := newLogger(flags)
	if err != nil {
		return err
	}
	defer closeLog()

	pipeline := processor.NewPipeline(flags, logger)

	var g run.Group

	// OS signals.
	{
		signalCtx, signalCancel := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
		defer signalCancel()

		g.Add(
			func() error {
				<-signalCtx.Done()
				logger.Debug("Termination signal received")
				return nil
			},
			func(_ error) {
				signalCancel()
			},
		)
	}

	// Translation run.
	{
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		g.Add(
			func() error {
				return pipeline.Run(ctx)
			},
			func(_ error) {
				cancel()
			},
		)
	}

	return g.Run()
}

// newLogger builds the run logger from the logging flags. Log output goes
// to stderr so it stays separate from the summary prints on stdout. The
// returned close function releases the log file when one is in use.
func newLogger(flags *cli.Flags) (*logrus.Logger, func(), error) {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	if flags.Debug {
		logger.SetLevel(logrus.DebugLevel)
	}
	if flags.LogJSON {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	closeLog := func() {}
	if flags.LogFile != "" {
		f, err := os.OpenFile(flags.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		logger.SetOutput(io.MultiWriter(os.Stderr, f))
		closeLog = func() { f.Close() }
	}
	return logger, closeLog, nil
}
