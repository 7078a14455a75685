package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/vsinha/winexc/pkg/infrastructure/config"
	"github.com/vsinha/winexc/pkg/infrastructure/events"
	"github.com/vsinha/winexc/pkg/interfaces/cli/commands"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Command line flags
	var (
		sourceDir      = flag.String("source", "", "Directory containing Current Data.csv and Ops Plan.csv")
		outputDir      = flag.String("output", "", "Directory for the upload files")
		holiday        = flag.String("holiday", "", "Holiday name, e.g. Christmas")
		sunday         = flag.String("sunday", "", "Sunday starting the holiday week (MM/dd/yyyy)")
		referencePath  = flag.String("reference", "", "YAML file extending the reference tables")
		configPath     = flag.String("config", "", "Path to YAML config file")
		closed         = flag.String("closed", "", "Comma separated closed dates")
		strict         = flag.Bool("strict", false, "Fail on validation errors")
		format         = flag.String("format", "text", "Output format: text, json")
		verbose        = flag.Bool("verbose", false, "Enable verbose output")
		printReference = flag.Bool("print-reference", false, "Print reference tables and exit")
		help           = flag.Bool("help", false, "Show help message")
	)

	flag.Parse()

	// .env is optional
	_ = godotenv.Load()

	cfg, err := config.Load(config.FetchPath(*configPath))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	overrideString(&cfg.Run.SourceDir, *sourceDir)
	overrideString(&cfg.Run.OutputDir, *outputDir)
	overrideString(&cfg.Run.Holiday, *holiday)
	overrideString(&cfg.Run.Sunday, *sunday)
	overrideString(&cfg.Run.ReferencePath, *referencePath)
	if *closed != "" {
		cfg.Run.ClosedDates = strings.Split(*closed, ",")
	}
	cfg.Run.Strict = cfg.Run.Strict || *strict

	logLevel := cfg.Log.Level
	if *verbose {
		logLevel = "debug"
	}
	log := setupLogger(logLevel)
	defer func() {
		_ = log.Sync()
	}()

	closedDates, err := cfg.Run.ClosedDateValues()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	var handlers []events.EventHandler
	if cfg.Kafka.Enabled() {
		publisher := events.NewKafkaPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic, cfg.Kafka.Timeout)
		defer publisher.Close()
		handlers = append(handlers, publisher)
		log.Debug("publishing run notifications", zap.Strings("brokers", cfg.Kafka.Brokers), zap.String("topic", cfg.Kafka.Topic))
	}

	// Create command configuration
	cmdConfig := commands.Config{
		SourceDir:      cfg.Run.SourceDir,
		OutputDir:      cfg.Run.OutputDir,
		Holiday:        cfg.Run.Holiday,
		Sunday:         cfg.Run.Sunday,
		ReferencePath:  cfg.Run.ReferencePath,
		ClosedDates:    closedDates,
		Strict:         cfg.Run.Strict,
		Format:         *format,
		Verbose:        *verbose,
		PrintReference: *printReference,
		Help:           *help,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Create and execute command
	cmd := commands.NewGenerateCommand(cmdConfig, log, handlers...)
	if err := cmd.Execute(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if errors.Is(err, commands.ErrInputsMissing) {
			return 2
		}
		return 1
	}
	return 0
}

func overrideString(target *string, flagValue string) {
	if flagValue != "" {
		*target = flagValue
	}
}

func setupLogger(level string) *zap.Logger {
	zapLevel := parseLogLevel(level)
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.Level = zap.NewAtomicLevelAt(zapLevel)

	log, err := cfg.Build()
	if err != nil {
		panic(err)
	}

	return log
}

func parseLogLevel(level string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}
