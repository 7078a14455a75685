package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/vsinha/winexc/pkg/application/services/orchestration"
	"github.com/vsinha/winexc/pkg/domain/entities"
	"github.com/vsinha/winexc/pkg/domain/services"
	"github.com/vsinha/winexc/pkg/infrastructure/events"
	"github.com/vsinha/winexc/pkg/infrastructure/ids"
	refdata "github.com/vsinha/winexc/pkg/infrastructure/reference"
	"github.com/vsinha/winexc/pkg/infrastructure/repositories/csv"
	"github.com/vsinha/winexc/pkg/infrastructure/repositories/memory"
	"github.com/vsinha/winexc/pkg/interfaces/cli/output"
)

// ErrInputsMissing is returned when the source directory lacks an input file
var ErrInputsMissing = errors.New("input files missing")

// Config holds configuration for the generate command
type Config struct {
	SourceDir      string
	OutputDir      string
	Holiday        string
	Sunday         string
	ReferencePath  string
	ClosedDates    []time.Time
	Strict         bool
	Format         string
	Verbose        bool
	PrintReference bool
	Help           bool
	Out            io.Writer
}

// GenerateCommand turns a baseline export and an ops plan into the upload
// files for one holiday week
type GenerateCommand struct {
	config   Config
	log      *zap.Logger
	handlers []events.EventHandler
}

// NewGenerateCommand creates a new generate command. Handlers receive the
// run-completed event after the files are written.
func NewGenerateCommand(config Config, log *zap.Logger, handlers ...events.EventHandler) *GenerateCommand {
	if config.Out == nil {
		config.Out = os.Stdout
	}
	return &GenerateCommand{
		config:   config,
		log:      log,
		handlers: handlers,
	}
}

// Execute runs the generate command
func (c *GenerateCommand) Execute(ctx context.Context) error {
	if c.config.Help {
		c.showHelp()
		return nil
	}

	ref, err := refdata.Load(c.config.ReferencePath)
	if err != nil {
		return errors.Wrap(err, "failed to load reference data")
	}

	if c.config.PrintReference {
		return output.PrintReference(c.config.Out, ref)
	}

	if err := c.validateInputs(); err != nil {
		return errors.Wrap(err, "validation error")
	}

	week, err := entities.ParseHolidayWeek(c.config.Holiday, c.config.Sunday)
	if err != nil {
		return err
	}

	files, err := c.resolveInputFiles()
	if err != nil {
		return err
	}

	if c.config.Verbose {
		c.printHeader(files, week)
	}

	// Load data from CSV files
	loader := csv.NewLoader(ref)

	records, err := loader.LoadCurrentData(files[csv.CurrentDataFile])
	if err != nil {
		return errors.Wrap(err, "error loading current data")
	}

	entries, err := loader.LoadExceptionPlan(files[csv.OpsPlanFile])
	if err != nil {
		return errors.Wrap(err, "error loading ops plan")
	}

	c.log.Info("inputs loaded",
		zap.Int("baseline_records", len(records)),
		zap.Int("plan_entries", len(entries)),
	)

	// Create repositories
	baseline := memory.NewBaselineRepository(services.NewZoneNamer(ref), len(records))
	if err := baseline.LoadRecords(records); err != nil {
		return errors.Wrap(err, "failed to load baseline into repository")
	}

	plan := memory.NewExceptionPlanRepository()
	if err := plan.LoadEntries(entries); err != nil {
		return errors.Wrap(err, "failed to load ops plan into repository")
	}

	store := events.NewInMemoryEventStore()
	if err := store.Subscribe(events.AllEventTypes, events.NewLogHandler(c.log)); err != nil {
		return err
	}
	for _, handler := range c.handlers {
		if err := store.Subscribe([]string{events.RunCompletedEvent}, handler); err != nil {
			return err
		}
	}

	orchestrator := orchestration.NewGenerationOrchestrator(baseline, plan, ref, ids.UUID{}, store, c.log)

	result, err := orchestrator.Generate(ctx, orchestration.Request{
		Week:        week,
		ClosedDates: c.config.ClosedDates,
		Strict:      c.config.Strict,
	})
	if err != nil {
		if result != nil {
			// show what failed validation before giving up
			_ = output.Generate(result, c.outputConfig(nil))
		}
		return errors.Wrap(err, "error generating window exceptions")
	}

	writer := csv.NewWriter(c.log)
	paths, err := writer.Write(ctx, c.config.OutputDir, result)
	if err != nil {
		return errors.Wrap(err, "error writing upload files")
	}

	orchestrator.Complete(ctx, result, paths)

	if err := output.Generate(result, c.outputConfig(paths)); err != nil {
		return errors.Wrap(err, "error generating output")
	}

	return nil
}

func (c *GenerateCommand) outputConfig(files []string) output.Config {
	return output.Config{
		Format:  c.config.Format,
		Verbose: c.config.Verbose,
		Files:   files,
		Out:     c.config.Out,
	}
}

// validateInputs validates the command configuration
func (c *GenerateCommand) validateInputs() error {
	if c.config.Holiday == "" {
		return errors.New("must specify -holiday")
	}
	if c.config.Sunday == "" {
		return errors.New("must specify -sunday (MM/dd/yyyy)")
	}
	return nil
}

// resolveInputFiles determines the actual file paths to use
func (c *GenerateCommand) resolveInputFiles() (map[string]string, error) {
	files := map[string]string{
		csv.CurrentDataFile: filepath.Join(c.config.SourceDir, csv.CurrentDataFile),
		csv.OpsPlanFile:     filepath.Join(c.config.SourceDir, csv.OpsPlanFile),
	}

	var missing []string
	for _, name := range []string{csv.OpsPlanFile, csv.CurrentDataFile} {
		if _, err := os.Stat(files[name]); os.IsNotExist(err) {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, errors.Wrapf(ErrInputsMissing, "need both %q and %q in %s, missing %v",
			csv.OpsPlanFile, csv.CurrentDataFile, c.config.SourceDir, missing)
	}

	return files, nil
}

// printHeader prints the command header information
func (c *GenerateCommand) printHeader(files map[string]string, week entities.HolidayWeek) {
	fmt.Fprintf(c.config.Out, "Window Exceptions Generator\n")
	fmt.Fprintf(c.config.Out, "Holiday: %s, week of %s\n", week.Holiday, week.Sunday.Format(entities.SundayDateLayout))
	fmt.Fprintf(c.config.Out, "Input files:\n")
	fmt.Fprintf(c.config.Out, "  Current Data: %s\n", files[csv.CurrentDataFile])
	fmt.Fprintf(c.config.Out, "  Ops Plan: %s\n", files[csv.OpsPlanFile])
	fmt.Fprintf(c.config.Out, "Output directory: %s\n", c.config.OutputDir)
	if c.config.Strict {
		fmt.Fprintf(c.config.Out, "Strict validation: on\n")
	}
	fmt.Fprintln(c.config.Out)
}

// showHelp displays the help message
func (c *GenerateCommand) showHelp() {
	fmt.Fprintf(c.config.Out, `Window Exceptions Generator - holiday delivery window overrides

USAGE:
    winexc -source <dir> -output <dir> -holiday <name> -sunday <MM/dd/yyyy>

OPTIONS:
    -source <dir>       Directory containing "Current Data.csv" and "Ops Plan.csv" (default: .)
    -output <dir>       Directory the upload files are written to (default: .)
    -holiday <name>     Holiday name, used in messageToUser (e.g. Christmas)
    -sunday <date>      Sunday that starts the holiday week, MM/dd/yyyy
    -reference <file>   YAML file extending the market, city and day tables
    -config <file>      YAML config file (default: $CONFIG_PATH)
    -closed <dates>     Comma separated dates nothing may be delivered on
    -strict             Fail without writing files when validation finds errors
    -format <fmt>       Summary format: text, json (default: text)
    -verbose            Enable verbose output
    -print-reference    Print the market and day tables as JSON and exit
    -help               Show this help message

INPUT FILES:
    Current Data.csv    Zone and window export from the ops system
    Ops Plan.csv        old_window_id,FC Name,Zone Code,City Name,Original Delivery Day,
                        Exception Delivery Day,Original Delivery Date,Exception Delivery Date,
                        Is Employee Zone

OUTPUT FILES:
    CSV Upload - Zones - Line Haul.csv
    CSV Upload - Zones - Local.csv
    CSV Upload - Windows.csv
    Zone to Day Mapping.csv

EXAMPLES:
    # Christmas 2023
    winexc -source ./inputs -output ./uploads -holiday Christmas -sunday 12/24/2023

    # Refuse to write anything if a window delivers on a closed day
    winexc -source ./inputs -holiday "New Years" -sunday 12/31/2023 -closed 01/01/2024 -strict
`)
}
