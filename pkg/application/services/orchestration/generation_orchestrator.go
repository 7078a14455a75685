package orchestration

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/vsinha/winexc/pkg/application/dto"
	"github.com/vsinha/winexc/pkg/application/services/generation"
	"github.com/vsinha/winexc/pkg/domain/entities"
	"github.com/vsinha/winexc/pkg/domain/reference"
	"github.com/vsinha/winexc/pkg/domain/repositories"
	"github.com/vsinha/winexc/pkg/domain/services"
	"github.com/vsinha/winexc/pkg/infrastructure/events"
)

// GenerationOrchestrator coordinates the resolver, both generators and the
// validators for one holiday week
type GenerationOrchestrator struct {
	baseline repositories.BaselineRepository
	plan     repositories.ExceptionPlanRepository
	ref      *reference.Data
	namer    *services.ZoneNamer
	ids      generation.IDGenerator
	store    events.EventStore
	log      *zap.Logger
}

// NewGenerationOrchestrator creates a new generation orchestrator
func NewGenerationOrchestrator(
	baseline repositories.BaselineRepository,
	plan repositories.ExceptionPlanRepository,
	ref *reference.Data,
	ids generation.IDGenerator,
	store events.EventStore,
	log *zap.Logger,
) *GenerationOrchestrator {
	return &GenerationOrchestrator{
		baseline: baseline,
		plan:     plan,
		ref:      ref,
		namer:    services.NewZoneNamer(ref),
		ids:      ids,
		store:    store,
		log:      log,
	}
}

// Request describes one generation run
type Request struct {
	Week        entities.HolidayWeek
	ClosedDates []time.Time
	Strict      bool
}

// Generate resolves double deliveries, synthesizes merged zones and override
// windows and validates them. In strict mode a validation error fails the
// run with ErrValidationFailed; the result is still returned so the caller
// can report what was wrong.
func (o *GenerationOrchestrator) Generate(ctx context.Context, req Request) (*dto.GenerationResult, error) {
	const op = "orchestration.GenerationOrchestrator.Generate"
	log := o.log.With(zap.String("op", op), zap.String("holiday", req.Week.Holiday))

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	startTime := time.Now()
	stream := req.Week.Message()

	records, err := o.baseline.GetAllRecords()
	if err != nil {
		return nil, errors.Wrap(err, "failed to read baseline")
	}
	entries, err := o.plan.GetEntries()
	if err != nil {
		return nil, errors.Wrap(err, "failed to read exception plan")
	}

	o.emit(ctx, stream, events.RunStartedEvent, events.RunStarted{
		Holiday:         req.Week.Holiday,
		Sunday:          req.Week.Sunday.Format(entities.SundayDateLayout),
		BaselineRecords: len(records),
		PlanEntries:     len(entries),
	})

	// Step 1: summarize the plan
	planReport := services.ValidatePlan(entries, o.ref)
	for _, warning := range planReport.Warnings {
		log.Warn("plan", zap.String("warning", warning))
	}

	// Step 2: find the zones that land on a day their market already serves
	resolver := services.NewDoubleDeliveryResolver(o.baseline, o.ref, o.log)
	pairs, err := resolver.Resolve(entries)
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve double deliveries")
	}
	for _, pair := range pairs {
		o.emit(ctx, stream, events.DoubleDeliveryResolvedEvent, events.DoubleDeliveryResolved{
			Market:            string(pair.Entry.MarketCode),
			MovedZone:         pair.Moved.Zone.Name,
			MovedWindowID:     string(pair.Moved.Window.ID),
			ReferenceZone:     pair.Reference.Zone.Name,
			ReferenceWindowID: string(pair.Reference.Window.ID),
		})
	}

	// Step 3: one merged zone per pair
	merged, err := generation.NewZoneGenerator(o.namer, o.ids).Generate(pairs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate zones")
	}
	for _, m := range merged {
		o.emit(ctx, stream, events.ZoneMergedEvent, events.ZoneMerged{
			ZoneID:     string(m.Zone.ID),
			Name:       m.Zone.Name,
			MarketCode: string(m.Zone.MarketCode),
			IsLineHaul: m.Zone.IsLineHaul,
		})
	}
	lineHaul, local := generation.SplitByLineHaul(merged)

	// Step 4: override windows
	windowGenerator := generation.NewWindowGenerator(o.baseline, resolver, o.ids, req.Week)
	windows, err := windowGenerator.Generate(entries, merged)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate windows")
	}

	result := &dto.GenerationResult{
		Week:          req.Week,
		Message:       req.Week.Message(),
		Pairs:         pairs,
		MergedZones:   merged,
		LineHaulZones: lineHaul,
		LocalZones:    local,
		Windows:       windows,
		DayMappings:   generation.BuildDayMappings(req.Week, windows),
		Plan:          planReport,
	}
	o.emit(ctx, stream, events.WindowsGeneratedEvent, events.WindowsGenerated{
		SimpleMoves:           result.CountWindows(entities.SimpleMove),
		DoubleDeliveryMoved:   result.CountWindows(entities.DoubleDeliveryMoved),
		DoubleDeliveryUnmoved: result.CountWindows(entities.DoubleDeliveryUnmoved),
	})

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Step 5: validate the generated timelines
	validation := services.NewWindowValidator(req.Week, req.ClosedDates).Validate(windows)
	result.Validation = validation
	result.GenerationTime = time.Since(startTime)

	o.emit(ctx, stream, events.ValidationCompletedEvent, events.ValidationCompleted{
		Checked:  validation.Checked,
		Errors:   len(validation.Errors),
		Warnings: len(validation.Warnings),
	})
	for _, warning := range validation.Warnings {
		log.Warn("validation", zap.String("warning", warning))
	}
	for _, problem := range validation.Errors {
		log.Error("validation", zap.String("error", problem))
	}

	log.Info("generation finished",
		zap.Int("pairs", len(pairs)),
		zap.Int("windows", len(windows)),
		zap.Duration("elapsed", result.GenerationTime),
	)

	if req.Strict && !validation.IsValid() {
		return result, errors.Wrapf(entities.ErrValidationFailed, "%d problems, first: %s",
			len(validation.Errors), validation.Errors[0])
	}
	return result, nil
}

// Complete announces a finished run after its files were written
func (o *GenerationOrchestrator) Complete(ctx context.Context, result *dto.GenerationResult, files []string) {
	warnings := 0
	if result.Validation != nil {
		warnings = len(result.Validation.Warnings)
	}
	o.emit(ctx, result.Message, events.RunCompletedEvent, events.RunCompleted{
		Message:       result.Message,
		Holiday:       result.Week.Holiday,
		Sunday:        result.Week.Sunday.Format(entities.SundayDateLayout),
		LineHaulZones: len(result.LineHaulZones),
		LocalZones:    len(result.LocalZones),
		Windows:       len(result.Windows),
		Files:         files,
		Warnings:      warnings,
	})
}

// emit appends an event; subscriber failures are logged and do not stop
// the run
func (o *GenerationOrchestrator) emit(ctx context.Context, stream, eventType string, data interface{}) {
	if err := o.store.AppendEvent(ctx, stream, events.NewEvent(eventType, stream, data)); err != nil {
		o.log.Warn("event handler failed", zap.String("event", eventType), zap.Error(err))
	}
}

// Summary returns a formatted one-paragraph summary of a run
func Summary(result *dto.GenerationResult) string {
	summary := fmt.Sprintf("Generation Summary (%s):\n", result.Message)
	summary += fmt.Sprintf("  Double deliveries: %d pairs, %d line haul and %d local zones\n",
		len(result.Pairs), len(result.LineHaulZones), len(result.LocalZones))
	summary += fmt.Sprintf("  Windows: %d simple moves, %d moved, %d unmoved\n",
		result.CountWindows(entities.SimpleMove),
		result.CountWindows(entities.DoubleDeliveryMoved),
		result.CountWindows(entities.DoubleDeliveryUnmoved))
	if result.Validation != nil {
		summary += fmt.Sprintf("  Validation: %d checked, %d errors, %d warnings",
			result.Validation.Checked, len(result.Validation.Errors), len(result.Validation.Warnings))
	}
	return summary
}
