package orchestration

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/vsinha/winexc/pkg/application/dto"
	"github.com/vsinha/winexc/pkg/application/services/generation"
	"github.com/vsinha/winexc/pkg/domain/entities"
	"github.com/vsinha/winexc/pkg/domain/reference"
	"github.com/vsinha/winexc/pkg/domain/services"
	"github.com/vsinha/winexc/pkg/infrastructure/events"
	"github.com/vsinha/winexc/pkg/infrastructure/ids"
	"github.com/vsinha/winexc/pkg/infrastructure/repositories/memory"
	fixtures "github.com/vsinha/winexc/pkg/infrastructure/testing"
)

type failingHandler struct{}

func (failingHandler) Handle(context.Context, events.Event) error {
	return errors.New("broker unavailable")
}

func (failingHandler) CanHandle(string) bool {
	return true
}

func newOrchestrator(t *testing.T, idGen generation.IDGenerator) (*GenerationOrchestrator, *events.InMemoryEventStore) {
	t.Helper()

	ref := reference.Default()
	baseline := memory.NewBaselineRepository(services.NewZoneNamer(ref), 8)
	require.NoError(t, baseline.LoadRecords(fixtures.BaselineRecords()))

	plan := memory.NewExceptionPlanRepository()
	require.NoError(t, plan.LoadEntries(fixtures.PlanEntries()))

	store := events.NewInMemoryEventStore()
	return NewGenerationOrchestrator(baseline, plan, ref, idGen, store, zap.NewNop()), store
}

func TestGenerationOrchestrator_ChicagoMondayToTuesday(t *testing.T) {
	orchestrator, _ := newOrchestrator(t, ids.NewSequence("id"))

	result, err := orchestrator.Generate(context.Background(), Request{
		Week:        fixtures.ChristmasWeek(),
		ClosedDates: []time.Time{fixtures.ChristmasDay()},
		Strict:      true,
	})
	require.NoError(t, err)

	t.Logf("%s", Summary(result))

	assert.Equal(t, "christmas-window-exceptions-2023", result.Message)
	require.Len(t, result.Pairs, 1)
	require.Len(t, result.LineHaulZones, 1)
	assert.Empty(t, result.LocalZones)
	assert.Equal(t, "CHI: MONDAY / TUESDAY PM", result.LineHaulZones[0].Name)

	require.Len(t, result.Windows, 5)
	assert.Equal(t, 3, result.CountWindows(entities.SimpleMove))
	assert.Equal(t, 1, result.CountWindows(entities.DoubleDeliveryMoved))
	assert.Equal(t, 1, result.CountWindows(entities.DoubleDeliveryUnmoved))

	moved := result.Windows[3].Window
	assert.Equal(t, entities.Tuesday, moved.StartDay)
	assert.Equal(t, entities.Sunday, moved.DispatchDay)
	assert.Equal(t, result.LineHaulZones[0].ID, moved.ZoneID)
	assert.Equal(t, result.LineHaulZones[0].ID, result.Windows[4].Window.ZoneID)

	require.NotNil(t, result.Validation)
	assert.True(t, result.Validation.IsValid())
	assert.Equal(t, 5, result.Validation.Checked)
	assert.Len(t, result.Validation.Warnings, 1)

	require.NotNil(t, result.Plan)
	assert.Equal(t, 4, result.Plan.Entries)
	assert.Equal(t, 1, result.Plan.EmployeeEntries)
	assert.Len(t, result.DayMappings, 5)
}

func TestGenerationOrchestrator_EmitsRunEvents(t *testing.T) {
	orchestrator, store := newOrchestrator(t, ids.NewSequence("id"))

	result, err := orchestrator.Generate(context.Background(), Request{Week: fixtures.ChristmasWeek()})
	require.NoError(t, err)
	orchestrator.Complete(context.Background(), result, []string{"CSV Upload - Windows.csv"})

	recorded, err := store.ReadEvents(result.Message, 0)
	require.NoError(t, err)

	types := make([]string, 0, len(recorded))
	for _, event := range recorded {
		types = append(types, event.Type())
	}
	assert.Equal(t, []string{
		events.RunStartedEvent,
		events.DoubleDeliveryResolvedEvent,
		events.ZoneMergedEvent,
		events.WindowsGeneratedEvent,
		events.ValidationCompletedEvent,
		events.RunCompletedEvent,
	}, types)

	completed, ok := recorded[len(recorded)-1].Data().(events.RunCompleted)
	require.True(t, ok)
	assert.Equal(t, 5, completed.Windows)
	assert.Equal(t, 1, completed.LineHaulZones)
	assert.Equal(t, "12/24/2023", completed.Sunday)
}

func TestGenerationOrchestrator_HandlerFailureIsNotFatal(t *testing.T) {
	orchestrator, store := newOrchestrator(t, ids.NewSequence("id"))
	require.NoError(t, store.Subscribe(events.AllEventTypes, failingHandler{}))

	result, err := orchestrator.Generate(context.Background(), Request{Week: fixtures.ChristmasWeek()})
	require.NoError(t, err)
	orchestrator.Complete(context.Background(), result, nil)

	all, err := store.ReadAllEvents(0)
	require.NoError(t, err)
	assert.Len(t, all, 6)
}

func TestGenerationOrchestrator_StrictFailsOnClosedDate(t *testing.T) {
	orchestrator, _ := newOrchestrator(t, ids.NewSequence("id"))
	week := fixtures.ChristmasWeek()

	request := Request{
		Week:        week,
		ClosedDates: []time.Time{week.DateOf(entities.Tuesday)},
	}

	result, err := orchestrator.Generate(context.Background(), request)
	require.NoError(t, err)
	assert.Len(t, result.Validation.Errors, 4)

	request.Strict = true
	result, err = orchestrator.Generate(context.Background(), request)
	require.ErrorIs(t, err, entities.ErrValidationFailed)
	require.NotNil(t, result)
	assert.False(t, result.Validation.IsValid())
}

func TestGenerationOrchestrator_CanceledContext(t *testing.T) {
	orchestrator, store := newOrchestrator(t, ids.NewSequence("id"))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := orchestrator.Generate(ctx, Request{Week: fixtures.ChristmasWeek()})
	require.ErrorIs(t, err, context.Canceled)

	all, err := store.ReadAllEvents(0)
	require.NoError(t, err)
	assert.Empty(t, all)
}

// projection drops generated identifiers so two runs can be compared
type projection struct {
	Kind     entities.WindowKind
	ZoneName string
	Window   entities.Window
}

func project(result *dto.GenerationResult) []projection {
	projected := make([]projection, 0, len(result.Windows))
	for _, generated := range result.Windows {
		w := generated.Window.Clone()
		w.ID = ""
		w.ZoneID = ""
		projected = append(projected, projection{Kind: generated.Kind, ZoneName: generated.ZoneName, Window: w})
	}
	return projected
}

func TestGenerationOrchestrator_DeterministicModuloIdentity(t *testing.T) {
	first, _ := newOrchestrator(t, ids.UUID{})
	second, _ := newOrchestrator(t, ids.UUID{})
	request := Request{Week: fixtures.ChristmasWeek()}

	a, err := first.Generate(context.Background(), request)
	require.NoError(t, err)
	b, err := second.Generate(context.Background(), request)
	require.NoError(t, err)

	assert.NotEqual(t, a.Windows[0].Window.ID, b.Windows[0].Window.ID)
	assert.Equal(t, project(a), project(b))
	require.Len(t, b.LineHaulZones, 1)
	assert.Equal(t, a.LineHaulZones[0].Name, b.LineHaulZones[0].Name)
}

func TestGenerationOrchestrator_PartitionCompleteness(t *testing.T) {
	orchestrator, _ := newOrchestrator(t, ids.NewSequence("id"))

	result, err := orchestrator.Generate(context.Background(), Request{Week: fixtures.ChristmasWeek()})
	require.NoError(t, err)

	// every plan entry is either a simple move or the moved half of a pair
	entries := fixtures.PlanEntries()
	assert.Equal(t, len(entries),
		result.CountWindows(entities.SimpleMove)+result.CountWindows(entities.DoubleDeliveryMoved))
	assert.Equal(t, len(result.Pairs), result.CountWindows(entities.DoubleDeliveryUnmoved))
}
