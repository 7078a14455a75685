package output

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/vsinha/winexc/pkg/application/dto"
	"github.com/vsinha/winexc/pkg/application/services/orchestration"
	"github.com/vsinha/winexc/pkg/domain/entities"
	"github.com/vsinha/winexc/pkg/domain/reference"
	"github.com/vsinha/winexc/pkg/domain/services"
	"github.com/vsinha/winexc/pkg/infrastructure/events"
	"github.com/vsinha/winexc/pkg/infrastructure/ids"
	"github.com/vsinha/winexc/pkg/infrastructure/repositories/memory"
	fixtures "github.com/vsinha/winexc/pkg/infrastructure/testing"
)

func generate(t *testing.T) *dto.GenerationResult {
	t.Helper()
	color.NoColor = true

	ref := reference.Default()
	baseline := memory.NewBaselineRepository(services.NewZoneNamer(ref), 8)
	require.NoError(t, baseline.LoadRecords(fixtures.BaselineRecords()))
	plan := memory.NewExceptionPlanRepository()
	require.NoError(t, plan.LoadEntries(fixtures.PlanEntries()))

	orchestrator := orchestration.NewGenerationOrchestrator(
		baseline, plan, ref, ids.NewSequence("id"), events.NewInMemoryEventStore(), zap.NewNop())
	result, err := orchestrator.Generate(context.Background(), orchestration.Request{
		Week:        fixtures.ChristmasWeek(),
		ClosedDates: []time.Time{fixtures.ChristmasDay()},
	})
	require.NoError(t, err)
	return result
}

func TestGenerate_Text(t *testing.T) {
	result := generate(t)
	result.Plan.DoubleDeliveryDays = []services.DoubleDeliveryDay{{
		Day:     entities.Tuesday,
		Markets: []services.MarketCollision{
			{Market: "CHI", City: "Chicago", OriginalDays: []entities.DayOfWeek{entities.Monday, entities.Tuesday}},
		},
	}}
	var out bytes.Buffer

	err := Generate(result, Config{Format: "text", Verbose: true, Files: []string{"uploads/CSV Upload - Windows.csv"}, Out: &out})
	require.NoError(t, err)

	text := out.String()
	assert.Contains(t, text, "Holiday: Christmas (week of 12/24/2023)")
	assert.Contains(t, text, "Zones: 1 line haul, 0 local")
	assert.Contains(t, text, "CHI: MONDAY / TUESDAY PM")
	assert.Contains(t, text, "double-delivery-moved")
	assert.Contains(t, text, "Sunday 16:00")
	assert.Contains(t, text, "Double deliveries on Tuesday: [Chicago]")
	assert.Contains(t, text, "5 windows checked, 0 errors, 1 warnings")
	assert.Contains(t, text, "WARN ")
	assert.Contains(t, text, "uploads/CSV Upload - Windows.csv")
}

func TestGenerate_TextQuietSkipsWindowTable(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, Generate(generate(t), Config{Out: &out}))
	assert.NotContains(t, out.String(), "Delivery Time")
}

func TestGenerate_JSON(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, Generate(generate(t), Config{Format: "json", Out: &out}))

	var summary jsonSummary
	require.NoError(t, json.Unmarshal(out.Bytes(), &summary))
	assert.Equal(t, "christmas-window-exceptions-2023", summary.Message)
	assert.Equal(t, "12/24/2023", summary.Sunday)
	require.Len(t, summary.MergedZones, 1)
	assert.Equal(t, "w-chi-mon", summary.MergedZones[0].MovedWindow)
	assert.Equal(t, "w-chi-tue", summary.MergedZones[0].ReferenceWindow)
	assert.Equal(t, 3, summary.Windows["simple-move"])
	require.NotNil(t, summary.Validation)
	assert.Equal(t, 5, summary.Validation.Checked)
	assert.Empty(t, summary.Files)
}

func TestGenerate_UnsupportedFormat(t *testing.T) {
	err := Generate(generate(t), Config{Format: "csv", Out: &bytes.Buffer{}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported output format")
}

func TestPrintReference(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, PrintReference(&out, reference.Default()))
	assert.Contains(t, out.String(), `"CHI": "Chicago"`)
	assert.Contains(t, out.String(), `"abbreviation": "Tues"`)
}
