package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/pkg/errors"

	"github.com/vsinha/winexc/pkg/application/dto"
	"github.com/vsinha/winexc/pkg/domain/entities"
	"github.com/vsinha/winexc/pkg/domain/reference"
)

// Config holds configuration for output generation
type Config struct {
	Format  string
	Verbose bool
	Files   []string
	Out     io.Writer
}

var (
	heading = color.New(color.FgCyan, color.Bold)
	warn    = color.New(color.FgYellow)
	fail    = color.New(color.FgRed, color.Bold)
)

func (c Config) writer() io.Writer {
	if c.Out == nil {
		return os.Stdout
	}
	return c.Out
}

// Generate prints the run summary in the specified format
func Generate(result *dto.GenerationResult, config Config) error {
	switch config.Format {
	case "", "text":
		return generateTextOutput(result, config)
	case "json":
		return generateJSONOutput(result, config)
	default:
		return errors.Errorf("unsupported output format: %s", config.Format)
	}
}

// generateTextOutput creates human-readable text output
func generateTextOutput(result *dto.GenerationResult, config Config) error {
	w := config.writer()

	heading.Fprintf(w, "Window Exceptions Summary\n")
	fmt.Fprintf(w, "=========================\n\n")

	fmt.Fprintf(w, "Holiday: %s (week of %s)\n", result.Week.Holiday, result.Week.Sunday.Format(entities.SundayDateLayout))
	fmt.Fprintf(w, "Message: %s\n", result.Message)
	fmt.Fprintf(w, "Double Deliveries: %d\n", len(result.Pairs))
	fmt.Fprintf(w, "Zones: %d line haul, %d local\n", len(result.LineHaulZones), len(result.LocalZones))
	fmt.Fprintf(w, "Windows: %d simple moves, %d moved, %d unmoved\n",
		result.CountWindows(entities.SimpleMove),
		result.CountWindows(entities.DoubleDeliveryMoved),
		result.CountWindows(entities.DoubleDeliveryUnmoved))
	fmt.Fprintf(w, "Generation Time: %v\n\n", result.GenerationTime)

	if len(result.MergedZones) > 0 {
		heading.Fprintf(w, "Merged Zones:\n")
		fmt.Fprintf(w, "%-38s %-24s %-24s %-9s\n", "Zone", "Moved", "Reference", "Line Haul")
		fmt.Fprintf(w, "%-38s %-24s %-24s %-9s\n",
			"--------------------------------------", "------------------------", "------------------------", "---------")
		for _, m := range result.MergedZones {
			fmt.Fprintf(w, "%-38s %-24s %-24s %-9t\n",
				m.Zone.Name, m.Pair.Moved.Zone.Name, m.Pair.Reference.Zone.Name, m.Zone.IsLineHaul)
		}
		fmt.Fprintln(w)
	}

	if config.Verbose && len(result.Windows) > 0 {
		heading.Fprintf(w, "Windows:\n")
		fmt.Fprintf(w, "%-24s %-38s %-12s %-12s %-14s\n", "Kind", "Zone", "Delivery", "Dispatch", "Delivery Time")
		fmt.Fprintf(w, "%-24s %-38s %-12s %-12s %-14s\n",
			"------------------------", "--------------------------------------", "------------", "------------", "--------------")
		for _, generated := range result.Windows {
			win := generated.Window
			fmt.Fprintf(w, "%-24s %-38s %-12s %-12s %-14s\n",
				generated.Kind,
				generated.ZoneName,
				win.DeliveryDate.Format("Mon 01/02"),
				fmt.Sprintf("%s %s", dayName(win.DispatchDay), win.DispatchTime.HourMinute()),
				fmt.Sprintf("%s-%s", win.StartTime.HourMinute(), win.EndTime.HourMinute()))
		}
		fmt.Fprintln(w)
	}

	if result.Plan != nil {
		for _, day := range result.Plan.DoubleDeliveryDays {
			cities := make([]string, 0, len(day.Markets))
			for _, m := range day.Markets {
				cities = append(cities, m.City)
			}
			fmt.Fprintf(w, "Double deliveries on %s: %v\n", dayName(day.Day), cities)
		}
		for _, warning := range result.Plan.Warnings {
			warn.Fprintf(w, "Plan warning: %s\n", warning)
		}
		if len(result.Plan.DoubleDeliveryDays) > 0 || len(result.Plan.Warnings) > 0 {
			fmt.Fprintln(w)
		}
	}

	if v := result.Validation; v != nil {
		heading.Fprintf(w, "Validation:\n")
		fmt.Fprintf(w, "  %d windows checked, %d errors, %d warnings\n", v.Checked, len(v.Errors), len(v.Warnings))
		for _, problem := range v.Errors {
			fail.Fprintf(w, "  ERROR %s\n", problem)
		}
		for _, warning := range v.Warnings {
			warn.Fprintf(w, "  WARN  %s\n", warning)
		}
		fmt.Fprintln(w)
	}

	if len(config.Files) > 0 {
		heading.Fprintf(w, "Files:\n")
		for _, file := range config.Files {
			fmt.Fprintf(w, "  %s\n", file)
		}
	}

	return nil
}

type jsonSummary struct {
	Holiday        string          `json:"holiday"`
	Sunday         string          `json:"sunday"`
	Message        string          `json:"message"`
	MergedZones    []jsonZone      `json:"merged_zones"`
	Windows        map[string]int  `json:"windows"`
	Validation     *jsonValidation `json:"validation,omitempty"`
	Warnings       []string        `json:"plan_warnings"`
	Files          []string        `json:"files"`
	GenerationTime string          `json:"generation_time"`
}

type jsonZone struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	MarketCode      string `json:"market_code"`
	IsLineHaul      bool   `json:"is_line_haul"`
	MovedWindow     string `json:"moved_window_id"`
	ReferenceWindow string `json:"reference_window_id"`
}

type jsonValidation struct {
	Checked  int      `json:"checked"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

// generateJSONOutput creates JSON output
func generateJSONOutput(result *dto.GenerationResult, config Config) error {
	summary := jsonSummary{
		Holiday:     result.Week.Holiday,
		Sunday:      result.Week.Sunday.Format(entities.SundayDateLayout),
		Message:     result.Message,
		MergedZones: make([]jsonZone, 0, len(result.MergedZones)),
		Windows: map[string]int{
			entities.SimpleMove.String():            result.CountWindows(entities.SimpleMove),
			entities.DoubleDeliveryMoved.String():   result.CountWindows(entities.DoubleDeliveryMoved),
			entities.DoubleDeliveryUnmoved.String(): result.CountWindows(entities.DoubleDeliveryUnmoved),
		},
		Warnings:       []string{},
		Files:          config.Files,
		GenerationTime: result.GenerationTime.Round(time.Microsecond).String(),
	}
	if summary.Files == nil {
		summary.Files = []string{}
	}
	for _, m := range result.MergedZones {
		summary.MergedZones = append(summary.MergedZones, jsonZone{
			ID:              string(m.Zone.ID),
			Name:            m.Zone.Name,
			MarketCode:      string(m.Zone.MarketCode),
			IsLineHaul:      m.Zone.IsLineHaul,
			MovedWindow:     string(m.Pair.Moved.Window.ID),
			ReferenceWindow: string(m.Pair.Reference.Window.ID),
		})
	}
	if result.Plan != nil {
		summary.Warnings = append(summary.Warnings, result.Plan.Warnings...)
	}
	if v := result.Validation; v != nil {
		summary.Validation = &jsonValidation{Checked: v.Checked, Errors: v.Errors, Warnings: v.Warnings}
	}

	return writeJSON(config.writer(), summary)
}

type referenceDay struct {
	Number       int    `json:"number"`
	Abbreviation string `json:"abbreviation"`
	Name         string `json:"name"`
}

// PrintReference writes the market and day tables as JSON
func PrintReference(w io.Writer, ref *reference.Data) error {
	markets := make(map[string]string)
	for code, name := range ref.Markets() {
		markets[string(code)] = name
	}
	days := make([]referenceDay, 0, 7)
	for _, day := range ref.Days() {
		days = append(days, referenceDay{Number: int(day.Number), Abbreviation: day.Abbreviation, Name: day.Name})
	}

	return writeJSON(w, struct {
		Markets map[string]string `json:"markets"`
		Days    []referenceDay    `json:"days"`
	}{markets, days})
}

func writeJSON(w io.Writer, v interface{}) error {
	jsonData, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to marshal JSON")
	}
	_, err = fmt.Fprintln(w, string(jsonData))
	return err
}

func dayName(day entities.DayOfWeek) string {
	return time.Weekday(day).String()
}
