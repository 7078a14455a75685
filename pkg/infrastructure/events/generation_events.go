package events

const (
	RunStartedEvent             = "run.started"
	DoubleDeliveryResolvedEvent = "double_delivery.resolved"
	ZoneMergedEvent             = "zone.merged"
	WindowsGeneratedEvent       = "windows.generated"
	ValidationCompletedEvent    = "validation.completed"
	RunCompletedEvent           = "run.completed"
)

// AllEventTypes lists every event a generation run emits
var AllEventTypes = []string{
	RunStartedEvent,
	DoubleDeliveryResolvedEvent,
	ZoneMergedEvent,
	WindowsGeneratedEvent,
	ValidationCompletedEvent,
	RunCompletedEvent,
}

type RunStarted struct {
	Holiday         string `json:"holiday"`
	Sunday          string `json:"sunday"`
	BaselineRecords int    `json:"baseline_records"`
	PlanEntries     int    `json:"plan_entries"`
}

type DoubleDeliveryResolved struct {
	Market            string `json:"market"`
	MovedZone         string `json:"moved_zone"`
	MovedWindowID     string `json:"moved_window_id"`
	ReferenceZone     string `json:"reference_zone"`
	ReferenceWindowID string `json:"reference_window_id"`
}

type ZoneMerged struct {
	ZoneID     string `json:"zone_id"`
	Name       string `json:"name"`
	MarketCode string `json:"market_code"`
	IsLineHaul bool   `json:"is_line_haul"`
}

type WindowsGenerated struct {
	SimpleMoves           int `json:"simple_moves"`
	DoubleDeliveryMoved   int `json:"double_delivery_moved"`
	DoubleDeliveryUnmoved int `json:"double_delivery_unmoved"`
}

type ValidationCompleted struct {
	Checked  int `json:"checked"`
	Errors   int `json:"errors"`
	Warnings int `json:"warnings"`
}

type RunCompleted struct {
	Message       string   `json:"message"`
	Holiday       string   `json:"holiday"`
	Sunday        string   `json:"sunday"`
	LineHaulZones int      `json:"line_haul_zones"`
	LocalZones    int      `json:"local_zones"`
	Windows       int      `json:"windows"`
	Files         []string `json:"files"`
	Warnings      int      `json:"validation_warnings"`
}
