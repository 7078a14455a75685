package entities

// DoubleDeliveryPair is a moved zone landing on a day its market already
// serves through the reference zone
type DoubleDeliveryPair struct {
	Moved     CurrentDataRecord
	Reference CurrentDataRecord
	Entry     ExceptionPlanEntry
}

// MergedZone is the synthesized zone that serves both windows of a pair
type MergedZone struct {
	Zone Zone
	Pair DoubleDeliveryPair
}
