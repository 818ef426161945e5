package domain

// TelemetryEvent is the fire-and-forget notification emitted after every
// successful append. Time is the raw capture instant in epoch milliseconds.
type TelemetryEvent struct {
	LocationName string `json:"location_name"`
	Time         int64  `json:"time"`
}
