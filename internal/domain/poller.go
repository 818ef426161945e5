package domain

import "time"

type PollerStatus struct {
	Running  bool          `json:"running"`
	Interval time.Duration `json:"interval"`
	Cycles   uint64        `json:"cycles"`
	Skipped  uint64        `json:"skipped"`
}
