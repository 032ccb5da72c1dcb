package domain

import "time"

// Timestamp is a point in time expressed as floating-point seconds since the
// Unix epoch, the resolution the ledger block format retains.
type Timestamp float64

// NewTimestamp returns the current time as a Timestamp.
func NewTimestamp() Timestamp {
	return Timestamp(float64(time.Now().UnixNano()) / float64(time.Second))
}

// Time converts the timestamp back to a time.Time.
func (t Timestamp) Time() time.Time {
	return time.Unix(0, int64(float64(t)*float64(time.Second)))
}
