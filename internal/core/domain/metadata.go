package domain

import "time"

// DateLayout is the ISO 8601 calendar date format used for the
// inspection date, both in the form and on the wire.
const DateLayout = "2006-01-02"

// Metadata is the free-form inspection header. All fields are plain
// mutable text with no cross-field invariants.
type Metadata struct {
	BuildingName string `json:"buildingName"`
	RoomName     string `json:"roomName"`
	Division     string `json:"division"`
	// Date is an ISO 8601 calendar date (see DateLayout).
	Date         string `json:"date"`
	Inspector    string `json:"inspector"`
	OtherRemarks string `json:"otherRemarks"`
}

// DefaultMetadata returns a blank record dated with the given time's
// calendar date.
func DefaultMetadata(now time.Time) Metadata {
	return Metadata{Date: now.Format(DateLayout)}
}
