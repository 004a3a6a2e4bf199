package model

// EntryType discriminates the two shapes a timesheet entry can take.
type EntryType string

const (
	EntryTypeHour  EntryType = "hour"
	EntryTypeClock EntryType = "clock"
)

// TimesheetEntry is one recorded unit of work time. Hour entries carry a
// quantity; clock entries carry start/end timestamps (RFC 3339) and do not
// contribute to the hour total, they only feed schedule reconstruction.
type TimesheetEntry struct {
	ID         int       `json:"id"`
	EmployeeID int       `json:"employeeId"`
	Type       EntryType `json:"type"`
	Date       string    `json:"date"`
	Start      string    `json:"start,omitempty"`
	End        string    `json:"end,omitempty"`
	Timezone   string    `json:"timezone,omitempty"`
	Hours      float64   `json:"hours,omitempty"`
	Note       string    `json:"note,omitempty"`
	Approved   bool      `json:"approved"`
}

// TimeOffType is the category of a time-off request.
type TimeOffType struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// TimeOffRequest is an approved absence. Dates is the authoritative day set:
// the service represents discontinuous ranges, so membership is tested against
// the map keys and never recomputed from Start/End.
type TimeOffRequest struct {
	ID         int                `json:"id"`
	EmployeeID int                `json:"employeeId"`
	Name       string             `json:"name"`
	Start      string             `json:"start"`
	End        string             `json:"end"`
	Type       TimeOffType        `json:"type"`
	Dates      map[string]float64 `json:"dates"`
}

// Label returns the display name for the request, preferring the type name.
func (r TimeOffRequest) Label() string {
	if r.Type.Name != "" {
		return r.Type.Name
	}
	if r.Name != "" {
		return r.Name
	}
	return "Time Off"
}

// Holiday is a closed, continuous ISO date range. Unlike time off it must be
// expanded day by day, inclusive of both endpoints.
type Holiday struct {
	Name  string `json:"name"`
	Start string `json:"start"`
	End   string `json:"end"`
}
