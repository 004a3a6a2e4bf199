package model

// TimeSpan is a clock interval within a single day, "HH:MM" to "HH:MM".
// A span whose start sorts after its end is treated as zero duration.
type TimeSpan struct {
	Start string `json:"start" toml:"start"`
	End   string `json:"end" toml:"end"`
}

// WorkSchedule is the two spans a standard workday is split into.
type WorkSchedule struct {
	Morning   TimeSpan `json:"morning" toml:"morning"`
	Afternoon TimeSpan `json:"afternoon" toml:"afternoon"`
}

// DefaultWorkSchedule returns the built-in 09:00-12:00 / 14:00-18:00 schedule.
func DefaultWorkSchedule() WorkSchedule {
	return WorkSchedule{
		Morning:   TimeSpan{Start: "09:00", End: "12:00"},
		Afternoon: TimeSpan{Start: "14:00", End: "18:00"},
	}
}

// Copy returns an independent copy of the schedule. Edit buffers always work
// on copies so a cancelled modal never leaks changes into settings.
func (s WorkSchedule) Copy() WorkSchedule {
	return WorkSchedule{
		Morning:   TimeSpan{Start: s.Morning.Start, End: s.Morning.End},
		Afternoon: TimeSpan{Start: s.Afternoon.Start, End: s.Afternoon.End},
	}
}
