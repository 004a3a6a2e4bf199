package ui

import (
	"github.com/dori/clockin/internal/model"
)

// Messages for inter-component communication

// employeeLoadedMsg carries the employee profile fetched at startup.
type employeeLoadedMsg struct {
	Employee *model.Employee
	Err      error
}

// monthDataMsg carries one month's feeds, fetched together so the grid never
// renders a half-updated month.
type monthDataMsg struct {
	Year     int
	Month    int
	Entries  []model.TimesheetEntry
	TimeOff  []model.TimeOffRequest
	Holidays []model.Holiday
	Err      error
}

// entrySavedMsg reports the outcome of a single-day submit (two spans).
type entrySavedMsg struct {
	Date string
	Err  error
}

// bulkDayDoneMsg reports one day of a bulk fill. The next day is only
// dispatched after this message arrives, keeping the writes sequential.
type bulkDayDoneMsg struct {
	Index int
	Date  string
	Err   error
}

// modalClosedMsg is sent by a modal when it wants to be dismissed. OpenEdit
// asks the root to open the span editor for the same day afterwards.
type modalClosedMsg struct {
	OpenEdit bool
	Day      int
}

// settingsSavedMsg reports a saved (or failed) settings change.
type settingsSavedMsg struct {
	Settings model.WorkSchedule
	Err      error
}

// mailVerifiedMsg reports the SMTP credential check.
type mailVerifiedMsg struct {
	Err error
}

// ErrorMsg contains an error to display
type ErrorMsg struct {
	Err error
}

// StatusMsg contains a status message to display
type StatusMsg struct {
	Message string
}
