package mail

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

const icsTimestamp = "20060102T150405"

// BuildInvite renders a single-event iCalendar invite for the reminder. The
// event sits at 09:00-09:30 local time on the reminder date, addressed to the
// account itself so mail clients surface it as a real invitation
// (METHOD:REQUEST).
func BuildInvite(r Reminder, email string) string {
	start := time.Date(r.Date.Year(), r.Date.Month(), r.Date.Day(), 9, 0, 0, 0, r.Date.Location())
	end := start.Add(30 * time.Minute)

	lines := []string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:-//clockin//reminder//EN",
		"METHOD:REQUEST",
		"BEGIN:VEVENT",
		fmt.Sprintf("UID:%s@clockin", uuid.New().String()),
		fmt.Sprintf("DTSTAMP:%s", time.Now().UTC().Format(icsTimestamp)+"Z"),
		fmt.Sprintf("DTSTART:%s", start.Format(icsTimestamp)),
		fmt.Sprintf("DTEND:%s", end.Format(icsTimestamp)),
		fmt.Sprintf("SUMMARY:Submit timesheet for %s", r.MonthName),
		fmt.Sprintf("DESCRIPTION:Last working day of %s. Run: %s", r.MonthName, r.SubmitCommand),
		fmt.Sprintf("ORGANIZER;CN=clockin:mailto:%s", email),
		fmt.Sprintf("ATTENDEE;ROLE=REQ-PARTICIPANT;PARTSTAT=NEEDS-ACTION;RSVP=TRUE:mailto:%s", email),
		"STATUS:CONFIRMED",
		"BEGIN:VALARM",
		"TRIGGER:-PT0M",
		"ACTION:DISPLAY",
		"DESCRIPTION:Submit timesheet",
		"END:VALARM",
		"END:VEVENT",
		"END:VCALENDAR",
	}
	// iCalendar requires CRLF line endings
	return strings.Join(lines, "\r\n") + "\r\n"
}
