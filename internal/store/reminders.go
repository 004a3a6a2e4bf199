package store

import (
	"database/sql"
	"time"
)

// WasReminderSent reports whether a reminder for the given month
// ("YYYY-MM") was already sent.
func (s *Store) WasReminderSent(yearMonth string) (bool, error) {
	var sentAt time.Time
	err := s.QueryRow(`SELECT sent_at FROM reminders WHERE year_month = ?`, yearMonth).Scan(&sentAt)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// MarkReminderSent records that the month's reminder went out. Marking the
// same month twice is not an error.
func (s *Store) MarkReminderSent(yearMonth string) error {
	_, err := s.Exec(`
		INSERT INTO reminders (year_month, sent_at) VALUES (?, ?)
		ON CONFLICT(year_month) DO UPDATE SET sent_at = excluded.sent_at
	`, yearMonth, time.Now())
	return err
}
