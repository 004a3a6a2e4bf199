package store

import (
	"time"

	"github.com/google/uuid"
)

// Submission is one audit row for a span written to the remote service.
type Submission struct {
	ID          string
	Date        string
	Start       string
	End         string
	SubmittedAt time.Time
}

// RecordSubmission logs a successfully stored span.
func (s *Store) RecordSubmission(date, start, end string) (*Submission, error) {
	sub := &Submission{
		ID:          uuid.New().String(),
		Date:        date,
		Start:       start,
		End:         end,
		SubmittedAt: time.Now(),
	}
	_, err := s.Exec(`
		INSERT INTO submissions (id, entry_date, start_time, end_time, submitted_at)
		VALUES (?, ?, ?, ?, ?)
	`, sub.ID, sub.Date, sub.Start, sub.End, sub.SubmittedAt)
	if err != nil {
		return nil, err
	}
	return sub, nil
}

// RecentSubmissions returns the newest audit rows, most recent first.
func (s *Store) RecentSubmissions(limit int) ([]Submission, error) {
	rows, err := s.Query(`
		SELECT id, entry_date, start_time, end_time, submitted_at
		FROM submissions
		ORDER BY submitted_at DESC, entry_date DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subs []Submission
	for rows.Next() {
		var sub Submission
		if err := rows.Scan(&sub.ID, &sub.Date, &sub.Start, &sub.End, &sub.SubmittedAt); err != nil {
			return nil, err
		}
		subs = append(subs, sub)
	}
	return subs, rows.Err()
}
