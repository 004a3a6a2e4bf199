package store

import (
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestReminderRoundTrip(t *testing.T) {
	s := openTestStore(t)

	sent, err := s.WasReminderSent("2026-06")
	if err != nil {
		t.Fatalf("WasReminderSent: %v", err)
	}
	if sent {
		t.Error("fresh store reports reminder already sent")
	}

	if err := s.MarkReminderSent("2026-06"); err != nil {
		t.Fatalf("MarkReminderSent: %v", err)
	}

	sent, err = s.WasReminderSent("2026-06")
	if err != nil {
		t.Fatalf("WasReminderSent after mark: %v", err)
	}
	if !sent {
		t.Error("marked reminder not reported as sent")
	}

	// Other months stay unaffected
	sent, err = s.WasReminderSent("2026-07")
	if err != nil {
		t.Fatalf("WasReminderSent other month: %v", err)
	}
	if sent {
		t.Error("unmarked month reported as sent")
	}
}

func TestMarkReminderSentIdempotent(t *testing.T) {
	s := openTestStore(t)

	if err := s.MarkReminderSent("2026-06"); err != nil {
		t.Fatalf("first mark: %v", err)
	}
	if err := s.MarkReminderSent("2026-06"); err != nil {
		t.Fatalf("second mark: %v", err)
	}
}

func TestSubmissionAuditLog(t *testing.T) {
	s := openTestStore(t)

	spans := []struct{ date, start, end string }{
		{"2026-05-04", "09:00", "12:00"},
		{"2026-05-04", "14:00", "18:00"},
		{"2026-05-05", "09:00", "12:00"},
	}
	for _, span := range spans {
		sub, err := s.RecordSubmission(span.date, span.start, span.end)
		if err != nil {
			t.Fatalf("RecordSubmission(%s): %v", span.date, err)
		}
		if sub.ID == "" {
			t.Error("submission ID is empty")
		}
	}

	subs, err := s.RecentSubmissions(10)
	if err != nil {
		t.Fatalf("RecentSubmissions: %v", err)
	}
	if len(subs) != 3 {
		t.Fatalf("len(subs) = %d, want 3", len(subs))
	}
	if subs[0].Date != "2026-05-05" {
		t.Errorf("newest submission date = %q, want %q", subs[0].Date, "2026-05-05")
	}

	limited, err := s.RecentSubmissions(2)
	if err != nil {
		t.Fatalf("RecentSubmissions(2): %v", err)
	}
	if len(limited) != 2 {
		t.Errorf("len(limited) = %d, want 2", len(limited))
	}
}
