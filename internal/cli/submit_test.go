package cli

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/dori/clockin/internal/store"
)

func TestReminderSkippedWithoutMailConfig(t *testing.T) {
	var out strings.Builder
	err := sendMonthEndReminder(context.Background(), nil, time.Now(), nil, &out)
	if err != nil {
		t.Fatalf("sendMonthEndReminder: %v", err)
	}
	if !strings.Contains(out.String(), "Reminder skipped") {
		t.Errorf("no skip notice printed, got %q", out.String())
	}
}

func TestWriteSubmissionLog(t *testing.T) {
	var out strings.Builder
	writeSubmissionLog(&out, nil)
	if out.String() != "No submissions recorded yet.\n" {
		t.Errorf("empty log output = %q", out.String())
	}

	out.Reset()
	writeSubmissionLog(&out, []store.Submission{
		{Date: "2026-08-14", Start: "09:00", End: "12:00",
			SubmittedAt: time.Date(2026, 8, 14, 18, 3, 0, 0, time.UTC)},
		{Date: "2026-08-13", Start: "14:00", End: "18:00",
			SubmittedAt: time.Date(2026, 8, 13, 18, 1, 0, 0, time.UTC)},
	})
	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if lines[0] != "2026-08-14 18:03  2026-08-14  09:00-12:00" {
		t.Errorf("first line = %q", lines[0])
	}
	if !strings.Contains(lines[1], "14:00-18:00") {
		t.Errorf("second line = %q", lines[1])
	}
}
