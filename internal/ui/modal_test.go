package ui

import (
	"context"
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dori/clockin/internal/model"
	"github.com/dori/clockin/internal/store"
)

type fakeWriter struct {
	calls  []string
	failOn string
}

func (f *fakeWriter) StoreClockEntry(ctx context.Context, date, start, end string) error {
	if date == f.failOn {
		return fmt.Errorf("service rejected %s", date)
	}
	f.calls = append(f.calls, fmt.Sprintf("%s %s-%s", date, start, end))
	return nil
}

type fakeRecorder struct {
	rows []string
}

func (f *fakeRecorder) RecordSubmission(date, start, end string) (*store.Submission, error) {
	f.rows = append(f.rows, date)
	return &store.Submission{ID: "test", Date: date, Start: start, End: end}, nil
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEscape}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func testSchedule() model.WorkSchedule {
	return model.WorkSchedule{
		Morning:   model.TimeSpan{Start: "09:00", End: "12:00"},
		Afternoon: model.TimeSpan{Start: "14:00", End: "18:00"},
	}
}

func TestEditModalSavesBothSpansInOrder(t *testing.T) {
	writer := &fakeWriter{}
	recorder := &fakeRecorder{}
	m := newEditModal("2026-05-04", testSchedule(), writer, recorder)

	m, cmd := m.Update(keyMsg("enter"))
	if cmd == nil {
		t.Fatal("enter did not schedule a save")
	}
	if !m.saving {
		t.Error("modal not marked saving")
	}

	msg := cmd()
	saved, ok := msg.(entrySavedMsg)
	if !ok {
		t.Fatalf("save returned %T, want entrySavedMsg", msg)
	}
	if saved.Err != nil {
		t.Fatalf("save failed: %v", saved.Err)
	}

	want := []string{"2026-05-04 09:00-12:00", "2026-05-04 14:00-18:00"}
	if len(writer.calls) != 2 || writer.calls[0] != want[0] || writer.calls[1] != want[1] {
		t.Errorf("writer calls = %v, want %v", writer.calls, want)
	}
	if len(recorder.rows) != 2 {
		t.Errorf("recorded %d submissions, want 2", len(recorder.rows))
	}

	// Success closes the modal
	m, cmd = m.Update(saved)
	if m.saving {
		t.Error("still saving after entrySavedMsg")
	}
	if cmd == nil {
		t.Fatal("no close command after successful save")
	}
	if _, ok := cmd().(modalClosedMsg); !ok {
		t.Error("successful save did not request close")
	}
}

func TestEditModalDigitAdjustment(t *testing.T) {
	m := newEditModal("2026-05-04", testSchedule(), &fakeWriter{}, nil)

	// Bump the tens-of-hours digit of the morning start: 09:00 -> 19:00
	m, _ = m.Update(keyMsg("up"))
	if got := m.editor.Value(m.editor.Active); got != "19:00" {
		t.Errorf("after up, value = %q, want %q", got, "19:00")
	}

	// Move to units-of-minutes and decrement: 19:00 -> 19:59
	m, _ = m.Update(keyMsg("right"))
	m, _ = m.Update(keyMsg("right"))
	m, _ = m.Update(keyMsg("right"))
	m, _ = m.Update(keyMsg("down"))
	if got := m.editor.Value(m.editor.Active); got != "19:59" {
		t.Errorf("after wraparound, value = %q, want %q", got, "19:59")
	}
}

func TestEditModalAcceptsZeroHourDay(t *testing.T) {
	// start == end on both halves: a valid way to record an empty day.
	schedule := model.WorkSchedule{
		Morning:   model.TimeSpan{Start: "09:00", End: "09:00"},
		Afternoon: model.TimeSpan{Start: "14:00", End: "14:00"},
	}
	writer := &fakeWriter{}
	m := newEditModal("2026-05-04", schedule, writer, nil)

	m, cmd := m.Update(keyMsg("enter"))
	if cmd == nil {
		t.Fatal("zero-hour day did not schedule a save")
	}
	if m.errMsg != "" {
		t.Errorf("unexpected validation message %q", m.errMsg)
	}
	if !m.saving {
		t.Error("modal not marked saving")
	}
	if msg := cmd(); msg.(entrySavedMsg).Err != nil {
		t.Fatalf("save failed: %v", msg.(entrySavedMsg).Err)
	}
	if len(writer.calls) != 2 {
		t.Errorf("writer was called %d times, want 2", len(writer.calls))
	}
}

func TestEditModalIgnoresKeysWhileSaving(t *testing.T) {
	m := newEditModal("2026-05-04", testSchedule(), &fakeWriter{}, nil)
	m, _ = m.Update(keyMsg("enter"))
	if !m.saving {
		t.Fatal("not saving after enter")
	}

	// Escape must not close the dialog mid-save
	m, cmd := m.Update(keyMsg("esc"))
	if cmd != nil {
		t.Error("esc produced a command while saving")
	}
	if !m.saving {
		t.Error("esc cleared the saving state")
	}
}

func TestEditModalKeepsDialogOnFailure(t *testing.T) {
	writer := &fakeWriter{failOn: "2026-05-04"}
	m := newEditModal("2026-05-04", testSchedule(), writer, nil)

	m, cmd := m.Update(keyMsg("enter"))
	msg := cmd()
	m, cmd = m.Update(msg)
	if cmd != nil {
		t.Error("failed save requested close")
	}
	if m.saving {
		t.Error("still saving after failure")
	}
	if m.errMsg == "" {
		t.Error("no error shown after failed save")
	}
}

// drainBulk runs the bulk modal's command chain to completion, feeding each
// day's result back in, the way the program loop would.
func drainBulk(t *testing.T, m bulkModal, cmd tea.Cmd) bulkModal {
	t.Helper()
	for cmd != nil {
		msg := cmd()
		if msg == nil {
			break
		}
		if _, ok := msg.(modalClosedMsg); ok {
			break
		}
		m, cmd = m.Update(msg)
	}
	return m
}

func TestBulkFillSubmitsSequentially(t *testing.T) {
	writer := &fakeWriter{}
	recorder := &fakeRecorder{}
	days := []string{"2026-05-04", "2026-05-05", "2026-05-06"}
	m := newBulkModal("May 2026", days, testSchedule(), writer, recorder, nil)

	m, cmd := m.Update(keyMsg("enter"))
	if m.state != bulkRunning {
		t.Fatalf("state = %v, want running", m.state)
	}
	m = drainBulk(t, m, cmd)

	if m.state != bulkDone {
		t.Fatalf("state = %v, want done", m.state)
	}
	if m.progress != 3 {
		t.Errorf("progress = %d, want 3", m.progress)
	}
	if len(writer.calls) != 6 {
		t.Fatalf("writer calls = %d, want 6", len(writer.calls))
	}
	// Two spans per day, days in calendar order
	if writer.calls[0] != "2026-05-04 09:00-12:00" || writer.calls[5] != "2026-05-06 14:00-18:00" {
		t.Errorf("unexpected call order: %v", writer.calls)
	}
}

func TestBulkFillHaltsOnFailureKeepingEarlierDays(t *testing.T) {
	writer := &fakeWriter{failOn: "2026-05-05"}
	days := []string{"2026-05-04", "2026-05-05", "2026-05-06"}
	m := newBulkModal("May 2026", days, testSchedule(), writer, &fakeRecorder{}, nil)

	m, cmd := m.Update(keyMsg("enter"))
	m = drainBulk(t, m, cmd)

	if m.state != bulkFailed {
		t.Fatalf("state = %v, want failed", m.state)
	}
	if m.progress != 1 {
		t.Errorf("progress = %d, want 1 completed day", m.progress)
	}
	if m.failedAt != "2026-05-05" {
		t.Errorf("failedAt = %q", m.failedAt)
	}
	// The first day's writes stay; the third day was never attempted.
	for _, call := range writer.calls {
		if call[:10] == "2026-05-06" {
			t.Errorf("day after the failure was written: %v", writer.calls)
		}
	}
}

func TestBulkFillEscIgnoredWhileRunning(t *testing.T) {
	days := []string{"2026-05-04"}
	m := newBulkModal("May 2026", days, testSchedule(), &fakeWriter{}, nil, nil)

	m, _ = m.Update(keyMsg("enter"))
	m, cmd := m.Update(keyMsg("esc"))
	if cmd != nil {
		t.Error("esc produced a command mid-run")
	}
	if m.state != bulkRunning {
		t.Errorf("state = %v, want still running", m.state)
	}
}

func TestBulkFillEmptyMonthClosesOnEnter(t *testing.T) {
	m := newBulkModal("May 2026", nil, testSchedule(), &fakeWriter{}, nil, nil)

	_, cmd := m.Update(keyMsg("enter"))
	if cmd == nil {
		t.Fatal("enter on an empty month did nothing")
	}
	if _, ok := cmd().(modalClosedMsg); !ok {
		t.Error("enter on an empty month did not close")
	}
}
