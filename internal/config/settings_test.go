package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dori/clockin/internal/model"
)

func TestLoadSettingsMissingFileUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.toml")
	s, err := loadSettingsFrom(path)
	if err != nil {
		t.Fatalf("missing file must not be an error: %v", err)
	}
	if s.WorkSchedule != model.DefaultWorkSchedule() {
		t.Errorf("got %+v, want defaults", s.WorkSchedule)
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.toml")
	want := Settings{WorkSchedule: model.WorkSchedule{
		Morning:   model.TimeSpan{Start: "08:30", End: "12:30"},
		Afternoon: model.TimeSpan{Start: "13:30", End: "17:00"},
	}}
	if err := saveSettingsTo(path, want); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := loadSettingsFrom(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.WorkSchedule != want.WorkSchedule {
		t.Errorf("got %+v, want %+v", got.WorkSchedule, want.WorkSchedule)
	}
}

func TestLoadSettingsMergesPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.toml")
	partial := `[work_schedule.morning]
start = "08:00"
`
	if err := os.WriteFile(path, []byte(partial), 0o600); err != nil {
		t.Fatal(err)
	}
	s, err := loadSettingsFrom(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if s.WorkSchedule.Morning.Start != "08:00" {
		t.Errorf("overridden field = %q, want 08:00", s.WorkSchedule.Morning.Start)
	}
	if s.WorkSchedule.Morning.End != "12:00" || s.WorkSchedule.Afternoon.Start != "14:00" {
		t.Errorf("unset fields should keep defaults, got %+v", s.WorkSchedule)
	}
}
