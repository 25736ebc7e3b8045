package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/superhero-arcade/internal/storage"
)

func TestScoreboardEmpty(t *testing.T) {
	m := NewScoreboardModel(nil, "superhero", "Super Hero Adventure", 100, 30)

	v := m.View()
	if !strings.Contains(v, "HIGH SCORES - Super Hero Adventure") {
		t.Errorf("missing title in view:\n%s", v)
	}
	if !strings.Contains(v, "No scores recorded yet.") {
		t.Errorf("empty board should say so:\n%s", v)
	}
	if !strings.Contains(v, "no data") {
		t.Errorf("sidebar should show no data without a store:\n%s", v)
	}
}

func TestScoreboardSwitchesView(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "board.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	runs := []storage.RunRecord{
		{GameID: "superhero", Score: 300, Level: 3, Outcome: "win", Ticks: 3600},
		{GameID: "superhero", Score: 80, Level: 1, Outcome: "loss", Ticks: 600},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	m := NewScoreboardModel(store, "superhero", "Super Hero Adventure", 100, 30)
	if len(m.scores) != 2 || len(m.runs) != 2 {
		t.Fatalf("loaded %d scores and %d runs, expected 2 and 2", len(m.scores), len(m.runs))
	}
	if m.stats == nil || m.stats.Wins != 1 || m.stats.Losses != 1 {
		t.Errorf("stats = %+v, expected one win and one loss", m.stats)
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	if m.view != viewRuns {
		t.Fatal("tab should switch to recent runs")
	}
	v := m.View()
	if !strings.Contains(v, "RECENT RUNS") || !strings.Contains(v, "WIN") {
		t.Errorf("runs view missing content:\n%s", v)
	}
	if !strings.Contains(v, "1:00") {
		t.Errorf("run duration should be shown as m:ss:\n%s", v)
	}
}

func TestFormatTicks(t *testing.T) {
	tests := map[int]string{
		0:    "0:00",
		59:   "0:00",
		60:   "0:01",
		3600: "1:00",
		4500: "1:15",
	}
	for ticks, want := range tests {
		if got := formatTicks(ticks); got != want {
			t.Errorf("formatTicks(%d) = %q, expected %q", ticks, got, want)
		}
	}
}

func TestCenterText(t *testing.T) {
	if got := centerText("ab", 6); got != "  ab" {
		t.Errorf("centerText = %q", got)
	}
	if got := centerText("toolong", 3); got != "toolong" {
		t.Errorf("text wider than width should be unchanged, got %q", got)
	}
}
