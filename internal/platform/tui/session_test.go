package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/wakaman/internal/core"
	"github.com/vovakirdan/wakaman/internal/registry"
	"github.com/vovakirdan/wakaman/internal/storage"
)

func init() {
	registry.Register("stub", func() registry.Game { return &stubGame{endAfter: 1} })
}

func sessionUpdate(t *testing.T, m SessionModel, msg tea.Msg) SessionModel {
	t.Helper()
	next, _ := m.Update(msg)
	sm, ok := next.(SessionModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return sm
}

func TestMenuListsMazesWithHighScores(t *testing.T) {
	store := testStore(t)
	store.SaveRun(storage.Run{GameID: "stub", Maze: "box", Score: 260})

	m := NewMenuModel("stub", store, core.RuntimeConfig{ScreenW: 80, ScreenH: 24})
	view := m.View()

	if !strings.Contains(view, "Classic") || !strings.Contains(view, "Box") {
		t.Errorf("menu is missing mazes:\n%s", view)
	}
	if !strings.Contains(view, "best 260") {
		t.Errorf("menu is missing the box high score:\n%s", view)
	}
	if sel := m.items[m.cursor]; sel.MazeID != "classic" {
		t.Errorf("cursor starts on %q, want classic", sel.MazeID)
	}
}

func TestSessionMenuToGameAndBack(t *testing.T) {
	m := NewSessionModel("stub", nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60}, nil, nil)

	m = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.screen != screenGame {
		t.Fatalf("screen = %v, want game", m.screen)
	}

	// The stub ends after one step; back returns to the menu
	m = sessionUpdate(t, m, TickMsg{})
	m = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.screen != screenMenu {
		t.Fatalf("screen = %v, want menu", m.screen)
	}

	m = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.screen != screenScores {
		t.Fatalf("screen = %v, want scores", m.screen)
	}
	if !strings.Contains(m.View(), "HIGH SCORES") {
		t.Error("scoreboard view missing title")
	}

	m = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.screen != screenMenu {
		t.Fatalf("screen = %v, want menu after scoreboard", m.screen)
	}

	m = sessionUpdate(t, m, runeKey('q'))
	if !m.quitting || m.View() != "" {
		t.Error("q should end the session")
	}
}

func TestScoreboardTabs(t *testing.T) {
	store := testStore(t)
	store.SaveRun(storage.Run{GameID: "stub", Maze: "classic", Score: 100, Ticks: 120})
	store.SaveRun(storage.Run{GameID: "stub", Maze: "box", Score: 260, Ticks: 600, Won: true})

	m := NewScoreboardModel("stub", store, 100, 30)
	if len(m.runs) != 2 {
		t.Fatalf("all mazes tab has %d runs, want 2", len(m.runs))
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	if m.tabs[m.cursor].mazeID != "box" || len(m.runs) != 1 {
		t.Errorf("tab %q has %d runs", m.tabs[m.cursor].mazeID, len(m.runs))
	}

	row := scoreRow(1, m.runs[0])
	if row[1] != "260" || row[4] != "10s" || row[5] != "cleared" {
		t.Errorf("row = %v", row)
	}
}
