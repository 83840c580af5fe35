package cmd

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ardnew/tictoc/demo"
	"github.com/ardnew/tictoc/prof"
)

func newTestWatchModel(t *testing.T) (watchModel, *prof.Profiler, *bool) {
	t.Helper()

	var now int64

	p := prof.New(prof.WithClock(func() int64 { now += 10; return now }))
	p.Enable()

	canceled := new(bool)
	m := newWatchModel(p, func() { *canceled = true }, nil)

	return m, p, canceled
}

func TestWatchModel_TickRefreshesTable(t *testing.T) {
	m, p, _ := newTestWatchModel(t)

	p.Toggle(demo.RecRegion)
	p.Toggle(demo.RecRegion)
	p.Toggle(demo.LinearRegion)

	next, cmd := m.Update(watchTickMsg{})
	m = next.(watchModel)

	if cmd == nil {
		t.Error("tick while running should schedule another tick")
	}

	rows := m.table.Rows()
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1 (open entries are excluded)", len(rows))
	}

	if rows[0][0] != demo.RecRegion || rows[0][1] != "1" {
		t.Errorf("row = %v", rows[0])
	}

	if !strings.Contains(m.View(), "running") {
		t.Errorf("view should report running:\n%s", m.View())
	}
}

func TestWatchModel_DoneQuits(t *testing.T) {
	m, p, _ := newTestWatchModel(t)

	res, err := demo.Run(context.Background(), p, 8)
	if err != nil {
		t.Fatal(err)
	}

	next, cmd := m.Update(watchDoneMsg{res: res})
	m = next.(watchModel)

	if cmd == nil {
		t.Fatal("done should return a quit command")
	}

	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("done should quit the program")
	}

	if m.result != res || m.err != nil {
		t.Errorf("result = %+v, %v", m.result, m.err)
	}

	if len(m.table.Rows()) != 2 {
		t.Errorf("got %d rows, want 2", len(m.table.Rows()))
	}

	view := m.View()
	for _, s := range []string{"done", demo.RecRegion, demo.LinearRegion} {
		if !strings.Contains(view, s) {
			t.Errorf("view missing %q:\n%s", s, view)
		}
	}

	if _, cmd = m.Update(watchTickMsg{}); cmd != nil {
		t.Error("tick after done should not reschedule")
	}
}

func TestWatchModel_QuitKeyCancels(t *testing.T) {
	for _, key := range []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune{'q'}},
		{Type: tea.KeyCtrlC},
		{Type: tea.KeyEsc},
	} {
		t.Run(key.String(), func(t *testing.T) {
			m, _, canceled := newTestWatchModel(t)

			next, cmd := m.Update(key)
			m = next.(watchModel)

			if !*canceled || !m.aborted {
				t.Error("quit key should cancel the workload")
			}

			if cmd != nil {
				t.Error("quit key should wait for the workload to return")
			}

			if !strings.Contains(m.View(), "stopping") {
				t.Errorf("view should report stopping:\n%s", m.View())
			}

			next, _ = m.Update(watchDoneMsg{err: context.Canceled})
			m = next.(watchModel)

			if !errors.Is(m.err, context.Canceled) {
				t.Errorf("err = %v, want %v", m.err, context.Canceled)
			}
		})
	}
}

func TestWatchModel_OtherKeysIgnored(t *testing.T) {
	m, _, canceled := newTestWatchModel(t)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
	if next.(watchModel).aborted || *canceled {
		t.Error("unrelated key should not cancel")
	}
}
