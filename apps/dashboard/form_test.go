package dashboard

import (
	"testing"
	"time"

	"github.com/framegrace/texelview/core"
	"github.com/framegrace/texelview/theme"
)

// settingsModel returns a dashboard on the settings tab with focus moved
// off the name input, so toggles and tab-jump keys apply.
func settingsModel() *Model {
	m := New(theme.Empty())
	m.Update(runeKey('4'))
	m.Update(key(core.KeyTab))
	return m
}

func TestFormToggleLiftsIntoSettingsMsg(t *testing.T) {
	m := settingsModel()
	m.Update(key(core.KeyTab)) // region -> alerts

	cmd := m.Update(runeKey(' '))
	if cmd.Kind != core.CommandEmit {
		t.Fatalf("command kind = %v, want emit", cmd.Kind)
	}
	wrapped, ok := cmd.Msg.(SettingsMsg)
	if !ok {
		t.Fatalf("lifted message type = %T, want SettingsMsg", cmd.Msg)
	}
	if got, ok := wrapped.Msg.(FormChangedMsg); !ok || string(got) != "alerts on" {
		t.Fatalf("inner message = %#v, want FormChangedMsg %q", wrapped.Msg, "alerts on")
	}

	m.Update(cmd.Msg)
	if m.flash != "alerts on" {
		t.Fatalf("flash = %q, want %q", m.flash, "alerts on")
	}
	if got := m.hint(); got != "alerts on" {
		t.Fatalf("hint = %q, want the flash text", got)
	}

	m.Update(TickMsg(time.Now()))
	if m.flash != "" {
		t.Fatalf("flash after tick = %q, want empty", m.flash)
	}
}

func TestFormTabRequestSwitchesTab(t *testing.T) {
	m := settingsModel()

	cmd := m.Update(runeKey('2'))
	if cmd.Kind != core.CommandEmit {
		t.Fatalf("command kind = %v, want emit", cmd.Kind)
	}
	m.Update(cmd.Msg)
	if m.tab != tabTasks {
		t.Fatalf("tab = %d, want %d", m.tab, tabTasks)
	}
}

func TestFormQuitPassesThroughLift(t *testing.T) {
	m := settingsModel()
	if cmd := m.Update(runeKey('q')); cmd.Kind != core.CommandQuit {
		t.Fatalf("q: command kind = %v, want quit", cmd.Kind)
	}
	if cmd := m.Update(key(core.KeyEsc)); cmd.Kind != core.CommandQuit {
		t.Fatalf("esc: command kind = %v, want quit", cmd.Kind)
	}
}

func TestFormEmissionsDrainThroughScheduler(t *testing.T) {
	m := settingsModel()
	m.Update(key(core.KeyTab)) // region -> alerts

	if quit := core.ProcessMessage(m, runeKey(' ')); quit {
		t.Fatal("toggling alerts must not quit")
	}
	if m.flash != "alerts on" {
		t.Fatalf("flash = %q, want %q", m.flash, "alerts on")
	}

	if quit := core.ProcessMessage(m, runeKey('q')); !quit {
		t.Fatal("q off the name input should quit")
	}
}

func TestFormRegionSelectionEmitsChange(t *testing.T) {
	m := settingsModel()

	m.Update(key(core.KeyEnter)) // open dropdown
	m.Update(key(core.KeyDown))
	cmd := m.Update(key(core.KeyEnter))
	if cmd.Kind != core.CommandEmit {
		t.Fatalf("command kind = %v, want emit", cmd.Kind)
	}
	m.Update(cmd.Msg)
	if m.flash != "region eu-central" {
		t.Fatalf("flash = %q, want %q", m.flash, "region eu-central")
	}
}
