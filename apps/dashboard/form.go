// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: apps/dashboard/form.go
// Summary: The settings tab as a self-contained component. The parent
// forwards key messages and lifts the form's commands into SettingsMsg
// with Command.Map; quit commands pass through the lift unchanged.

package dashboard

import (
	"github.com/framegrace/texelview/core"
	"github.com/framegrace/texelview/widgets"
)

// FormChangedMsg announces a committed change, phrased for the status
// line.
type FormChangedMsg string

// FormTabMsg asks the parent to switch to the given tab index.
type FormTabMsg int

// field identifies one control on the settings form.
type field uint8

const (
	fieldName field = iota
	fieldRegion
	fieldAlerts
	fieldVolume
	fieldAutostart
	fieldRetries
	fieldCount
)

var regions = []string{"eu-west", "eu-central", "us-east", "ap-south"}

// Form owns the settings controls: focus, the name input, the region
// dropdown and the toggles. It never touches the parent's state; every
// outward effect is an emitted message.
type Form struct {
	styles *styleSet

	focus      field
	name       string
	nameCur    int
	region     int
	regionHL   int
	regionOpen bool
	alerts     bool
	volume     int
	autostart  bool
	retries    int
}

var _ core.Component = (*Form)(nil)

func newForm(styles *styleSet) *Form {
	return &Form{styles: styles, region: -1, volume: 40}
}

func (w *Form) Update(msg core.Msg) core.Command {
	if key, ok := msg.(KeyMsg); ok {
		return w.handleKey(core.KeyEvent(key))
	}
	return core.None()
}

// handleKey routes keys within the form. The name input owns printable
// runes while focused, so quit and tab-jump keys only apply once focus
// moves elsewhere.
func (w *Form) handleKey(ev core.KeyEvent) core.Command {
	if w.focus == fieldName && !w.regionOpen {
		if value, cursor, ok := widgets.ApplyKey(w.name, w.nameCur, ev); ok {
			w.name, w.nameCur = value, cursor
			return core.None()
		}
	}

	if w.regionOpen {
		switch ev.Key {
		case core.KeyUp:
			w.regionHL = clamp(w.regionHL-1, 0, len(regions)-1)
		case core.KeyDown:
			w.regionHL = clamp(w.regionHL+1, 0, len(regions)-1)
		case core.KeyEnter:
			w.region = w.regionHL
			w.regionOpen = false
			return core.Emit(FormChangedMsg("region " + regions[w.region]))
		case core.KeyEsc:
			w.regionOpen = false
		}
		return core.None()
	}

	switch ev.Key {
	case core.KeyTab, core.KeyDown:
		w.focus = (w.focus + 1) % fieldCount
	case core.KeyUp:
		w.focus = (w.focus + fieldCount - 1) % fieldCount
	case core.KeyLeft:
		w.adjust(-1)
	case core.KeyRight:
		w.adjust(1)
	case core.KeyEnter:
		return w.activate()
	case core.KeyEsc:
		return core.Quit()
	case core.KeyRune:
		switch ev.Rune {
		case ' ':
			return w.activate()
		case 'q':
			return core.Quit()
		case '1', '2', '3', '4':
			return core.Emit(FormTabMsg(int(ev.Rune - '1')))
		}
	}
	return core.None()
}

// adjust nudges the focused control left or right.
func (w *Form) adjust(delta int) {
	switch w.focus {
	case fieldRegion:
		if w.region < 0 {
			w.region = 0
		} else {
			w.region = (w.region + delta + len(regions)) % len(regions)
		}
		w.regionHL = w.region
	case fieldVolume:
		w.volume = clamp(w.volume+5*delta, 0, 100)
	case fieldAutostart:
		w.autostart = delta > 0
	case fieldRetries:
		w.retries = clamp(w.retries+delta, 0, 9)
	}
}

// activate toggles or opens the focused control.
func (w *Form) activate() core.Command {
	switch w.focus {
	case fieldRegion:
		w.regionOpen = true
		w.regionHL = max(w.region, 0)
	case fieldAlerts:
		w.alerts = !w.alerts
		return core.Emit(FormChangedMsg(onOff("alerts", w.alerts)))
	case fieldAutostart:
		w.autostart = !w.autostart
		return core.Emit(FormChangedMsg(onOff("autostart", w.autostart)))
	}
	return core.None()
}

func onOff(name string, on bool) string {
	if on {
		return name + " on"
	}
	return name + " off"
}

func (w *Form) View(f *core.Frame, area core.Rect) {
	regionRows := 2
	if w.regionOpen {
		regionRows += len(regions)
	}

	widgets.NewPanel("settings").
		Styles(w.styles.panel).
		Padding(core.Padding{Left: 1, Right: 1}).
		Render(f, area, func(f *core.Frame, inner core.Rect) {
			lay := core.Split("form", core.Vertical,
				core.NewSlot(core.Fixed(3), core.Leaf("name")),
				core.NewSlot(core.Fixed(regionRows), core.Leaf("region")),
				core.NewSlot(core.Fixed(2), core.Leaf("alerts")),
				core.NewSlot(core.Fixed(3), core.Leaf("volume")),
				core.NewSlot(core.Fixed(2), core.Leaf("autostart")),
				core.NewSlot(core.Fixed(2), core.Leaf("retries")),
				core.NewSlot(core.Fill(), core.Leaf("rest")),
			).Resolve(inner)

			if a, ok := lay.Area("name"); ok {
				w.formField("operator", fieldName).
					HelpText("shown on the status line of shared sessions").
					Render(f, a, func(f *core.Frame, ctl core.Rect) {
						widgets.NewInput().
							Value(w.name).
							Cursor(w.nameCur).
							Placeholder("your name").
							Focused(w.focus == fieldName).
							Style(w.styles.input.Base).
							FocusStyle(w.styles.input.Focus).
							PlaceholderStyle(w.styles.input.Placeholder).
							CursorStyle(w.styles.input.Cursor).
							Render(f, ctl)
					})
			}
			if a, ok := lay.Area("region"); ok {
				w.formField("region", fieldRegion).
					Render(f, a, func(f *core.Frame, ctl core.Rect) {
						widgets.NewSelect(regions...).
							Selected(w.region).
							Highlighted(w.regionHL).
							Expanded(w.regionOpen).
							Placeholder("choose region").
							Style(w.styles.selector.Base).
							SelectedStyle(w.styles.selector.Selected).
							DropdownStyle(w.styles.selector.Dropdown).
							HighlightStyle(w.styles.selector.Highlight).
							Render(f, ctl)
					})
			}
			if a, ok := lay.Area("alerts"); ok {
				w.formField("alerts", fieldAlerts).
					Render(f, a, func(f *core.Frame, ctl core.Rect) {
						widgets.NewCheckbox("notify on failures").
							Checked(w.alerts).
							Focused(w.focus == fieldAlerts).
							Style(w.styles.checkbox.Base).
							CheckedStyle(w.styles.checkbox.Checked).
							BoxStyle(w.styles.checkbox.Box).
							FocusStyle(w.styles.checkbox.Focus).
							Render(f, ctl)
					})
			}
			if a, ok := lay.Area("volume"); ok {
				w.formField("bell volume", fieldVolume).
					HelpText("left/right adjusts in steps of five").
					Render(f, a, func(f *core.Frame, ctl core.Rect) {
						widgets.NewSlider(0, 100).
							Value(w.volume).
							Focused(w.focus == fieldVolume).
							Style(w.styles.slider.Base).
							TrackStyle(w.styles.slider.Track).
							FillStyle(w.styles.slider.Fill).
							ThumbStyle(w.styles.slider.Thumb).
							FocusStyle(w.styles.slider.Focus).
							Render(f, ctl)
					})
			}
			if a, ok := lay.Area("autostart"); ok {
				w.formField("autostart", fieldAutostart).
					Render(f, a, func(f *core.Frame, ctl core.Rect) {
						widgets.NewSwitch().
							On(w.autostart).
							Focused(w.focus == fieldAutostart).
							Style(w.styles.toggle.Base).
							OnStyle(w.styles.toggle.On).
							OffStyle(w.styles.toggle.Off).
							ThumbStyle(w.styles.toggle.Thumb).
							FocusStyle(w.styles.toggle.Focus).
							Render(f, ctl)
					})
			}
			if a, ok := lay.Area("retries"); ok {
				w.formField("reconnect retries", fieldRetries).
					Render(f, a, func(f *core.Frame, ctl core.Rect) {
						widgets.NewStepper(0, 9).
							Value(w.retries).
							Focused(w.focus == fieldRetries).
							Style(w.styles.stepper.Base).
							ValueStyle(w.styles.stepper.Value).
							ControlsStyle(w.styles.stepper.Controls).
							FocusStyle(w.styles.stepper.Focus).
							Render(f, ctl)
					})
			}
		})
}

// formField builds a labelled field, marking the focused one.
func (w *Form) formField(label string, id field) widgets.FormField {
	ff := widgets.NewFormField(label).
		Style(w.styles.form.Base).
		LabelStyle(w.styles.form.Label).
		HelpStyle(w.styles.form.Help).
		ErrorStyle(w.styles.form.Error)
	if w.focus == id {
		ff = ff.LabelStyle(w.styles.form.Label.With(core.ModReverse))
	}
	return ff
}
