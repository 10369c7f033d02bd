// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: widgets/formfield.go
// Summary: Label-above, footer-below wrapper for a form control. The
// footer shows the error text when set, otherwise the help text.

package widgets

import (
	"github.com/framegrace/texelview/core"
	"github.com/framegrace/texelview/theme"
)

// FormFieldStyle groups the styles of a form field wrapper.
type FormFieldStyle struct {
	Base  core.Style
	Label core.Style
	Help  core.Style
	Error core.Style
}

// FormFieldStyleFromTheme resolves the field.* tokens.
func FormFieldStyleFromTheme(th *theme.Theme) FormFieldStyle {
	return FormFieldStyle{
		Label: th.StyleOr("field.label", core.Style{FG: core.ANSI(252)}),
		Help:  th.StyleOr("field.help", core.Style{FG: core.ANSI(244)}),
		Error: th.StyleOr("field.error", core.Style{FG: core.ANSI(196)}),
	}
}

// FormField reserves the first row for its label and the last row for a
// footer, handing the rows between to the wrapped control. The error
// text displaces the help text; an empty string means unset.
type FormField struct {
	label      string
	helpText   string
	errorText  string
	style      core.Style
	labelStyle *core.Style
	helpStyle  *core.Style
	errorStyle *core.Style
	padding    core.Padding
	margin     core.Padding
}

func NewFormField(label string) FormField {
	return FormField{label: label}
}

func (ff FormField) HelpText(text string) FormField {
	ff.helpText = text
	return ff
}

func (ff FormField) ErrorText(text string) FormField {
	ff.errorText = text
	return ff
}

func (ff FormField) Style(s core.Style) FormField {
	ff.style = s
	return ff
}

func (ff FormField) LabelStyle(s core.Style) FormField {
	ff.labelStyle = &s
	return ff
}

func (ff FormField) HelpStyle(s core.Style) FormField {
	ff.helpStyle = &s
	return ff
}

func (ff FormField) ErrorStyle(s core.Style) FormField {
	ff.errorStyle = &s
	return ff
}

func (ff FormField) Padding(p core.Padding) FormField {
	ff.padding = p
	return ff
}

func (ff FormField) Margin(m core.Padding) FormField {
	ff.margin = m
	return ff
}

func (ff FormField) Render(f *core.Frame, area core.Rect, renderControl func(*core.Frame, core.Rect)) {
	area = ff.padding.Apply(ff.margin.Apply(area))
	if area.IsEmpty() {
		return
	}

	labelStyle := orStyle(ff.labelStyle, ff.style)
	helpStyle := orStyle(ff.helpStyle, ff.style)
	errorStyle := orStyle(ff.errorStyle, ff.style)

	f.RenderIn(area, func(f *core.Frame) {
		f.PrintStyled(0, 0, truncateToWidth(ff.label, area.Width), labelStyle)

		footer, footerStyle := ff.helpText, helpStyle
		if ff.errorText != "" {
			footer, footerStyle = ff.errorText, errorStyle
		}
		footerRows := 0
		if footer != "" {
			footerRows = 1
		}

		controlHeight := area.Height - 1 - footerRows
		if controlHeight > 0 {
			renderControl(f, core.NewRect(0, 1, area.Width, controlHeight))
		}

		if footer != "" {
			f.PrintStyled(0, area.Height-1, truncateToWidth(footer, area.Width), footerStyle)
		}
	})
}
