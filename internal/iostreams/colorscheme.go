package iostreams

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/FxamarAboali/mansect/internal/tui"
)

// ColorScheme renders status colors and icons on top of tui/styles.go.
// When colors are disabled, color methods return their input unchanged and
// icons degrade to bracketed ASCII tags, so piped output stays grep-able.
type ColorScheme struct {
	enabled bool
	theme   string // "light", "dark", "none"
}

// NewColorScheme creates a new ColorScheme.
// If enabled is false, all color methods return unmodified strings.
// Theme can be "light", "dark", or "none".
func NewColorScheme(enabled bool, theme string) *ColorScheme {
	if theme == "" {
		theme = "dark"
	}
	return &ColorScheme{
		enabled: enabled,
		theme:   theme,
	}
}

// Enabled returns whether colors are enabled.
func (cs *ColorScheme) Enabled() bool {
	return cs.enabled
}

// Theme returns the current terminal theme.
func (cs *ColorScheme) Theme() string {
	return cs.theme
}

// render applies a lipgloss style if colors are enabled.
func (cs *ColorScheme) render(style lipgloss.Style, s string) string {
	if !cs.enabled {
		return s
	}
	return style.Render(s)
}

// Red returns the string in red (error color).
func (cs *ColorScheme) Red(s string) string {
	return cs.render(tui.ErrorStyle, s)
}

// Green returns the string in green (success color).
func (cs *ColorScheme) Green(s string) string {
	return cs.render(tui.SuccessStyle, s)
}

// Yellow returns the string in yellow (warning color).
func (cs *ColorScheme) Yellow(s string) string {
	return cs.render(tui.WarningStyle, s)
}

// Cyan returns the string in cyan (info color).
func (cs *ColorScheme) Cyan(s string) string {
	return cs.render(tui.InfoStyle, s)
}

// Bold returns the string in bold.
func (cs *ColorScheme) Bold(s string) string {
	return cs.render(tui.BoldStyle, s)
}

// Muted returns the string in muted/gray color.
func (cs *ColorScheme) Muted(s string) string {
	return cs.render(tui.MutedStyle, s)
}

// icon renders a status glyph, optionally followed by text colored along
// with it. When colors are disabled the bracketed tag stands in for the
// glyph so the status still reads in plain output.
func (cs *ColorScheme) icon(color func(string) string, glyph, tag, text string) string {
	if cs.enabled {
		if text == "" {
			return color(glyph)
		}
		return color(glyph + " " + text)
	}
	if text == "" {
		return tag
	}
	return tag + " " + text
}

// SuccessIcon returns a success indicator.
// With colors: green ✓
// Without colors: [ok]
func (cs *ColorScheme) SuccessIcon() string {
	return cs.icon(cs.Green, "✓", "[ok]", "")
}

// SuccessIconWithColor returns a success indicator with custom text.
func (cs *ColorScheme) SuccessIconWithColor(text string) string {
	return cs.icon(cs.Green, "✓", "[ok]", text)
}

// WarningIcon returns a warning indicator.
// With colors: yellow !
// Without colors: [warn]
func (cs *ColorScheme) WarningIcon() string {
	return cs.icon(cs.Yellow, "!", "[warn]", "")
}

// WarningIconWithColor returns a warning indicator with custom text.
func (cs *ColorScheme) WarningIconWithColor(text string) string {
	return cs.icon(cs.Yellow, "!", "[warn]", text)
}

// FailureIcon returns a failure indicator.
// With colors: red ✗
// Without colors: [error]
func (cs *ColorScheme) FailureIcon() string {
	return cs.icon(cs.Red, "✗", "[error]", "")
}

// FailureIconWithColor returns a failure indicator with custom text.
func (cs *ColorScheme) FailureIconWithColor(text string) string {
	return cs.icon(cs.Red, "✗", "[error]", text)
}

// InfoIcon returns an info indicator.
// With colors: cyan ℹ
// Without colors: [info]
func (cs *ColorScheme) InfoIcon() string {
	return cs.icon(cs.Cyan, "ℹ", "[info]", "")
}

// InfoIconWithColor returns an info indicator with custom text.
func (cs *ColorScheme) InfoIconWithColor(text string) string {
	return cs.icon(cs.Cyan, "ℹ", "[info]", text)
}
