// Package theme holds the colours, styles and glyphs shared by every renderer.
package theme

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
)

// Color palette
var (
	ColorPrimary   = lipgloss.Color("#6C63FF")
	ColorCyan      = lipgloss.Color("#2EC4B6")
	ColorBlue      = lipgloss.Color("#7AA2F7")
	ColorMuted     = lipgloss.Color("#666666")
	ColorSuccess   = lipgloss.Color("#2ECC71")
	ColorWarning   = lipgloss.Color("#F39C12")
	ColorError     = lipgloss.Color("#E74C3C")
	ColorFg        = lipgloss.Color("#C0CAF5")
	ColorSubtle    = lipgloss.Color("#414868")
	ColorHighlight = lipgloss.Color("#7AA2F7")
)

// Item status glyphs.
const (
	GlyphPending    = "☐"
	GlyphInProgress = "∴"
	GlyphComplete   = "✓"
	GlyphNote       = "●"
	GlyphStar       = "٭"
	GlyphError      = "✖"
)

var (
	Pending    = lipgloss.NewStyle().Foreground(ColorCyan)
	InProgress = lipgloss.NewStyle().Foreground(ColorBlue)
	Complete   = lipgloss.NewStyle().Foreground(ColorSuccess)
	Note       = lipgloss.NewStyle().Foreground(ColorBlue)
	Star       = lipgloss.NewStyle().Foreground(ColorWarning)

	// Priority markers
	Medium = lipgloss.NewStyle().Foreground(ColorWarning)
	High   = lipgloss.NewStyle().Foreground(ColorError)

	Success   = lipgloss.NewStyle().Foreground(ColorSuccess)
	Error     = lipgloss.NewStyle().Foreground(ColorError)
	Dim       = lipgloss.NewStyle().Faint(true)
	Underline = lipgloss.NewStyle().Underline(true)
)

// CheckMark is the prefix of every successful operation message.
func CheckMark() string {
	return Success.Render(GlyphComplete)
}

// ErrorMark is the prefix of every failed operation message.
func ErrorMark() string {
	return Error.Render(GlyphError)
}

// ErrorLine renders err as a failed operation message with its first
// letter capitalised.
func ErrorLine(err error) string {
	msg := err.Error()
	if r, size := utf8.DecodeRuneInString(msg); r != utf8.RuneError {
		msg = string(unicode.ToUpper(r)) + msg[size:]
	}
	return " " + ErrorMark() + " " + msg
}

// DoneLine renders a successful operation message listing the ids it
// touched.
func DoneLine(label string, ids ...string) string {
	return " " + CheckMark() + " " + label + ": " + Dim.Render(strings.Join(ids, ", "))
}
