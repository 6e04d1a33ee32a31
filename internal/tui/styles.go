package tui

import (
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/enotkrutoy/CyberSearch/internal/domain/diagnostic"
)

// Semantic colors shared by both themes.
var (
	colorInfo    = lipgloss.Color("#2196F3")
	colorWarning = lipgloss.Color("#FFC107")
	colorAlert   = lipgloss.Color("#e53935")
	colorSuccess = lipgloss.Color("#8BC34A")
)

// Theme holds the color palette for the panel.
type Theme struct {
	Foreground lipgloss.Color
	Primary    lipgloss.Color
	Accent     lipgloss.Color
	Muted      lipgloss.Color
	Border     lipgloss.Color
	IsDark     bool
}

// DarkTheme returns the palette for dark terminals.
func DarkTheme() Theme {
	return Theme{
		Foreground: lipgloss.Color("#e0e0e0"),
		Primary:    lipgloss.Color("#4FC3F7"),
		Accent:     lipgloss.Color("#CE93D8"),
		Muted:      lipgloss.Color("#757575"),
		Border:     lipgloss.Color("#424242"),
		IsDark:     true,
	}
}

// LightTheme returns the palette for light terminals.
func LightTheme() Theme {
	return Theme{
		Foreground: lipgloss.Color("#212121"),
		Primary:    lipgloss.Color("#0277BD"),
		Accent:     lipgloss.Color("#7B1FA2"),
		Muted:      lipgloss.Color("#9e9e9e"),
		Border:     lipgloss.Color("#bdbdbd"),
		IsDark:     false,
	}
}

// DetectTheme picks the theme from the terminal environment. COLORFGBG
// is set by many terminal emulators as "foreground;background"; a low
// background index means a dark background.
func DetectTheme() Theme {
	if fgbg := os.Getenv("COLORFGBG"); fgbg != "" {
		parts := strings.Split(fgbg, ";")
		if len(parts) >= 2 {
			if bg, err := strconv.Atoi(parts[len(parts)-1]); err == nil {
				if (bg >= 0 && bg <= 6) || bg == 8 {
					return DarkTheme()
				}
				return LightTheme()
			}
		}
	}
	return DarkTheme()
}

// Styles holds the rendered lipgloss styles for every panel element.
type Styles struct {
	Theme Theme

	Title  lipgloss.Style
	Body   lipgloss.Style
	Muted  lipgloss.Style
	Footer lipgloss.Style

	Prompt    lipgloss.Style
	UserInput lipgloss.Style

	Info    lipgloss.Style
	Warn    lipgloss.Style
	Alert   lipgloss.Style
	Success lipgloss.Style

	SliderLabel lipgloss.Style
	SliderBar   lipgloss.Style
	FocusMark   lipgloss.Style

	PrimaryRow lipgloss.Style
	VectorRow  lipgloss.Style
}

// NewStyles builds the style set for a theme.
func NewStyles(theme Theme) Styles {
	return Styles{
		Theme: theme,

		Title: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true),

		Body: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Footer: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Prompt: lipgloss.NewStyle().
			Foreground(theme.Accent).
			Bold(true),

		UserInput: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		Info: lipgloss.NewStyle().
			Foreground(colorInfo),

		Warn: lipgloss.NewStyle().
			Foreground(colorWarning),

		Alert: lipgloss.NewStyle().
			Foreground(colorAlert).
			Bold(true),

		Success: lipgloss.NewStyle().
			Foreground(colorSuccess),

		SliderLabel: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		SliderBar: lipgloss.NewStyle().
			Foreground(theme.Primary),

		FocusMark: lipgloss.NewStyle().
			Foreground(theme.Accent).
			Bold(true),

		PrimaryRow: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true),

		VectorRow: lipgloss.NewStyle().
			Foreground(theme.Muted),
	}
}

// Notice returns the style for one activity log class.
func (s Styles) Notice(class noticeClass) lipgloss.Style {
	switch class {
	case classOK:
		return s.Success
	case classWarn:
		return s.Warn
	case classAlert:
		return s.Alert
	default:
		return s.Info
	}
}

// classify maps a generation diagnostic onto a log class.
func classify(kind diagnostic.Kind) noticeClass {
	switch kind {
	case diagnostic.UnbalancedSyntax, diagnostic.DensityRisk:
		return classWarn
	case diagnostic.PopupBlocked:
		return classAlert
	default:
		return classInfo
	}
}
