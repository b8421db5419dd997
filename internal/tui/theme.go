package tui

import (
	"context"

	"github.com/MKhiriev/doc-vault/internal/gate"
	"github.com/charmbracelet/lipgloss"
)

const (
	themeKey   = "theme"
	themeLight = "light"
	themeDark  = "dark"
)

// Theme is the palette every model renders with. It is passed down the
// model tree by value.
type Theme struct {
	Name string

	App      lipgloss.Style
	Title    lipgloss.Style
	Help     lipgloss.Style
	Error    lipgloss.Style
	Notice   lipgloss.Style
	Selected lipgloss.Style
	Online   lipgloss.Style
	Offline  lipgloss.Style
	Box      lipgloss.Style
}

func newTheme(name string, fg, accent, muted, danger, ok lipgloss.Color) Theme {
	return Theme{
		Name:     name,
		App:      lipgloss.NewStyle().Padding(1, 2).Foreground(fg),
		Title:    lipgloss.NewStyle().Bold(true).Foreground(accent),
		Help:     lipgloss.NewStyle().Foreground(muted),
		Error:    lipgloss.NewStyle().Bold(true).Foreground(danger),
		Notice:   lipgloss.NewStyle().Foreground(accent),
		Selected: lipgloss.NewStyle().Bold(true).Foreground(accent),
		Online:   lipgloss.NewStyle().Foreground(ok),
		Offline:  lipgloss.NewStyle().Foreground(danger),
		Box:      lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(accent).Padding(1, 2),
	}
}

func LightTheme() Theme {
	return newTheme(themeLight, "#1f2328", "#0969da", "#6e7781", "#cf222e", "#1a7f37")
}

func DarkTheme() Theme {
	return newTheme(themeDark, "#e6edf3", "#58a6ff", "#8b949e", "#f85149", "#3fb950")
}

// ThemeByName falls back to the light theme for unknown names.
func ThemeByName(name string) Theme {
	if name == themeDark {
		return DarkTheme()
	}
	return LightTheme()
}

// Toggled returns the other palette.
func (t Theme) Toggled() Theme {
	if t.Name == themeDark {
		return LightTheme()
	}
	return DarkTheme()
}

// LoadTheme reads the persisted theme. Read failures give the light theme.
func LoadTheme(ctx context.Context, secrets gate.SecretStore) Theme {
	name, ok, err := secrets.Get(ctx, themeKey)
	if err != nil || !ok {
		return LightTheme()
	}
	return ThemeByName(name)
}

func SaveTheme(ctx context.Context, secrets gate.SecretStore, t Theme) error {
	return secrets.Set(ctx, themeKey, t.Name)
}
