// Package style provides the colors and icons of the driver's terminal output.
package style

import "github.com/charmbracelet/lipgloss"

// Colors.
var (
	Iris   = lipgloss.Color("#8B5CF6")
	Slate  = lipgloss.Color("#667085")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Tilde   = "~"
)

// Banner renders a bold heading in the brand color, e.g. for the usage text.
func Banner(text string) string {
	return lipgloss.NewStyle().Bold(true).Foreground(Iris).Render(text)
}
