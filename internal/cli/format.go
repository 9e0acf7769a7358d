package cli

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

var (
	matchStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "28", Dark: "10"})

	noMatchStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "124", Dark: "9"})
)

// styled renders s with the given style when stdout is a terminal, and
// returns it untouched when output is piped or redirected.
func styled(style lipgloss.Style, s string) string {
	fd := os.Stdout.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		return s
	}
	return style.Render(s)
}
