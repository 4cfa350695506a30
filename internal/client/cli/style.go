package cli

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/dmitrijs2005/imagefeed/internal/client/bootstrap"
)

// styles are bound to the App's output so colors are only emitted on a
// terminal.
type styles struct {
	alert lipgloss.Style
	title lipgloss.Style
	link  lipgloss.Style
}

func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		alert: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#f38ba8")).
			Padding(0, 1),
		title: r.NewStyle().Bold(true),
		link:  r.NewStyle().Foreground(lipgloss.Color("#89b4fa")).Underline(true),
	}
}

func (s styles) renderAlert(alert bootstrap.Alert) string {
	return s.alert.Render(s.title.Render(alert.Title) + "\n" + alert.Message)
}
