package common

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var bannerStyle = lipgloss.NewStyle().Bold(true)

// Banner renders a report section title.
func Banner(title string) string {
	return bannerStyle.Render(fmt.Sprintf("======== %s ========", title))
}

// WriteBanner writes a section title surrounded by blank lines.
func WriteBanner(w io.Writer, title string) {
	fmt.Fprintf(w, "\n%s\n\n", Banner(title))
}
