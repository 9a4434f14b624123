// Package banner renders the title printed before a subcommand runs.
package banner

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/equip/internal/ui/output"
	"go.trai.ch/equip/internal/ui/style"
)

// Title is the first banner line.
const Title = "Equip - The developers equipment toolbox"

// Print writes the banner to w, colored when w is a color-capable terminal.
func Print(w io.Writer) error {
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(output.ColorProfile(w))
	_, err := io.WriteString(w, Render(r))
	return err
}

// Render returns the banner text styled with the given renderer.
func Render(r *lipgloss.Renderer) string {
	title := r.NewStyle().Foreground(style.Iris).Bold(true).Render(Title)
	rule := r.NewStyle().Foreground(style.Slate).Render(strings.Repeat("-", len(Title)))
	return title + "\n" + rule + "\n\n"
}
