package commands

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/equip/internal/core/domain"
	"go.trai.ch/equip/internal/ui/output"
	"go.trai.ch/equip/internal/ui/style"
)

// failureHeader opens every failure report.
const failureHeader = "an error occurred while trying to process your request"

// reportFailure writes the failure report for err to w and returns
// domain.ErrRequestFailed, telling the caller the error was already shown.
func reportFailure(w io.Writer, err error) error {
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(output.ColorProfile(w))
	header := r.NewStyle().Foreground(style.Red).Render(failureHeader)

	_, _ = fmt.Fprintf(w, "%s\n\n%s\n", header, err.Error())
	return domain.ErrRequestFailed
}
