package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/mikey/ceknomor/internal/core"
)

// TextWriter renders plain text for terminals
type TextWriter struct {
	output io.Writer
}

// NewTextWriter creates a TextWriter
func NewTextWriter(output io.Writer) *TextWriter {
	return &TextWriter{output: output}
}

// WriteOutcome renders the result card of one scan
func (w *TextWriter) WriteOutcome(outcome *core.ScanOutcome) error {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Nomor   : %s\n", outcome.Formatted)
	fmt.Fprintf(&sb, "Waktu   : %s\n", outcome.TimeDisplay)
	fmt.Fprintf(&sb, "Risiko  : %s (skor %d)\n", outcome.Result.RiskLabel, outcome.Result.Score)
	sb.WriteString(strings.Repeat("-", 48) + "\n")

	for _, detail := range outcome.Result.Details {
		fmt.Fprintf(&sb, "[%s] %s\n", detail.RiskText, detail.Title)
		fmt.Fprintf(&sb, "    %s\n", detail.Content)
	}

	if outcome.Warning != nil {
		sb.WriteString(strings.Repeat("-", 48) + "\n")
		fmt.Fprintf(&sb, "%s: %s\n", strings.ToUpper(outcome.Warning.Title), outcome.Warning.Message)
		for _, rec := range outcome.Warning.Recommendations {
			fmt.Fprintf(&sb, "  - %s\n", rec)
		}
	}

	_, err := io.WriteString(w.output, sb.String())
	return err
}

// WriteHistory renders the history list, newest first
func (w *TextWriter) WriteHistory(entries []core.HistoryEntry) error {
	var sb strings.Builder

	if len(entries) == 0 {
		sb.WriteString("Belum ada riwayat pengecekan.\n")
	}
	for _, entry := range entries {
		fmt.Fprintf(&sb, "%-15d %-18s %-7s %s %s\n",
			entry.ID, entry.Formatted, entry.Risk.HistoryLabel(), entry.DateDisplay, entry.TimeDisplay)
	}

	_, err := io.WriteString(w.output, sb.String())
	return err
}

// WriteShare renders how a share was delivered
func (w *TextWriter) WriteShare(outcome *core.ShareOutcome) error {
	var sb strings.Builder

	if outcome.Method == core.ShareMethodLink {
		fmt.Fprintf(&sb, "%s\n%s\n", outcome.Prompt, outcome.URL)
	} else {
		fmt.Fprintf(&sb, "%s\n%s\n", outcome.Text, outcome.URL)
	}

	_, err := io.WriteString(w.output, sb.String())
	return err
}

// WriteReport renders the report confirmation
func (w *TextWriter) WriteReport(prompt *core.ReportPrompt) error {
	_, err := fmt.Fprintf(w.output, "%s\n%s\n%s\n", strings.ToUpper(prompt.Title), prompt.Message, prompt.Note)
	return err
}
