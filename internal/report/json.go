package report

import (
	"encoding/json"
	"io"

	"github.com/mikey/ceknomor/internal/core"
)

// JSONWriter renders indented JSON, one document per call
type JSONWriter struct {
	encoder *json.Encoder
}

// NewJSONWriter creates a JSONWriter
func NewJSONWriter(output io.Writer) *JSONWriter {
	encoder := json.NewEncoder(output)
	encoder.SetIndent("", "  ")
	return &JSONWriter{encoder: encoder}
}

// WriteOutcome renders one scan
func (w *JSONWriter) WriteOutcome(outcome *core.ScanOutcome) error {
	return w.encoder.Encode(outcome)
}

// WriteHistory renders the history as an array; empty history is []
func (w *JSONWriter) WriteHistory(entries []core.HistoryEntry) error {
	if entries == nil {
		entries = []core.HistoryEntry{}
	}
	return w.encoder.Encode(entries)
}

// WriteShare renders a share outcome
func (w *JSONWriter) WriteShare(outcome *core.ShareOutcome) error {
	return w.encoder.Encode(outcome)
}

// WriteReport renders a report prompt
func (w *JSONWriter) WriteReport(prompt *core.ReportPrompt) error {
	return w.encoder.Encode(prompt)
}
