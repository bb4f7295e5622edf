package report

import (
	"io"

	"github.com/mikey/ceknomor/internal/core"
	"gopkg.in/yaml.v3"
)

// YAMLWriter renders YAML documents
type YAMLWriter struct {
	output io.Writer
}

// NewYAMLWriter creates a YAMLWriter
func NewYAMLWriter(output io.Writer) *YAMLWriter {
	return &YAMLWriter{output: output}
}

// WriteOutcome renders one scan
func (w *YAMLWriter) WriteOutcome(outcome *core.ScanOutcome) error {
	return w.encode(outcome)
}

// WriteHistory renders the history as a sequence
func (w *YAMLWriter) WriteHistory(entries []core.HistoryEntry) error {
	if entries == nil {
		entries = []core.HistoryEntry{}
	}
	return w.encode(entries)
}

// WriteShare renders a share outcome
func (w *YAMLWriter) WriteShare(outcome *core.ShareOutcome) error {
	return w.encode(outcome)
}

// WriteReport renders a report prompt
func (w *YAMLWriter) WriteReport(prompt *core.ReportPrompt) error {
	return w.encode(prompt)
}

func (w *YAMLWriter) encode(v interface{}) error {
	encoder := yaml.NewEncoder(w.output)
	encoder.SetIndent(2)
	if err := encoder.Encode(v); err != nil {
		return err
	}
	return encoder.Close()
}
