package report

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/mikey/ceknomor/internal/core"
)

// Output formats
const (
	FormatText     = "text"
	FormatJSON     = "json"
	FormatYAML     = "yaml"
	FormatMarkdown = "markdown"
)

// ErrUnknownFormat is returned by NewWriter for unsupported formats
var ErrUnknownFormat = errors.New("unknown report format")

// Writer renders scan outcomes, history, share outcomes and report prompts
type Writer interface {
	WriteOutcome(outcome *core.ScanOutcome) error
	WriteHistory(entries []core.HistoryEntry) error
	WriteShare(outcome *core.ShareOutcome) error
	WriteReport(prompt *core.ReportPrompt) error
}

// NewWriter returns the writer for format, writing to output
func NewWriter(format string, output io.Writer) (Writer, error) {
	switch strings.ToLower(format) {
	case "", FormatText:
		return NewTextWriter(output), nil
	case FormatJSON:
		return NewJSONWriter(output), nil
	case FormatYAML, "yml":
		return NewYAMLWriter(output), nil
	case FormatMarkdown, "md":
		return NewMarkdownWriter(output), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, format)
	}
}
