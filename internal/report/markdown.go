package report

import (
	"io"
	"strconv"

	"github.com/mikey/ceknomor/internal/core"
	"github.com/nao1215/markdown"
)

// MarkdownWriter renders GitHub flavoured Markdown
type MarkdownWriter struct {
	output io.Writer
}

// NewMarkdownWriter creates a MarkdownWriter
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{output: output}
}

// WriteOutcome renders one scan with its details table and advisory
func (w *MarkdownWriter) WriteOutcome(outcome *core.ScanOutcome) error {
	md := markdown.NewMarkdown(w.output)

	md.H1("Hasil Cek Nomor " + outcome.Formatted)
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Properti", "Nilai"},
		Rows: [][]string{
			{"Nomor", "`" + outcome.Formatted + "`"},
			{"Waktu", outcome.TimeDisplay},
			{"Risiko", "**" + outcome.Result.RiskLabel + "**"},
			{"Skor", strconv.Itoa(outcome.Result.Score)},
		},
	})
	md.PlainText("")

	md.H2("Detail")
	md.PlainText("")

	rows := make([][]string, len(outcome.Result.Details))
	for i, detail := range outcome.Result.Details {
		rows[i] = []string{detail.Title, detail.RiskText, detail.Content}
	}
	md.Table(markdown.TableSet{
		Header: []string{"Aspek", "Status", "Keterangan"},
		Rows:   rows,
	})
	md.PlainText("")

	switch outcome.Result.OverallRisk {
	case core.RiskHigh:
		if outcome.Warning != nil {
			md.Warningf("%s", outcome.Warning.Message)
			md.PlainText("")
			md.BulletList(outcome.Warning.Recommendations...)
		}
	case core.RiskMedium:
		md.Importantf("Risiko %s. Tetap berhati-hati.", outcome.Result.RiskLabel)
	default:
		md.Tip("Tidak ada indikasi penipuan yang signifikan.")
	}
	md.PlainText("")

	return md.Build()
}

// WriteHistory renders the history as a table
func (w *MarkdownWriter) WriteHistory(entries []core.HistoryEntry) error {
	md := markdown.NewMarkdown(w.output)

	md.H1("Riwayat Pengecekan")
	md.PlainText("")

	if len(entries) == 0 {
		md.PlainText("Belum ada riwayat pengecekan.")
		return md.Build()
	}

	rows := make([][]string, len(entries))
	for i, entry := range entries {
		rows[i] = []string{
			strconv.FormatInt(entry.ID, 10),
			"`" + entry.Formatted + "`",
			entry.Risk.HistoryLabel(),
			entry.DateDisplay,
			entry.TimeDisplay,
		}
	}
	md.Table(markdown.TableSet{
		Header: []string{"ID", "Nomor", "Risiko", "Tanggal", "Jam"},
		Rows:   rows,
	})

	return md.Build()
}

// WriteShare renders a share outcome
func (w *MarkdownWriter) WriteShare(outcome *core.ShareOutcome) error {
	md := markdown.NewMarkdown(w.output)

	if outcome.Method == core.ShareMethodLink {
		md.Note(outcome.Prompt)
	} else {
		md.PlainText(outcome.Text)
	}
	md.PlainText("")
	md.PlainText(outcome.URL)

	return md.Build()
}

// WriteReport renders the report confirmation as a caution block
func (w *MarkdownWriter) WriteReport(prompt *core.ReportPrompt) error {
	md := markdown.NewMarkdown(w.output)

	md.H2(prompt.Title)
	md.Cautionf("%s %s", prompt.Message, prompt.Note)

	return md.Build()
}
