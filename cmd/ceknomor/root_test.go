package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikey/ceknomor/internal/core"
	"github.com/mikey/ceknomor/internal/report"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := NewRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestNewRootCmd(t *testing.T) {
	cmd := NewRootCmd()

	assert.Equal(t, "ceknomor", cmd.Use)
	assert.NotEmpty(t, cmd.Version)

	for _, name := range []string{"config", "verbose", "json-log", "backend", "format"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(name), name)
	}
	assert.Equal(t, "v", cmd.PersistentFlags().Lookup("verbose").Shorthand)

	var names []string
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	assert.Subset(t, names, []string{"scan", "history", "rescan", "share", "report", "version"})
}

func TestScanCmd(t *testing.T) {
	out, err := execute(t, "scan", "0812-3456-7890", "--backend", "memory", "--no-delay", "--format", "json")
	require.NoError(t, err)

	var outcome core.ScanOutcome
	require.NoError(t, json.Unmarshal([]byte(out), &outcome))
	assert.Equal(t, core.PhoneDigits("081234567890"), outcome.Number)
	assert.Len(t, outcome.Result.Details, 4)
}

func TestScanCmd_Text(t *testing.T) {
	out, err := execute(t, "scan", "081234567890", "--backend", "memory", "--no-delay")
	require.NoError(t, err)
	assert.Contains(t, out, "Nomor   : 0812-3456-7890")
}

func TestScanCmd_InvalidNumber(t *testing.T) {
	_, err := execute(t, "scan", "0812", "--backend", "memory", "--no-delay")
	require.ErrorIs(t, err, core.ErrInvalidInput)
	assert.Equal(t, "Nomor telepon tidak valid. Masukkan 10-13 digit angka.", core.UserMessage(err))
}

func TestScanCmd_RequiresNumber(t *testing.T) {
	_, err := execute(t, "scan")
	assert.Error(t, err)
}

func TestHistoryCmd(t *testing.T) {
	out, err := execute(t, "history", "--backend", "memory", "--format", "json")
	require.NoError(t, err)

	var entries []core.HistoryEntry
	require.NoError(t, json.Unmarshal([]byte(out), &entries))
	require.Len(t, entries, 2)
	assert.Equal(t, "Kemarin", entries[0].DateDisplay)
}

func TestRescanCmd(t *testing.T) {
	out, err := execute(t, "rescan", "2", "--backend", "memory", "--no-delay", "--format", "json")
	require.NoError(t, err)

	var outcome core.ScanOutcome
	require.NoError(t, json.Unmarshal([]byte(out), &outcome))
	assert.Equal(t, core.PhoneDigits("085711223344"), outcome.Number)

	_, err = execute(t, "rescan", "99", "--backend", "memory", "--no-delay")
	assert.ErrorIs(t, err, core.ErrEntryNotFound)

	_, err = execute(t, "rescan", "abc", "--backend", "memory")
	assert.ErrorIs(t, err, core.ErrEntryNotFound)
}

func TestShareCmd(t *testing.T) {
	out, err := execute(t, "share", "081234567890", "--backend", "memory")
	require.NoError(t, err)
	assert.Contains(t, out, "Salin link ini untuk berbagi hasil pengecekan:")
	assert.Contains(t, out, "nomor=081234567890")
}

func TestReportCmd(t *testing.T) {
	out, err := execute(t, "report", "081234567890")
	require.NoError(t, err)
	assert.Contains(t, out, "LAPORKAN NOMOR")
	assert.Contains(t, out, "0812-3456-7890")

	_, err = execute(t, "report")
	require.ErrorIs(t, err, core.ErrNumberRequired)
	assert.Equal(t, "Masukkan nomor terlebih dahulu.", core.UserMessage(err))
}

func TestUnknownFormat(t *testing.T) {
	_, err := execute(t, "history", "--backend", "memory", "--format", "xml")
	assert.ErrorIs(t, err, report.ErrUnknownFormat)
}

func TestVersionCmd(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "ceknomor version ")
	assert.Contains(t, out, "commit: ")
}
