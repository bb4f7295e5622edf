package frontend

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mikey/ceknomor/internal/adapters/storage"
	"github.com/mikey/ceknomor/internal/core"
)

func services(t *testing.T) (*core.ScanService, *core.ShareService) {
	t.Helper()

	display, err := core.NewDisplay("UTC")
	require.NoError(t, err)

	logger := zap.NewNop()
	store := core.NewHistoryStore(storage.NewMemorySlot(logger), logger, core.HistoryOptions{})
	scans := core.NewScanService(store, logger, core.ServiceOptions{
		Random:  func() float64 { return 0.5 },
		Display: display,
	})
	shares := core.NewShareService(nil, "http://localhost:8080/", logger)
	return scans, shares
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	scans, shares := services(t)
	server := httptest.NewServer(NewHTTPFrontend(scans, shares, zap.NewNop(), "").Handler())
	t.Cleanup(server.Close)
	return server
}

func post(t *testing.T, url string, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(url, "application/json", strings.NewReader(body))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func get(t *testing.T, url string) *http.Response {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decode(t *testing.T, resp *http.Response, v interface{}) {
	t.Helper()
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
	require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
}

func TestHTTPFrontend_Healthz(t *testing.T) {
	server := newTestServer(t)

	resp := get(t, server.URL+"/healthz")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	decode(t, resp, &body)
	assert.Equal(t, "ok", body["status"])
}

func TestHTTPFrontend_Scan(t *testing.T) {
	server := newTestServer(t)

	resp := post(t, server.URL+"/api/scan", `{"number": "0812-3456-7890"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var outcome core.ScanOutcome
	decode(t, resp, &outcome)
	assert.Equal(t, core.PhoneDigits("081234567890"), outcome.Number)
	assert.Equal(t, "0812-3456-7890", outcome.Formatted)
	require.NotNil(t, outcome.Result)
	assert.Len(t, outcome.Result.Details, 4)

	resp = get(t, server.URL+"/api/history")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var history []core.HistoryEntry
	decode(t, resp, &history)
	require.Len(t, history, 3)
	assert.Equal(t, outcome.EntryID, history[0].ID)
}

func TestHTTPFrontend_ScanRejectsInvalid(t *testing.T) {
	server := newTestServer(t)

	resp := post(t, server.URL+"/api/scan", `{"number": "0812"}`)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body map[string]string
	decode(t, resp, &body)
	assert.Equal(t, "Nomor telepon tidak valid. Masukkan 10-13 digit angka.", body["error"])

	resp = post(t, server.URL+"/api/scan", `not json`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// nothing was recorded
	var history []core.HistoryEntry
	decode(t, get(t, server.URL+"/api/history"), &history)
	assert.Len(t, history, 2)
}

func TestHTTPFrontend_Entry(t *testing.T) {
	server := newTestServer(t)

	resp := get(t, server.URL+"/api/history/2")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var entry core.HistoryEntry
	decode(t, resp, &entry)
	assert.Equal(t, core.PhoneDigits("085711223344"), entry.Number)

	assert.Equal(t, http.StatusNotFound, get(t, server.URL+"/api/history/99").StatusCode)
	assert.Equal(t, http.StatusBadRequest, get(t, server.URL+"/api/history/abc").StatusCode)
}

func TestHTTPFrontend_Rescan(t *testing.T) {
	server := newTestServer(t)

	resp := post(t, server.URL+"/api/history/1/rescan", ``)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var outcome core.ScanOutcome
	decode(t, resp, &outcome)
	assert.Equal(t, core.PhoneDigits("08123456789"), outcome.Number)

	resp = post(t, server.URL+"/api/history/424242/rescan", ``)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	var body map[string]string
	decode(t, resp, &body)
	assert.Equal(t, "Riwayat pengecekan tidak ditemukan.", body["error"])
}

func TestHTTPFrontend_Report(t *testing.T) {
	server := newTestServer(t)

	resp := post(t, server.URL+"/api/report", `{"number": "081234567890"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var prompt core.ReportPrompt
	decode(t, resp, &prompt)
	assert.Equal(t, "Laporkan Nomor", prompt.Title)
	assert.Equal(t, "Apakah Anda yakin ingin melaporkan nomor 0812-3456-7890?", prompt.Message)

	resp = post(t, server.URL+"/api/report", `{"number": ""}`)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body map[string]string
	decode(t, resp, &body)
	assert.Equal(t, "Masukkan nomor terlebih dahulu.", body["error"])
}

func TestHTTPFrontend_LatestScanWins(t *testing.T) {
	display, err := core.NewDisplay("UTC")
	require.NoError(t, err)

	// the first scan waits an hour, the second resolves immediately
	var mu sync.Mutex
	calls := 0
	drawn := make(chan struct{})
	random := func() float64 {
		mu.Lock()
		defer mu.Unlock()
		calls++
		switch calls {
		case 1:
			close(drawn)
			return 1.0
		case 2:
			return 0.0
		}
		return 0.5
	}

	logger := zap.NewNop()
	store := core.NewHistoryStore(storage.NewMemorySlot(logger), logger, core.HistoryOptions{})
	scans := core.NewScanService(store, logger, core.ServiceOptions{
		Random:  random,
		Delay:   core.DelayPolicy{Max: time.Hour},
		Display: display,
	})
	server := httptest.NewServer(NewHTTPFrontend(scans, core.NewShareService(nil, "", logger), logger, "").Handler())
	t.Cleanup(server.Close)

	statuses := make(chan int, 1)
	go func() {
		resp, err := (&http.Client{}).Post(server.URL+"/api/scan", "application/json", strings.NewReader(`{"number": "081234567890"}`))
		if err != nil {
			statuses <- 0
			return
		}
		resp.Body.Close()
		statuses <- resp.StatusCode
	}()

	select {
	case <-drawn:
	case <-time.After(5 * time.Second):
		t.Fatal("first scan never started waiting")
	}

	resp := post(t, server.URL+"/api/scan", `{"number": "085699998888"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	select {
	case status := <-statuses:
		assert.Equal(t, http.StatusConflict, status)
	case <-time.After(5 * time.Second):
		t.Fatal("superseded request never returned")
	}

	history := scans.History(context.Background())
	require.Len(t, history, 3)
	assert.Equal(t, core.PhoneDigits("085699998888"), history[0].Number)
}

func TestHTTPFrontend_Share(t *testing.T) {
	server := newTestServer(t)

	resp := post(t, server.URL+"/api/share", `{"number": "081234567890"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var outcome core.ShareOutcome
	decode(t, resp, &outcome)
	assert.Equal(t, core.ShareMethodLink, outcome.Method)
	assert.Equal(t, "http://localhost:8080/?nomor=081234567890", outcome.URL)

	assert.Equal(t, http.StatusBadRequest, post(t, server.URL+"/api/share", `{"number": "1"}`).StatusCode)
}

func TestHTTPFrontend_Format(t *testing.T) {
	server := newTestServer(t)

	resp := get(t, server.URL+"/api/format?number=081234567890")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body formatResponse
	decode(t, resp, &body)
	assert.Equal(t, "081-2345-67890", body.Input)
	assert.Equal(t, "0812-3456-7890", body.Formatted)
}

func TestHTTPFrontend_MethodNotAllowed(t *testing.T) {
	server := newTestServer(t)

	assert.Equal(t, http.StatusMethodNotAllowed, get(t, server.URL+"/api/scan").StatusCode)
}

func TestHTTPFrontend_StartStop(t *testing.T) {
	scans, shares := services(t)
	f := NewHTTPFrontend(scans, shares, zap.NewNop(), "127.0.0.1:0")

	require.NoError(t, f.Start())
	assert.NoError(t, f.Stop())
}

func TestConsoleFrontend_Run(t *testing.T) {
	scans, shares := services(t)
	input := strings.NewReader(strings.Join([]string{
		"0812-3456-7890",
		"",
		"0812",
		"history",
		"rescan 2",
		"rescan nope",
		"share 081234567890",
		"report",
		"report 081234567890",
		"quit",
		"0856192052",
	}, "\n"))

	var out bytes.Buffer
	f := NewConsoleFrontend(scans, shares, zap.NewNop(), input, &out)
	require.NoError(t, f.Run(context.Background()))

	text := out.String()
	assert.Contains(t, text, "Nomor   : 0812-3456-7890")
	assert.Contains(t, text, "Nomor telepon tidak valid. Masukkan 10-13 digit angka.")
	assert.Contains(t, text, "Kemarin")
	assert.Contains(t, text, "Nomor   : 0857-1122-3344")
	assert.Contains(t, text, "Riwayat pengecekan tidak ditemukan.")
	assert.Contains(t, text, "http://localhost:8080/?nomor=081234567890")
	assert.Contains(t, text, "Masukkan nomor terlebih dahulu.")
	assert.Contains(t, text, "Apakah Anda yakin ingin melaporkan nomor 0812-3456-7890?")
	// input after quit is ignored
	assert.NotContains(t, text, "0856192052")

	history := scans.History(context.Background())
	require.Len(t, history, 4)
}

func TestConsoleFrontend_StartUntilEOF(t *testing.T) {
	scans, shares := services(t)

	var out bytes.Buffer
	f := NewConsoleFrontend(scans, shares, zap.NewNop(), strings.NewReader("081234567890\n"), &out)
	require.NoError(t, f.Start())

	select {
	case <-f.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("console frontend did not finish")
	}
	assert.NoError(t, f.Stop())
	assert.Contains(t, out.String(), "Nomor   : 0812-3456-7890")
}
