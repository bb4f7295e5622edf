package frontend

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/mikey/ceknomor/internal/core"
	"go.uber.org/zap"
)

const maxRequestBytes = 4096

// HTTPFrontend serves the scan API over HTTP
type HTTPFrontend struct {
	scans      *core.ScanService
	shares     *core.ShareService
	logger     *zap.Logger
	listenAddr string
	server     *http.Server
}

// NewHTTPFrontend creates a new HTTP frontend
func NewHTTPFrontend(scans *core.ScanService, shares *core.ShareService, logger *zap.Logger, listenAddr string) *HTTPFrontend {
	return &HTTPFrontend{
		scans:      scans,
		shares:     shares,
		logger:     logger,
		listenAddr: listenAddr,
	}
}

type numberRequest struct {
	Number string `json:"number"`
}

type formatResponse struct {
	Input     string `json:"input"`
	Formatted string `json:"formatted"`
}

// Handler returns the routes of the API
func (f *HTTPFrontend) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", f.healthz)

	mux.HandleFunc("POST /api/scan", f.scan)
	mux.HandleFunc("GET /api/history", f.history)
	mux.HandleFunc("GET /api/history/{id}", f.entry)
	mux.HandleFunc("POST /api/history/{id}/rescan", f.rescan)
	mux.HandleFunc("POST /api/share", f.share)
	mux.HandleFunc("POST /api/report", f.report)
	mux.HandleFunc("GET /api/format", f.format)

	return mux
}

// Start starts listening and serves in the background
func (f *HTTPFrontend) Start() error {
	l, err := net.Listen("tcp", f.listenAddr)
	if err != nil {
		return err
	}

	f.server = &http.Server{
		Handler:           f.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	f.logger.Info("HTTP frontend starting", zap.String("address", l.Addr().String()))

	go func() {
		if err := f.server.Serve(l); err != nil && !errors.Is(err, http.ErrServerClosed) {
			f.logger.Error("HTTP server error", zap.Error(err))
		}
	}()

	return nil
}

// Stop gracefully shuts the server down
func (f *HTTPFrontend) Stop() error {
	if f.server == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return f.server.Shutdown(ctx)
}

func (f *HTTPFrontend) healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (f *HTTPFrontend) scan(w http.ResponseWriter, r *http.Request) {
	var req numberRequest
	if !f.decode(w, r, &req) {
		return
	}

	// A newer request supersedes this one while it is still waiting.
	task, err := f.scans.Start(r.Context(), req.Number)
	if err != nil {
		f.writeError(w, err)
		return
	}

	outcome, err := task.Wait(r.Context())
	if err != nil {
		f.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, outcome)
}

func (f *HTTPFrontend) history(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, f.scans.History(r.Context()))
}

func (f *HTTPFrontend) entry(w http.ResponseWriter, r *http.Request) {
	id, ok := f.pathID(w, r)
	if !ok {
		return
	}

	entry, err := f.scans.Entry(r.Context(), id)
	if err != nil {
		f.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, entry)
}

func (f *HTTPFrontend) rescan(w http.ResponseWriter, r *http.Request) {
	id, ok := f.pathID(w, r)
	if !ok {
		return
	}

	outcome, err := f.scans.Rescan(r.Context(), id)
	if err != nil {
		f.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, outcome)
}

func (f *HTTPFrontend) share(w http.ResponseWriter, r *http.Request) {
	var req numberRequest
	if !f.decode(w, r, &req) {
		return
	}

	outcome, err := f.shares.Share(r.Context(), req.Number)
	if err != nil {
		f.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, outcome)
}

func (f *HTTPFrontend) format(w http.ResponseWriter, r *http.Request) {
	number := r.URL.Query().Get("number")

	writeJSON(w, http.StatusOK, formatResponse{
		Input:     core.FormatInput(number),
		Formatted: core.FormatForDisplay(core.NormalizeDigits(number)),
	})
}

func (f *HTTPFrontend) decode(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		f.logger.Debug("Rejected request body", zap.String("path", r.URL.Path), zap.Error(err))
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return false
	}
	return true
}

func (f *HTTPFrontend) pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid history id"})
		return 0, false
	}
	return id, true
}

func (f *HTTPFrontend) report(w http.ResponseWriter, r *http.Request) {
	var req numberRequest
	if !f.decode(w, r, &req) {
		return
	}

	prompt, err := core.ReportPromptFor(req.Number)
	if err != nil {
		f.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, prompt)
}

func (f *HTTPFrontend) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, core.ErrInvalidInput), errors.Is(err, core.ErrNumberRequired):
		status = http.StatusBadRequest
	case errors.Is(err, core.ErrEntryNotFound):
		status = http.StatusNotFound
	case errors.Is(err, core.ErrScanCancelled), errors.Is(err, context.Canceled):
		status = http.StatusConflict
	case errors.Is(err, context.DeadlineExceeded):
		status = http.StatusGatewayTimeout
	}

	if status == http.StatusInternalServerError {
		f.logger.Error("Request failed", zap.Error(err))
	}

	writeJSON(w, status, map[string]string{"error": core.UserMessage(err)})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
