package core

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DelayPolicy models the latency of a real lookup
type DelayPolicy struct {
	Min time.Duration
	Max time.Duration
}

// Next picks a delay uniformly in [Min, Max]
func (p DelayPolicy) Next(random func() float64) time.Duration {
	if p.Max <= p.Min {
		return p.Min
	}
	return p.Min + time.Duration(random()*float64(p.Max-p.Min))
}

// ServiceOptions configures a ScanService
type ServiceOptions struct {
	Random  func() float64
	Now     func() time.Time
	Delay   DelayPolicy
	Display *Display
}

// ScanService runs scans and records them in the history
type ScanService struct {
	history *HistoryStore
	logger  *zap.Logger
	random  func() float64
	now     func() time.Time
	delay   DelayPolicy
	display *Display

	mu       sync.Mutex
	inflight *ScanTask
}

// NewScanService creates a new scan service
func NewScanService(history *HistoryStore, logger *zap.Logger, opts ServiceOptions) *ScanService {
	if opts.Random == nil {
		opts.Random = rand.Float64
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	return &ScanService{
		history: history,
		logger:  logger,
		random:  opts.Random,
		now:     opts.Now,
		delay:   opts.Delay,
		display: opts.Display,
	}
}

// pendingScan is the input captured when a scan starts
type pendingScan struct {
	id          string
	digits      PhoneDigits
	formatted   string
	scannedAt   time.Time
	timeDisplay string
}

// Scan validates raw, waits for the simulated lookup and records the result
func (s *ScanService) Scan(ctx context.Context, raw string) (*ScanOutcome, error) {
	digits, err := ParsePhoneDigits(raw)
	if err != nil {
		s.logger.Debug("Rejected scan input", zap.Error(err))
		return nil, err
	}

	pending := s.capture(uuid.NewString(), digits)
	if err := s.wait(ctx); err != nil {
		return nil, err
	}

	return s.complete(ctx, pending), nil
}

// Start runs a scan in the background. A scan still waiting when a new one
// starts is cancelled and never reaches the history.
func (s *ScanService) Start(ctx context.Context, raw string) (*ScanTask, error) {
	digits, err := ParsePhoneDigits(raw)
	if err != nil {
		s.logger.Debug("Rejected scan input", zap.Error(err))
		return nil, err
	}

	taskCtx, cancel := context.WithCancel(ctx)
	task := newScanTask(uuid.NewString(), cancel)
	pending := s.capture(task.ID(), digits)

	s.mu.Lock()
	if s.inflight != nil {
		s.logger.Debug("Superseding in-flight scan", zap.String("scan_id", s.inflight.ID()))
		s.inflight.Cancel()
	}
	s.inflight = task
	s.mu.Unlock()

	go s.run(taskCtx, task, pending)

	return task, nil
}

func (s *ScanService) run(ctx context.Context, task *ScanTask, pending pendingScan) {
	defer task.cancel()

	if err := s.wait(ctx); err != nil {
		s.release(task)
		task.resolve(nil, err)
		return
	}

	// Cancellation is checked under the same lock Start uses to supersede,
	// so a cancelled task can never append.
	s.mu.Lock()
	if err := ctx.Err(); err != nil {
		s.mu.Unlock()
		task.resolve(nil, fmt.Errorf("%w: %w", ErrScanCancelled, err))
		return
	}
	outcome := s.complete(ctx, pending)
	if s.inflight == task {
		s.inflight = nil
	}
	s.mu.Unlock()

	task.resolve(outcome, nil)
}

func (s *ScanService) release(task *ScanTask) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.inflight == task {
		s.inflight = nil
	}
}

// Rescan scans the number of a history entry again
func (s *ScanService) Rescan(ctx context.Context, id int64) (*ScanOutcome, error) {
	s.history.LoadOrSeed(ctx)

	entry, ok := s.history.FindByID(id)
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrEntryNotFound, id)
	}

	s.logger.Debug("Rescanning history entry", zap.Int64("id", id), zap.String("number", string(entry.Number)))

	// A rescan is a new scan, so it supersedes one still waiting.
	task, err := s.Start(ctx, string(entry.Number))
	if err != nil {
		return nil, err
	}
	outcome, err := task.Wait(ctx)
	if err != nil && !errors.Is(err, ErrScanCancelled) {
		task.Cancel()
		return nil, fmt.Errorf("%w: %w", ErrScanCancelled, err)
	}
	return outcome, err
}

// History returns the current history, loading it on first use
func (s *ScanService) History(ctx context.Context) []HistoryEntry {
	return s.history.LoadOrSeed(ctx)
}

// Entry returns one history entry
func (s *ScanService) Entry(ctx context.Context, id int64) (HistoryEntry, error) {
	s.history.LoadOrSeed(ctx)

	entry, ok := s.history.FindByID(id)
	if !ok {
		return HistoryEntry{}, fmt.Errorf("%w: %d", ErrEntryNotFound, id)
	}
	return entry, nil
}

func (s *ScanService) capture(id string, digits PhoneDigits) pendingScan {
	scannedAt := s.now()
	return pendingScan{
		id:          id,
		digits:      digits,
		formatted:   FormatForDisplay(string(digits)),
		scannedAt:   scannedAt,
		timeDisplay: s.display.Time(scannedAt),
	}
}

func (s *ScanService) wait(ctx context.Context) error {
	delay := s.delay.Next(s.random)
	if delay <= 0 {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("%w: %w", ErrScanCancelled, err)
		}
		return nil
	}

	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("%w: %w", ErrScanCancelled, ctx.Err())
	}
}

func (s *ScanService) complete(ctx context.Context, pending pendingScan) *ScanOutcome {
	result := Evaluate(pending.digits, s.random)

	// Recording must not be aborted by a request that went away after the scan resolved.
	persistCtx := context.WithoutCancel(ctx)

	entry := HistoryEntry{
		ID:          s.history.NextID(persistCtx),
		Number:      pending.digits,
		Formatted:   pending.formatted,
		Risk:        result.OverallRisk,
		CreatedAt:   pending.scannedAt.UTC().Truncate(time.Millisecond),
		TimeDisplay: pending.timeDisplay,
		DateDisplay: s.display.Date(pending.scannedAt),
	}
	if err := s.history.Append(persistCtx, entry); err != nil {
		s.logger.Warn("Scan recorded in memory only", zap.Int64("id", entry.ID), zap.Error(err))
	}

	s.logger.Info("Scan completed",
		zap.String("scan_id", pending.id),
		zap.String("number", string(pending.digits)),
		zap.String("risk", string(result.OverallRisk)),
		zap.Int("score", result.Score))

	return &ScanOutcome{
		ScanID:      pending.id,
		EntryID:     entry.ID,
		Number:      pending.digits,
		Formatted:   pending.formatted,
		ScannedAt:   pending.scannedAt,
		TimeDisplay: pending.timeDisplay,
		Result:      result,
		Warning:     WarningFor(pending.formatted, result),
	}
}
