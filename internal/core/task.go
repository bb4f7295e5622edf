package core

import (
	"context"
)

// ScanTask is a scan running in the background
type ScanTask struct {
	id      string
	cancel  context.CancelFunc
	done    chan struct{}
	outcome *ScanOutcome
	err     error
}

func newScanTask(id string, cancel context.CancelFunc) *ScanTask {
	return &ScanTask{
		id:     id,
		cancel: cancel,
		done:   make(chan struct{}),
	}
}

// ID returns the scan id, also reported as ScanOutcome.ScanID
func (t *ScanTask) ID() string {
	return t.id
}

// Done is closed once the task has resolved
func (t *ScanTask) Done() <-chan struct{} {
	return t.done
}

// Cancel aborts the scan if it has not resolved yet
func (t *ScanTask) Cancel() {
	t.cancel()
}

// Wait blocks until the task resolves or ctx ends
func (t *ScanTask) Wait(ctx context.Context) (*ScanOutcome, error) {
	select {
	case <-t.done:
		return t.outcome, t.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (t *ScanTask) resolve(outcome *ScanOutcome, err error) {
	t.outcome = outcome
	t.err = err
	close(t.done)
}
