package frontend

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/mikey/ceknomor/internal/core"
	"github.com/mikey/ceknomor/internal/report"
	"go.uber.org/zap"
)

// ConsoleFrontend reads one number per line and prints its report
type ConsoleFrontend struct {
	scans  *core.ScanService
	shares *core.ShareService
	logger *zap.Logger
	input  io.Reader
	output io.Writer
	writer report.Writer

	cancel context.CancelFunc
	done   chan struct{}
	once   sync.Once
}

// NewConsoleFrontend creates a new console frontend
func NewConsoleFrontend(
	scans *core.ScanService,
	shares *core.ShareService,
	logger *zap.Logger,
	input io.Reader,
	output io.Writer,
) *ConsoleFrontend {
	return &ConsoleFrontend{
		scans:  scans,
		shares: shares,
		logger: logger,
		input:  input,
		output: output,
		writer: report.NewTextWriter(output),
		done:   make(chan struct{}),
	}
}

// Start reads input in the background until it ends or Stop is called
func (f *ConsoleFrontend) Start() error {
	ctx, cancel := context.WithCancel(context.Background())
	f.cancel = cancel

	go func() {
		defer close(f.done)
		if err := f.Run(ctx); err != nil {
			f.logger.Error("Console input failed", zap.Error(err))
		}
	}()

	return nil
}

// Stop cancels a pending scan and stops reading
func (f *ConsoleFrontend) Stop() error {
	f.once.Do(func() {
		if f.cancel != nil {
			f.cancel()
		}
	})
	return nil
}

// Done is closed once the input has been consumed
func (f *ConsoleFrontend) Done() <-chan struct{} {
	return f.done
}

// Run processes input line by line until EOF, "quit" or ctx ends
func (f *ConsoleFrontend) Run(ctx context.Context) error {
	scanner := bufio.NewScanner(f.input)

	fmt.Fprintln(f.output, "Masukkan nomor telepon (history, rescan <id>, share <nomor>, report <nomor>, quit):")
	for scanner.Scan() {
		if ctx.Err() != nil {
			return nil
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "quit" || line == "exit" {
			return nil
		}

		if err := f.handle(ctx, line); err != nil {
			fmt.Fprintln(f.output, core.UserMessage(err))
		}
		fmt.Fprintln(f.output)
	}

	return scanner.Err()
}

func (f *ConsoleFrontend) handle(ctx context.Context, line string) error {
	command, arg, _ := strings.Cut(line, " ")
	arg = strings.TrimSpace(arg)

	switch command {
	case "history":
		return f.writer.WriteHistory(f.scans.History(ctx))
	case "rescan":
		id, err := strconv.ParseInt(arg, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %s", core.ErrEntryNotFound, arg)
		}
		outcome, err := f.scans.Rescan(ctx, id)
		if err != nil {
			return err
		}
		return f.writer.WriteOutcome(outcome)
	case "share":
		outcome, err := f.shares.Share(ctx, arg)
		if err != nil {
			return err
		}
		return f.writer.WriteShare(outcome)
	case "report":
		prompt, err := core.ReportPromptFor(arg)
		if err != nil {
			return err
		}
		return f.writer.WriteReport(prompt)
	}

	fmt.Fprintln(f.output, "Memeriksa...")
	outcome, err := f.scans.Scan(ctx, line)
	if err != nil {
		return err
	}
	return f.writer.WriteOutcome(outcome)
}
