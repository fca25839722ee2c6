package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/sh4869221b/go-ft-tqdm/internal/tqdm"
	"github.com/spf13/cobra"
)

// validateFlags validates CLI flag values before execution.
func validateFlags() error {
	if count < 0 {
		return errors.New("count must be at least 0")
	}
	if delay < 0 {
		return errors.New("delay must be at least 0")
	}
	if width < 0 {
		return errors.New("width must be at least 0")
	}
	if rateLimit < 0 {
		return errors.New("rate-limit must be at least 0")
	}
	if minInterval < 0 {
		return errors.New("min-interval must be at least 0")
	}
	if smoothing < 0 || smoothing > 1 {
		return errors.New("smoothing must be between 0 and 1")
	}
	return nil
}

// setupLogger initializes a JSON logger and optional cleanup for log files.
func setupLogger(path string, level slog.Level) (*slog.Logger, func(), error) {
	opts := &slog.HandlerOptions{Level: level}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, opts))
	if path == "" {
		return logger, func() {}, nil
	}
	logFile, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, func() {}, err
	}
	cleanup := func() { _ = logFile.Close() }
	logger = slog.New(slog.NewJSONHandler(logFile, opts))
	return logger, cleanup, nil
}

// errWriterFor returns the stderr writer for a command.
func errWriterFor(cmd *cobra.Command) io.Writer {
	if cmd == nil {
		return os.Stderr
	}
	return cmd.ErrOrStderr()
}

// outWriterFor returns the stdout writer for a command.
func outWriterFor(cmd *cobra.Command) io.Writer {
	if cmd == nil {
		return os.Stdout
	}
	return cmd.OutOrStdout()
}

// contextFor returns the command context, or Background outside of Execute.
func contextFor(cmd *cobra.Command) context.Context {
	if cmd == nil || cmd.Context() == nil {
		return context.Background()
	}
	return cmd.Context()
}

// runResult summarizes one pass over the items.
type runResult struct {
	processed int
	total     int
	stats     tqdm.Stats
}

// runRootCmd executes the main CLI workflow.
func runRootCmd(cmd *cobra.Command, args []string) error {
	if err := validateFlags(); err != nil {
		return err
	}

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	newLogger, cleanup, err := setupLogger(logFilePath, level)
	if err != nil {
		return err
	}
	defer cleanup()
	logger = newLogger
	slog.SetDefault(logger)

	ctx := contextFor(cmd)
	items, err := collectInputs(cmd, args)
	if err != nil {
		return err
	}

	out := outWriterFor(cmd)
	errWriter := errWriterFor(cmd)
	progressOut := out
	if noProgress {
		progressOut = io.Discard
	}
	opts := []tqdm.Option{
		tqdm.WithWriter(progressOut),
		tqdm.WithWidth(newWidthProvider(progressOut)),
		tqdm.WithSmoothing(smoothing),
		tqdm.WithDescription(description),
		tqdm.WithLogger(logger),
	}

	var result runResult
	var runErr error
	if len(items) > 0 {
		result, runErr = consume(ctx, tqdm.Wrap(tqdm.Slice(items), opts...), newItemPacer(delay, rateLimit, minInterval))
	} else {
		result, runErr = consume(ctx, tqdm.Wrap(tqdm.Range(count), opts...), newItemPacer(delay, rateLimit, minInterval))
	}
	if result.processed > 0 {
		fmt.Fprintln(progressOut)
	}
	logger.Info("iteration finished",
		"processed", result.processed,
		"total", result.total,
		"elapsed", result.stats.Elapsed.String(),
		"rate", result.stats.Rate,
	)

	if runErr == nil && compareOutput {
		runErr = runCompare(ctx, progressOut, result.total, newItemPacer(delay, rateLimit, minInterval))
	}

	if jsonOutput {
		if err := json.NewEncoder(out).Encode(buildJSONOutput(result, runErr)); err != nil {
			return err
		}
	}
	fmt.Fprintf(
		errWriter,
		"summary items=%d total=%d elapsed=%s rate=%.2fit/s\n",
		result.processed,
		result.total,
		result.stats.Elapsed.Round(time.Millisecond),
		result.stats.Rate,
	)
	return runErr
}

// consume pulls every item through bar, simulating work between pulls.
func consume[T any](ctx context.Context, bar *tqdm.Bar[T], pacer *itemPacer) (runResult, error) {
	defer bar.Close()

	var err error
	for item := range bar.All() {
		logger.Debug("item", "index", bar.Count()-1, "value", item)
		if err = pacer.wait(ctx); err != nil {
			break
		}
	}
	if err == nil {
		err = bar.Err()
	}
	return runResult{
		processed: bar.Count(),
		total:     bar.Total(),
		stats:     bar.Stats(),
	}, err
}

// itemPacer simulates the work of one item and keeps item starts at least
// interval apart, which is how --rate-limit and --min-interval shape the
// rate shown on the bar. It is used from a single goroutine.
type itemPacer struct {
	delay    time.Duration
	interval time.Duration
	next     time.Time
}

// newItemPacer derives the item spacing from a rate in items per second and
// a minimum interval; the larger of the two wins.
func newItemPacer(delay time.Duration, rate float64, minInterval time.Duration) *itemPacer {
	interval := max(minInterval, 0)
	if rate > 0 {
		interval = max(interval, time.Duration(float64(time.Second)/rate))
	}
	return &itemPacer{delay: max(delay, 0), interval: interval}
}

// wait blocks for the per-item delay, and longer if the previous item's
// slot has not passed yet.
func (p *itemPacer) wait(ctx context.Context) error {
	now := timeNow()
	readyAt := now.Add(p.delay)
	if p.interval > 0 {
		if p.next.After(readyAt) {
			readyAt = p.next
		}
		p.next = readyAt.Add(p.interval)
	}
	return sleepFn(ctx, readyAt.Sub(now))
}

// sleepWithContext waits for the duration or returns early on context cancellation.
func sleepWithContext(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
