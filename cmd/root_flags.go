/*
Copyright (c) 2024 sh4869221b <sh4869221b@gmail.com>
*/
package cmd

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/schollz/progressbar/v3"
)

var (
	count          int           = defaultCount
	delay          time.Duration = defaultDelay
	width          int
	smoothing      float64
	description    string
	rateLimit      float64
	minInterval    time.Duration
	inputFilePath  string
	readStdin      bool
	logFilePath    string
	verbose        bool
	noProgress     bool
	compareOutput  bool
	jsonOutput     bool
	Version        = "unset"
	logger         *slog.Logger
	progressBarNew func(int64, io.Writer, bool) *progressbar.ProgressBar = defaultProgressBar
	openInputFile  func(string) (io.ReadCloser, error)                  = func(path string) (io.ReadCloser, error) { return os.Open(path) }
	sleepFn        func(context.Context, time.Duration) error           = sleepWithContext
	timeNow                                                             = time.Now
)

const (
	defaultCount = 333
	defaultDelay = 5 * time.Millisecond
)

// init configures command flags and defaults.
func init() {
	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true

	rootCmd.Flags().IntVarP(&count, "count", "n", defaultCount, "number of items to generate when none are given")
	rootCmd.Flags().DurationVarP(&delay, "delay", "d", defaultDelay, "simulated work per item")
	rootCmd.Flags().IntVarP(&width, "width", "w", 0, "line width in `columns` (0 queries the terminal)")
	rootCmd.Flags().Float64Var(&smoothing, "smoothing", 0, "rate smoothing factor between 0 and 1 (0 uses the overall average)")
	rootCmd.Flags().StringVar(&description, "desc", "", "text shown before the percentage")
	rootCmd.Flags().Float64Var(&rateLimit, "rate-limit", 0, "maximum items per second (0 disables)")
	rootCmd.Flags().DurationVar(&minInterval, "min-interval", 0, "minimum interval between items (0 disables)")

	rootCmd.Flags().StringVar(&inputFilePath, "input-file", "", "read items from file (newline-separated)")
	rootCmd.Flags().BoolVar(&readStdin, "stdin", false, "read items from stdin (newline-separated)")
	rootCmd.Flags().StringVar(&logFilePath, "logfile", "", "log output file path")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log each item at debug level")
	rootCmd.Flags().BoolVar(&noProgress, "no-progress", false, "disable progress output")
	rootCmd.Flags().BoolVar(&compareOutput, "compare", false, "run the same loop again through schollz/progressbar")
	rootCmd.Flags().BoolVar(&jsonOutput, "json", false, "emit a JSON summary to stdout")
}
