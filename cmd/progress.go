package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/schollz/progressbar/v3"
)

// defaultProgressBar builds a schollz/progressbar laid out like the tqdm line
// so both renderings can be compared in the same terminal.
func defaultProgressBar(max int64, writer io.Writer, visible bool) *progressbar.ProgressBar {
	return progressbar.NewOptions64(
		max,
		progressbar.OptionSetWriter(writer),
		progressbar.OptionSetVisibility(visible),
		progressbar.OptionSetDescription("progressbar"),
		progressbar.OptionShowCount(),
		progressbar.OptionShowIts(),
		progressbar.OptionSetPredictTime(true),
		progressbar.OptionFullWidth(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "█",
			SaucerPadding: " ",
			BarStart:      "|",
			BarEnd:        "|",
		}),
		progressbar.OptionOnCompletion(func() {
			_, _ = fmt.Fprintln(writer)
		}),
	)
}

// runCompare replays a loop of total items with the same pacing through
// the reference progress bar.
func runCompare(ctx context.Context, writer io.Writer, total int, pacer *itemPacer) error {
	bar := progressBarNew(int64(total), writer, !noProgress)
	for i := 0; i < total; i++ {
		if err := pacer.wait(ctx); err != nil {
			_ = bar.Exit()
			return err
		}
		_ = bar.Add(1)
	}
	return bar.Finish()
}
