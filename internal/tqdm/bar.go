package tqdm

import (
	"io"
	"iter"
	"log/slog"
	"os"
	"strings"
	"time"
)

type config struct {
	writer    io.Writer
	width     WidthProvider
	now       func() time.Time
	smoothing float64
	desc      string
	logger    *slog.Logger
}

// Option configures a Bar.
type Option func(*config)

// WithWriter sets where status lines go. Default: os.Stdout.
func WithWriter(w io.Writer) Option {
	return func(c *config) { c.writer = w }
}

// WithWidth sets the width provider.
// Default: the terminal behind the writer, see TerminalWidthFor.
func WithWidth(p WidthProvider) Option {
	return func(c *config) { c.width = p }
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(c *config) { c.now = now }
}

// WithSmoothing enables an exponential moving average of the rate with
// weight alpha for the latest step. 0 keeps the cumulative average over
// the whole run. Values are clamped to [0, 1].
func WithSmoothing(alpha float64) Option {
	return func(c *config) { c.smoothing = min(max(alpha, 0), 1) }
}

// WithDescription prefixes each line with "desc: ".
func WithDescription(desc string) Option {
	return func(c *config) { c.desc = desc }
}

// WithLogger sets the logger for width fallbacks and write failures.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) { c.logger = l }
}

// Bar passes the items of a Sequence through unchanged and redraws a
// status line for each of them. It is an Iterator itself.
//
// A Bar is single-pass and not safe for concurrent use.
type Bar[T any] struct {
	cfg   config
	seq   Sequence[T]
	total int

	it      Iterator[T]
	value   T
	index   int
	started bool
	done    bool
	err     error

	start time.Time
	last  time.Time
	stats Stats
	dn    ema
	dt    ema

	// lastLen and lastWidth describe the previous redraw, so a shorter
	// line can be padded over it.
	lastLen   int
	lastWidth int

	widthFallback bool
	writeFailed   bool
}

// Wrap returns a Bar over seq. The length is read once, here; the
// sequence itself is not touched until the first call to Next.
func Wrap[T any](seq Sequence[T], opts ...Option) *Bar[T] {
	cfg := config{
		writer: os.Stdout,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.width == nil {
		cfg.width = TerminalWidthFor(cfg.writer)
	}
	if cfg.logger == nil {
		cfg.logger = slog.Default()
	}

	return &Bar[T]{
		cfg:   cfg,
		seq:   seq,
		total: seq.Len(),
		dn:    ema{alpha: cfg.smoothing},
		dt:    ema{alpha: cfg.smoothing},
	}
}

// Next pulls the next item from the sequence and redraws the status line.
func (b *Bar[T]) Next() bool {
	if b.done {
		return false
	}
	if !b.started {
		b.started = true
		b.start = b.cfg.now()
		b.last = b.start
		if b.total < 0 {
			b.err = ErrNegativeLength
			b.done = true
			return false
		}
		b.it = b.seq.Iterate()
	}

	if !b.it.Next() {
		b.done = true
		b.err = b.it.Err()
		return false
	}
	b.value = b.it.Value()
	b.index++
	b.render()
	return true
}

// Value returns the item produced by the last successful Next.
func (b *Bar[T]) Value() T { return b.value }

// Err returns the error that ended the iteration, if any.
func (b *Bar[T]) Err() error { return b.err }

// Close stops the iteration and closes the underlying iterator.
// It prints nothing; the trailing newline is up to the caller.
func (b *Bar[T]) Close() error {
	b.done = true
	if b.it == nil {
		return nil
	}
	return b.it.Close()
}

// All returns the remaining items as a range-over-func sequence.
// The Bar is closed when the loop ends, including on break.
func (b *Bar[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		defer b.Close()
		for b.Next() {
			if !yield(b.Value()) {
				return
			}
		}
	}
}

// Total is the length read from the sequence.
func (b *Bar[T]) Total() int { return b.total }

// Count is the number of items produced so far.
func (b *Bar[T]) Count() int { return b.index }

// Stats returns the timing figures of the latest redraw.
func (b *Bar[T]) Stats() Stats { return b.stats }

func (b *Bar[T]) render() {
	now := b.cfg.now()
	elapsed := now.Sub(b.start)

	if b.cfg.smoothing > 0 {
		// The first item has no previous pull to measure against.
		if b.index > 1 {
			b.dn.update(1)
			b.dt.update(now.Sub(b.last).Seconds())
		}
		var rate float64
		if dt := b.dt.value(); dt > 0 {
			rate = b.dn.value() / dt
		}
		b.stats = statsWithRate(elapsed, rate, b.index, b.total)
	} else {
		b.stats = NewStats(elapsed, b.index, b.total)
	}
	b.last = now

	width := b.width()
	line := b.pad(RenderLine(b.cfg.desc, b.index, b.total, width, b.stats), width)
	if _, err := io.WriteString(b.cfg.writer, "\r"+line); err != nil && !b.writeFailed {
		b.writeFailed = true
		b.cfg.logger.Debug("failed to write progress line", "error", err)
	}
}

// pad extends line with spaces over whatever the previous redraw left on
// screen. A terminal that got narrower is not padded past its new width.
func (b *Bar[T]) pad(line string, width int) string {
	n := displayWidth.StringWidth(line)
	target := b.lastLen
	if width < b.lastWidth {
		target = min(target, width)
	}
	b.lastWidth = width
	if n >= target {
		b.lastLen = n
		return line
	}
	b.lastLen = target
	return line + strings.Repeat(" ", target-n)
}

func (b *Bar[T]) width() int {
	w, err := b.cfg.width.Width()
	if err == nil && w > 0 {
		return w
	}
	if !b.widthFallback {
		b.widthFallback = true
		b.cfg.logger.Debug("terminal width unavailable, using default", "width", DefaultWidth, "error", err)
	}
	return DefaultWidth
}
