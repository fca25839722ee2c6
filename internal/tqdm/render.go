package tqdm

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"
)

const (
	filledCell = "█"
	emptyCell  = " "
	barEdge    = "|"

	// statsWidth is the display width of the timing block for rates below
	// 100000 it/s. Faster rates widen it; Bar pads the line in that case.
	statsWidth = 26
	// lineSeparators covers the two bar edges and the two spaces around the counter.
	lineSeparators = 4

	maxClockSeconds = float64(math.MaxInt64 / int64(time.Second))
)

// displayWidth measures in terminal cells. The block glyphs are one cell
// wide regardless of the locale's East Asian width setting.
var displayWidth = &runewidth.Condition{EastAsianWidth: false}

// Percentage formats floor(100*part/whole) followed by a percent sign.
// A non-positive whole has nothing left to do and reads 100%.
func Percentage(part, whole int) string {
	if whole <= 0 {
		return "100%"
	}
	return strconv.Itoa(part*100/whole) + "%"
}

// Counter formats "count/total".
func Counter(count, total int) string {
	return strconv.Itoa(count) + "/" + strconv.Itoa(total)
}

// ProgressBar draws width cells between two edges, floor(width*part/whole)
// of them filled. The fill never exceeds width.
func ProgressBar(part, whole, width int) string {
	width = max(width, 0)
	filled := width
	if whole > 0 {
		filled = width * part / whole
	}
	filled = min(max(filled, 0), width)
	return barEdge + strings.Repeat(filledCell, filled) + strings.Repeat(emptyCell, width-filled) + barEdge
}

// FormatClock formats d as MM:SS. Minutes keep counting past an hour.
func FormatClock(d time.Duration) string {
	seconds := max(int64(d/time.Second), 0)
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

// Stats holds the timing figures of one redraw.
type Stats struct {
	Elapsed   time.Duration
	Remaining time.Duration
	// Rate is in items per second.
	Rate float64
}

// NewStats derives the cumulative rate and the time left after done of
// total items took elapsed.
func NewStats(elapsed time.Duration, done, total int) Stats {
	var rate float64
	if elapsed > 0 {
		rate = float64(done) / elapsed.Seconds()
	}
	return statsWithRate(elapsed, rate, done, total)
}

func statsWithRate(elapsed time.Duration, rate float64, done, total int) Stats {
	s := Stats{Elapsed: elapsed, Rate: rate}
	if rate > 0 && total > done {
		seconds := min(float64(total-done)/rate, maxClockSeconds)
		s.Remaining = time.Duration(seconds * float64(time.Second))
	}
	return s
}

// String renders the timing block, e.g. "[00:01<00:00, 191.29it/s] ".
func (s Stats) String() string {
	stat := fmt.Sprintf("[%s<%s,%7.2fit/s]", FormatClock(s.Elapsed), FormatClock(s.Remaining), s.Rate)
	return displayWidth.FillRight(stat, statsWidth)
}

// RenderLine lays out one status line for a terminal that is width cells
// wide. The bar takes whatever the other parts leave over, so the line is
// exactly width cells unless the fixed parts alone are wider.
func RenderLine(desc string, done, total, width int, stats Stats) string {
	prefix := ""
	if desc != "" {
		prefix = desc + ": "
	}
	pct := Percentage(done, total)
	counter := Counter(done, total)
	timing := stats.String()

	barWidth := width - displayWidth.StringWidth(prefix) - len(pct) - len(counter) - displayWidth.StringWidth(timing) - lineSeparators
	return prefix + pct + ProgressBar(done, total, barWidth) + " " + counter + " " + timing
}
