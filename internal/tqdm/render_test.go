package tqdm

import (
	"strconv"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/Pallinder/go-randomdata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPercentage(t *testing.T) {
	tests := []struct {
		part, whole int
		expected    string
	}{
		{1, 1, "100%"},
		{1, 3, "33%"},
		{2, 3, "66%"},
		{10, 10, "100%"},
		{1, 333, "0%"},
		{0, 0, "100%"},
	}

	for _, tt := range tests {
		if got := Percentage(tt.part, tt.whole); got != tt.expected {
			t.Errorf("Percentage(%d, %d) = %q, want %q", tt.part, tt.whole, got, tt.expected)
		}
	}
}

func TestPercentageIsFloorAndMonotonic(t *testing.T) {
	n := randomdata.Number(1, 500)
	prev := -1
	for i := 0; i < n; i++ {
		got := Percentage(i+1, n)
		value, err := strconv.Atoi(strings.TrimSuffix(got, "%"))
		require.NoError(t, err)
		require.Equal(t, 100*(i+1)/n, value, "n=%d i=%d", n, i)
		require.GreaterOrEqual(t, value, prev)
		prev = value
	}
	assert.Equal(t, "100%", Percentage(n, n))
}

func TestCounter(t *testing.T) {
	assert.Equal(t, "1/1", Counter(1, 1))
	assert.Equal(t, "10/10", Counter(10, 10))
	assert.Equal(t, "0/0", Counter(0, 0))
}

func TestProgressBar(t *testing.T) {
	tests := []struct {
		name              string
		part, whole, size int
		expected          string
	}{
		{name: "empty", part: 0, whole: 4, size: 4, expected: "|    |"},
		{name: "half", part: 2, whole: 4, size: 4, expected: "|██  |"},
		{name: "full", part: 4, whole: 4, size: 4, expected: "|████|"},
		{name: "floor", part: 1, whole: 3, size: 4, expected: "|█   |"},
		{name: "zero width", part: 1, whole: 2, size: 0, expected: "||"},
		{name: "negative width", part: 1, whole: 2, size: -3, expected: "||"},
		{name: "overrun", part: 6, whole: 4, size: 4, expected: "|████|"},
		{name: "zero whole", part: 0, whole: 0, size: 3, expected: "|███|"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ProgressBar(tt.part, tt.whole, tt.size))
		})
	}
}

func TestProgressBarFillIsMonotonic(t *testing.T) {
	n := randomdata.Number(1, 300)
	width := randomdata.Number(1, 120)
	prev := 0
	for i := 0; i < n; i++ {
		bar := ProgressBar(i+1, n, width)
		filled := strings.Count(bar, filledCell)
		require.GreaterOrEqual(t, filled, prev)
		require.LessOrEqual(t, filled, width)
		require.Equal(t, width+2, utf8.RuneCountInString(bar))
		prev = filled
	}
	assert.Equal(t, width, prev)
}

func TestFormatClock(t *testing.T) {
	tests := []struct {
		in       time.Duration
		expected string
	}{
		{0, "00:00"},
		{1500 * time.Millisecond, "00:01"},
		{59 * time.Second, "00:59"},
		{61 * time.Second, "01:01"},
		{2*time.Hour + 5*time.Second, "120:05"},
		{-time.Second, "00:00"},
	}

	for _, tt := range tests {
		if got := FormatClock(tt.in); got != tt.expected {
			t.Errorf("FormatClock(%v) = %q, want %q", tt.in, got, tt.expected)
		}
	}
}

func TestNewStats(t *testing.T) {
	t.Run("zero elapsed", func(t *testing.T) {
		s := NewStats(0, 1, 10)
		assert.Zero(t, s.Rate)
		assert.Zero(t, s.Remaining)
	})

	t.Run("cumulative rate", func(t *testing.T) {
		s := NewStats(2*time.Second, 4, 10)
		assert.InDelta(t, 2.0, s.Rate, 1e-9)
		assert.Equal(t, 3*time.Second, s.Remaining)
	})

	t.Run("done", func(t *testing.T) {
		s := NewStats(time.Second, 10, 10)
		assert.Zero(t, s.Remaining)
	})

	t.Run("tiny rate does not overflow", func(t *testing.T) {
		s := NewStats(1000000*time.Hour, 1, 1<<40)
		assert.Positive(t, s.Remaining)
	})
}

func TestStatsString(t *testing.T) {
	s := Stats{Elapsed: time.Second, Remaining: 0, Rate: 191.29}
	assert.Equal(t, "[00:01<00:00, 191.29it/s] ", s.String())

	s = Stats{}
	assert.Equal(t, "[00:00<00:00,   0.00it/s] ", s.String())

	for _, rate := range []float64{0, 9.5, 8000, 20000, 99999.99} {
		got := Stats{Rate: rate}.String()
		assert.Equal(t, statsWidth, utf8.RuneCountInString(got), got)
	}
}

func TestRenderLine(t *testing.T) {
	stats := Stats{Elapsed: time.Second, Remaining: 9 * time.Second, Rate: 1}

	line := RenderLine("", 1, 10, 80, stats)
	assert.Equal(t, 80, utf8.RuneCountInString(line))
	assert.True(t, strings.HasPrefix(line, "10%|"), line)
	assert.True(t, strings.HasSuffix(line, " 1/10 [00:01<00:09,   1.00it/s] "), line)

	line = RenderLine("load", 10, 10, 80, stats)
	assert.Equal(t, 80, utf8.RuneCountInString(line))
	assert.True(t, strings.HasPrefix(line, "load: 100%|█"), line)
	assert.Contains(t, line, "█| 10/10 ")
}

func TestRenderLineNeverExceedsWidth(t *testing.T) {
	for width := 60; width <= 200; width += 7 {
		n := randomdata.Number(1, 10000)
		for _, done := range []int{1, n / 2, n} {
			if done == 0 {
				continue
			}
			line := RenderLine("", done, n, width, NewStats(time.Duration(done)*time.Millisecond, done, n))
			require.LessOrEqual(t, utf8.RuneCountInString(line), width, line)
		}
	}
}

func TestRenderLineNarrowTerminal(t *testing.T) {
	line := RenderLine("", 5, 10, 10, Stats{})
	assert.Contains(t, line, "50%|| 5/10 ")
}
