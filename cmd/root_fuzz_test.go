package cmd

import (
	"strings"
	"testing"
)

func FuzzReadLinesNoPanic(f *testing.F) {
	f.Add("a\nb\nc")
	f.Add("\n\n  \n")
	f.Add("")

	f.Fuzz(func(t *testing.T, input string) {
		lines, _ := readLines(strings.NewReader(input))
		for _, line := range lines {
			if line == "" || strings.TrimSpace(line) != line {
				t.Fatalf("line not trimmed: %q", line)
			}
		}
	})
}
