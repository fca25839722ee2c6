package cmd

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/sh4869221b/go-ft-tqdm/internal/tqdm"
	"github.com/spf13/cobra"
)

// newWidthProvider picks the line width source for the progress writer.
func newWidthProvider(w io.Writer) tqdm.WidthProvider {
	if width > 0 {
		return tqdm.FixedWidth(width)
	}
	return tqdm.TerminalWidthFor(w)
}

// collectInputs gathers items from args, the input file, and stdin, in that order.
func collectInputs(cmd *cobra.Command, args []string) ([]string, error) {
	items := append([]string(nil), args...)

	if inputFilePath != "" {
		lines, err := readLinesFromFile(inputFilePath)
		if err != nil {
			return nil, err
		}
		items = append(items, lines...)
	}

	if readStdin {
		var reader io.Reader = os.Stdin
		if cmd != nil {
			reader = cmd.InOrStdin()
		}
		lines, err := readLines(reader)
		if err != nil {
			return nil, err
		}
		items = append(items, lines...)
	}

	return items, nil
}

// readLinesFromFile reads trimmed lines from a file.
func readLinesFromFile(path string) ([]string, error) {
	file, err := openInputFile(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return readLines(file)
}

// readLines reads non-empty trimmed lines from a reader.
func readLines(reader io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, 1024), 1024*1024)
	var lines []string
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return lines, err
	}
	return lines, nil
}
