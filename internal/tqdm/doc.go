// Package tqdm wraps finite, length-known sequences with a terminal
// progress line.
//
// Every item pulled through a Bar redraws a single status line on the
// configured writer (standard output by default):
//
//	 42%|████████████████                      | 42/100 [00:02<00:03,  19.61it/s]
//
// The line is prefixed with a carriage return and never ends in a newline,
// so successive redraws overwrite each other. Callers print the final
// newline themselves once the loop is done.
//
// # Usage
//
//	bar := tqdm.Wrap(tqdm.Range(333))
//	for i := range bar.All() {
//	    work(i)
//	}
//	fmt.Println()
//	if err := bar.Err(); err != nil {
//	    return err
//	}
//
// Terminal width is sampled on every redraw through a WidthProvider, so a
// resized terminal is picked up on the next item. When the width cannot be
// queried the line is laid out for DefaultWidth columns.
package tqdm
