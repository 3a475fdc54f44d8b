// Package input loads the record collection the engine counts over. Records
// are newline-delimited text lines, fully materialized before dispatch so the
// partitioner sees a stable count and order.
package input

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// Read collects every line of r into a record slice.
func Read(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	// Lines longer than the default 64K scanner limit are still records.
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	var records []string
	for scanner.Scan() {
		records = append(records, scanner.Text())
	}

	return records, scanner.Err()
}

// ReadFiles concatenates the lines of every named file, in argument order.
func ReadFiles(paths ...string) ([]string, error) {
	var records []string

	for _, path := range paths {
		file, err := os.Open(path)
		if err != nil {
			return nil, err
		}

		lines, err := Read(file)
		file.Close()
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}

		records = append(records, lines...)
	}

	return records, nil
}
