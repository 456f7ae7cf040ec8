package cmd

import (
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
)

// writeFile creates path and hands it to write, gzip-compressed when gz is
// set. Flush and close errors are returned so a truncated file is never
// reported as written.
func writeFile(path string, gz bool, write func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			err = errors.Join(err, fmt.Errorf("failed to close %s: %w", path, cerr))
		}
	}()

	if !gz {
		if err := write(f); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
		return nil
	}

	gw := gzip.NewWriter(f)
	if err := write(gw); err != nil {
		gw.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := gw.Close(); err != nil {
		return fmt.Errorf("failed to finish gzip stream %s: %w", path, err)
	}
	return nil
}
