// FILE: lixenwraith/dconf/io_windows.go

//go:build windows

package dconf

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// writeSnapshot streams write into a temp file next to path and renames it over path.
// The rename is best-effort atomic on Windows.
func (c *Client) writeSnapshot(path string, write func(w io.Writer) error) error {
	tmpFile, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create pending snapshot file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer func() {
		if tmpFile != nil {
			tmpFile.Close()
			os.Remove(tmpPath)
		}
	}()

	if err := write(tmpFile); err != nil {
		return err
	}

	if err := tmpFile.Sync(); err != nil {
		return fmt.Errorf("failed to sync snapshot file: %w", err)
	}

	// Windows requires the handle closed before rename
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close snapshot file: %w", err)
	}
	tmpFile = nil

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to replace snapshot file '%s': %w", path, err)
	}
	return nil
}
