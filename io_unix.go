// FILE: lixenwraith/dconf/io_unix.go

//go:build !windows

package dconf

import (
	"fmt"
	"io"

	"github.com/google/renameio/v2"
)

// writeSnapshot streams write into a pending file next to path and atomically replaces path
func (c *Client) writeSnapshot(path string, write func(w io.Writer) error) error {
	pendingFile, err := renameio.NewPendingFile(path, renameio.WithPermissions(0644))
	if err != nil {
		return fmt.Errorf("failed to create pending snapshot file: %w", err)
	}
	defer func() {
		if err := pendingFile.Cleanup(); err != nil {
			c.logger.Debug().Err(err).Str("file", path).Msg("cleanup pending snapshot file")
		}
	}()

	if err := write(pendingFile); err != nil {
		return err
	}

	if err := pendingFile.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("failed to replace snapshot file '%s': %w", path, err)
	}
	return nil
}
