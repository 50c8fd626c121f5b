// FILE: lixenwraith/dconf/cmd/dconfctl/snapshot.go
package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/dconf/internal/log"
)

func newDumpCmd(a *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "dump <dir/>",
		Short: "Print the tree below a directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a.logger.Debug().Str(log.FieldDir, args[0]).Str(log.FieldFormat, format).Msg("exporting tree")
			return a.client.Export(cmd.Context(), args[0], cmd.OutOrStdout(), format)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "toml", "output format (toml, yaml, json)")
	return cmd
}

func newSaveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "save <dir/> <file>",
		Short: "Save the tree below a directory to a file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.client.Save(cmd.Context(), args[0], args[1]); err != nil {
				return err
			}
			a.logger.Info().
				Str(log.FieldDir, args[0]).
				Str(log.FieldFormat, fileFormat(args[1])).
				Str("file", args[1]).
				Msg("snapshot saved")
			fmt.Fprintf(cmd.OutOrStdout(), "saved %s to %s\n", args[0], args[1])
			return nil
		},
	}
}

func newRestoreCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "restore <dir/> <file>",
		Short: "Write every value in a snapshot file below a directory",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.client.Restore(cmd.Context(), args[0], args[1]); err != nil {
				return err
			}
			a.logger.Info().Str(log.FieldDir, args[0]).Str("file", args[1]).Msg("snapshot restored")
			fmt.Fprintf(cmd.OutOrStdout(), "restored %s from %s\n", args[0], args[1])
			return nil
		},
	}
}

// fileFormat names the snapshot format implied by a file extension
func fileFormat(path string) string {
	return strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
}
