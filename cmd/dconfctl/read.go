// FILE: lixenwraith/dconf/cmd/dconfctl/read.go
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/dconf/internal/log"
)

func newReadCmd(a *app) *cobra.Command {
	var valueType string

	cmd := &cobra.Command{
		Use:   "read <key>",
		Short: "Read a typed value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := readTyped(cmd.Context(), a.client, args[0], valueType)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), value)
			return nil
		},
	}
	cmd.Flags().StringVarP(&valueType, "type", "t", typeString, "value type (bool, string, int, uint, double)")
	return cmd
}

func newWriteCmd(a *app) *cobra.Command {
	var valueType string

	cmd := &cobra.Command{
		Use:   "write <key> <value>",
		Short: "Write a typed value",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := writeTyped(cmd.Context(), a.client, args[0], args[1], valueType); err != nil {
				return err
			}
			a.logger.Info().Str(log.FieldKey, args[0]).Str("type", valueType).Msg("value written")
			return nil
		},
	}
	cmd.Flags().StringVarP(&valueType, "type", "t", typeString, "value type (bool, string, int, uint, double)")
	return cmd
}

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list <dir/>",
		Short: "List the entries of a directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := a.client.ListDir(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, entry := range entries {
				fmt.Fprintln(out, entry)
			}
			return nil
		},
	}
}
