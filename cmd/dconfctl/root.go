// FILE: lixenwraith/dconf/cmd/dconfctl/root.go
package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/lixenwraith/dconf"
	"github.com/lixenwraith/dconf/internal/log"
)

const appName = "dconfctl"

// runnerOverride replaces the process runner, used by tests
var runnerOverride dconf.Runner

// rootFlags holds the persistent flag values of one command tree
type rootFlags struct {
	configFile string
	tool       string
	timeout    time.Duration
	logLevel   string
	console    bool
}

// app carries state shared by subcommands after PersistentPreRunE
type app struct {
	flags  rootFlags
	client *dconf.Client
	logger zerolog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:           appName,
		Short:         "Typed access to the dconf configuration database",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "version" {
				return nil
			}
			return a.init(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.flags.configFile, "config", "", "options file (default: discovered dconfctl.{toml,yaml,json})")
	flags.StringVar(&a.flags.tool, "tool", dconf.DefaultTool, "configuration tool binary")
	flags.DurationVar(&a.flags.timeout, "timeout", 0, "per-invocation timeout (0 = none)")
	flags.StringVar(&a.flags.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	flags.BoolVar(&a.flags.console, "console", false, "human-readable log output")

	rootCmd.AddCommand(
		newReadCmd(a),
		newWriteCmd(a),
		newListCmd(a),
		newDumpCmd(a),
		newSaveCmd(a),
		newRestoreCmd(a),
		newVersionCmd(),
	)

	return rootCmd
}

// init resolves options and builds the client
func (a *app) init(cmd *cobra.Command) error {
	builder := dconf.NewBuilder().WithEnvPrefix(dconf.DefaultEnvPrefix)

	if a.flags.configFile != "" {
		builder.WithFile(a.flags.configFile)
	} else {
		discovery := dconf.DefaultDiscoveryOptions(appName)
		discovery.CLIFlag = "" // Already parsed by cobra
		builder.WithFileDiscovery(discovery)
	}

	changed := cmd.Flags().Changed
	if changed("tool") {
		builder.WithTool(a.flags.tool)
	}
	if changed("timeout") {
		builder.WithTimeout(a.flags.timeout)
	}
	if changed("log-level") {
		builder.WithLogLevel(a.flags.logLevel)
	}

	opts, err := builder.Options()
	if err != nil && !errors.Is(err, dconf.ErrOptionsNotFound) {
		return fmt.Errorf("load options: %w", err)
	}

	logger := log.New(log.Config{
		Level:   opts.LogLevel,
		Output:  cmd.ErrOrStderr(),
		Console: a.flags.console,
	})
	a.logger = log.WithComponent(logger, appName)
	builder.WithLogger(log.WithComponent(logger, "dconf"))
	if runnerOverride != nil {
		builder.WithRunner(runnerOverride)
	}

	client, err := builder.Build()
	if err != nil && !errors.Is(err, dconf.ErrOptionsNotFound) {
		return fmt.Errorf("build client: %w", err)
	}
	a.client = client
	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), appName+" v0.1.0")
		},
	}
}
