// Package cmd is the command line surface for run.
package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/josephlewis42/run/core"
	"github.com/josephlewis42/run/core/config"
	"github.com/josephlewis42/run/core/invoker"
)

var (
	verbose  bool
	dryRun   bool
	noColor  bool
	filePath string
	chdir    string
)

// rootCmd is the whole CLI: run with no arguments lists the available
// commands, run <name> executes one. Interspersed flag parsing is off so
// everything after the command name passes through to its binding.
var rootCmd = &cobra.Command{
	Use:   "run [command] [args...]",
	Short: "Run commands from the nearest Runfile",
	Long: `run finds the closest Runfile in the current directory or any parent,
and executes the named command from it. Without arguments it lists the
commands the Runfile declares.`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runRoot,
}

// Execute runs the CLI and exits the process. A script's own exit code is
// propagated as-is; every other failure reports to stderr and exits 1.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		var exitErr *invoker.ExitError
		if errors.As(err, &exitErr) {
			// The child already wrote its own diagnostics.
			os.Exit(exitErr.Code)
		}
		fmt.Fprintf(os.Stderr, "run: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().SetInterspersed(false)
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, "print the bound script instead of executing it")
	rootCmd.Flags().BoolVar(&noColor, "no-color", false, "disable colorized output")
	rootCmd.Flags().StringVarP(&filePath, "file", "f", "", "use this Runfile instead of searching for one")
	rootCmd.Flags().StringVarP(&chdir, "chdir", "C", "", "start the Runfile search from this directory")
}

func runRoot(cobraCmd *cobra.Command, args []string) error {
	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: false})
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}

	pipeline := core.New(logger)

	path := filePath
	if path == "" {
		start := chdir
		if start == "" {
			wd, err := os.Getwd()
			if err != nil {
				return err
			}
			start = wd
		}
		found, err := core.FindRunfile(pipeline.FS, start, core.DefaultRunfileName)
		if err != nil {
			return err
		}
		path = found
	}
	logger.Debug("using runfile", "path", path)

	cfg, err := config.Load(pipeline.FS, filepath.Dir(path))
	if err != nil {
		return err
	}
	pipeline.DefaultShell = cfg.Shell

	colors := !noColor
	switch cfg.Color {
	case config.ColorAlways:
		color.NoColor = false
	case config.ColorNever:
		colors = false
	}

	if len(args) == 0 {
		return pipeline.Help(os.Stdout, path, colors)
	}

	name, argv := args[0], args[1:]
	if dryRun {
		return pipeline.DryRun(os.Stdout, path, name, argv)
	}

	_, err = pipeline.Execute(cobraCmd.Context(), path, name, argv, invoker.ModeInherit)
	return err
}
