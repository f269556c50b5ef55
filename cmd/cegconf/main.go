package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/teranos/cegconf/am"
	"github.com/teranos/cegconf/cmd/cegconf/commands"
	"github.com/teranos/cegconf/errors"
	"github.com/teranos/cegconf/logger"
)

var rootCmd = &cobra.Command{
	Use:   "cegconf",
	Short: "cegconf - Cause-effect graph editor configuration registry",
	Long: `cegconf - Configuration registry of the cause-effect graph editor.

The registry holds the editor's compiled-in constants: REST base path,
layout dimensions, default model/node/connection templates and the
identifier rules. cegconf prints, checks and exports them.

Available commands:
  show     - Print the registry
  get      - Print one registry value
  check    - Assert registry invariants and detect drift of an exported copy
  id       - Format, parse, sanitize and allocate identifiers
  validate - Validate identifiers, names and descriptions
  typegen  - Generate the TypeScript Config class
  am       - Show cegconf tool configuration
  version  - Show version information

Examples:
  cegconf show --format yaml        # Print the registry as YAML
  cegconf get ceg.node_width        # Print a single value
  cegconf check web/registry.json   # Fail if the exported copy drifted
  cegconf id next node node-1 node-4
  cegconf typegen -o web/src/app/config

Exit status is 0 on success, 2 when a value was rejected by the id, name
or text rules, and 1 on any other error.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := am.Load()
		if err != nil {
			return errors.Wrap(err, "failed to load config")
		}
		verbosity, _ := cmd.Flags().GetCount("verbose")
		if err := logger.Initialize(cfg.Log.JSON, verbosity); err != nil {
			return errors.Wrap(err, "failed to initialize logger")
		}
		logger.Debugw("Starting command",
			logger.FieldCommand, cmd.CommandPath(),
			"verbosity", logger.LevelName(verbosity))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logger.Cleanup()
	},
}

func init() {
	rootCmd.PersistentFlags().CountP("verbose", "v", "Increase output verbosity (repeat for more detail: -v, -vv)")

	rootCmd.AddCommand(commands.ShowCmd)
	rootCmd.AddCommand(commands.GetCmd)
	rootCmd.AddCommand(commands.CheckCmd)
	rootCmd.AddCommand(commands.IDCmd)
	rootCmd.AddCommand(commands.ValidateCmd)
	rootCmd.AddCommand(commands.TypegenCmd)
	rootCmd.AddCommand(commands.AmCmd)
	rootCmd.AddCommand(commands.VersionCmd)
}

// Exit codes
const (
	exitError      = 1
	exitValidation = 2
)

func exitCode(err error) int {
	if errors.IsValidationError(err) {
		return exitValidation
	}
	return exitError
}

func reportError(w io.Writer, err error) {
	hint := errors.FlattenHints(err)
	if logger.JSONOutput {
		logger.Errorw("Command failed", logger.FieldError, err.Error(), "hint", hint)
		logger.Cleanup()
		return
	}
	fmt.Fprintln(w, "Error:", err)
	if hint != "" {
		fmt.Fprintln(w, "Hint:", hint)
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		reportError(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}
