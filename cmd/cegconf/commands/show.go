package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/teranos/cegconf/am"
	"github.com/teranos/cegconf/display"
	"github.com/teranos/cegconf/errors"
	"github.com/teranos/cegconf/logger"
	"github.com/teranos/cegconf/registry"
)

var (
	showFormat string
	showOutput string
)

// ShowCmd prints the compiled registry
var ShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the registry",
	Long: `Print every registry value.

The table format is meant for reading; json, yaml and toml produce an
exported copy that 'cegconf check' can later compare against.

Examples:
  cegconf show                          # Table (or output.format from cegconf.toml)
  cegconf show --format json            # JSON export
  cegconf show --format toml -o reg.toml`,
	Args: cobra.NoArgs,
	RunE: runShow,
}

func init() {
	ShowCmd.Flags().StringVarP(&showFormat, "format", "f", "", "Output format: table, json, yaml, toml (default: output.format)")
	ShowCmd.Flags().StringVarP(&showOutput, "output", "o", "", "Write the export to a file instead of stdout")
}

func runShow(cmd *cobra.Command, args []string) error {
	format := showFormat
	if format == "" {
		cfg, err := am.Load()
		if err != nil {
			return errors.Wrap(err, "failed to load config")
		}
		format = cfg.Output.Format
	}

	snapshot := registry.Defaults()

	if format == am.FormatTable {
		if showOutput != "" {
			return errors.WithHint(
				errors.New("the table format cannot be written to a file"),
				"use --format json, yaml or toml together with --output")
		}
		return display.RenderSnapshot(cmd.OutOrStdout(), snapshot)
	}

	f, err := registry.ParseFormat(format)
	if err != nil {
		return err
	}
	data, err := registry.Encode(snapshot, f)
	if err != nil {
		return err
	}

	if showOutput == "" {
		_, err = fmt.Fprint(cmd.OutOrStdout(), string(data))
		return err
	}

	if err := os.WriteFile(showOutput, data, am.DefaultFilePermissions); err != nil {
		return errors.Wrapf(err, "failed to write %s", showOutput)
	}
	logger.Infow("Exported registry",
		logger.FieldFormat, string(f),
		logger.FieldFile, showOutput,
		logger.FieldSize, len(data))
	printSuccess(cmd, "Wrote %s", showOutput)
	return nil
}
