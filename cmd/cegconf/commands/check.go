package commands

import (
	"fmt"
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/teranos/cegconf/am"
	"github.com/teranos/cegconf/display"
	"github.com/teranos/cegconf/errors"
	"github.com/teranos/cegconf/logger"
	"github.com/teranos/cegconf/registry"
)

// CheckCmd asserts the registry invariants and compares exported copies
var CheckCmd = &cobra.Command{
	Use:   "check [file]",
	Short: "Check registry invariants and drift of an exported copy",
	Long: `Evaluate every registry invariant. Given a file exported by
'cegconf show' (json, yaml or toml, picked by extension), also report
every key whose value no longer matches the compiled registry and exit
non-zero.

Without an argument the file named by check.file in cegconf.toml is used,
if any.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCheck,
}

func init() {
	CheckCmd.Flags().Bool("json", false, "Output drift as JSON")
}

func runCheck(cmd *cobra.Command, args []string) error {
	log := logger.ComponentLogger("check")

	if err := registry.Check(); err != nil {
		return errors.Wrap(err, "registry invariants violated")
	}

	path := ""
	if len(args) == 1 {
		path = args[0]
	} else {
		cfg, err := am.Load()
		if err != nil {
			return errors.Wrap(err, "failed to load config")
		}
		path = cfg.Check.File
		if path != "" {
			printInfo(cmd, "Comparing %s from check.file", path)
		}
	}

	if path == "" {
		printSuccess(cmd, "Registry invariants hold")
		return nil
	}

	format, err := registry.FormatFromPath(path)
	if err != nil {
		return err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "failed to read %s", path)
	}
	exported, err := registry.Decode(data, format)
	if err != nil {
		return errors.Wrapf(err, "failed to decode %s", path)
	}

	drift := registry.Defaults().Diff(exported)
	log.Debugw("Compared exported registry",
		logger.FieldFile, path,
		logger.FieldFormat, string(format),
		logger.FieldDrift, len(drift))

	if len(drift) == 0 {
		printSuccess(cmd, "%s matches the compiled registry", path)
		return nil
	}

	logger.Warnw("Exported registry drifted",
		logger.FieldFile, path,
		logger.FieldDrift, len(drift))

	if display.ShouldOutputJSON(cmd) {
		if err := display.OutputJSON(cmd.OutOrStdout(), drift); err != nil {
			return err
		}
	} else if err := renderDrift(cmd, drift); err != nil {
		return err
	}

	return errors.WithHint(
		errors.Wrapf(errors.ErrDrift, "%d keys differ in %s", len(drift), path),
		"regenerate it with 'cegconf show --format "+string(format)+" -o "+path+"'")
}

func renderDrift(cmd *cobra.Command, drift []registry.Drift) error {
	data := pterm.TableData{{"Key", "Compiled", "Exported"}}
	for _, d := range drift {
		data = append(data, []string{d.Key, display.FormatValue(d.Want), display.FormatValue(d.Got)})
	}
	out, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return errors.Wrap(err, "failed to render drift")
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
	return err
}
