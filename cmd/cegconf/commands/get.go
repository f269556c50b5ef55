package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/teranos/cegconf/display"
	"github.com/teranos/cegconf/errors"
	"github.com/teranos/cegconf/logger"
	"github.com/teranos/cegconf/registry"
)

// GetCmd prints a single registry value
var GetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Print one registry value",
	Long: `Print one registry value by its dotted key (e.g. ceg.node_width,
id.allowed_chars). Lists print one entry per line.`,
	Args: cobra.ExactArgs(1),
	RunE: runGet,
}

func init() {
	GetCmd.Flags().Bool("json", false, "Output the value as JSON")
}

func runGet(cmd *cobra.Command, args []string) error {
	key := args[0]
	value, ok := registry.Lookup(key)
	logger.Debugw("Looked up registry key", logger.FieldKey, key, "found", ok)
	if !ok {
		return errors.WithHint(
			errors.Wrapf(errors.ErrUnknownKey, "%s", key),
			"known keys: "+strings.Join(registry.Keys(), ", "))
	}

	if display.ShouldOutputJSON(cmd) {
		return display.OutputJSON(cmd.OutOrStdout(), value)
	}

	switch v := value.(type) {
	case []string:
		for _, s := range v {
			fmt.Fprintln(cmd.OutOrStdout(), s)
		}
	default:
		fmt.Fprintln(cmd.OutOrStdout(), v)
	}
	return nil
}
