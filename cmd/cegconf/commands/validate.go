package commands

import (
	"github.com/spf13/cobra"
	"github.com/teranos/cegconf/validation"
)

// ValidateCmd checks values against the editor's validation rules
var ValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate identifiers, names and descriptions",
	Long: `Check a value against the rules applied to model, node and
connection fields. Exits non-zero when the value is rejected.`,
}

func validateCommand(use, short string, check func(string) error) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <value>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := check(args[0]); err != nil {
				return err
			}
			printSuccess(cmd, "valid %s", use)
			return nil
		},
	}
}

func init() {
	ValidateCmd.AddCommand(validateCommand("id", "Validate an identifier", validation.ValidateID))
	ValidateCmd.AddCommand(validateCommand("name", "Validate a name", validation.ValidateName))
	ValidateCmd.AddCommand(validateCommand("text", "Validate a description", validation.ValidateText))
}
