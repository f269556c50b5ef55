package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/teranos/cegconf/display"
	"github.com/teranos/cegconf/errors"
	"github.com/teranos/cegconf/ids"
	"github.com/teranos/cegconf/logger"
)

// IDCmd groups the identifier helpers
var IDCmd = &cobra.Command{
	Use:   "id",
	Short: "Format, parse, sanitize and allocate identifiers",
	Long: `Identifier helpers following the registry's id rules: ids are a
prefix, the separator and a decimal suffix (node-3).

Examples:
  cegconf id format node 3           # node-3
  cegconf id parse conn-12           # prefix conn, number 12
  cegconf id sanitize "Login Page"   # login_page
  cegconf id next node node-1 node-4 # node-5`,
}

var idFormatCmd = &cobra.Command{
	Use:   "format <prefix> <n>",
	Short: "Join a prefix and a number into an id",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := strconv.Atoi(args[1])
		if err != nil {
			return errors.Wrapf(errors.ErrInvalidID, "suffix %q is not a number", args[1])
		}
		fmt.Fprintln(cmd.OutOrStdout(), ids.Format(args[0], n))
		return nil
	},
}

// parsedID is the JSON shape of `id parse`
type parsedID struct {
	Prefix string `json:"prefix"`
	Number int    `json:"number"`
}

var idParseCmd = &cobra.Command{
	Use:   "parse <id>",
	Short: "Split an id into prefix and number",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		prefix, n, err := ids.Parse(args[0])
		if err != nil {
			return err
		}
		if display.ShouldOutputJSON(cmd) {
			return display.OutputJSON(cmd.OutOrStdout(), parsedID{Prefix: prefix, Number: n})
		}
		fmt.Fprintf(cmd.OutOrStdout(), "prefix: %s\nnumber: %d\n", prefix, n)
		return nil
	},
}

var idSanitizeCmd = &cobra.Command{
	Use:   "sanitize <text>",
	Short: "Map text onto the allowed id alphabet",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), ids.Sanitize(args[0]))
		return nil
	},
}

var idNextCmd = &cobra.Command{
	Use:   "next <prefix> [existing...]",
	Short: "Allocate the next free id for a prefix",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		prefix, existing := args[0], args[1:]
		next, err := ids.Next(prefix, existing)
		if err != nil {
			return err
		}
		logger.ComponentLogger("id").Debugw("Allocated id",
			logger.FieldOperation, "next",
			logger.FieldPrefix, prefix,
			logger.FieldCount, len(existing),
			logger.FieldID, next)
		fmt.Fprintln(cmd.OutOrStdout(), next)
		return nil
	},
}

func init() {
	idParseCmd.Flags().Bool("json", false, "Output as JSON")

	IDCmd.AddCommand(idFormatCmd)
	IDCmd.AddCommand(idParseCmd)
	IDCmd.AddCommand(idSanitizeCmd)
	IDCmd.AddCommand(idNextCmd)
}
