package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/teranos/cegconf/am"
	"github.com/teranos/cegconf/errors"
	"github.com/teranos/cegconf/logger"
	"github.com/teranos/cegconf/registry"
	"github.com/teranos/cegconf/typegen/typescript"
)

var (
	typegenOutput    string
	typegenClassName string
)

// TypegenCmd generates the front-end Config class
var TypegenCmd = &cobra.Command{
	Use:   "typegen",
	Short: "Generate the TypeScript Config class",
	Long: `Generate the TypeScript class holding the registry values for the
editor front-end. The Go registry is the source of truth; regenerate
after changing it.

Examples:
  cegconf typegen                           # Print to stdout
  cegconf typegen -o web/src/app/config     # Write config.ts there
  cegconf typegen --class-name EditorConfig`,
	Args: cobra.NoArgs,
	RunE: runTypegen,
}

func init() {
	TypegenCmd.Flags().StringVarP(&typegenOutput, "output", "o", "", "Output directory (default: typegen.output, else stdout)")
	TypegenCmd.Flags().StringVar(&typegenClassName, "class-name", "", "Class name (default: typegen.class_name)")
}

func runTypegen(cmd *cobra.Command, args []string) error {
	cfg, err := am.Load()
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}

	opts := typescript.Options{ClassName: cfg.GetTypegenClassName()}
	if typegenClassName != "" {
		opts.ClassName = typegenClassName
	}

	dir := typegenOutput
	if dir == "" {
		dir = cfg.Typegen.Output
	}

	if dir == "" {
		out, err := typescript.GenerateConfigClass(registry.Defaults(), opts)
		if err != nil {
			return errors.Wrap(err, "failed to generate config class")
		}
		_, err = fmt.Fprint(cmd.OutOrStdout(), out)
		return err
	}

	path, err := typescript.WriteConfigFile(dir, cfg.GetTypegenFileName(), registry.Defaults(), opts)
	if err != nil {
		return err
	}
	logger.ComponentLogger("typegen").Infow("Generated config class",
		logger.FieldPath, dir,
		logger.FieldFile, path,
		logger.FieldCount, len(typescript.MemberNames()))
	printSuccess(cmd, "Generated %s", path)
	return nil
}
