package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/strata-config/strata/internal/values"
	"github.com/strata-config/strata/models"
)

type mergeOptions struct {
	replaceOnConflict bool
	deleteOnNull      bool
	output            string
}

func newMergeCommand() *cobra.Command {
	opts := &mergeOptions{}

	cmd := &cobra.Command{
		Use:   "merge <base.yaml> <overlay.yaml> [overlay.yaml...]",
		Short: "Merge YAML documents layer by layer",
		Long: `Merge reads the given YAML documents and deep-merges them left to right:
each following document is applied as an overlay on the accumulated
result. Mappings merge recursively; scalars and sequences in an overlay
replace the lower value wholesale.

Example:
  strata merge values.yaml values-prod.yaml
  strata merge values.yaml values-prod.yaml overrides.yaml -o json`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMerge(cmd, opts, args)
		},
	}

	cmd.Flags().BoolVar(&opts.replaceOnConflict, "replace-on-conflict", false, "replace on layer type conflicts instead of failing")
	cmd.Flags().BoolVar(&opts.deleteOnNull, "delete-on-null", false, "treat null overlay values as deletions")
	cmd.Flags().StringVarP(&opts.output, "output", "o", outputYAML, "output format (yaml or json)")

	return cmd
}

func runMerge(cmd *cobra.Command, opts *mergeOptions, paths []string) error {
	var mergeOpts []values.MergeOption
	if opts.replaceOnConflict {
		mergeOpts = append(mergeOpts, values.ReplaceOnConflict())
	}
	if opts.deleteOnNull {
		mergeOpts = append(mergeOpts, values.DeleteOnNull())
	}

	result, err := loadTree(paths[0])
	if err != nil {
		return err
	}

	for _, path := range paths[1:] {
		overlay, err := loadTree(path)
		if err != nil {
			return err
		}

		result, err = values.Merge(result, overlay, mergeOpts...)
		if err != nil {
			return fmt.Errorf("merging %s: %w", path, err)
		}
	}

	return writeTree(cmd.OutOrStdout(), result, opts.output)
}

func loadTree(path string) (models.Tree, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", path, err)
	}

	tree, err := values.ParseTree(data)
	if err != nil {
		return nil, fmt.Errorf("error parsing %s: %w", path, err)
	}

	return tree, nil
}
