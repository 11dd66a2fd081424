package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/strata-config/strata/models"
)

// NewRootCommand builds the base command when called without any subcommands.
func NewRootCommand(buildInfo models.AppBuildInfo) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "strata",
		Short: "Strata - layered configuration resolver",
		Long: `Strata resolves layered YAML configuration: a base document plus
per-environment overlays are deep-merged into the final configuration,
with mappings merged recursively and scalars and sequences replaced
wholesale by the higher layer.

Example:
  strata envs -d ./values
  strata resolve -d ./values -e prod --set image.tag=v2
  strata merge values.yaml values-prod.yaml`,
		Version: fmt.Sprintf("%s (commit: %s, built: %s)",
			buildInfo.BuildVersion(), buildInfo.BuildCommit(), buildInfo.BuildDate()),
		SilenceUsage: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	rootCmd.AddCommand(newResolveCommand())
	rootCmd.AddCommand(newMergeCommand())
	rootCmd.AddCommand(newEnvsCommand())
	rootCmd.AddCommand(newVersionCommand(buildInfo))

	return rootCmd
}
