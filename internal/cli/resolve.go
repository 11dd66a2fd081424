package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/strata-config/strata/internal/adapter"
	"github.com/strata-config/strata/internal/resolve"
	"github.com/strata-config/strata/internal/source"
	"github.com/strata-config/strata/internal/values"
	"github.com/strata-config/strata/models"
)

type resolveOptions struct {
	dir               string
	environment       string
	serverURL         string
	set               string
	required          []string
	replaceOnConflict bool
	deleteOnNull      bool
	output            string
	showFingerprint   bool
}

func newResolveCommand() *cobra.Command {
	opts := &resolveOptions{}

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Resolve the final configuration for an environment",
		Long: `Resolve merges the base document with the environment overlay and prints
the final configuration. Overrides given via --set are applied as the
highest-precedence layer.

Example:
  strata resolve -d ./values -e prod
  strata resolve -d ./values -e dev --set image.tag=v2,replicas=3
  strata resolve --server http://localhost:8080 -e prod`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResolve(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.dir, "dir", "d", "values", "values directory")
	cmd.Flags().StringVarP(&opts.environment, "environment", "e", "", "environment identifier (required)")
	cmd.Flags().StringVar(&opts.serverURL, "server", "", "resolve remotely against a strata server URL")
	cmd.Flags().StringVar(&opts.set, "set", "", "comma-separated path=value overrides")
	cmd.Flags().StringSliceVar(&opts.required, "require", nil, "dotted paths that must be present in the result")
	cmd.Flags().BoolVar(&opts.replaceOnConflict, "replace-on-conflict", false, "replace on layer type conflicts instead of failing")
	cmd.Flags().BoolVar(&opts.deleteOnNull, "delete-on-null", false, "treat null overlay values as deletions")
	cmd.Flags().StringVarP(&opts.output, "output", "o", outputYAML, "output format (yaml or json)")
	cmd.Flags().BoolVar(&opts.showFingerprint, "fingerprint", false, "print the result fingerprint to stderr")
	cobra.CheckErr(cmd.MarkFlagRequired("environment"))

	return cmd
}

func runResolve(cmd *cobra.Command, opts *resolveOptions) error {
	ctx := cmd.Context()

	var (
		resolved *models.ResolvedConfig
		err      error
	)

	if opts.serverURL != "" {
		a := adapter.NewHTTPServerAdapter(adapter.HTTPClientConfig{BaseURL: opts.serverURL})
		resolved, err = a.Resolved(ctx, opts.environment, opts.set)
	} else {
		resolved, err = resolveLocal(cmd, opts)
	}
	if err != nil {
		return err
	}

	if opts.showFingerprint {
		fmt.Fprintf(cmd.ErrOrStderr(), "fingerprint: %s\n", resolved.Fingerprint)
	}

	return writeTree(cmd.OutOrStdout(), resolved.Values, opts.output)
}

func resolveLocal(cmd *cobra.Command, opts *resolveOptions) (*models.ResolvedConfig, error) {
	src, err := source.NewFileSource(opts.dir)
	if err != nil {
		return nil, err
	}

	ctx := cmd.Context()

	base, err := src.Base(ctx)
	if err != nil {
		return nil, fmt.Errorf("error loading base layer: %w", err)
	}

	overlay, err := src.Overlay(ctx, opts.environment)
	if err != nil {
		return nil, fmt.Errorf("error loading overlay for %q: %w", opts.environment, err)
	}

	overlays := []models.Tree{overlay}
	if opts.set != "" {
		setOverlay, err := values.ParseSet(opts.set)
		if err != nil {
			return nil, err
		}
		overlays = append(overlays, setOverlay)
	}

	var mergeOpts []values.MergeOption
	if opts.replaceOnConflict {
		mergeOpts = append(mergeOpts, values.ReplaceOnConflict())
	}
	if opts.deleteOnNull {
		mergeOpts = append(mergeOpts, values.DeleteOnNull())
	}

	resolver := resolve.NewResolver(
		resolve.WithRequired(opts.required...),
		resolve.WithMergeOptions(mergeOpts...),
	)

	return resolver.Resolve(ctx, base, overlays, opts.environment)
}
