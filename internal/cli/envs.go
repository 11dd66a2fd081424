package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/strata-config/strata/internal/adapter"
	"github.com/strata-config/strata/internal/source"
)

type envsOptions struct {
	dir       string
	serverURL string
}

func newEnvsCommand() *cobra.Command {
	opts := &envsOptions{}

	cmd := &cobra.Command{
		Use:   "envs",
		Short: "List environments discovered in the values directory",
		Long: `Envs lists the environment identifiers for which an overlay document
exists, one per line.

Example:
  strata envs -d ./values
  strata envs --server http://localhost:8080`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEnvs(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.dir, "dir", "d", "values", "values directory")
	cmd.Flags().StringVar(&opts.serverURL, "server", "", "list remotely from a strata server URL")

	return cmd
}

func runEnvs(cmd *cobra.Command, opts *envsOptions) error {
	ctx := cmd.Context()

	var (
		environments []string
		err          error
	)

	if opts.serverURL != "" {
		a := adapter.NewHTTPServerAdapter(adapter.HTTPClientConfig{BaseURL: opts.serverURL})
		environments, err = a.Environments(ctx)
	} else {
		var src *source.FileSource
		src, err = source.NewFileSource(opts.dir)
		if err != nil {
			return err
		}
		environments, err = src.Environments(ctx)
	}
	if err != nil {
		return err
	}

	for _, environment := range environments {
		fmt.Fprintln(cmd.OutOrStdout(), environment)
	}

	return nil
}
