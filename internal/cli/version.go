package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/strata-config/strata/internal/adapter"
	"github.com/strata-config/strata/models"
)

func newVersionCommand(buildInfo models.AppBuildInfo) *cobra.Command {
	var serverURL string

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			fmt.Fprintf(out, "Build version: %s\n", buildInfo.BuildVersion())
			fmt.Fprintf(out, "Build date: %s\n", buildInfo.BuildDate())
			fmt.Fprintf(out, "Build commit: %s\n", buildInfo.BuildCommit())

			if serverURL == "" {
				return nil
			}

			a := adapter.NewHTTPServerAdapter(adapter.HTTPClientConfig{BaseURL: serverURL})
			serverVersion, err := a.Version(cmd.Context())
			if err != nil {
				return fmt.Errorf("error fetching server version: %w", err)
			}
			fmt.Fprintf(out, "Server version: %s\n", serverVersion)

			return nil
		},
	}

	cmd.Flags().StringVar(&serverURL, "server", "", "also report the version of a strata server URL")

	return cmd
}
