package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-wa-desk/models"
)

func newVersionCommand(buildInfo models.BuildInfo) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), buildInfo.String())
		},
	}
}
