package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newTemplateCommand(rt *deps) *cobra.Command {
	template := &cobra.Command{
		Use:   "template",
		Short: "Inspect message templates",
	}

	template.AddCommand(&cobra.Command{
		Use:   "status TEMPLATE_ID",
		Short: "Show the provider review status of a template",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			status, err := rt.services.MessageService.TemplateStatus(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if status.Status == "" {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: no status reported\n", status.ID)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", status.ID, status.Status)
			return nil
		},
	})

	return template
}
