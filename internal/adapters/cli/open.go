package cli

import (
	"github.com/spf13/cobra"
)

func newOpenCmd(env *environment) *cobra.Command {
	return &cobra.Command{
		Use:   "open",
		Short: "Open the notes app",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return env.launch(cmd.Context(), env.service.OpenURI())
		},
	}
}
