package cmd

import (
	"github.com/spf13/cobra"

	"github.com/nibzard/pydo/internal/ui"
)

func addUI(root *cobra.Command, a *app) {
	cmd := &cobra.Command{
		Use:         "ui",
		Aliases:     []string{"tui", "dash"},
		Short:       "Open the interactive dashboard",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{ownsTerminal: "true"},
		Example: `  pydo ui
  pydo ui --tick 250 --log-file pydo.log --log-level debug`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.dispatcher.Run(""); err != nil {
				return err
			}
			return ui.RunTUI(cmd.Context(), a.dispatcher,
				ui.WithTickInterval(a.cfg.TickInterval()),
				ui.WithLogger(a.logger.Logger),
			)
		},
	}
	root.AddCommand(cmd)
}
