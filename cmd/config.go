package cmd

import (
	"fmt"

	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"

	"github.com/nibzard/pydo/internal/config"
)

func configFields() []string {
	return config.Fields()
}

func addConfig(root *cobra.Command, a *app) {
	var example bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show the effective configuration and where each value came from",
		Args:  cobra.NoArgs,
		Example: `  pydo config
  pydo config --example > pydo.toml`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			if example {
				fmt.Fprint(out, config.ExampleConfig())
				return nil
			}

			tbl := uitable.New()
			tbl.AddRow("KEY", "VALUE", "SOURCE")
			for _, field := range configFields() {
				tbl.AddRow(field, a.cfg.Value(field), a.sources.Sources[field])
			}
			fmt.Fprintln(out, tbl)
			for _, f := range a.sources.Files {
				fmt.Fprintf(out, "\nread %s", f)
			}
			if len(a.sources.Files) > 0 {
				fmt.Fprintln(out)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&example, "example", false, "Print an example config file")
	root.AddCommand(cmd)
}
