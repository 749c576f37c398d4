package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	var a *app
	get := func() *app { return a }

	root := &cobra.Command{
		Use:           "pacing",
		Short:         "Campaign pacing and margin dashboard",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) (err error) {
			a, err = newApp()
			return err
		},
		PersistentPostRun: func(cmd *cobra.Command, _ []string) {
			if a != nil {
				a.close()
			}
		},
	}

	serve := newServeCmd(get)
	root.RunE = serve.RunE
	root.AddCommand(
		serve,
		newMigrateCmd(get),
		newSeedCmd(get),
		newReportCmd(get),
		newAlertsCmd(get),
	)
	return root
}
