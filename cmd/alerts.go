package main

import (
	"fmt"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

func newAlertsCmd(get func() *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "alerts",
		Short: "Inspect or change the alerts broadcast to every session",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "Print active alerts, oldest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := get().alertStore(cmd.Context())
			if err != nil {
				return err
			}
			alerts, err := store.List(cmd.Context())
			if err != nil {
				return err
			}
			for _, a := range alerts {
				fmt.Fprintln(cmd.OutOrStdout(), a)
			}
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "add <message>",
		Short: "Broadcast a free-text alert",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := get().alertStore(cmd.Context())
			if err != nil {
				return err
			}
			return store.Append(cmd.Context(), strings.Join(args, " "))
		},
	})

	var asOf string
	raise := &cobra.Command{
		Use:   "raise <campaign-id>",
		Short: "Broadcast the current pacing status of a campaign",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := parseAsOf(asOf)
			if err != nil {
				return err
			}
			svc, err := get().dashboard(cmd.Context(), prometheus.NewRegistry())
			if err != nil {
				return err
			}
			msg, err := svc.RaiseAlert(cmd.Context(), args[0], day)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), msg)
			return nil
		},
	}
	raise.Flags().StringVar(&asOf, "as-of", "", "reference date (YYYY-MM-DD), defaults to today")
	cmd.AddCommand(raise)

	cmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Remove every broadcast alert",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := get().alertStore(cmd.Context())
			if err != nil {
				return err
			}
			return store.Clear(cmd.Context())
		},
	})
	return cmd
}
