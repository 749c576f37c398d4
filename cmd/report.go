package main

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"campaign-pacing/internal/core/pacing"
	"campaign-pacing/internal/core/port"
)

func newReportCmd(get func() *app) *cobra.Command {
	var asOf string
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print one render pass as text tables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			day, err := parseAsOf(asOf)
			if err != nil {
				return err
			}
			svc, err := get().dashboard(cmd.Context(), prometheus.NewRegistry())
			if err != nil {
				return err
			}
			dash := svc.Snapshot(cmd.Context(), day)
			if err = writeReport(cmd.OutOrStdout(), dash); err != nil {
				return err
			}
			if dash.SourceError != "" {
				return fmt.Errorf("render pass failed: %s", dash.SourceError)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&asOf, "as-of", "", "reference date (YYYY-MM-DD), defaults to today")
	return cmd
}

func parseAsOf(raw string) (time.Time, error) {
	if raw == "" {
		return time.Now(), nil
	}
	t, err := time.Parse(time.DateOnly, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --as-of %q: %w", raw, err)
	}
	return t, nil
}

// writeReport prints alerts, the summary, the pacing and margin tables and
// skipped rows of dash.
func writeReport(out io.Writer, dash *port.Dashboard) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)

	fmt.Fprintf(w, "Campaign pacing on %s\n\n", dash.AsOf.Format(time.DateOnly))
	for _, a := range dash.Alerts {
		fmt.Fprintf(w, "! %s\n", a)
	}
	if dash.AlertsError != "" {
		fmt.Fprintf(w, "alerts unavailable: %s\n", dash.AlertsError)
	}
	if dash.SourceError != "" {
		fmt.Fprintf(w, "data source unavailable: %s\n", dash.SourceError)
		return w.Flush()
	}

	s := dash.Summary
	fmt.Fprintf(w, "active %d  under %d  on track %d  over %d  underperforming %d  mean pace %.1f%%\n\n",
		s.Campaigns, s.Under, s.OnTrack, s.Over, s.Underperforming, s.MeanPacePct)

	fmt.Fprintln(w, "CAMPAIGN\tMODEL\tCONTRACTED\tDAY\tEXPECTED\tDELIVERED\tPACE\tSTATUS\tHEALTH\tLEFT\tREQ/DAY\t")
	for _, r := range dash.Pacing {
		flag := ""
		if r.Underperforming {
			flag = " !"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%d/%d\t%s\t%s\t%.1f%%\t%s\t%s %.2f%%%s\t%d\t%s\t\n",
			r.CampaignID, r.Model, pacing.FormatVolume(r.ContractedVolume),
			r.ElapsedDays, r.TotalDays,
			pacing.FormatVolume(r.ExpectedToDate), pacing.FormatVolume(r.DeliveredToDate),
			r.PacePct, r.Status, r.HealthMetric, r.HealthValue, flag,
			r.DaysRemaining, pacing.FormatVolume(r.RequiredDailyRate))
	}

	if len(dash.Margins) > 0 {
		fmt.Fprintln(w, "\nCAMPAIGN\tBUDGET\tDELIVERED\tMARGIN\tSTATUS\t")
		for _, m := range dash.Margins {
			fmt.Fprintf(w, "%s\t%s\t%s\t%.1f%%\t%s\t\n",
				m.CampaignID, pacing.FormatBRL(m.Budget), pacing.FormatBRL(m.Delivered), m.MarginPct, m.Status)
		}
	}

	if len(dash.Diagnostics) > 0 {
		fmt.Fprintln(w, "\nskipped rows:")
		for _, d := range dash.Diagnostics {
			fmt.Fprintf(w, "  %s\n", d)
		}
	}
	return w.Flush()
}
