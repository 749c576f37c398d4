package pacing

import "campaign-pacing/internal/core/domain"

// Summary holds the headline counters shown above the pacing table.
type Summary struct {
	Campaigns       int     `json:"campaigns"`
	Under           int     `json:"under"`
	OnTrack         int     `json:"on_track"`
	Over            int     `json:"over"`
	Underperforming int     `json:"underperforming"`
	MeanPacePct     float64 `json:"mean_pace_pct"`
}

// Summarize counts results per status and averages their pace. An empty
// input yields a zero Summary.
func Summarize(results []domain.PacingResult) Summary {
	var s Summary
	var total float64
	for _, r := range results {
		switch r.Status {
		case domain.StatusUnder:
			s.Under++
		case domain.StatusOver:
			s.Over++
		default:
			s.OnTrack++
		}
		if r.Underperforming {
			s.Underperforming++
		}
		total += r.PacePct
	}
	s.Campaigns = len(results)
	if s.Campaigns > 0 {
		s.MeanPacePct = total / float64(s.Campaigns)
	}
	return s
}
