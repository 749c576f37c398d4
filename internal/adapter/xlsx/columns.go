package xlsx

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Canonical column names every header is normalised to.
const (
	colInsertionOrder   = "insertion_order"
	colModel            = "model"
	colContractedVolume = "contracted_volume"
	colStartDate        = "start_date"
	colEndDate          = "end_date"
	colBudget           = "budget"
	colDate             = "date"
	colImpressions      = "impressions"
	colClicks           = "clicks"
	colCompletedViews   = "completed_views"
	colRevenue          = "revenue"
)

// aliases maps folded header spellings to canonical names. Keys are already
// lower case, accent free and snake_case.
var aliases = map[string]string{
	"insertion_order":   colInsertionOrder,
	"io":                colInsertionOrder,
	"campaign":          colInsertionOrder,
	"campaign_id":       colInsertionOrder,
	"campanha":          colInsertionOrder,
	"modelo":            colModel,
	"model":             colModel,
	"delivery_model":    colModel,
	"volume_contratado": colContractedVolume,
	"contracted_volume": colContractedVolume,
	"volume":            colContractedVolume,
	"inicio_campanha":   colStartDate,
	"inicio":            colStartDate,
	"start_date":        colStartDate,
	"campaign_start":    colStartDate,
	"fim_campanha":      colEndDate,
	"fim":               colEndDate,
	"end_date":          colEndDate,
	"campaign_end":      colEndDate,
	"budget":            colBudget,
	"orcamento":         colBudget,
	"data":              colDate,
	"date":              colDate,
	"dia":               colDate,
	"day":               colDate,
	"impressions":       colImpressions,
	"impressoes":        colImpressions,
	"clicks":            colClicks,
	"cliques":           colClicks,
	"views":             colCompletedViews,
	"completed_views":   colCompletedViews,
	"video_views":       colCompletedViews,
	"completions":       colCompletedViews,
	"revenue":           colRevenue,
	"receita":           colRevenue,
	"spend":             colRevenue,
}

var separators = strings.NewReplacer(" ", "_", "-", "_", ".", "_", "/", "_")

// NormalizeHeader folds a header cell such as "Início Campanha" or
// "Insertion-Order" to its canonical column name. Unknown headers are
// returned folded but otherwise unchanged.
func NormalizeHeader(h string) string {
	// transform.Chain keeps state, so each call builds its own.
	fold := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	s, _, err := transform.String(fold, h)
	if err != nil {
		s = h
	}
	s = separators.Replace(strings.ToLower(strings.TrimSpace(s)))
	for strings.Contains(s, "__") {
		s = strings.ReplaceAll(s, "__", "_")
	}
	s = strings.Trim(s, "_")
	if canon, ok := aliases[s]; ok {
		return canon
	}
	return s
}

// header indexes a sheet's columns by canonical name.
type header map[string]int

func newHeader(cells []cell) header {
	h := make(header, len(cells))
	for i, c := range cells {
		name := NormalizeHeader(c.value)
		if name == "" {
			continue
		}
		if _, dup := h[name]; !dup {
			h[name] = i
		}
	}
	return h
}

// missing returns the required columns absent from h.
func (h header) missing(required ...string) []string {
	var out []string
	for _, r := range required {
		if _, ok := h[r]; !ok {
			out = append(out, r)
		}
	}
	return out
}

// cell is one raw cell value. text marks cells stored as strings, whose
// numbers are written by hand in the workbook locale rather than by Excel.
type cell struct {
	value string
	text  bool
}

// cell returns the trimmed cell of column name in row, or the zero cell
// when the column or the cell is absent.
func (h header) cell(row []cell, name string) cell {
	i, ok := h[name]
	if !ok || i >= len(row) {
		return cell{}
	}
	c := row[i]
	c.value = strings.TrimSpace(c.value)
	return c
}

// str returns the trimmed value of column name in row.
func (h header) str(row []cell, name string) string {
	return h.cell(row, name).value
}
