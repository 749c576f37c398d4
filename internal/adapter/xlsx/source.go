// Package xlsx reads campaign contracts and daily delivery rows from a
// workbook with a `campanha` sheet and a `data` sheet.
package xlsx

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"campaign-pacing/internal/core/domain"
	"campaign-pacing/internal/core/pacing"
)

// Sheet names looked up case-insensitively.
const (
	ContractsSheet = "campanha"
	FactsSheet     = "data"
)

var dateLayouts = []string{
	time.DateOnly,
	"02/01/2006",
	time.RFC3339,
	time.DateTime,
	"02/01/2006 15:04:05",
}

// Source implements port.DataSource over a workbook on disk. The file is
// reopened on every fetch so edits show up on the next refresh.
type Source struct {
	path string
}

// NewSource returns a Source reading the workbook at path. The file is not
// opened here: a missing or unreadable workbook surfaces as
// domain.ErrDataSource on the next fetch, so the dashboard can start before
// the file exists and pick it up on a later refresh.
func NewSource(path string) *Source {
	return &Source{path: path}
}

// FetchCampaignContracts reads the contracts sheet.
func (s *Source) FetchCampaignContracts(ctx context.Context) ([]domain.CampaignContract, error) {
	rows, date1904, err := s.readSheet(ctx, ContractsSheet)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return []domain.CampaignContract{}, nil
	}
	h := newHeader(rows[0])
	if miss := h.missing(colInsertionOrder, colModel, colContractedVolume, colStartDate, colEndDate); len(miss) > 0 {
		return nil, fmt.Errorf("%w: sheet %q missing columns %s", domain.ErrDataSource, ContractsSheet, strings.Join(miss, ", "))
	}

	out := make([]domain.CampaignContract, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if blank(row) {
			continue
		}
		out = append(out, domain.CampaignContract{
			ID:               h.str(row, colInsertionOrder),
			Model:            domain.NormalizeModel(h.str(row, colModel)),
			ContractedVolume: parseNumber(h.cell(row, colContractedVolume)),
			Start:            parseDate(h.str(row, colStartDate), date1904),
			End:              parseDate(h.str(row, colEndDate), date1904),
			Budget:           h.str(row, colBudget),
		})
	}
	return out, nil
}

// FetchDailyFacts reads the daily delivery sheet.
func (s *Source) FetchDailyFacts(ctx context.Context) ([]domain.DailyDeliveryFact, error) {
	rows, date1904, err := s.readSheet(ctx, FactsSheet)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return []domain.DailyDeliveryFact{}, nil
	}
	h := newHeader(rows[0])
	if miss := h.missing(colInsertionOrder, colDate); len(miss) > 0 {
		return nil, fmt.Errorf("%w: sheet %q missing columns %s", domain.ErrDataSource, FactsSheet, strings.Join(miss, ", "))
	}

	out := make([]domain.DailyDeliveryFact, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if blank(row) {
			continue
		}
		out = append(out, domain.DailyDeliveryFact{
			CampaignID:     h.str(row, colInsertionOrder),
			Date:           parseDate(h.str(row, colDate), date1904),
			Impressions:    parseCount(h.cell(row, colImpressions)),
			Clicks:         parseCount(h.cell(row, colClicks)),
			CompletedViews: parseCount(h.cell(row, colCompletedViews)),
			Revenue:        parseMoney(h.cell(row, colRevenue)),
		})
	}
	return out, nil
}

// readSheet returns the raw cells of sheet and whether the workbook uses
// the 1904 date system. Numeric cells keep Excel's machine representation;
// string cells are flagged so their numbers are read in the workbook locale.
func (s *Source) readSheet(ctx context.Context, sheet string) ([][]cell, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, fmt.Errorf("%w: %w", domain.ErrDataSource, err)
	}
	f, err := excelize.OpenFile(s.path)
	if err != nil {
		return nil, false, fmt.Errorf("%w: open %s: %w", domain.ErrDataSource, s.path, err)
	}
	defer f.Close()

	name, ok := findSheet(f.GetSheetList(), sheet)
	if !ok {
		return nil, false, fmt.Errorf("%w: %s has no sheet %q", domain.ErrDataSource, s.path, sheet)
	}

	var date1904 bool
	if props, err := f.GetWorkbookProps(); err == nil && props.Date1904 != nil {
		date1904 = *props.Date1904
	}

	raw, err := f.GetRows(name, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, false, fmt.Errorf("%w: read sheet %q: %w", domain.ErrDataSource, name, err)
	}

	rows := make([][]cell, len(raw))
	for i, values := range raw {
		rows[i] = make([]cell, len(values))
		for j, v := range values {
			rows[i][j].value = v
			if v == "" {
				continue
			}
			ref, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				return nil, false, fmt.Errorf("%w: %w", domain.ErrDataSource, err)
			}
			typ, err := f.GetCellType(name, ref)
			if err != nil {
				return nil, false, fmt.Errorf("%w: cell %s!%s: %w", domain.ErrDataSource, name, ref, err)
			}
			rows[i][j].text = isText(typ)
		}
	}
	if err = ctx.Err(); err != nil {
		return nil, false, fmt.Errorf("%w: %w", domain.ErrDataSource, err)
	}
	return rows, date1904, nil
}

func isText(t excelize.CellType) bool {
	switch t {
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString, excelize.CellTypeFormula:
		return true
	}
	return false
}

func findSheet(sheets []string, want string) (string, bool) {
	for _, s := range sheets {
		if strings.EqualFold(strings.TrimSpace(s), want) {
			return s, true
		}
	}
	return "", false
}

func blank(row []cell) bool {
	for _, c := range row {
		if strings.TrimSpace(c.value) != "" {
			return false
		}
	}
	return true
}

// parseNumber reads a numeric cell as Excel stored it and a text cell with
// the same locale rules as budgets, so "10.000" typed as text is ten
// thousand in every column. Failures yield NaN so the engine reports the
// row.
func parseNumber(c cell) float64 {
	if c.value == "" {
		return math.NaN()
	}
	if !c.text {
		if f, err := strconv.ParseFloat(c.value, 64); err == nil {
			return f
		}
	}
	d, err := pacing.ParseBudget(c.value)
	if err != nil {
		return math.NaN()
	}
	return d.InexactFloat64()
}

// parseCount reads a delivery counter; blanks and garbage count as zero.
func parseCount(c cell) int64 {
	f := parseNumber(c)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return int64(math.Round(f))
}

// parseMoney reads revenue with the rules of parseNumber, keeping decimal
// precision. Blanks and garbage count as zero.
func parseMoney(c cell) decimal.Decimal {
	if c.value == "" {
		return decimal.Zero
	}
	if !c.text {
		if d, err := decimal.NewFromString(c.value); err == nil {
			return d
		}
	}
	d, err := pacing.ParseBudget(c.value)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// parseDate accepts Excel serial dates and the textual layouts above. It
// returns the zero time when nothing matches.
func parseDate(s string, date1904 bool) time.Time {
	if s == "" {
		return time.Time{}
	}
	if serial, err := strconv.ParseFloat(s, 64); err == nil {
		t, err := excelize.ExcelDateToTime(serial, date1904)
		if err != nil {
			return time.Time{}
		}
		return domain.Day(t)
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return domain.Day(t)
		}
	}
	return time.Time{}
}
