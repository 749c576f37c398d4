package xlsx

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"campaign-pacing/internal/core/domain"
)

var (
	contractsHeader = []interface{}{"insertion_order", "modelo", "volume_contratado", "inicio_campanha", "fim_campanha", "budget"}
	factsHeader     = []interface{}{"insertion_order", "data", "impressions", "clicks", "views", "revenue"}
)

// WriteWorkbook saves contracts and facts to path in the layout Source
// reads. An existing file is overwritten.
func WriteWorkbook(path string, contracts []domain.CampaignContract, facts []domain.DailyDeliveryFact) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), ContractsSheet); err != nil {
		return err
	}
	if _, err := f.NewSheet(FactsSheet); err != nil {
		return err
	}

	sw, err := f.NewStreamWriter(ContractsSheet)
	if err != nil {
		return err
	}
	if err = sw.SetRow("A1", contractsHeader); err != nil {
		return err
	}
	for i, c := range contracts {
		row := []interface{}{c.ID, string(c.Model), c.ContractedVolume, c.Start, c.End, c.Budget}
		if err = sw.SetRow(cellName(i+2), row); err != nil {
			return fmt.Errorf("contract %s: %w", c.ID, err)
		}
	}
	if err = sw.Flush(); err != nil {
		return err
	}

	if sw, err = f.NewStreamWriter(FactsSheet); err != nil {
		return err
	}
	if err = sw.SetRow("A1", factsHeader); err != nil {
		return err
	}
	for i, fact := range facts {
		row := []interface{}{fact.CampaignID, fact.Date, fact.Impressions, fact.Clicks, fact.CompletedViews, fact.Revenue.InexactFloat64()}
		if err = sw.SetRow(cellName(i+2), row); err != nil {
			return fmt.Errorf("fact %s %s: %w", fact.CampaignID, fact.Date.Format("2006-01-02"), err)
		}
	}
	if err = sw.Flush(); err != nil {
		return err
	}

	return f.SaveAs(path)
}

func cellName(row int) string {
	name, _ := excelize.CoordinatesToCellName(1, row)
	return name
}
