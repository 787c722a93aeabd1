package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/nschoena/golf-tracker/internal/models"
)

const sheetName = "Scorecard"

// ExportXLSX writes the scorecard as an Excel workbook: course header block,
// one row per hole, totals row, and the round statistics.
func ExportXLSX(path string, sc *models.ScoreCard) error {
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", sheetName)

	course := sc.Course()
	score := sc.Score()

	header := [][]interface{}{
		{"Course", course.Name()},
		{"Location", course.Location()},
		{"Played", score.DatePlayed().Format("2006-01-02")},
		{"Tees", course.Tees()},
		{"Rating", course.Rating()},
		{"Slope", course.Slope()},
	}
	for i, row := range header {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return err
		}
	}

	gridStart := len(header) + 2
	columns := []interface{}{"Hole", "Yardage", "HCP", "Par", "Score", "Putts", "Drive", "GIR"}
	cell, err := excelize.CoordinatesToCellName(1, gridStart)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheetName, cell, &columns); err != nil {
		return err
	}

	pairings := sc.Pairings()
	for i, p := range pairings {
		row := []interface{}{
			p.Hole.Number(),
			p.Hole.Yardage(),
			p.Hole.Handicap(),
			p.Hole.Par(),
			p.Played.Strokes(),
		}
		if putts, ok := p.Played.Putts(); ok {
			row = append(row, putts)
		} else {
			row = append(row, nil)
		}
		if drive, ok := p.Played.Drive(); ok {
			row = append(row, string(drive))
		} else {
			row = append(row, nil)
		}
		if gir, ok := p.Played.GIR(); ok {
			row = append(row, gir)
		} else {
			row = append(row, nil)
		}

		cell, err := excelize.CoordinatesToCellName(1, gridStart+1+i)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return err
		}
	}

	statsStart := gridStart + len(pairings) + 2
	stats := [][]interface{}{
		{"Round score", score.RoundScore()},
		{"To par", formatToPar(sc.ToPar())},
	}
	if score.IsDetailed() {
		acc := score.DriveAccuracy()
		stats = append(stats,
			[]interface{}{"Round putts", score.RoundPutts()},
			[]interface{}{"GIR %", score.GIRPercent() * 100},
			[]interface{}{"Drive accuracy L/F/R", fmt.Sprintf("%.1f%% / %.1f%% / %.1f%%",
				acc[0]*100, acc[1]*100, acc[2]*100)},
		)
	}
	averages := sc.ParAverages()
	for par := models.MinPar; par <= models.MaxPar; par++ {
		label := fmt.Sprintf("Par %d average", par)
		if avg, ok := averages[par]; ok {
			stats = append(stats, []interface{}{label, avg})
		} else {
			stats = append(stats, []interface{}{label, "N/A"})
		}
	}
	for i, row := range stats {
		cell, err := excelize.CoordinatesToCellName(1, statsStart+i)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return err
		}
	}

	return f.SaveAs(path)
}
