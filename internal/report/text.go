// Package report renders a scorecard for a course/score pairing. Layout
// follows the classic two-row card: front nine with OUT, back nine with IN,
// then TOT.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/nschoena/golf-tracker/internal/models"
)

const (
	labelWidth   = 9
	colWidth     = 4
	summaryWidth = 5
)

// WriteScoreCard writes the full scorecard report for a round: course header,
// hole grid, and the round statistics block.
func WriteScoreCard(w io.Writer, sc *models.ScoreCard) error {
	var b strings.Builder

	writeHeader(&b, sc)
	writeHoleGrid(&b, sc)
	writeStats(&b, sc)

	_, err := io.WriteString(w, b.String())
	return err
}

func separator(b *strings.Builder) {
	total := (labelWidth + 1) + 18*(colWidth+1) + 3*(summaryWidth+2)
	b.WriteString(strings.Repeat("-", total))
	b.WriteByte('\n')
}

func writeHeader(b *strings.Builder, sc *models.ScoreCard) {
	course := sc.Course()
	score := sc.Score()

	separator(b)
	fmt.Fprintf(b, "%s\n", course.Name())
	if course.Location() != "" {
		fmt.Fprintf(b, "%s\n", course.Location())
	}
	fmt.Fprintf(b, "Played:  %s\n", score.DatePlayed().Format("2006-01-02"))
	fmt.Fprintf(b, "Rating:  %.1f\n", course.Rating())
	fmt.Fprintf(b, "Slope:   %d\n", course.Slope())
	fmt.Fprintf(b, "Yardage: %d\n", course.Yardage())
	fmt.Fprintf(b, "Par:     %d\n", course.Par())
	separator(b)
}

// rowValues extracts one printable value per pairing.
type rowValues func(p models.HolePairing) string

func writeHoleGrid(b *strings.Builder, sc *models.ScoreCard) {
	pairings := sc.Pairings()
	front := pairings
	var back []models.HolePairing
	if len(pairings) > 9 {
		front, back = pairings[:9], pairings[9:]
	}

	course := sc.Course()
	score := sc.Score()

	writeRow(b, "HOLE", front, back, func(p models.HolePairing) string {
		return fmt.Sprintf("%d", p.Hole.Number())
	}, nil)

	writeRow(b, course.Tees(), front, back, func(p models.HolePairing) string {
		return fmt.Sprintf("%d", p.Hole.Yardage())
	}, sumInts(front, back, func(p models.HolePairing) int { return p.Hole.Yardage() }))

	// HCP row carries no OUT/IN/TOT totals
	writeRow(b, "HCP", front, back, func(p models.HolePairing) string {
		return fmt.Sprintf("%d", p.Hole.Handicap())
	}, nil)

	writeRow(b, "PAR", front, back, func(p models.HolePairing) string {
		return fmt.Sprintf("%d", p.Hole.Par())
	}, sumInts(front, back, func(p models.HolePairing) int { return p.Hole.Par() }))

	writeRow(b, "SCORE", front, back, func(p models.HolePairing) string {
		return fmt.Sprintf("%d", p.Played.Strokes())
	}, sumInts(front, back, func(p models.HolePairing) int { return p.Played.Strokes() }))

	if score.IsDetailed() {
		writeRow(b, "PUTTS", front, back, func(p models.HolePairing) string {
			putts, _ := p.Played.Putts()
			return fmt.Sprintf("%d", putts)
		}, sumInts(front, back, func(p models.HolePairing) int {
			putts, _ := p.Played.Putts()
			return putts
		}))
	}

	separator(b)
}

// sumInts produces the OUT/IN/TOT summary strings for a numeric row.
func sumInts(front, back []models.HolePairing, value func(models.HolePairing) int) []string {
	out, in := 0, 0
	for _, p := range front {
		out += value(p)
	}
	for _, p := range back {
		in += value(p)
	}
	return []string{
		fmt.Sprintf("%d", out),
		fmt.Sprintf("%d", in),
		fmt.Sprintf("%d", out+in),
	}
}

func writeRow(b *strings.Builder, label string, front, back []models.HolePairing, value rowValues, summaries []string) {
	if summaries == nil {
		summaries = []string{"", "", ""}
	}

	fmt.Fprintf(b, "%-*s|", labelWidth, label)
	for _, p := range front {
		fmt.Fprintf(b, "%*s|", colWidth, value(p))
	}
	for i := len(front); i < 9; i++ {
		fmt.Fprintf(b, "%*s|", colWidth, "")
	}
	fmt.Fprintf(b, "%*s |", summaryWidth, summaries[0])
	for _, p := range back {
		fmt.Fprintf(b, "%*s|", colWidth, value(p))
	}
	for i := len(back); i < 9; i++ {
		fmt.Fprintf(b, "%*s|", colWidth, "")
	}
	fmt.Fprintf(b, "%*s |", summaryWidth, summaries[1])
	fmt.Fprintf(b, "%*s |", summaryWidth, summaries[2])
	b.WriteByte('\n')
}

func writeStats(b *strings.Builder, sc *models.ScoreCard) {
	score := sc.Score()

	fmt.Fprintf(b, "Round score:    %d (%s)\n", score.RoundScore(), formatToPar(sc.ToPar()))

	if score.IsDetailed() {
		fmt.Fprintf(b, "Round putts:    %d\n", score.RoundPutts())
		fmt.Fprintf(b, "GIR:            %.1f%%\n", score.GIRPercent()*100)
		acc := score.DriveAccuracy()
		fmt.Fprintf(b, "Drive accuracy: L %.1f%% / F %.1f%% / R %.1f%%\n",
			acc[0]*100, acc[1]*100, acc[2]*100)
	}

	averages := sc.ParAverages()
	for par := models.MinPar; par <= models.MaxPar; par++ {
		avg, ok := averages[par]
		if ok {
			fmt.Fprintf(b, "Par %d average:  %.2f\n", par, avg)
		} else {
			fmt.Fprintf(b, "Par %d average:  N/A\n", par)
		}
	}
}

func formatToPar(toPar int) string {
	switch {
	case toPar > 0:
		return fmt.Sprintf("+%d", toPar)
	case toPar < 0:
		return fmt.Sprintf("%d", toPar)
	default:
		return "E"
	}
}
