package models

import (
	"fmt"
	"math"

	"github.com/nschoena/golf-tracker/pkg/utils"
)

// HolePairing joins a course hole with how it was played.
type HolePairing struct {
	Hole   Hole
	Played ScoreHole
}

// ScoreCard composes one course with one score played on it and provides the
// cross-entity analytics. Holes are matched by hole number, so a score that
// references a hole the course does not have fails construction instead of
// silently misaligning.
type ScoreCard struct {
	course   *Course
	score    *Score
	pairings []HolePairing
}

func NewScoreCard(course *Course, score *Score) (*ScoreCard, error) {
	if course == nil {
		return nil, utils.NewContractViolation("scorecard requires a course")
	}
	if score == nil {
		return nil, utils.NewContractViolation("scorecard requires a score")
	}

	byNumber := make(map[int]Hole, len(course.holes))
	for _, h := range course.holes {
		byNumber[h.Number()] = h
	}

	pairings := make([]HolePairing, 0, len(score.holes))
	for _, played := range score.holes {
		hole, ok := byNumber[played.Number()]
		if !ok {
			return nil, utils.NewContractViolation(
				fmt.Sprintf("score references hole %d which is not on course %q",
					played.Number(), course.Name()))
		}
		pairings = append(pairings, HolePairing{Hole: hole, Played: played})
	}

	return &ScoreCard{
		course:   course,
		score:    score,
		pairings: pairings,
	}, nil
}

func (sc *ScoreCard) Course() *Course { return sc.course }
func (sc *ScoreCard) Score() *Score { return sc.score }

// Pairings returns the scored holes in play order, each joined with its
// course hole.
func (sc *ScoreCard) Pairings() []HolePairing {
	return append([]HolePairing(nil), sc.pairings...)
}

// ParAverages groups the scored holes by par value and averages strokes per
// group, rounded to two decimals. Pars with no scored holes are absent from
// the map. All par values a hole can take (3 through 6) are bucketed.
func (sc *ScoreCard) ParAverages() map[int]float64 {
	strokes := make(map[int]int)
	counts := make(map[int]int)
	for _, p := range sc.pairings {
		par := p.Hole.Par()
		strokes[par] += p.Played.Strokes()
		counts[par]++
	}

	averages := make(map[int]float64, len(counts))
	for par := MinPar; par <= MaxPar; par++ {
		if counts[par] == 0 {
			continue
		}
		avg := float64(strokes[par]) / float64(counts[par])
		averages[par] = math.Round(avg*100) / 100
	}
	return averages
}

// ToPar is the round score relative to the par of the holes actually played.
func (sc *ScoreCard) ToPar() int {
	par := 0
	for _, p := range sc.pairings {
		par += p.Hole.Par()
	}
	return sc.score.RoundScore() - par
}
