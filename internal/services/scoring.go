package services

import "github.com/spacieba/miss-france/internal/models"

// Point values for pronostic bets. Bonus picks are inverse bets: they win
// when the named candidate is excluded from the official reveal. The golden
// pick is the single highest-value bet in the game.
const (
	PointsPerTop15Hit    = 5
	PointsBonusTop15     = 10
	PointsPerTop5Hit     = 8
	PointsBonusTop5      = 20
	PointsPerExactRank   = 8
	PointsGoldenPick     = 80
)

// ScorePrediction computes a player's pronostic score from scratch against
// the official results. It is a pure function: recomputing from the same
// inputs always yields the same value, and it never looks at a previously
// stored score, so rollbacks recompute correctly.
//
// Name comparisons are exact string equality; submissions are validated
// against the candidate registry at save time, so a name that reaches this
// function is a registered candidate.
func ScorePrediction(sub *models.Submission, official *models.OfficialResults) int {
	if sub == nil || official == nil || official.Stage == models.StageEmpty {
		return 0
	}

	score := 0

	if official.Stage >= models.StageTop15Revealed {
		top15 := nameSet(official.Top15)
		for _, name := range sub.Top15 {
			if top15[name] {
				score += PointsPerTop15Hit
			}
		}
		if sub.BonusTop15 != "" && !top15[sub.BonusTop15] {
			score += PointsBonusTop15
		}
	}

	if official.Stage >= models.StageTop5Revealed {
		top5 := nameSet(official.Top5)
		for _, name := range sub.Top5 {
			if top5[name] {
				score += PointsPerTop5Hit
			}
		}
		if sub.BonusTop5 != "" && !top5[sub.BonusTop5] {
			score += PointsBonusTop5
		}
	}

	if official.Stage >= models.StageFinalRevealed {
		for i, name := range sub.FinalRanking {
			if i < len(official.FinalRanking) && official.FinalRanking[i] == name {
				score += PointsPerExactRank
			}
		}
		if sub.GoldenPick != "" && sub.GoldenPick == official.Winner() {
			score += PointsGoldenPick
		}
	}

	return score
}

// WinsBonusTop15 reports whether the bonus top15 bet wins against the
// revealed official top15.
func WinsBonusTop15(sub *models.Submission, officialTop15 []string) bool {
	if sub == nil || sub.BonusTop15 == "" {
		return false
	}
	return !nameSet(officialTop15)[sub.BonusTop15]
}

// WinsBonusTop5 reports whether the bonus top5 bet wins against the
// revealed official top5.
func WinsBonusTop5(sub *models.Submission, officialTop5 []string) bool {
	if sub == nil || sub.BonusTop5 == "" {
		return false
	}
	return !nameSet(officialTop5)[sub.BonusTop5]
}

// WinsGoldenPick reports whether the golden pick matches the overall winner.
func WinsGoldenPick(sub *models.Submission, winner string) bool {
	if sub == nil || sub.GoldenPick == "" || winner == "" {
		return false
	}
	return sub.GoldenPick == winner
}

func nameSet(names []string) map[string]bool {
	set := make(map[string]bool, len(names))
	for _, name := range names {
		set[name] = true
	}
	return set
}
