package bot

import (
	"dropfour/internal/domain"
	"dropfour/internal/service/analysis"
)

// Stage-four heuristics. Threat counting follows one definition everywhere:
// a viable window, a win-length segment holding no opposing disc.

// offensivePotential counts the live threat windows the mover's disc in col
// would participate in.
func offensivePotential(board domain.Board, col int, me domain.Cell) float64 {
	return float64(analysis.CountThreats(board, col, me))
}

// defensivePotential counts the opponent threat windows through the landing
// square, all of which die once the mover occupies it.
func defensivePotential(board domain.Board, col int, me domain.Cell) float64 {
	return float64(analysis.CountThreats(board, col, domain.Opponent(me)))
}

// centerScore rises linearly toward the middle column.
func centerScore(board domain.Board, col int) float64 {
	center := board.Cols() / 2
	dist := col - center
	if dist < 0 {
		dist = -dist
	}
	return float64(center - dist)
}

// pickScored returns the candidate with the highest score; the first-seen
// column keeps ties deterministic.
func pickScored(candidates []int, score func(col int) float64) int {
	best := candidates[0]
	bestScore := score(best)
	for _, col := range candidates[1:] {
		if s := score(col); s > bestScore {
			best = col
			bestScore = s
		}
	}
	return best
}

// pickCenterOut walks columns by distance from center ascending, left before
// right, and takes the first candidate. On a 7-wide board the order is
// 3, 2, 4, 1, 5, 0, 6.
func pickCenterOut(board domain.Board, candidates []int) int {
	in := map[int]bool{}
	for _, col := range candidates {
		in[col] = true
	}

	center := board.Cols() / 2
	for dist := 0; dist <= center+1; dist++ {
		if in[center-dist] {
			return center - dist
		}
		if in[center+dist] {
			return center + dist
		}
	}
	return candidates[0]
}

// pickEnhanced blends offense, defense and centrality, then nudges near-ties
// with fork, zugzwang and row-parity knowledge.
func pickEnhanced(board domain.Board, candidates []int, me domain.Cell) int {
	forkThreats := map[int]int{}
	for _, chance := range analysis.ForkOpportunities(board, me) {
		forkThreats[chance.Column] = chance.ThreatsCreated
	}

	conceding := map[int]bool{}
	for _, col := range analysis.DetectZugzwang(board, me) {
		conceding[col] = true
	}

	parity := analysis.AnalyzeEvenOddThreats(board, me)
	parityColumn := map[int]bool{}
	if parity.Favorable {
		for _, col := range parity.AffectedColumns {
			parityColumn[col] = true
		}
	}

	return pickScored(candidates, func(col int) float64 {
		score := 0.6*offensivePotential(board, col, me) +
			0.4*defensivePotential(board, col, me) +
			0.2*centerScore(board, col)

		if threats := forkThreats[col]; threats >= 2 {
			score += 0.5 * float64(threats)
		}
		if conceding[col] {
			score -= 0.75
		}
		if parityColumn[col] {
			score += 0.25
		}
		return score
	})
}
