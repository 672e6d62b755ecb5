// Package fuzzy scores a query against candidate path strings using
// subsequence matching, in the style of interactive fuzzy finders.
//
// A candidate matches when every rune of the query appears in it, in
// order, not necessarily contiguously. Matching is case-insensitive.
// The score rewards contiguous runs of matched runes first, matches at
// path-segment boundaries (after '/') second, and shorter candidates
// third. The weights below are deliberate policy, pinned by tests.
package fuzzy

import (
	"sort"
	"strings"
)

// Scoring weights. Contiguity dominates boundary placement, which in
// turn dominates candidate length, so exact or near-exact folder names
// outrank coincidental substrings buried in long paths.
const (
	scoreMatch       = 16
	bonusConsecutive = 16
	bonusBoundary    = 8
	penaltyPerRune   = 1
)

// Match pairs a candidate with its score.
type Match struct {
	Candidate string
	Score     int
}

// Filter scores query against every candidate and returns the matching
// subset sorted by descending score. Equal scores preserve the input
// order, so results are deterministic across calls. Non-matching
// candidates are excluded entirely.
//
// An empty query matches every candidate exactly once; scores then carry
// only the length penalty, ranking shorter candidates first.
func Filter(query string, candidates []string) []Match {
	out := make([]Match, 0, len(candidates))

	q := []rune(strings.ToLower(query))
	for _, candidate := range candidates {
		score, ok := score(q, candidate)
		if !ok {
			continue
		}
		out = append(out, Match{Candidate: candidate, Score: score})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})

	return out
}

// score computes the best alignment of query runes onto the candidate.
// It runs a small dynamic program over (query rune, candidate rune)
// pairs so that a contiguous placement is always found when one exists,
// rather than whatever a greedy scan happens to pick.
func score(query []rune, candidate string) (int, bool) {
	c := []rune(strings.ToLower(candidate))
	n := len(c)

	if len(query) == 0 {
		return -penaltyPerRune * n, true
	}
	if n == 0 {
		return 0, false
	}

	const unmatchable = -1 << 30

	// best[j]: best score matching the query prefix so far with the
	// current rune matched exactly at candidate position j.
	// bestUpTo[j]: max of best[0..j], for the non-contiguous transition.
	best := make([]int, n)
	bestUpTo := make([]int, n)
	prevBest := make([]int, n)
	prevBestUpTo := make([]int, n)

	for i, qr := range query {
		running := unmatchable
		for j, cr := range c {
			score := unmatchable
			if qr == cr {
				switch {
				case i == 0:
					score = scoreMatch + boundaryBonus(c, j)
				case j > 0 && prevBest[j-1] > unmatchable:
					// Contiguous continuation of the previous match.
					score = prevBest[j-1] + scoreMatch + bonusConsecutive
				}
				if i > 0 && j > 0 && prevBestUpTo[j-1] > unmatchable {
					// Fresh gap: earn the boundary bonus at this position.
					gap := prevBestUpTo[j-1] + scoreMatch + boundaryBonus(c, j)
					if gap > score {
						score = gap
					}
				}
			}
			best[j] = score
			if score > running {
				running = score
			}
			bestUpTo[j] = running
		}
		prevBest, best = best, prevBest
		prevBestUpTo, bestUpTo = bestUpTo, prevBestUpTo
	}

	total := prevBestUpTo[n-1]
	if total <= unmatchable {
		return 0, false
	}
	return total - penaltyPerRune*n, true
}

func boundaryBonus(c []rune, j int) int {
	if j == 0 || c[j-1] == '/' {
		return bonusBoundary
	}
	return 0
}
