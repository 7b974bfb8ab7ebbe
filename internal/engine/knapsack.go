package engine

import (
	"sort"
)

// KnapsackPlacement is one fillLength option's contribution to a solved
// mixed-fill knapsack, in meters.
type KnapsackPlacement struct {
	FillLength float64
	Count      int
}

// KnapsackResult is the outcome of SolveKnapsack.
type KnapsackResult struct {
	Placements []KnapsackPlacement
	Gap        float64 // meters
}

type batchItem struct {
	optionIdx int
	fillCm    int
	count     int
}

type dpCell struct {
	fill  int
	count int
}

// better reports whether candidate strictly improves on cur under the
// descending-fillLength tie-break rule: more fill wins, equal fill with
// fewer braces wins.
func better(cand, cur dpCell) bool {
	if cand.fill > cur.fill {
		return true
	}
	return cand.fill == cur.fill && cand.count < cur.count
}

// SolveKnapsack solves the bounded mixed-fill knapsack (C3): given a set of
// candidate fillLengths (meters) and a target rail-axis length (meters), it
// finds the combination maximizing total fill, tie-broken by minimizing
// brace count. maxCounts optionally caps the usable count per fillLength
// (keyed by the fillLength value); nil means unbounded (capped only by
// floor(target/fillLength)).
func SolveKnapsack(fillOptions []float64, targetMeters float64, maxCounts map[float64]int) KnapsackResult {
	targetCm := toCm(targetMeters)
	if len(fillOptions) == 0 || targetCm <= 0 {
		return KnapsackResult{Gap: targetMeters}
	}

	// Descending fillLength: required for the tie-break rule (4.3).
	options := append([]float64(nil), fillOptions...)
	sort.Sort(sort.Reverse(sort.Float64Slice(options)))

	var batches []batchItem
	for idx, opt := range options {
		fillCm := toCm(opt)
		if fillCm <= 0 {
			continue
		}
		maxCount := targetCm / fillCm
		if maxCounts != nil {
			if cap, ok := maxCounts[opt]; ok && cap < maxCount {
				maxCount = cap
			}
		}
		remaining := maxCount
		batch := 1
		for remaining > 0 {
			take := batch
			if take > remaining {
				take = remaining
			}
			batches = append(batches, batchItem{optionIdx: idx, fillCm: fillCm, count: take})
			remaining -= take
			batch *= 2
		}
	}

	if len(batches) == 0 {
		return KnapsackResult{Gap: targetMeters}
	}

	n := len(batches)
	dp := make([][]dpCell, n+1)
	for i := range dp {
		dp[i] = make([]dpCell, targetCm+1)
	}

	for i := 1; i <= n; i++ {
		b := batches[i-1]
		weight := b.fillCm * b.count
		for w := 0; w <= targetCm; w++ {
			best := dp[i-1][w]
			if weight <= w {
				cand := dpCell{
					fill:  dp[i-1][w-weight].fill + weight,
					count: dp[i-1][w-weight].count + b.count,
				}
				if better(cand, best) {
					best = cand
				}
			}
			dp[i][w] = best
		}
	}

	// Backtrack to recover which batches were taken.
	counts := make([]int, len(options))
	w := targetCm
	for i := n; i >= 1; i-- {
		b := batches[i-1]
		weight := b.fillCm * b.count
		if weight <= w {
			cand := dpCell{
				fill:  dp[i-1][w-weight].fill + weight,
				count: dp[i-1][w-weight].count + b.count,
			}
			if cand == dp[i][w] {
				counts[b.optionIdx] += b.count
				w -= weight
				continue
			}
		}
		// not taken: dp[i][w] == dp[i-1][w]
	}

	var placements []KnapsackPlacement
	for idx, c := range counts {
		if c > 0 {
			placements = append(placements, KnapsackPlacement{FillLength: options[idx], Count: c})
		}
	}
	sort.Slice(placements, func(i, j int) bool {
		return placements[i].FillLength > placements[j].FillLength
	})

	bestFill := dp[n][targetCm].fill
	gap := toMeters(targetCm - bestFill)
	return KnapsackResult{Placements: placements, Gap: gap}
}
