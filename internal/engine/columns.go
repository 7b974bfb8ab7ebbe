package engine

import (
	"sort"

	"github.com/piwi3910/tentlayout/internal/model"
)

// candidateColumn is a pure single-brace column type before grouping.
type candidateColumn struct {
	col model.ColumnType
}

// columnWidthKeyMM returns the millimeter-precision integer key used to
// group candidates sharing a columnWidth.
func columnWidthKeyMM(columnWidth float64) int {
	return int(columnWidth*1000 + 0.5)
}

// EnumerateColumnTypes builds all single-brace column types (both
// orientations) for a given usable rail-axis length, plus any mixed-fill
// column type that improves on the best pure column sharing its
// columnWidth. Output is sorted by ascending columnWidth.
func EnumerateColumnTypes(braces []model.Brace, usableLength float64) []model.ColumnType {
	groups := make(map[int][]candidateColumn)
	var order []int

	addCandidate := func(braceLength, braceWidth, columnWidth, fillLength float64, rotated bool) {
		if fillLength <= 0 {
			return
		}
		count := int(usableLength / fillLength)
		if count < 1 {
			return
		}
		gap := usableLength - float64(count)*fillLength
		col := model.ColumnType{
			BraceLength: braceLength,
			BraceWidth:  braceWidth,
			Rotated:     rotated,
			ColumnWidth: columnWidth,
			FillLength:  fillLength,
			BraceCount:  count,
			Gap:         gap,
		}
		key := columnWidthKeyMM(columnWidth)
		if _, ok := groups[key]; !ok {
			order = append(order, key)
		}
		groups[key] = append(groups[key], candidateColumn{col: col})
	}

	for _, b := range braces {
		addCandidate(b.Length, b.Width, b.Width, b.Length, false)
		if b.Length != b.Width {
			addCandidate(b.Length, b.Width, b.Length, b.Width, true)
		}
	}

	sort.Ints(order)

	var result []model.ColumnType
	for _, key := range order {
		cands := groups[key]

		distinctFillLengths := map[float64]bool{}
		for _, c := range cands {
			distinctFillLengths[c.col.FillLength] = true
		}

		bestPureGap := cands[0].col.Gap
		bestPureCount := cands[0].col.BraceCount
		for _, c := range cands[1:] {
			if c.col.Gap < bestPureGap {
				bestPureGap = c.col.Gap
				bestPureCount = c.col.BraceCount
			}
		}

		pures := make([]model.ColumnType, len(cands))
		for i, c := range cands {
			pures[i] = c.col
		}

		if len(distinctFillLengths) >= 2 {
			fillOptions := make([]float64, 0, len(cands))
			optionMeta := make(map[float64]candidateColumn, len(cands))
			for _, c := range cands {
				fillOptions = append(fillOptions, c.col.FillLength)
				optionMeta[c.col.FillLength] = c
			}

			kr := SolveKnapsack(fillOptions, usableLength, nil)
			if len(kr.Placements) > 0 {
				mixedBraceCount := 0
				for _, p := range kr.Placements {
					mixedBraceCount += p.Count
				}
				improves := kr.Gap < bestPureGap-mmTolerance
				ties := kr.Gap <= bestPureGap+mmTolerance && mixedBraceCount < bestPureCount

				if improves || ties {
					mixed := model.ColumnType{
						BraceLength: cands[0].col.BraceLength,
						BraceWidth:  cands[0].col.BraceWidth,
						ColumnWidth: cands[0].col.ColumnWidth,
						Mixed:       true,
						Gap:         kr.Gap,
						BraceCount:  mixedBraceCount,
					}
					for _, p := range kr.Placements {
						meta := optionMeta[p.FillLength]
						mixed.BracePlacements = append(mixed.BracePlacements, model.BracePlacement{
							BraceLength: meta.col.BraceLength,
							BraceWidth:  meta.col.BraceWidth,
							Rotated:     meta.col.Rotated,
							FillLength:  p.FillLength,
							Count:       p.Count,
						})
					}
					mixed.FillLength = mixed.BracePlacements[0].FillLength

					// Dominated-pure pruning: a pure column whose gap is no
					// smaller and whose brace count is larger than the mixed
					// candidate's is removed.
					var kept []model.ColumnType
					for _, p := range pures {
						if p.Gap >= mixed.Gap-mmTolerance && p.BraceCount > mixed.BraceCount {
							continue
						}
						kept = append(kept, p)
					}
					pures = kept
					pures = append(pures, mixed)
				}
			}
		}

		result = append(result, pures...)
	}

	return result
}
