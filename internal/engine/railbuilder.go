package engine

import (
	"sort"

	"github.com/piwi3910/tentlayout/internal/model"
)

// minRailRemainder is the threshold below which the rail builder stops
// placing further segments (1 cm).
const minRailRemainder = 0.01

// BuildRailTrack constructs one greedy longest-first rail-segment pattern
// spanning usableLength, drawn from railInventory sorted by descending
// length (§4.8 bullet 5 / §9). While remaining length exceeds
// minRailRemainder it picks the longest rail that still fits; if none fits
// it falls back to the longest available rail. Rails are treated as
// unlimited for this builder's purposes.
func BuildRailTrack(usableLength float64, railInventory []model.Rail) []model.RailSegment {
	if len(railInventory) == 0 || usableLength <= 0 {
		return nil
	}

	lengths := make([]float64, len(railInventory))
	for i, r := range railInventory {
		lengths[i] = r.Length
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(lengths)))

	var segments []model.RailSegment
	remaining := usableLength
	position := 0.0

	for remaining > minRailRemainder {
		chosen := -1.0
		for _, l := range lengths {
			if l <= remaining {
				chosen = l
				break
			}
		}
		if chosen < 0 {
			chosen = lengths[0] // terminal fallback: longest available
		}

		segLength := chosen
		if segLength > remaining {
			segLength = remaining
		}
		segments = append(segments, model.RailSegment{Length: roundMM(segLength), Position: roundMM(position)})
		position += segLength
		remaining -= chosen
	}

	return segments
}
