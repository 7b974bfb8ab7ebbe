package engine

import (
	"testing"

	"github.com/piwi3910/tentlayout/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestBuildRailTrackGreedyLongestFirst(t *testing.T) {
	rails := []model.Rail{{Length: 6, Quantity: 10}, {Length: 4, Quantity: 10}, {Length: 1, Quantity: 10}}
	segments := BuildRailTrack(10.0, rails)
	assert.NotEmpty(t, segments)
	assert.Equal(t, 6.0, segments[0].Length)
	assert.Equal(t, 4.0, segments[1].Length)
}

func TestBuildRailTrackFallsBackToLongestWhenNoneFits(t *testing.T) {
	rails := []model.Rail{{Length: 6, Quantity: 10}}
	segments := BuildRailTrack(4.0, rails)
	assert.Len(t, segments, 1)
	assert.Equal(t, 4.0, segments[0].Length)
}

func TestBuildRailTrackPositionsAreCumulative(t *testing.T) {
	rails := []model.Rail{{Length: 3, Quantity: 10}}
	segments := BuildRailTrack(7.0, rails)
	var pos float64
	for _, s := range segments {
		assert.InDelta(t, pos, s.Position, 1e-6)
		pos += s.Length
	}
}

func TestBuildRailTrackEmptyInventory(t *testing.T) {
	assert.Empty(t, BuildRailTrack(5.0, nil))
}
