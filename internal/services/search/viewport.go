package search

import (
	"fmt"

	"github.com/paulmach/orb"

	"github.com/shuv1824/islandmap/internal/island"
	"github.com/shuv1824/islandmap/internal/types"
)

// MinViewportZoom is the lowest map zoom at which the viewport list is computed.
const MinViewportZoom = 10

// NewBounds builds a rectangle from south-west and north-east corners.
func NewBounds(south, west, north, east float64) (orb.Bound, error) {
	if south > north {
		return orb.Bound{}, fmt.Errorf("south %.6f is above north %.6f", south, north)
	}
	if west > east {
		return orb.Bound{}, fmt.Errorf("west %.6f is east of %.6f", west, east)
	}
	return orb.Bound{Min: orb.Point{west, south}, Max: orb.Point{east, north}}, nil
}

// FilterByViewport keeps islands whose coordinates fall inside bounds,
// edges included. Islands without parseable coordinates are dropped.
func FilterByViewport(islands []types.Island, bounds orb.Bound) []types.Island {
	out := make([]types.Island, 0)
	for _, is := range islands {
		p, ok := island.Point(is)
		if !ok {
			continue
		}
		if bounds.Contains(p) {
			out = append(out, is)
		}
	}
	return out
}

// Placeable keeps islands that can be put on the map.
func Placeable(islands []types.Island) []types.Island {
	out := make([]types.Island, 0, len(islands))
	for _, is := range islands {
		if _, ok := island.Point(is); ok {
			out = append(out, is)
		}
	}
	return out
}
