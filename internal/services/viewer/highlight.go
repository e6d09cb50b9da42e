package viewer

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/shuv1824/islandmap/internal/island"
	"github.com/shuv1824/islandmap/internal/types"
)

const (
	highlightPadding = 0.1
	fitBoundsPadding = 0.2
)

// Bounds is a south-west / north-east rectangle in the order map widgets expect.
type Bounds struct {
	South float64 `json:"south"`
	West  float64 `json:"west"`
	North float64 `json:"north"`
	East  float64 `json:"east"`
}

func boundsOf(b orb.Bound) Bounds {
	return Bounds{South: b.Min.Lat(), West: b.Min.Lon(), North: b.Max.Lat(), East: b.Max.Lon()}
}

// Highlight outlines the islands of a selected region.
type Highlight struct {
	Outline   *geojson.Feature `json:"outline"`
	FitBounds Bounds           `json:"fit_bounds"`
}

// RegionHighlight returns the padded bounding box of the placeable islands,
// or nil when none of them has coordinates.
func RegionHighlight(islands []types.Island) *Highlight {
	var pts orb.MultiPoint
	for _, is := range islands {
		if p, ok := island.Point(is); ok {
			pts = append(pts, p)
		}
	}
	if len(pts) == 0 {
		return nil
	}

	b := pts.Bound()
	outline := geojson.NewFeature(padRatio(b, highlightPadding).ToPolygon())
	outline.Properties["kind"] = "region-highlight"

	return &Highlight{
		Outline:   outline,
		FitBounds: boundsOf(padRatio(b, fitBoundsPadding)),
	}
}

// padRatio grows b on every side by ratio of its height and width.
func padRatio(b orb.Bound, ratio float64) orb.Bound {
	latPad := (b.Max.Lat() - b.Min.Lat()) * ratio
	lngPad := (b.Max.Lon() - b.Min.Lon()) * ratio
	return orb.Bound{
		Min: orb.Point{b.Min.Lon() - lngPad, b.Min.Lat() - latPad},
		Max: orb.Point{b.Max.Lon() + lngPad, b.Max.Lat() + latPad},
	}
}
