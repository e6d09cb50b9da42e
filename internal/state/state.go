package state

import (
	"github.com/paulmach/orb"

	"github.com/shuv1824/islandmap/internal/basemap"
)

// List identifies one of the paginated side panels.
type List int

const (
	RegionList List = iota
	TerritorialList
	ViewportList

	listCount
)

func (l List) String() string {
	switch l {
	case RegionList:
		return "region"
	case TerritorialList:
		return "territorial"
	case ViewportList:
		return "viewport"
	}
	return "unknown"
}

// ParseList maps a panel name to its List.
func ParseList(s string) (List, bool) {
	for l := RegionList; l < listCount; l++ {
		if l.String() == s {
			return l, true
		}
	}
	return 0, false
}

// Viewport is the visible map rectangle and zoom level.
type Viewport struct {
	South float64 `json:"south"`
	West  float64 `json:"west"`
	North float64 `json:"north"`
	East  float64 `json:"east"`
	Zoom  int     `json:"zoom"`
}

// Bound returns the rectangle as an orb bound.
func (v Viewport) Bound() orb.Bound {
	return orb.Bound{Min: orb.Point{v.West, v.South}, Max: orb.Point{v.East, v.North}}
}

// Initial map view: central Seoul.
const (
	InitialLat  = 37.5665
	InitialLng  = 126.9780
	InitialZoom = 10

	// Whole-country view used by ResetView.
	KoreaLat  = 36.5
	KoreaLng  = 127.5
	KoreaZoom = 7
)

// State is everything one viewer has selected. It is a value: transitions
// return a new State and never modify their input.
type State struct {
	Region     string `json:"region"`
	District   string `json:"district"`
	UsableOnly bool   `json:"usable_only"`

	TerritorialActive      bool `json:"territorial_active"`
	TerritorialListVisible bool `json:"territorial_list_visible"`
	PortsVisible           bool `json:"ports_visible"`

	Viewport       *Viewport `json:"viewport,omitempty"`
	ViewportClosed bool      `json:"viewport_closed"`

	// FocusKorea is set by ResetView until the next MoveMap reports the
	// rectangle the map settled on.
	FocusKorea bool `json:"focus_korea,omitempty"`

	Basemap    string `json:"basemap"`
	SelectedID string `json:"selected_id,omitempty"`

	Pages [listCount]int `json:"pages"`
}

// New returns the state of a freshly opened viewer.
func New() State {
	s := State{Basemap: basemap.Initial}
	for i := range s.Pages {
		s.Pages[i] = 1
	}
	return s
}

// Page returns the current page of a list, never below 1.
func (s State) Page(l List) int {
	if l < 0 || l >= listCount || s.Pages[l] < 1 {
		return 1
	}
	return s.Pages[l]
}

// WithPage returns a copy of s with the page of l replaced.
func (s State) WithPage(l List, page int) State {
	if l < 0 || l >= listCount {
		return s
	}
	if page < 1 {
		page = 1
	}
	s.Pages[l] = page
	return s
}

// Apply runs one event against s.
func Apply(s State, e Event) State {
	if e == nil {
		return s
	}
	if s.Viewport != nil {
		vp := *s.Viewport
		s.Viewport = &vp
	}
	return e.apply(s)
}
