package state

import (
	"errors"
	"fmt"

	"github.com/shuv1824/islandmap/internal/basemap"
)

// ErrUnknownEvent is returned by ParseEvent for an unrecognised event type.
var ErrUnknownEvent = errors.New("unknown event")

// Event is a user interaction that moves the viewer from one State to the next.
type Event interface {
	Name() string
	apply(State) State
}

// SelectRegion picks a region group. The district is cleared and the region
// list starts over at page 1.
type SelectRegion struct{ Region string }

func (SelectRegion) Name() string { return "select_region" }

func (e SelectRegion) apply(s State) State {
	s.Region = e.Region
	s.District = ""
	return s.WithPage(RegionList, 1)
}

// SelectDistrict narrows the region list to one sigungu.
type SelectDistrict struct{ District string }

func (SelectDistrict) Name() string { return "select_district" }

func (e SelectDistrict) apply(s State) State {
	s.District = e.District
	return s.WithPage(RegionList, 1)
}

// ToggleUsable switches the usable-only filter for the region and viewport lists.
type ToggleUsable struct{}

func (ToggleUsable) Name() string { return "toggle_usable" }

func (ToggleUsable) apply(s State) State {
	s.UsableOnly = !s.UsableOnly
	return s.WithPage(RegionList, 1).WithPage(ViewportList, 1)
}

// ToggleTerritorial shows or hides the territorial baseline markers and list.
type ToggleTerritorial struct{}

func (ToggleTerritorial) Name() string { return "toggle_territorial" }

func (ToggleTerritorial) apply(s State) State {
	s.TerritorialActive = !s.TerritorialActive
	s.TerritorialListVisible = s.TerritorialActive
	if s.TerritorialActive {
		s = s.WithPage(TerritorialList, 1)
	}
	return s
}

// CloseTerritorial hides the territorial list; the markers stay.
type CloseTerritorial struct{}

func (CloseTerritorial) Name() string { return "close_territorial" }

func (CloseTerritorial) apply(s State) State {
	s.TerritorialListVisible = false
	return s
}

// TogglePorts shows or hides the port markers.
type TogglePorts struct{}

func (TogglePorts) Name() string { return "toggle_ports" }

func (TogglePorts) apply(s State) State {
	s.PortsVisible = !s.PortsVisible
	return s
}

// MoveMap records the visible rectangle after a pan or zoom. Pages are kept.
type MoveMap struct{ Viewport Viewport }

func (MoveMap) Name() string { return "move_map" }

func (e MoveMap) apply(s State) State {
	vp := e.Viewport
	s.Viewport = &vp
	s.FocusKorea = false
	return s
}

// CloseViewport hides the viewport list for the rest of the session.
type CloseViewport struct{}

func (CloseViewport) Name() string { return "close_viewport" }

func (CloseViewport) apply(s State) State {
	s.ViewportClosed = true
	return s
}

// ChangePage moves one list to another page without touching the others.
type ChangePage struct {
	List List
	Page int
}

func (ChangePage) Name() string { return "change_page" }

func (e ChangePage) apply(s State) State {
	return s.WithPage(e.List, e.Page)
}

// SelectIsland opens the detail panel for an island.
type SelectIsland struct{ ID string }

func (SelectIsland) Name() string { return "select_island" }

func (e SelectIsland) apply(s State) State {
	s.SelectedID = e.ID
	return s
}

// CloseDetail hides the detail panel.
type CloseDetail struct{}

func (CloseDetail) Name() string { return "close_detail" }

func (CloseDetail) apply(s State) State {
	s.SelectedID = ""
	return s
}

// ResetView returns to the whole-country view and clears the region selection.
// The stored rectangle is dropped; the map reports the new one with MoveMap.
type ResetView struct{}

func (ResetView) Name() string { return "reset_view" }

func (ResetView) apply(s State) State {
	s.Region = ""
	s.District = ""
	s.Viewport = nil
	s.FocusKorea = true
	return s.WithPage(RegionList, 1)
}

// SelectBasemap switches the tile layer. Unknown names are ignored.
type SelectBasemap struct{ Basemap string }

func (SelectBasemap) Name() string { return "select_basemap" }

func (e SelectBasemap) apply(s State) State {
	if _, ok := basemap.Lookup(e.Basemap); ok {
		s.Basemap = e.Basemap
	}
	return s
}

// Payload is the wire form of an event.
type Payload struct {
	Type     string    `json:"type"`
	Region   string    `json:"region,omitempty"`
	District string    `json:"district,omitempty"`
	List     string    `json:"list,omitempty"`
	Page     int       `json:"page,omitempty"`
	ID       string    `json:"id,omitempty"`
	Basemap  string    `json:"basemap,omitempty"`
	Viewport *Viewport `json:"viewport,omitempty"`
}

// ParseEvent converts a wire payload into an Event.
func ParseEvent(p Payload) (Event, error) {
	switch p.Type {
	case "select_region":
		return SelectRegion{Region: p.Region}, nil
	case "select_district":
		return SelectDistrict{District: p.District}, nil
	case "toggle_usable":
		return ToggleUsable{}, nil
	case "toggle_territorial":
		return ToggleTerritorial{}, nil
	case "close_territorial":
		return CloseTerritorial{}, nil
	case "toggle_ports":
		return TogglePorts{}, nil
	case "move_map":
		if p.Viewport == nil {
			return nil, errors.New("move_map requires a viewport")
		}
		vp := *p.Viewport
		if vp.South > vp.North || vp.West > vp.East {
			return nil, fmt.Errorf("move_map: inverted viewport %+v", vp)
		}
		return MoveMap{Viewport: vp}, nil
	case "close_viewport":
		return CloseViewport{}, nil
	case "change_page":
		l, ok := ParseList(p.List)
		if !ok {
			return nil, fmt.Errorf("change_page: unknown list %q", p.List)
		}
		return ChangePage{List: l, Page: p.Page}, nil
	case "select_island":
		if p.ID == "" {
			return nil, errors.New("select_island requires an id")
		}
		return SelectIsland{ID: p.ID}, nil
	case "close_detail":
		return CloseDetail{}, nil
	case "reset_view":
		return ResetView{}, nil
	case "select_basemap":
		return SelectBasemap{Basemap: p.Basemap}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownEvent, p.Type)
}
