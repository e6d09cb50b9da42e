package state

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/shuv1824/islandmap/internal/basemap"
)

func TestNew(t *testing.T) {
	s := New()
	if s.Basemap != basemap.Initial {
		t.Errorf("Basemap = %q, want %q", s.Basemap, basemap.Initial)
	}
	for l := RegionList; l < listCount; l++ {
		if s.Page(l) != 1 {
			t.Errorf("%s page = %d, want 1", l, s.Page(l))
		}
	}
	if s.Viewport != nil || s.SelectedID != "" || s.UsableOnly {
		t.Errorf("New() = %+v, want a clean state", s)
	}
}

func TestPageResets(t *testing.T) {
	start := New().
		WithPage(RegionList, 3).
		WithPage(TerritorialList, 2).
		WithPage(ViewportList, 4)
	start.Region = "전라남도"
	start.District = "신안군"

	tests := []struct {
		name      string
		event     Event
		wantPages [listCount]int
	}{
		{name: "select region", event: SelectRegion{Region: "경상남도"}, wantPages: [listCount]int{1, 2, 4}},
		{name: "select district", event: SelectDistrict{District: "여수시"}, wantPages: [listCount]int{1, 2, 4}},
		{name: "toggle usable", event: ToggleUsable{}, wantPages: [listCount]int{1, 2, 1}},
		{name: "change page", event: ChangePage{List: ViewportList, Page: 5}, wantPages: [listCount]int{3, 2, 5}},
		{name: "toggle ports", event: TogglePorts{}, wantPages: [listCount]int{3, 2, 4}},
		{name: "move map", event: MoveMap{Viewport: Viewport{Zoom: 12}}, wantPages: [listCount]int{3, 2, 4}},
		{name: "reset view", event: ResetView{}, wantPages: [listCount]int{1, 2, 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Apply(start, tt.event)
			if diff := cmp.Diff(tt.wantPages, got.Pages); diff != "" {
				t.Errorf("pages after %s mismatch (-want +got):\n%s", tt.event.Name(), diff)
			}
		})
	}
}

func TestSelectRegionClearsDistrict(t *testing.T) {
	s := Apply(New(), SelectRegion{Region: "전라남도"})
	s = Apply(s, SelectDistrict{District: "신안군"})
	s = Apply(s, SelectRegion{Region: "경상남도"})

	if s.Region != "경상남도" || s.District != "" {
		t.Errorf("region/district = %q/%q, want 경상남도/\"\"", s.Region, s.District)
	}
}

func TestTerritorialToggle(t *testing.T) {
	s := Apply(New().WithPage(TerritorialList, 3), ToggleTerritorial{})
	if !s.TerritorialActive || !s.TerritorialListVisible || s.Page(TerritorialList) != 1 {
		t.Fatalf("after toggle on: %+v", s)
	}

	s = Apply(s, CloseTerritorial{})
	if !s.TerritorialActive || s.TerritorialListVisible {
		t.Fatalf("after close: active %v, visible %v", s.TerritorialActive, s.TerritorialListVisible)
	}

	s = Apply(s, ToggleTerritorial{})
	if s.TerritorialActive || s.TerritorialListVisible {
		t.Errorf("after toggle off: active %v, visible %v", s.TerritorialActive, s.TerritorialListVisible)
	}
}

func TestApplyDoesNotModifyInput(t *testing.T) {
	s := Apply(New(), MoveMap{Viewport: Viewport{South: 34, West: 126, North: 35, East: 127, Zoom: 12}})
	before := s
	beforeVP := *s.Viewport

	next := Apply(s, ResetView{})

	if next.Viewport != nil || !next.FocusKorea {
		t.Errorf("after reset: viewport %+v, focus korea %v", next.Viewport, next.FocusKorea)
	}
	if s.Viewport == nil || *s.Viewport != beforeVP || s.FocusKorea {
		t.Errorf("input viewport modified: %+v", s.Viewport)
	}
	if s.Region != before.Region || s.Pages != before.Pages {
		t.Error("input state modified")
	}
}

func TestMoveMapClearsKoreaFocus(t *testing.T) {
	s := Apply(New(), ResetView{})
	s = Apply(s, MoveMap{Viewport: Viewport{South: 34, West: 126, North: 35, East: 127, Zoom: 12}})

	if s.FocusKorea {
		t.Error("FocusKorea still set after the map moved")
	}
	if s.Viewport == nil || s.Viewport.Zoom != 12 {
		t.Errorf("viewport = %+v", s.Viewport)
	}
}

func TestViewportClosedStaysClosed(t *testing.T) {
	s := Apply(New(), CloseViewport{})
	s = Apply(s, MoveMap{Viewport: Viewport{Zoom: 13}})
	if !s.ViewportClosed {
		t.Error("moving the map reopened the viewport list")
	}
}

func TestSelectBasemap(t *testing.T) {
	s := Apply(New(), SelectBasemap{Basemap: basemap.Dark})
	if s.Basemap != basemap.Dark {
		t.Errorf("Basemap = %q, want %q", s.Basemap, basemap.Dark)
	}
	s = Apply(s, SelectBasemap{Basemap: "watercolor"})
	if s.Basemap != basemap.Dark {
		t.Errorf("unknown basemap changed selection to %q", s.Basemap)
	}
}

func TestSelectAndCloseDetail(t *testing.T) {
	s := Apply(New(), SelectIsland{ID: "전남-여수-101"})
	if s.SelectedID != "전남-여수-101" {
		t.Fatalf("SelectedID = %q", s.SelectedID)
	}
	if s = Apply(s, CloseDetail{}); s.SelectedID != "" {
		t.Errorf("SelectedID after close = %q", s.SelectedID)
	}
}

func TestWithPage(t *testing.T) {
	s := New().WithPage(ViewportList, 0)
	if s.Page(ViewportList) != 1 {
		t.Errorf("page 0 stored as %d, want 1", s.Page(ViewportList))
	}
	if got := New().WithPage(listCount, 4); got.Pages != New().Pages {
		t.Error("WithPage accepted an out-of-range list")
	}
}

func TestParseEvent(t *testing.T) {
	tests := []struct {
		name    string
		payload Payload
		want    Event
		wantErr bool
	}{
		{name: "select region", payload: Payload{Type: "select_region", Region: "제주도"}, want: SelectRegion{Region: "제주도"}},
		{name: "change page", payload: Payload{Type: "change_page", List: "territorial", Page: 2}, want: ChangePage{List: TerritorialList, Page: 2}},
		{name: "move map", payload: Payload{Type: "move_map", Viewport: &Viewport{South: 33, West: 126, North: 34, East: 127, Zoom: 11}}, want: MoveMap{Viewport: Viewport{South: 33, West: 126, North: 34, East: 127, Zoom: 11}}},
		{name: "reset", payload: Payload{Type: "reset_view"}, want: ResetView{}},
		{name: "move map without viewport", payload: Payload{Type: "move_map"}, wantErr: true},
		{name: "inverted viewport", payload: Payload{Type: "move_map", Viewport: &Viewport{South: 35, North: 34}}, wantErr: true},
		{name: "unknown list", payload: Payload{Type: "change_page", List: "ports"}, wantErr: true},
		{name: "select island without id", payload: Payload{Type: "select_island"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseEvent(tt.payload)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseEvent() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ParseEvent() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseEventUnknown(t *testing.T) {
	if _, err := ParseEvent(Payload{Type: "fly_to"}); !errors.Is(err, ErrUnknownEvent) {
		t.Errorf("ParseEvent(fly_to) = %v, want ErrUnknownEvent", err)
	}
}

func TestParseList(t *testing.T) {
	for l := RegionList; l < listCount; l++ {
		got, ok := ParseList(l.String())
		if !ok || got != l {
			t.Errorf("ParseList(%q) = %v, %v", l.String(), got, ok)
		}
	}
	if _, ok := ParseList("unknown"); ok {
		t.Error("ParseList(unknown) succeeded")
	}
}
