package viewer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shuv1824/islandmap/internal/basemap"
	"github.com/shuv1824/islandmap/internal/island"
	"github.com/shuv1824/islandmap/internal/pagination"
	"github.com/shuv1824/islandmap/internal/services/search"
	"github.com/shuv1824/islandmap/internal/services/travel"
	"github.com/shuv1824/islandmap/internal/state"
	"github.com/shuv1824/islandmap/internal/types"
)

// ErrNotFound is returned when no island has the requested ID.
var ErrNotFound = errors.New("island not found")

// Viewport list states.
const (
	ViewportHidden = "hidden"
	ViewportZoomIn = "zoom_in"
	ViewportReady  = "ready"
)

const (
	listTitle        = "섬 목록"
	allDistricts     = "전체"
	emptyListMessage = "해당하는 섬이 없습니다"
	zoomInMessage    = "지도를 더 확대하세요."
	emptyViewMessage = "화면 내 섬이 없습니다."

	// Zoom used when flying to a selected island.
	focusZoom = 15

	nearestPortCount = 3
)

type ViewerService struct {
	islands  []types.Island
	ports    []types.Port
	byID     map[string]types.Island
	pageSize int
	layers   *CachedLayers
	travel   *travel.TravelService
}

// NewViewerService creates a viewer over a loaded dataset.
func NewViewerService(islands []types.Island, ports []types.Port, pageSize int, layerTTL time.Duration) *ViewerService {
	if pageSize <= 0 {
		pageSize = pagination.DefaultPageSize
	}

	byID := make(map[string]types.Island, len(islands))
	for _, is := range islands {
		if _, dup := byID[is.ID]; !dup {
			byID[is.ID] = is
		}
	}

	return &ViewerService{
		islands:  islands,
		ports:    ports,
		byID:     byID,
		pageSize: pageSize,
		layers:   NewCachedLayers(islands, ports, layerTTL),
		travel:   travel.NewTravelService(ports),
	}
}

// Islands returns the loaded island records.
func (s *ViewerService) Islands() []types.Island { return s.islands }

// Ports returns the loaded port records.
func (s *ViewerService) Ports() []types.Port { return s.ports }

// PageSize returns the number of items per list page.
func (s *ViewerService) PageSize() int { return s.pageSize }

// Layer returns the encoded GeoJSON of a marker layer.
func (s *ViewerService) Layer(ctx context.Context, name string) ([]byte, error) {
	return s.layers.Layer(ctx, name)
}

// WarmCache pre-builds every marker layer.
func (s *ViewerService) WarmCache(ctx context.Context) error {
	return s.layers.WarmCache(ctx)
}

// Lookup returns the island with the given ID.
func (s *ViewerService) Lookup(id string) (types.Island, error) {
	is, ok := s.byID[id]
	if !ok {
		return types.Island{}, fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	return is, nil
}

// IslandView is everything shown for one selected island.
type IslandView struct {
	Summary types.IslandSummary `json:"summary"`
	Tooltip island.Tooltip      `json:"tooltip"`
	Detail  island.Detail       `json:"detail"`
	Lat     *float64            `json:"lat"`
	Lng     *float64            `json:"lng"`

	// Set for usable islands only.
	NearestPorts []travel.PortDistance `json:"nearest_ports,omitempty"`
}

// Island returns the detail view of an island.
func (s *ViewerService) Island(id string) (IslandView, error) {
	is, err := s.Lookup(id)
	if err != nil {
		return IslandView{}, err
	}

	v := IslandView{
		Summary: island.Summary(is),
		Tooltip: island.NewTooltip(is),
		Detail:  island.NewDetail(is),
	}
	if lat, lng, ok := island.Coordinates(is); ok {
		v.Lat, v.Lng = &lat, &lng
	}
	if v.Detail.Usable {
		v.NearestPorts, _ = s.travel.NearestPorts(is, nearestPortCount)
	}
	return v, nil
}

// Districts returns the sigungu selector entries for a region group.
func (s *ViewerService) Districts(region string) ([]types.District, error) {
	if err := search.ValidateRegion(region); err != nil {
		return nil, err
	}
	return search.ListDistricts(search.FilterByRegion(s.islands, region)), nil
}

// RegionListView is the main island list panel.
type RegionListView struct {
	Title     string           `json:"title"`
	Region    string           `json:"region"`
	District  string           `json:"district"`
	Districts []types.District `json:"districts,omitempty"`
	Page      types.Page       `json:"page"`
	Message   string           `json:"message,omitempty"`
	Highlight *Highlight       `json:"highlight,omitempty"`
}

// RegionList filters by region group, usability and district, in that
// order, and returns the requested page.
func (s *ViewerService) RegionList(region, district string, usableOnly bool, page int) (RegionListView, error) {
	if err := search.ValidateRegion(region); err != nil {
		return RegionListView{}, err
	}

	inRegion := search.FilterByRegion(s.islands, region)
	filtered := search.FilterUsable(inRegion, usableOnly)
	filtered = search.FilterByDistrict(filtered, district)

	v := RegionListView{
		Title:    listTitle,
		Region:   region,
		District: district,
		Page:     s.page(filtered, page),
	}
	if v.Page.Total == 0 {
		v.Message = emptyListMessage
	}
	if region == "" {
		return v, nil
	}

	v.Districts = search.ListDistricts(inRegion)
	if district == "" {
		v.Title = listTitle + " - " + allDistricts
	} else if d, ok := search.FindDistrict(v.Districts, district); ok {
		v.Title = listTitle + " - " + d.Full
	} else {
		v.Title = listTitle + " - " + district
	}
	v.Highlight = RegionHighlight(filtered)
	return v, nil
}

// TerritorialList returns a page of territorial baseline islands.
func (s *ViewerService) TerritorialList(page int) types.Page {
	return s.page(search.FilterTerritorial(s.islands), page)
}

// ViewportView is the "islands on screen" panel.
type ViewportView struct {
	Status  string      `json:"status"`
	Label   string      `json:"label,omitempty"`
	Message string      `json:"message,omitempty"`
	Page    *types.Page `json:"page,omitempty"`
}

// ViewportList lists islands inside the viewport. Below the minimum zoom
// it reports the zoom-in status without filtering.
func (s *ViewerService) ViewportList(vp state.Viewport, usableOnly bool, page int) ViewportView {
	if vp.Zoom < search.MinViewportZoom {
		return ViewportView{
			Status:  ViewportZoomIn,
			Label:   "현재 화면의 섬 (-)",
			Message: zoomInMessage,
		}
	}

	visible := search.FilterByViewport(search.FilterUsable(s.islands, usableOnly), vp.Bound())
	p := s.page(visible, page)

	v := ViewportView{
		Status: ViewportReady,
		Label:  fmt.Sprintf("현재 화면의 섬 (%d)", len(visible)),
		Page:   &p,
	}
	if len(visible) == 0 {
		v.Message = emptyViewMessage
	}
	return v
}

// Focus is a map position the front end should fly to.
type Focus struct {
	Lat  float64 `json:"lat"`
	Lng  float64 `json:"lng"`
	Zoom int     `json:"zoom"`
}

// View is the full rendering of one viewer state.
type View struct {
	State       state.State    `json:"state"`
	Basemap     types.Basemap  `json:"basemap"`
	Layers      []string       `json:"layers"`
	RegionList  RegionListView `json:"region_list"`
	Territorial *types.Page    `json:"territorial,omitempty"`
	Viewport    ViewportView   `json:"viewport"`
	Selected    *IslandView    `json:"selected,omitempty"`
	Focus       *Focus         `json:"focus,omitempty"`
}

// Render computes the view of st. The returned state has every page
// clamped into range, which callers should keep as the new state.
func (s *ViewerService) Render(st state.State) (View, state.State, error) {
	rl, err := s.RegionList(st.Region, st.District, st.UsableOnly, st.Page(state.RegionList))
	if err != nil {
		return View{}, st, err
	}
	st = st.WithPage(state.RegionList, rl.Page.Page)

	bm, ok := basemap.Lookup(st.Basemap)
	if !ok {
		bm, _ = basemap.Lookup(basemap.Initial)
	}

	v := View{
		Basemap:    bm,
		Layers:     visibleLayers(st),
		RegionList: rl,
		Viewport:   ViewportView{Status: ViewportHidden},
	}

	if st.TerritorialListVisible {
		tp := s.TerritorialList(st.Page(state.TerritorialList))
		st = st.WithPage(state.TerritorialList, tp.Page)
		v.Territorial = &tp
	}

	if st.Viewport != nil && !st.ViewportClosed {
		v.Viewport = s.ViewportList(*st.Viewport, st.UsableOnly, st.Page(state.ViewportList))
		if v.Viewport.Page != nil {
			st = st.WithPage(state.ViewportList, v.Viewport.Page.Page)
		}
	} else if st.FocusKorea && !st.ViewportClosed {
		// The bounds are unknown until the map moves, but zoom 7 is below
		// the viewport minimum either way.
		v.Viewport = s.ViewportList(state.Viewport{Zoom: state.KoreaZoom}, st.UsableOnly, 1)
	}

	if st.SelectedID != "" {
		iv, err := s.Island(st.SelectedID)
		if err != nil {
			return View{}, st, err
		}
		v.Selected = &iv
		if iv.Lat != nil && iv.Lng != nil {
			v.Focus = &Focus{Lat: *iv.Lat, Lng: *iv.Lng, Zoom: focusZoom}
		}
	}

	switch {
	case v.Focus != nil:
	case st.FocusKorea:
		v.Focus = &Focus{Lat: state.KoreaLat, Lng: state.KoreaLng, Zoom: state.KoreaZoom}
	case st.Viewport == nil:
		v.Focus = &Focus{Lat: state.InitialLat, Lng: state.InitialLng, Zoom: state.InitialZoom}
	}

	v.State = st
	return v, st, nil
}

func visibleLayers(st state.State) []string {
	layers := []string{LayerAll}
	if st.UsableOnly {
		layers[0] = LayerUsable
	}
	if st.TerritorialActive {
		layers = append(layers, LayerTerritorial)
	}
	if st.PortsVisible {
		layers = append(layers, LayerPorts)
	}
	return layers
}

func (s *ViewerService) page(islands []types.Island, page int) types.Page {
	page = pagination.Clamp(page, len(islands), s.pageSize)
	items, total := pagination.Paginate(islands, page, s.pageSize)

	summaries := make([]types.IslandSummary, len(items))
	for i, is := range items {
		summaries[i] = island.Summary(is)
	}

	return types.Page{
		Items:          summaries,
		Page:           page,
		TotalPages:     total,
		Total:          len(islands),
		ShowPagination: pagination.ShowControls(total),
	}
}
