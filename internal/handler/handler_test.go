package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"

	"github.com/shuv1824/islandmap/internal/services/session"
	"github.com/shuv1824/islandmap/internal/services/viewer"
	"github.com/shuv1824/islandmap/internal/types"
)

func newTestRouter() http.Handler {
	islands := []types.Island{
		{ID: "a", Name: "하백도", Province: "전라남도", District: "여수시", ManagementType: "절대보전", RawLatitude: "34.0", RawLongitude: "127.6"},
		{ID: "b", Name: "대도", Province: "전라남도", District: "여수시", ManagementType: "이용가능", RawLatitude: "34.2", RawLongitude: "127.4"},
		{ID: "c", Name: "소도", Province: "전라남도", District: "신안군", ManagementType: "이용가능", RawLatitude: "34.8", RawLongitude: "125.9"},
		{ID: "d", Name: "솔섬", Province: "충청북도", District: "청주시", ManagementType: "준보전", RawLatitude: "36.6", RawLongitude: "127.5"},
	}
	ports := []types.Port{{Name: "여수항", Lat: 34.74, Lng: 127.75}}

	v := viewer.NewViewerService(islands, ports, 3, time.Minute)
	ih := NewIslandHandler(v)
	sh := NewSessionHandler(session.NewStore(v, time.Minute))

	r := mux.NewRouter()
	r.Use(Instrument)
	r.HandleFunc("/health", Health).Methods(http.MethodGet)

	api := r.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/regions", ih.Regions).Methods(http.MethodGet)
	api.HandleFunc("/regions/{region}/districts", ih.Districts).Methods(http.MethodGet)
	api.HandleFunc("/islands", ih.Islands).Methods(http.MethodGet)
	api.HandleFunc("/islands/territorial", ih.Territorial).Methods(http.MethodGet)
	api.HandleFunc("/islands/viewport", ih.Viewport).Methods(http.MethodGet)
	api.HandleFunc("/islands/{id}", ih.Island).Methods(http.MethodGet)
	api.HandleFunc("/layers/{layer}", ih.Layer).Methods(http.MethodGet)
	api.HandleFunc("/basemaps", ih.Basemaps).Methods(http.MethodGet)
	api.HandleFunc("/sessions", sh.Create).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{id}", sh.Get).Methods(http.MethodGet)
	api.HandleFunc("/sessions/{id}", sh.Delete).Methods(http.MethodDelete)
	api.HandleFunc("/sessions/{id}/events", sh.Event).Methods(http.MethodPost)
	return r
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func do(t *testing.T, h http.Handler, method, target, body string) (int, envelope) {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var env envelope
	if rec.Code != http.StatusNoContent {
		if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
			t.Fatalf("%s %s: invalid JSON %q: %v", method, target, rec.Body.String(), err)
		}
	}
	return rec.Code, env
}

func TestStatusCodes(t *testing.T) {
	h := newTestRouter()

	tests := []struct {
		name   string
		method string
		target string
		want   int
	}{
		{name: "health", method: http.MethodGet, target: "/health", want: http.StatusOK},
		{name: "regions", method: http.MethodGet, target: "/api/v1/regions", want: http.StatusOK},
		{name: "districts", method: http.MethodGet, target: "/api/v1/regions/전라남도/districts", want: http.StatusOK},
		{name: "districts of unknown region", method: http.MethodGet, target: "/api/v1/regions/평안도/districts", want: http.StatusNotFound},
		{name: "islands", method: http.MethodGet, target: "/api/v1/islands?region=전라남도&usable=true", want: http.StatusOK},
		{name: "islands unknown region", method: http.MethodGet, target: "/api/v1/islands?region=평안도", want: http.StatusNotFound},
		{name: "islands bad page", method: http.MethodGet, target: "/api/v1/islands?page=0", want: http.StatusBadRequest},
		{name: "islands bad usable", method: http.MethodGet, target: "/api/v1/islands?usable=maybe", want: http.StatusBadRequest},
		{name: "territorial", method: http.MethodGet, target: "/api/v1/islands/territorial?page=1", want: http.StatusOK},
		{name: "viewport missing zoom", method: http.MethodGet, target: "/api/v1/islands/viewport?south=33&west=125&north=35&east=128", want: http.StatusBadRequest},
		{name: "viewport inverted", method: http.MethodGet, target: "/api/v1/islands/viewport?south=35&west=125&north=33&east=128&zoom=11", want: http.StatusBadRequest},
		{name: "island", method: http.MethodGet, target: "/api/v1/islands/a", want: http.StatusOK},
		{name: "island not found", method: http.MethodGet, target: "/api/v1/islands/zz", want: http.StatusNotFound},
		{name: "layer", method: http.MethodGet, target: "/api/v1/layers/ports", want: http.StatusOK},
		{name: "unknown layer", method: http.MethodGet, target: "/api/v1/layers/roads", want: http.StatusNotFound},
		{name: "basemaps", method: http.MethodGet, target: "/api/v1/basemaps", want: http.StatusOK},
		{name: "unknown session", method: http.MethodGet, target: "/api/v1/sessions/missing", want: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, env := do(t, h, tt.method, tt.target, "")
			if code != tt.want {
				t.Errorf("%s %s = %d, want %d", tt.method, tt.target, code, tt.want)
			}
			if code >= 400 && (env.Error == nil || env.Error.Code != code) {
				t.Errorf("error envelope = %+v", env.Error)
			}
		})
	}
}

func TestIslandsPage(t *testing.T) {
	code, env := do(t, newTestRouter(), http.MethodGet, "/api/v1/islands?region=전라남도&page=1", "")
	if code != http.StatusOK {
		t.Fatalf("status = %d", code)
	}

	var view viewer.RegionListView
	if err := json.Unmarshal(env.Data, &view); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if view.Page.Total != 3 || len(view.Page.Items) != 3 || view.Title != "섬 목록 - 전체" {
		t.Errorf("view = %+v", view)
	}
	if len(view.Districts) != 2 || view.Highlight == nil {
		t.Errorf("districts = %v, highlight = %v", view.Districts, view.Highlight)
	}
}

func TestViewportZoomIn(t *testing.T) {
	h := newTestRouter()

	_, env := do(t, h, http.MethodGet, "/api/v1/islands/viewport?south=33&west=125&north=35&east=128&zoom=8", "")
	var view viewer.ViewportView
	if err := json.Unmarshal(env.Data, &view); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if view.Status != viewer.ViewportZoomIn || view.Page != nil {
		t.Errorf("low zoom view = %+v", view)
	}

	_, env = do(t, h, http.MethodGet, "/api/v1/islands/viewport?south=33&west=125&north=35&east=128&zoom=12&usable=1", "")
	view = viewer.ViewportView{}
	if err := json.Unmarshal(env.Data, &view); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if view.Status != viewer.ViewportReady || view.Page == nil || view.Page.Total != 2 {
		t.Errorf("viewport view = %+v", view)
	}
}

func TestLayerIsGeoJSON(t *testing.T) {
	_, env := do(t, newTestRouter(), http.MethodGet, "/api/v1/layers/all", "")

	var fc struct {
		Type     string            `json:"type"`
		Features []json.RawMessage `json:"features"`
	}
	if err := json.Unmarshal(env.Data, &fc); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if fc.Type != "FeatureCollection" || len(fc.Features) != 4 {
		t.Errorf("layer = %s with %d features", fc.Type, len(fc.Features))
	}
}

func TestSessionFlow(t *testing.T) {
	h := newTestRouter()

	code, env := do(t, h, http.MethodPost, "/api/v1/sessions", "")
	if code != http.StatusCreated {
		t.Fatalf("create status = %d", code)
	}
	var created struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(env.Data, &created); err != nil || created.ID == "" {
		t.Fatalf("create body = %s, err = %v", env.Data, err)
	}
	events := "/api/v1/sessions/" + created.ID + "/events"

	tests := []struct {
		name string
		body string
		want int
	}{
		{name: "select region", body: `{"type":"select_region","region":"전라남도"}`, want: http.StatusOK},
		{name: "select district", body: `{"type":"select_district","district":"여수시"}`, want: http.StatusOK},
		{name: "move map", body: `{"type":"move_map","viewport":{"south":33,"west":125,"north":35,"east":128,"zoom":11}}`, want: http.StatusOK},
		{name: "change page", body: `{"type":"change_page","list":"viewport","page":2}`, want: http.StatusOK},
		{name: "select island", body: `{"type":"select_island","id":"b"}`, want: http.StatusOK},
		{name: "unknown island", body: `{"type":"select_island","id":"zz"}`, want: http.StatusBadRequest},
		{name: "unknown region", body: `{"type":"select_region","region":"평안도"}`, want: http.StatusBadRequest},
		{name: "unknown event", body: `{"type":"fly_to"}`, want: http.StatusBadRequest},
		{name: "malformed body", body: `{"type":`, want: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if code, env := do(t, h, http.MethodPost, events, tt.body); code != tt.want {
				t.Errorf("POST %s = %d (%+v), want %d", tt.body, code, env.Error, tt.want)
			}
		})
	}

	code, env = do(t, h, http.MethodGet, "/api/v1/sessions/"+created.ID, "")
	if code != http.StatusOK {
		t.Fatalf("get status = %d", code)
	}
	var got struct {
		View viewer.View `json:"view"`
	}
	if err := json.Unmarshal(env.Data, &got); err != nil {
		t.Fatalf("decode view: %v", err)
	}
	st := got.View.State
	if st.Region != "전라남도" || st.District != "여수시" || st.SelectedID != "b" {
		t.Errorf("session state = %+v", st)
	}
	if got.View.Selected == nil || got.View.Selected.Detail.Name != "대도" {
		t.Errorf("selected = %+v", got.View.Selected)
	}

	if code, _ := do(t, h, http.MethodDelete, "/api/v1/sessions/"+created.ID, ""); code != http.StatusNoContent {
		t.Errorf("delete status = %d", code)
	}
	if code, _ := do(t, h, http.MethodDelete, "/api/v1/sessions/"+created.ID, ""); code != http.StatusNotFound {
		t.Errorf("second delete status = %d, want 404", code)
	}
	if code, _ := do(t, h, http.MethodPost, events, `{"type":"toggle_ports"}`); code != http.StatusNotFound {
		t.Errorf("event on deleted session = %d, want 404", code)
	}
}

func TestUnknownSession(t *testing.T) {
	h := newTestRouter()
	events := "/api/v1/sessions/missing/events"

	tests := []struct {
		name   string
		method string
		target string
		body   string
	}{
		{name: "get", method: http.MethodGet, target: "/api/v1/sessions/missing"},
		{name: "delete", method: http.MethodDelete, target: "/api/v1/sessions/missing"},
		{name: "valid event", method: http.MethodPost, target: events, body: `{"type":"toggle_ports"}`},
		{name: "malformed event", method: http.MethodPost, target: events, body: `{"type":`},
		{name: "unknown event", method: http.MethodPost, target: events, body: `{"type":"fly_to"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if code, env := do(t, h, tt.method, tt.target, tt.body); code != http.StatusNotFound {
				t.Errorf("%s %s = %d (%+v), want 404", tt.method, tt.target, code, env.Error)
			}
		})
	}
}
