package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/shuv1824/islandmap/internal/basemap"
	"github.com/shuv1824/islandmap/internal/metrics"
	"github.com/shuv1824/islandmap/internal/response"
	"github.com/shuv1824/islandmap/internal/services/search"
	"github.com/shuv1824/islandmap/internal/services/viewer"
)

const layerTimeout = 2 * time.Second

type IslandHandler struct {
	viewer *viewer.ViewerService
}

func NewIslandHandler(viewerService *viewer.ViewerService) *IslandHandler {
	return &IslandHandler{viewer: viewerService}
}

// Health returns a simple health check response
func Health(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, map[string]string{
		"status": "healthy",
	})
}

// Regions lists the region groups in selector order.
func (h *IslandHandler) Regions(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, search.Regions())
}

// Districts lists the district selector entries of one region group.
func (h *IslandHandler) Districts(w http.ResponseWriter, r *http.Request) {
	districts, err := h.viewer.Districts(mux.Vars(r)["region"])
	if err != nil {
		writeError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, districts)
}

// Islands returns one page of the region list.
func (h *IslandHandler) Islands(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	usable, err := boolParam(q, "usable")
	if err != nil {
		response.ErrorJSON(w, http.StatusBadRequest, err.Error())
		return
	}
	page, err := pageParam(q)
	if err != nil {
		response.ErrorJSON(w, http.StatusBadRequest, err.Error())
		return
	}

	view, err := h.viewer.RegionList(q.Get("region"), q.Get("district"), usable, page)
	if err != nil {
		writeError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, view)
}

// Territorial returns one page of territorial baseline islands.
func (h *IslandHandler) Territorial(w http.ResponseWriter, r *http.Request) {
	page, err := pageParam(r.URL.Query())
	if err != nil {
		response.ErrorJSON(w, http.StatusBadRequest, err.Error())
		return
	}
	response.JSON(w, http.StatusOK, h.viewer.TerritorialList(page))
}

// Viewport lists islands inside the requested map rectangle.
func (h *IslandHandler) Viewport(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	vp, err := viewportParams(q)
	if err != nil {
		response.ErrorJSON(w, http.StatusBadRequest, err.Error())
		return
	}
	usable, err := boolParam(q, "usable")
	if err != nil {
		response.ErrorJSON(w, http.StatusBadRequest, err.Error())
		return
	}
	page, err := pageParam(q)
	if err != nil {
		response.ErrorJSON(w, http.StatusBadRequest, err.Error())
		return
	}

	view := h.viewer.ViewportList(vp, usable, page)
	if view.Status == viewer.ViewportZoomIn {
		metrics.ViewportZoomInTotal.Inc()
	}
	response.JSON(w, http.StatusOK, view)
}

// Island returns the detail view of one island.
func (h *IslandHandler) Island(w http.ResponseWriter, r *http.Request) {
	view, err := h.viewer.Island(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, view)
}

// Layer returns a marker layer as a GeoJSON FeatureCollection.
func (h *IslandHandler) Layer(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), layerTimeout)
	defer cancel()

	start := time.Now()

	body, err := h.viewer.Layer(ctx, mux.Vars(r)["layer"])
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			response.ErrorJSON(w, http.StatusGatewayTimeout, "request timeout - try again")
			return
		}
		writeError(w, err)
		return
	}

	w.Header().Set("X-Response-Time", time.Since(start).String())
	response.GeoJSON(w, http.StatusOK, body)
}

// Basemaps lists the selectable tile layers.
func (h *IslandHandler) Basemaps(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, map[string]any{
		"initial":  basemap.Initial,
		"basemaps": basemap.All(),
	})
}
