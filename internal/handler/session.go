package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/shuv1824/islandmap/internal/metrics"
	"github.com/shuv1824/islandmap/internal/response"
	"github.com/shuv1824/islandmap/internal/services/search"
	"github.com/shuv1824/islandmap/internal/services/session"
	"github.com/shuv1824/islandmap/internal/services/viewer"
	"github.com/shuv1824/islandmap/internal/state"
)

type SessionHandler struct {
	store *session.Store
}

func NewSessionHandler(store *session.Store) *SessionHandler {
	return &SessionHandler{store: store}
}

type sessionResponse struct {
	ID   string      `json:"id"`
	View viewer.View `json:"view"`
}

// Create starts a viewer session in its initial state.
func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	id, view, err := h.store.Create()
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Location", "/api/v1/sessions/"+id)
	response.JSON(w, http.StatusCreated, sessionResponse{ID: id, View: view})
}

// Get renders the current view of a session.
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	view, err := h.store.Get(id)
	if err != nil {
		writeError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, sessionResponse{ID: id, View: view})
}

// Event applies one user interaction to a session.
func (h *SessionHandler) Event(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := h.store.Exists(id); err != nil {
		writeError(w, err)
		return
	}

	var body state.Payload
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.ErrorJSON(w, http.StatusBadRequest, "invalid request body")
		return
	}

	event, err := state.ParseEvent(body)
	if err != nil {
		response.ErrorJSON(w, http.StatusBadRequest, err.Error())
		return
	}

	view, err := h.store.Apply(id, event)
	if err != nil {
		// A rejected selection is a bad event, not a missing resource.
		if errors.Is(err, search.ErrUnknownRegion) || errors.Is(err, viewer.ErrNotFound) {
			response.ErrorJSON(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, err)
		return
	}

	metrics.SessionEventsTotal.WithLabelValues(event.Name()).Inc()
	response.JSON(w, http.StatusOK, sessionResponse{ID: id, View: view})
}

// Delete ends a session.
func (h *SessionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Delete(mux.Vars(r)["id"]); err != nil {
		writeError(w, err)
		return
	}
	response.NoContent(w)
}
