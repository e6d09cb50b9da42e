package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/shuv1824/islandmap/internal/response"
	"github.com/shuv1824/islandmap/internal/services/search"
	"github.com/shuv1824/islandmap/internal/services/session"
	"github.com/shuv1824/islandmap/internal/services/viewer"
	"github.com/shuv1824/islandmap/internal/state"
)

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, search.ErrUnknownRegion),
		errors.Is(err, viewer.ErrNotFound),
		errors.Is(err, viewer.ErrUnknownLayer),
		errors.Is(err, session.ErrNotFound):
		response.ErrorJSON(w, http.StatusNotFound, err.Error())
	case errors.Is(err, state.ErrUnknownEvent):
		response.ErrorJSON(w, http.StatusBadRequest, err.Error())
	default:
		slog.Error("request failed", "error", err)
		response.ErrorJSON(w, http.StatusInternalServerError, "internal error")
	}
}
