package response

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type Response struct {
	Data  any    `json:"data,omitempty"`
	Error *Error `json:"error,omitempty"`
}

func JSON(w http.ResponseWriter, status int, data any) {
	write(w, status, Response{Data: data})
}

func ErrorJSON(w http.ResponseWriter, status int, message string) {
	write(w, status, Response{
		Error: &Error{
			Code:    status,
			Message: message,
		},
	})
}

// GeoJSON writes an already encoded GeoJSON document inside the data envelope.
func GeoJSON(w http.ResponseWriter, status int, body []byte) {
	write(w, status, Response{Data: json.RawMessage(body)})
}

func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

func write(w http.ResponseWriter, status int, resp Response) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
