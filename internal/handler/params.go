package handler

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"

	"github.com/shuv1824/islandmap/internal/services/search"
	"github.com/shuv1824/islandmap/internal/state"
)

// pageParam reads the 1-based page number. Missing means page 1; values
// past the last page are clamped by the viewer.
func pageParam(q url.Values) (int, error) {
	s := q.Get("page")
	if s == "" {
		return 1, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("page must be a positive integer, got %q", s)
	}
	return n, nil
}

func boolParam(q url.Values, key string) (bool, error) {
	s := q.Get(key)
	if s == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(s)
	if err != nil {
		return false, fmt.Errorf("%s must be a boolean, got %q", key, s)
	}
	return b, nil
}

func floatParam(q url.Values, key string) (float64, error) {
	s := q.Get(key)
	if s == "" {
		return 0, fmt.Errorf("%s is required", key)
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number, got %q", key, s)
	}
	return f, nil
}

func viewportParams(q url.Values) (state.Viewport, error) {
	var vp state.Viewport
	var err error

	for _, p := range []struct {
		key string
		dst *float64
	}{
		{"south", &vp.South},
		{"west", &vp.West},
		{"north", &vp.North},
		{"east", &vp.East},
	} {
		if *p.dst, err = floatParam(q, p.key); err != nil {
			return state.Viewport{}, err
		}
	}

	zoom := q.Get("zoom")
	if zoom == "" {
		return state.Viewport{}, errors.New("zoom is required")
	}
	if vp.Zoom, err = strconv.Atoi(zoom); err != nil {
		return state.Viewport{}, fmt.Errorf("zoom must be an integer, got %q", zoom)
	}

	if _, err := search.NewBounds(vp.South, vp.West, vp.North, vp.East); err != nil {
		return state.Viewport{}, err
	}
	return vp, nil
}
