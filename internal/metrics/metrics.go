package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "islandmap_requests_total",
		Help: "Total API requests by route and status class",
	}, []string{"route", "status"})
	SessionEventsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "islandmap_session_events_total",
		Help: "Viewer session events applied, by event type",
	}, []string{"event"})
	ViewportZoomInTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "islandmap_viewport_zoom_in_total",
		Help: "Viewport queries answered with the zoom-in status",
	})
	IslandsLoaded = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "islandmap_islands_loaded",
		Help: "Island records loaded at startup",
	})
	PortsLoaded = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "islandmap_ports_loaded",
		Help: "Port records loaded at startup",
	})
)

func init() {
	prometheus.MustRegister(RequestsTotal)
	prometheus.MustRegister(SessionEventsTotal)
	prometheus.MustRegister(ViewportZoomInTotal)
	prometheus.MustRegister(IslandsLoaded)
	prometheus.MustRegister(PortsLoaded)
}

// Handler exposes the registered collectors for scraping.
func Handler() http.Handler { return promhttp.Handler() }
