package travel

import (
	"math"
	"sort"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"

	"github.com/shuv1824/islandmap/internal/island"
	"github.com/shuv1824/islandmap/internal/types"
)

// PortDistance is a ferry port ranked by its distance from an island.
type PortDistance struct {
	Port       types.Port `json:"port"`
	DistanceKm float64    `json:"distance_km"`
	Rank       int        `json:"rank"`
}

type TravelService struct {
	ports []types.Port
}

// NewTravelService creates a travel service over the loaded port list.
func NewTravelService(ports []types.Port) *TravelService {
	return &TravelService{ports: ports}
}

// NearestPorts returns up to n ports closest to the island. ok is false when
// the island cannot be placed on the map.
func (s *TravelService) NearestPorts(is types.Island, n int) ([]PortDistance, bool) {
	from, ok := island.Point(is)
	if !ok {
		return nil, false
	}

	ranked := make([]PortDistance, 0, len(s.ports))
	for _, p := range s.ports {
		meters := geo.Distance(from, orb.Point{p.Lng, p.Lat})
		ranked = append(ranked, PortDistance{
			Port:       p,
			DistanceKm: math.Round(meters/10) / 100,
		})
	}

	return rankPorts(ranked, n), true
}

// rankPorts orders ports by distance, breaking ties by name, and keeps the
// first n.
func rankPorts(ports []PortDistance, n int) []PortDistance {
	sort.Slice(ports, func(i, j int) bool {
		if ports[i].DistanceKm != ports[j].DistanceKm {
			return ports[i].DistanceKm < ports[j].DistanceKm
		}
		return ports[i].Port.Name < ports[j].Port.Name
	})

	if n >= 0 && len(ports) > n {
		ports = ports[:n]
	}
	for i := range ports {
		ports[i].Rank = i + 1
	}
	return ports
}
