package basemap

import "github.com/shuv1824/islandmap/internal/types"

const (
	Default   = "default"
	Satellite = "satellite"
	Terrain   = "terrain"
	Dark      = "dark"

	// Initial is the tile layer shown when a viewer opens.
	Initial = Satellite
)

var catalog = []types.Basemap{
	{Name: Default, URL: "https://{s}.tile.openstreetmap.org/{z}/{x}/{y}.png", Attribution: "© OpenStreetMap", MaxZoom: 19},
	{Name: Satellite, URL: "https://server.arcgisonline.com/ArcGIS/rest/services/World_Imagery/MapServer/tile/{z}/{y}/{x}", Attribution: "© Esri", MaxZoom: 19},
	{Name: Terrain, URL: "https://{s}.tile.opentopomap.org/{z}/{x}/{y}.png", Attribution: "© OpenTopoMap", MaxZoom: 17},
	{Name: Dark, URL: "https://{s}.basemaps.cartocdn.com/dark_all/{z}/{x}/{y}{r}.png", Attribution: "© CARTO", MaxZoom: 19},
}

// All returns the available tile layers.
func All() []types.Basemap {
	return append([]types.Basemap(nil), catalog...)
}

// Lookup finds a tile layer by name.
func Lookup(name string) (types.Basemap, bool) {
	for _, b := range catalog {
		if b.Name == name {
			return b, true
		}
	}
	return types.Basemap{}, false
}
