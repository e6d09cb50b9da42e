package viewer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	gocache "github.com/patrickmn/go-cache"

	"github.com/shuv1824/islandmap/internal/island"
	"github.com/shuv1824/islandmap/internal/services/search"
	"github.com/shuv1824/islandmap/internal/types"
)

// Marker layers served to the map.
const (
	LayerAll         = "all"
	LayerUsable      = "usable"
	LayerTerritorial = "territorial"
	LayerPorts       = "ports"
)

// ErrUnknownLayer is returned for a layer name outside the catalog.
var ErrUnknownLayer = errors.New("unknown layer")

// LayerNames lists the marker layers in drawing order.
func LayerNames() []string {
	return []string{LayerAll, LayerUsable, LayerTerritorial, LayerPorts}
}

// CachedLayers wraps layer construction with an expiring in-process cache of
// the encoded GeoJSON.
type CachedLayers struct {
	islands []types.Island
	ports   []types.Port
	cache   *gocache.Cache
}

// NewCachedLayers creates a layer cache whose entries live for ttl.
func NewCachedLayers(islands []types.Island, ports []types.Port, ttl time.Duration) *CachedLayers {
	return &CachedLayers{
		islands: islands,
		ports:   ports,
		cache:   gocache.New(ttl, 2*ttl),
	}
}

// Layer returns the encoded GeoJSON FeatureCollection of a layer, building
// and caching it on a miss.
func (c *CachedLayers) Layer(ctx context.Context, name string) ([]byte, error) {
	if v, ok := c.cache.Get(name); ok {
		return v.([]byte), nil
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	fc, err := c.build(name)
	if err != nil {
		return nil, err
	}
	data, err := fc.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("encode layer %s: %w", name, err)
	}

	c.cache.SetDefault(name, data)
	return data, nil
}

// WarmCache builds every layer up front.
func (c *CachedLayers) WarmCache(ctx context.Context) error {
	for _, name := range LayerNames() {
		if _, err := c.Layer(ctx, name); err != nil {
			return err
		}
	}
	return nil
}

func (c *CachedLayers) build(name string) (*geojson.FeatureCollection, error) {
	switch name {
	case LayerAll:
		return islandLayer(c.islands), nil
	case LayerUsable:
		return islandLayer(search.FilterUsable(c.islands, true)), nil
	case LayerTerritorial:
		return islandLayer(search.FilterTerritorial(c.islands)), nil
	case LayerPorts:
		return portLayer(c.ports), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownLayer, name)
}

func islandLayer(islands []types.Island) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, is := range islands {
		p, ok := island.Point(is)
		if !ok {
			continue
		}
		tip := island.NewTooltip(is)

		f := geojson.NewFeature(p)
		f.ID = is.ID
		f.Properties["id"] = is.ID
		f.Properties["name"] = tip.Name
		f.Properties["address"] = tip.Address
		f.Properties["territorial"] = tip.Territorial
		f.Properties["usable"] = tip.Usable
		f.Properties["tooltip"] = tip.String()
		fc.Append(f)
	}
	return fc
}

func portLayer(ports []types.Port) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, p := range ports {
		f := geojson.NewFeature(orb.Point{p.Lng, p.Lat})
		f.Properties["name"] = p.Name
		f.Properties["address"] = p.Address
		f.Properties["tooltip"] = p.Name + "\n" + p.Address
		fc.Append(f)
	}
	return fc
}
