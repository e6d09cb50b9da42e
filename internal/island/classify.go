package island

import (
	"slices"
	"strings"

	"github.com/paulmach/orb"

	"github.com/shuv1824/islandmap/internal/coord"
	"github.com/shuv1824/islandmap/internal/types"
)

const (
	// UsableManagementType is the management type of islands open to the public.
	UsableManagementType = "이용가능"

	baselineCodeMarker = "영해기점-"

	// Two islands are named 홍도; only the one in this province is a baseline point.
	hongdo         = "홍도"
	hongdoProvince = "경상남도"
)

var baselineIslandNames = []string{
	"호미곶", "1.5미이터암", "생도", "간여암", "하백도",
	"사수도", "절명서", "소국흘도", "고서", "직도", "서격렬비도", "소령도",
}

// IsTerritorialBaseline reports whether the island is a territorial sea
// baseline point.
func IsTerritorialBaseline(is types.Island) bool {
	if strings.Contains(is.ID, baselineCodeMarker) {
		return true
	}
	if is.Name == hongdo {
		return is.Province == hongdoProvince
	}
	return slices.Contains(baselineIslandNames, is.Name)
}

// IsUsable reports whether the island's management type allows public use.
func IsUsable(is types.Island) bool {
	return is.ManagementType == UsableManagementType
}

// Coordinates returns the decimal latitude and longitude of the island.
// ok is false when either raw coordinate cannot be parsed.
func Coordinates(is types.Island) (lat, lng float64, ok bool) {
	lat, okLat := coord.Parse(is.RawLatitude)
	lng, okLng := coord.Parse(is.RawLongitude)
	if !okLat || !okLng {
		return 0, 0, false
	}
	return lat, lng, true
}

// Point returns the island position as an orb point (lng, lat).
func Point(is types.Island) (orb.Point, bool) {
	lat, lng, ok := Coordinates(is)
	if !ok {
		return orb.Point{}, false
	}
	return orb.Point{lng, lat}, true
}
