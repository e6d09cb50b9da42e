package search

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/shuv1824/islandmap/internal/island"
	"github.com/shuv1824/islandmap/internal/types"
)

// ErrUnknownRegion is returned when a region group name is not in the mapping.
var ErrUnknownRegion = errors.New("unknown region")

// regions maps each logical region group to the raw province values it covers,
// including names from before and after administrative renames.
var regions = []types.Region{
	{Name: "경기도", Provinces: []string{"경기도", "인천광역시"}},
	{Name: "충청도", Provinces: []string{"충청북도", "충청남도", "세종특별자치시"}},
	{Name: "전라남도", Provinces: []string{"전라남도"}},
	{Name: "전라북도", Provinces: []string{"전라북도", "전북특별자치도"}},
	{Name: "경상남도", Provinces: []string{"경상남도", "부산광역시", "울산광역시"}},
	{Name: "경상북도", Provinces: []string{"경상북도", "대구광역시"}},
	{Name: "강원도", Provinces: []string{"강원특별자치도", "강원도"}},
	{Name: "제주도", Provinces: []string{"제주특별자치도", "제주도"}},
}

// Regions returns the region groups in selector order.
func Regions() []types.Region {
	out := make([]types.Region, len(regions))
	for i, r := range regions {
		out[i] = types.Region{Name: r.Name, Provinces: append([]string(nil), r.Provinces...)}
	}
	return out
}

// LookupRegion returns the group with the given name.
func LookupRegion(name string) (types.Region, bool) {
	for _, r := range regions {
		if r.Name == name {
			return r, true
		}
	}
	return types.Region{}, false
}

// FilterByRegion keeps islands whose province contains one of the group's
// province values. An empty group returns the input unchanged; an unknown
// group matches nothing.
func FilterByRegion(islands []types.Island, group string) []types.Island {
	if group == "" {
		return islands
	}
	r, _ := LookupRegion(group)

	out := make([]types.Island, 0)
	for _, is := range islands {
		for _, p := range r.Provinces {
			if strings.Contains(is.Province, p) {
				out = append(out, is)
				break
			}
		}
	}
	return out
}

// FilterByDistrict keeps islands whose district equals district exactly.
func FilterByDistrict(islands []types.Island, district string) []types.Island {
	if district == "" {
		return islands
	}
	out := make([]types.Island, 0)
	for _, is := range islands {
		if is.District == district {
			out = append(out, is)
		}
	}
	return out
}

// FilterUsable keeps usable islands when only is set.
func FilterUsable(islands []types.Island, only bool) []types.Island {
	if !only {
		return islands
	}
	out := make([]types.Island, 0)
	for _, is := range islands {
		if island.IsUsable(is) {
			out = append(out, is)
		}
	}
	return out
}

// FilterTerritorial keeps territorial baseline islands.
func FilterTerritorial(islands []types.Island) []types.Island {
	out := make([]types.Island, 0)
	for _, is := range islands {
		if island.IsTerritorialBaseline(is) {
			out = append(out, is)
		}
	}
	return out
}

// ListDistricts returns one selector entry per distinct district, labelled
// with the province for metropolitan cities and sorted by province then
// district in Korean collation order.
func ListDistricts(islands []types.Island) []types.District {
	seen := make(map[string]bool)
	var out []types.District
	for _, is := range islands {
		if is.District == "" || seen[is.District] {
			continue
		}
		seen[is.District] = true
		out = append(out, types.District{
			Short:    is.District,
			Full:     island.DistrictLabel(is.Province, is.District),
			Province: is.Province,
		})
	}

	c := collate.New(language.Korean)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Province != out[j].Province {
			return c.CompareString(out[i].Province, out[j].Province) < 0
		}
		return c.CompareString(out[i].Short, out[j].Short) < 0
	})
	return out
}

// FindDistrict returns the selector entry for a raw district value.
func FindDistrict(districts []types.District, short string) (types.District, bool) {
	for _, d := range districts {
		if d.Short == short {
			return d, true
		}
	}
	return types.District{}, false
}

// ValidateRegion returns ErrUnknownRegion for a non-empty name outside the mapping.
func ValidateRegion(name string) error {
	if name == "" {
		return nil
	}
	if _, ok := LookupRegion(name); !ok {
		return fmt.Errorf("%w: %q", ErrUnknownRegion, name)
	}
	return nil
}
