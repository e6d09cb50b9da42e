package island

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/shuv1824/islandmap/internal/types"
)

// Sentinels shown in place of missing values.
const (
	NoAddress   = "주소 정보 없음"
	NoName      = "이름 없음"
	NoInfo      = "정보 없음"
	NoShare     = "-"
	NotBaseline = "해당 없음"

	BaselineBadge = "영해기점"
	UsableBadge   = UsableManagementType

	travelInfoPending = "준비 중입니다."
	noBaselineText    = "영해기점 없음"
)

// DisplayName returns the island name or the no-name sentinel.
func DisplayName(is types.Island) string {
	if strings.TrimSpace(is.Name) == "" {
		return NoName
	}
	return is.Name
}

// IsMetropolitan reports whether a province value names a metropolitan or
// special city, whose districts are ambiguous without the city prefix.
func IsMetropolitan(province string) bool {
	return strings.Contains(province, "광역시") || strings.Contains(province, "특별시")
}

// DistrictLabel returns the display label for a district.
func DistrictLabel(province, district string) string {
	if IsMetropolitan(province) && province != "" {
		return province + " " + district
	}
	return district
}

// FormatAddress joins province, district and the remaining address
// fragments with single spaces, skipping blank parts.
func FormatAddress(is types.Island) string {
	candidates := make([]string, 0, 2+len(is.AddressParts))
	candidates = append(candidates, is.Province, is.District)
	candidates = append(candidates, is.AddressParts...)

	parts := make([]string, 0, len(candidates))
	for _, p := range candidates {
		if t := strings.TrimSpace(p); t != "" {
			parts = append(parts, t)
		}
	}

	if len(parts) == 0 {
		return NoAddress
	}
	return strings.Join(parts, " ")
}

// Summary returns the list-item projection of an island.
func Summary(is types.Island) types.IslandSummary {
	return types.IslandSummary{
		ID:      is.ID,
		Name:    DisplayName(is),
		Address: FormatAddress(is),
	}
}

// Tooltip is the short hover content of a marker.
type Tooltip struct {
	Name           string `json:"name"`
	Territorial    bool   `json:"territorial"`
	Usable         bool   `json:"usable"`
	Address        string `json:"address"`
	ManagementType string `json:"management_type"`
}

// NewTooltip builds the hover content for an island.
func NewTooltip(is types.Island) Tooltip {
	return Tooltip{
		Name:           DisplayName(is),
		Territorial:    IsTerritorialBaseline(is),
		Usable:         IsUsable(is),
		Address:        FormatAddress(is),
		ManagementType: orInfo(is.ManagementType),
	}
}

func (t Tooltip) String() string {
	var b strings.Builder
	b.WriteString(t.Name)
	if t.Territorial {
		b.WriteString(" [" + BaselineBadge + "]")
	}
	if t.Usable {
		b.WriteString(" [" + UsableBadge + "]")
	}
	fmt.Fprintf(&b, "\n소재지: %s\n관리유형: %s", t.Address, t.ManagementType)
	return b.String()
}

// Row is one labelled value of the detail panel.
type Row struct {
	Label     string `json:"label"`
	Value     string `json:"value"`
	Highlight bool   `json:"highlight,omitempty"`
}

// Detail is the full content of the island detail panel.
type Detail struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Usable     bool   `json:"usable"`
	TravelInfo string `json:"travel_info,omitempty"`
	Rows       []Row  `json:"rows"`
	Ownership  []Row  `json:"ownership"`
	Extra      []Row  `json:"extra"`
}

// NewDetail builds the detail panel content for an island. Every missing
// field is substituted independently.
func NewDetail(is types.Island) Detail {
	territorial := IsTerritorialBaseline(is)
	baseline := BaselineBadge
	if !territorial {
		baseline = is.BaselinePoint
		if strings.TrimSpace(baseline) == "" || baseline == noBaselineText {
			baseline = NotBaseline
		}
	}

	d := Detail{
		ID:     is.ID,
		Name:   DisplayName(is),
		Usable: IsUsable(is),
		Rows: []Row{
			{Label: "소재지", Value: FormatAddress(is)},
			{Label: "영해기점 무인도서 유무", Value: baseline, Highlight: territorial},
			{Label: "무인도서 관리유형", Value: orInfo(is.ManagementType)},
			{Label: "토지소유구분", Value: orInfo(is.LandOwnershipType)},
			{Label: "관리번호", Value: orInfo(is.ID)},
			{Label: "토지 소유자", Value: orInfo(is.LandOwner)},
			{Label: "토지 전체 면적(㎡)", Value: formatField(is.TotalArea, NoInfo)},
			{Label: "육지와의 거리(㎞)", Value: rawField(is.DistanceToMainland, NoInfo)},
		},
		Ownership: []Row{
			{Label: "국유지", Value: formatField(is.StateArea, NoShare)},
			{Label: "공유지", Value: formatField(is.PublicArea, NoShare)},
			{Label: "사유지", Value: formatField(is.PrivateArea, NoShare)},
		},
		Extra: []Row{
			{Label: "용도구분", Value: orInfo(is.UsageCategory)},
			{Label: "지목", Value: orInfo(is.LandCategory)},
			{Label: "주변해역 관리유형", Value: orInfo(is.SeaManagementType)},
			{Label: "지정고시일", Value: orInfo(is.DesignatedOn)},
		},
	}
	if d.Usable {
		d.TravelInfo = travelInfoPending
	}
	return d
}

func (d Detail) String() string {
	var b strings.Builder
	b.WriteString(d.Name)
	b.WriteString("\n")
	if d.Usable {
		fmt.Fprintf(&b, "가는 방법: %s\n", d.TravelInfo)
	}
	for _, group := range [][]Row{d.Rows, d.Ownership, d.Extra} {
		for _, r := range group {
			fmt.Fprintf(&b, "%s: %s\n", r.Label, r.Value)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func orInfo(s string) string {
	if strings.TrimSpace(s) == "" {
		return NoInfo
	}
	return s
}

func rawField(f types.Field, sentinel string) string {
	if f.Empty() {
		return sentinel
	}
	return f.Text
}

// formatField renders numeric cells with Korean digit grouping.
func formatField(f types.Field, sentinel string) string {
	if f.Empty() {
		return sentinel
	}
	if !f.IsNum {
		return f.Text
	}
	p := message.NewPrinter(language.Korean)
	return p.Sprint(number.Decimal(f.Number))
}
