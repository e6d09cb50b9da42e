package types

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// Field is a dataset cell that may arrive as a JSON string, number or null.
type Field struct {
	Text   string
	Number float64
	IsNum  bool
	Valid  bool
}

func (f *Field) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		*f = Field{}
		return nil
	}

	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = Field{Text: s, Valid: true}
		return nil
	}

	var n float64
	if err := json.Unmarshal(b, &n); err != nil {
		// Booleans and other scalars are kept verbatim.
		*f = Field{Text: string(b), Valid: true}
		return nil
	}
	*f = Field{Text: strconv.FormatFloat(n, 'f', -1, 64), Number: n, IsNum: true, Valid: true}
	return nil
}

func (f Field) MarshalJSON() ([]byte, error) {
	if !f.Valid {
		return []byte("null"), nil
	}
	if f.IsNum {
		return []byte(f.Text), nil
	}
	return json.Marshal(f.Text)
}

// Empty reports whether the cell is absent or blank text.
func (f Field) Empty() bool {
	if !f.Valid {
		return true
	}
	return !f.IsNum && strings.TrimSpace(f.Text) == ""
}

// String returns the cell text, or "" when absent.
func (f Field) String() string {
	if !f.Valid {
		return ""
	}
	return f.Text
}

// NewText builds a present text cell.
func NewText(s string) Field { return Field{Text: s, Valid: true} }

// NewNumber builds a present numeric cell.
func NewNumber(n float64) Field {
	return Field{Text: strconv.FormatFloat(n, 'f', -1, 64), Number: n, IsNum: true, Valid: true}
}

// RawIsland mirrors one row of the island dataset as exported from the
// public spreadsheet: the name under its Korean label, everything else
// under positional column keys.
type RawIsland struct {
	Name     Field `json:"무인도서 정보"`
	Column2  Field `json:"Column2"`
	Column3  Field `json:"Column3"`
	Column4  Field `json:"Column4"`
	Column5  Field `json:"Column5"`
	Column6  Field `json:"Column6"`
	Column7  Field `json:"Column7"`
	Column9  Field `json:"Column9"`
	Column10 Field `json:"Column10"`
	Column11 Field `json:"Column11"`
	Column12 Field `json:"Column12"`
	Column13 Field `json:"Column13"`
	Column14 Field `json:"Column14"`
	Column16 Field `json:"Column16"`
	Column18 Field `json:"Column18"`
	Column19 Field `json:"Column19"`
	Column20 Field `json:"Column20"`
	Column21 Field `json:"Column21"`
	Column22 Field `json:"Column22"`
	Column23 Field `json:"Column23"`
	Column24 Field `json:"Column24"`
	Column25 Field `json:"Column25"`
}

// Island is the typed island record used everywhere past the load boundary.
type Island struct {
	ID                 string   `json:"id"`
	Name               string   `json:"name"`
	Province           string   `json:"province"`
	District           string   `json:"district"`
	AddressParts       []string `json:"address_parts,omitempty"`
	LandOwnershipType  string   `json:"land_ownership_type,omitempty"`
	LandOwner          string   `json:"land_owner,omitempty"`
	TotalArea          Field    `json:"total_area"`
	StateArea          Field    `json:"state_area"`
	PublicArea         Field    `json:"public_area"`
	PrivateArea        Field    `json:"private_area"`
	DistanceToMainland Field    `json:"distance_to_mainland"`
	UsageCategory      string   `json:"usage_category,omitempty"`
	LandCategory       string   `json:"land_category,omitempty"`
	BaselinePoint      string   `json:"baseline_point,omitempty"`
	ManagementType     string   `json:"management_type,omitempty"`
	SeaManagementType  string   `json:"sea_management_type,omitempty"`
	RawLatitude        string   `json:"raw_latitude"`
	RawLongitude       string   `json:"raw_longitude"`
	DesignatedOn       string   `json:"designated_on,omitempty"`
}

// ToIsland converts a raw dataset row into a typed record.
func (r RawIsland) ToIsland() Island {
	parts := make([]string, 0, 3)
	for _, p := range []Field{r.Column5, r.Column6, r.Column7} {
		parts = append(parts, p.String())
	}

	return Island{
		ID:                 r.Column2.String(),
		Name:               r.Name.String(),
		Province:           r.Column3.String(),
		District:           r.Column4.String(),
		AddressParts:       parts,
		LandOwnershipType:  r.Column9.String(),
		LandOwner:          r.Column10.String(),
		TotalArea:          r.Column11,
		StateArea:          r.Column12,
		PublicArea:         r.Column13,
		PrivateArea:        r.Column14,
		DistanceToMainland: r.Column16,
		UsageCategory:      r.Column18.String(),
		LandCategory:       r.Column19.String(),
		BaselinePoint:      r.Column20.String(),
		ManagementType:     r.Column21.String(),
		SeaManagementType:  r.Column22.String(),
		RawLatitude:        r.Column23.String(),
		RawLongitude:       r.Column24.String(),
		DesignatedOn:       r.Column25.String(),
	}
}

// RawPort mirrors one row of the port dataset.
type RawPort struct {
	LatLng  string `json:"경위도"`
	Name    string `json:"이름"`
	Address string `json:"주소"`
}

type Port struct {
	Name    string  `json:"name"`
	Address string  `json:"address"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
}

// IslandSummary is the list-item projection rendered in every side panel.
type IslandSummary struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
}

// Page is one page of a filtered list.
type Page struct {
	Items          []IslandSummary `json:"items"`
	Page           int             `json:"page"`
	TotalPages     int             `json:"total_pages"`
	Total          int             `json:"total"`
	ShowPagination bool            `json:"show_pagination"`
}

// District is one entry of the sigungu selector.
type District struct {
	Short    string `json:"short"`
	Full     string `json:"full"`
	Province string `json:"province"`
}

// Region is a logical province group shown in the region selector.
type Region struct {
	Name      string   `json:"name"`
	Provinces []string `json:"provinces"`
}

// Basemap describes a tile layer the front end can switch to.
type Basemap struct {
	Name        string `json:"name"`
	URL         string `json:"url"`
	Attribution string `json:"attribution"`
	MaxZoom     int    `json:"max_zoom"`
}
