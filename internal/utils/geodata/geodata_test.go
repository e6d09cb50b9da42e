package geodata

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/shuv1824/islandmap/internal/types"
)

func TestDecodeIslands(t *testing.T) {
	input := `[
		{"무인도서 정보": "무인도서명", "Column2": "관리번호", "Column23": "위도", "Column24": "경도"},
		{"무인도서 정보": "하백도", "Column2": "전남-여수-101", "Column3": "전라남도", "Column23": "34°01′30″N", "Column24": "127°36′10″E"},
		{"무인도서 정보": "좌표없음", "Column2": "x", "Column23": null, "Column24": "127°36′10″E"},
		{"무인도서 정보": "빈좌표", "Column2": "y", "Column23": "", "Column24": ""},
		{"무인도서 정보": "숫자좌표", "Column2": "z", "Column23": 33.172, "Column24": 126.269}
	]`

	islands, err := DecodeIslands(strings.NewReader(input))
	if err != nil {
		t.Fatalf("DecodeIslands() error = %v", err)
	}

	var names []string
	for _, is := range islands {
		names = append(names, is.Name)
	}
	if diff := cmp.Diff([]string{"하백도", "숫자좌표"}, names); diff != "" {
		t.Errorf("decoded islands mismatch (-want +got):\n%s", diff)
	}
	if islands[1].RawLatitude != "33.172" {
		t.Errorf("numeric latitude kept as %q", islands[1].RawLatitude)
	}
}

func TestDecodeIslandsInvalid(t *testing.T) {
	if _, err := DecodeIslands(strings.NewReader(`{"not": "an array"}`)); err == nil {
		t.Error("DecodeIslands accepted an object")
	}
}

func TestDecodePorts(t *testing.T) {
	input := `[
		{"경위도": "37.4655, 126.5960", "이름": " 인천항 ", "주소": "인천광역시 중구"},
		{"경위도": "확인 필요", "이름": "미상", "주소": ""}
	]`

	ports, err := DecodePorts(strings.NewReader(input))
	if err != nil {
		t.Fatalf("DecodePorts() error = %v", err)
	}

	want := []types.Port{{Name: "인천항", Address: "인천광역시 중구", Lat: 37.4655, Lng: 126.596}}
	if diff := cmp.Diff(want, ports); diff != "" {
		t.Errorf("DecodePorts mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadAll(t *testing.T) {
	dir := filepath.Join("..", "..", "..", "data")

	ds := LoadAll(context.Background(), filepath.Join(dir, "data00.json"), filepath.Join(dir, "port.json"))
	if len(ds.Islands) != 8 {
		t.Errorf("loaded %d islands, want 8", len(ds.Islands))
	}
	if len(ds.Ports) != 3 {
		t.Errorf("loaded %d ports, want 3", len(ds.Ports))
	}
}

func TestLoadAllMissingFiles(t *testing.T) {
	dir := t.TempDir()

	ds := LoadAll(context.Background(), filepath.Join(dir, "missing.json"), filepath.Join(dir, "gone.json"))
	if ds.Islands == nil || ds.Ports == nil {
		t.Fatal("failed loads should leave empty, non-nil collections")
	}
	if len(ds.Islands) != 0 || len(ds.Ports) != 0 {
		t.Errorf("got %d islands and %d ports from missing files", len(ds.Islands), len(ds.Ports))
	}
}
