package geodata

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/shuv1824/islandmap/internal/coord"
	"github.com/shuv1824/islandmap/internal/types"
)

// headerName is the name cell of the spreadsheet header row that ships
// inside the island dataset.
const headerName = "무인도서명"

// Dataset holds everything loaded at startup. It is read-only afterwards.
type Dataset struct {
	Islands []types.Island
	Ports   []types.Port
}

// DecodeIslands reads the island array, dropping the header row and rows
// without both raw coordinates.
func DecodeIslands(r io.Reader) ([]types.Island, error) {
	var raw []types.RawIsland
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode islands: %w", err)
	}

	islands := make([]types.Island, 0, len(raw))
	for _, row := range raw {
		if row.Name.String() == headerName {
			continue
		}
		if row.Column23.Empty() || row.Column24.Empty() {
			continue
		}
		islands = append(islands, row.ToIsland())
	}
	return islands, nil
}

// DecodePorts reads the port array, dropping ports whose coordinates do not parse.
func DecodePorts(r io.Reader) ([]types.Port, error) {
	var raw []types.RawPort
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode ports: %w", err)
	}

	ports := make([]types.Port, 0, len(raw))
	for _, p := range raw {
		lat, lng, ok := coord.ParsePair(p.LatLng)
		if !ok {
			continue
		}
		ports = append(ports, types.Port{
			Name:    strings.TrimSpace(p.Name),
			Address: strings.TrimSpace(p.Address),
			Lat:     lat,
			Lng:     lng,
		})
	}
	return ports, nil
}

// LoadIslands reads the island dataset file.
func LoadIslands(path string) ([]types.Island, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return DecodeIslands(file)
}

// LoadPorts reads the port dataset file.
func LoadPorts(path string) ([]types.Port, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return DecodePorts(file)
}

// LoadAll loads both datasets concurrently. A failed load is logged and
// leaves that collection empty; it never aborts startup.
func LoadAll(ctx context.Context, islandsPath, portsPath string) Dataset {
	var (
		ds  Dataset
		wg  sync.WaitGroup
		log = slog.Default()
	)

	wg.Add(2)

	go func() {
		defer wg.Done()
		islands, err := LoadIslands(islandsPath)
		if err != nil {
			log.ErrorContext(ctx, "failed to load islands", "path", islandsPath, "error", err)
			return
		}
		ds.Islands = islands
	}()

	go func() {
		defer wg.Done()
		ports, err := LoadPorts(portsPath)
		if err != nil {
			log.ErrorContext(ctx, "failed to load ports", "path", portsPath, "error", err)
			return
		}
		ds.Ports = ports
	}()

	wg.Wait()

	if ds.Islands == nil {
		ds.Islands = []types.Island{}
	}
	if ds.Ports == nil {
		ds.Ports = []types.Port{}
	}
	return ds
}
