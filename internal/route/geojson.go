package route

import (
	"encoding/json"
	"errors"
	"fmt"
)

var (
	ErrNotFeatureCollection = errors.New("geojson: not a FeatureCollection")
	ErrNoLineString         = errors.New("geojson: no LineString feature")
)

type featureCollection struct {
	Type     string            `json:"type"`
	Features []json.RawMessage `json:"features"`
}

type feature struct {
	Type     string `json:"type"`
	Geometry struct {
		Type        string      `json:"type"`
		Coordinates [][]float64 `json:"coordinates"`
	} `json:"geometry"`
}

// ParseGeoJSON extracts the coordinate series of the first LineString feature
// in a FeatureCollection. Tuple positions are [lng, lat, elevation, distance,
// cumulativeVert]; positions past lat are optional and default to zero.
func ParseGeoJSON(data []byte) ([]Coord, error) {
	var fc featureCollection
	if err := json.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("geojson: %w", err)
	}
	if fc.Type != "FeatureCollection" || fc.Features == nil {
		return nil, ErrNotFeatureCollection
	}

	for _, raw := range fc.Features {
		var f feature
		if err := json.Unmarshal(raw, &f); err != nil {
			continue
		}
		if f.Geometry.Type != "LineString" {
			continue
		}
		return coordsFromTuples(f.Geometry.Coordinates)
	}
	return nil, ErrNoLineString
}

func coordsFromTuples(tuples [][]float64) ([]Coord, error) {
	coords := make([]Coord, 0, len(tuples))
	for i, tuple := range tuples {
		if len(tuple) < 2 {
			return nil, fmt.Errorf("geojson: coordinate %d has %d positions", i, len(tuple))
		}
		c := Coord{Idx: i, Lng: tuple[0], Lat: tuple[1]}
		if len(tuple) > 2 {
			c.Elevation = tuple[2]
		}
		if len(tuple) > 3 {
			c.Distance = tuple[3]
		}
		if len(tuple) > 4 {
			c.CumulativeVert = tuple[4]
		}
		coords = append(coords, c)
	}
	return coords, nil
}
