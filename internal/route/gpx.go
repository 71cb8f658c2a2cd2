package route

import (
	"encoding/json"
	"errors"

	"github.com/tkrajina/gpxgo/gpx"
)

const metersPerMile = 1609.344

var ErrEmptyGPX = errors.New("gpx: no track points")

// GPXSummary is the derived view of an uploaded GPX file: the coordinate
// series annotated with mile markers and cumulative vertical gain, plus the
// totals stored on the route record.
type GPXSummary struct {
	Coords              []Coord
	TotalDistanceM      float64
	TotalElevationGainM float64
}

// ParseGPX walks every track segment in order, accumulating 2D distance and
// elevation gain. Coord.Distance carries the mile marker at that vertex and
// Coord.CumulativeVert the vertical meters gained so far.
func ParseGPX(data []byte) (GPXSummary, error) {
	g, err := gpx.ParseBytes(data)
	if err != nil {
		return GPXSummary{}, err
	}

	var summary GPXSummary
	var prev *gpx.GPXPoint
	totalM := 0.0
	gainM := 0.0
	idx := 0

	for _, track := range g.Tracks {
		for _, segment := range track.Segments {
			for i := range segment.Points {
				point := &segment.Points[i]
				if prev != nil {
					totalM += prev.Distance2D(point)
					if d := point.Elevation.Value() - prev.Elevation.Value(); d > 0 {
						gainM += d
					}
				}
				summary.Coords = append(summary.Coords, Coord{
					Idx:            idx,
					Lng:            point.Longitude,
					Lat:            point.Latitude,
					Elevation:      point.Elevation.Value(),
					Distance:       totalM / metersPerMile,
					CumulativeVert: gainM,
				})
				prev = point
				idx++
			}
		}
	}

	if len(summary.Coords) == 0 {
		return GPXSummary{}, ErrEmptyGPX
	}
	summary.TotalDistanceM = totalM
	summary.TotalElevationGainM = gainM
	return summary, nil
}

// GeoJSON renders the summary as a single-LineString FeatureCollection using
// the same tuple layout ParseGeoJSON reads back.
func (s GPXSummary) GeoJSON() (string, error) {
	coords := make([][]float64, len(s.Coords))
	for i, c := range s.Coords {
		coords[i] = []float64{c.Lng, c.Lat, c.Elevation, c.Distance, c.CumulativeVert}
	}

	fc := map[string]any{
		"type": "FeatureCollection",
		"features": []any{
			map[string]any{
				"type":       "Feature",
				"properties": map[string]any{},
				"geometry": map[string]any{
					"type":        "LineString",
					"coordinates": coords,
				},
			},
		},
	}
	out, err := json.Marshal(fc)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
