package route

import "time"

type Route struct {
	ID                  string    `json:"id"`
	UserID              string    `json:"user_id"`
	Name                string    `json:"name"`
	Description         string    `json:"description"`
	TotalDistanceM      float64   `json:"total_distance_m"`
	TotalElevationGainM float64   `json:"total_elevation_gain_m"`
	GeoJSON             string    `json:"geojson"`
	CreatedAt           time.Time `json:"created_at"`
}

// Coord is one vertex of a route LineString. Elevation, Distance and
// CumulativeVert default to zero when the source tuple omits them.
type Coord struct {
	Idx            int     `json:"idx"`
	Lng            float64 `json:"lng"`
	Lat            float64 `json:"lat"`
	Elevation      float64 `json:"elevation"`
	Distance       float64 `json:"distance"`
	CumulativeVert float64 `json:"cumulativeVert"`
}
