package route

import (
	"strings"
	"testing"
)

const sampleGPX = `<?xml version="1.0" encoding="UTF-8"?>
<gpx version="1.1" creator="corsa-test" xmlns="http://www.topografix.com/GPX/1/1">
  <trk>
    <name>Morning Ride</name>
    <trkseg>
      <trkpt lat="38.5000" lon="-105.9900"><ele>2900</ele><time>2024-06-01T08:00:00Z</time></trkpt>
      <trkpt lat="38.5090" lon="-105.9900"><ele>2950</ele><time>2024-06-01T08:10:00Z</time></trkpt>
      <trkpt lat="38.5180" lon="-105.9900"><ele>2930</ele><time>2024-06-01T08:20:00Z</time></trkpt>
    </trkseg>
  </trk>
</gpx>`

func TestParseGPX(t *testing.T) {
	summary, err := ParseGPX([]byte(sampleGPX))
	if err != nil {
		t.Fatalf("parse gpx: %v", err)
	}
	if len(summary.Coords) != 3 {
		t.Fatalf("expected 3 coords, got %d", len(summary.Coords))
	}
	// two ~1km hops along a meridian
	if summary.TotalDistanceM < 1800 || summary.TotalDistanceM > 2200 {
		t.Fatalf("unexpected total distance: %v", summary.TotalDistanceM)
	}
	// only the climb counts toward gain, not the descent
	if summary.TotalElevationGainM != 50 {
		t.Fatalf("expected 50m gain, got %v", summary.TotalElevationGainM)
	}
	if summary.Coords[0].Distance != 0 {
		t.Fatalf("first mile marker should be 0")
	}
	if summary.Coords[2].Distance <= summary.Coords[1].Distance {
		t.Fatalf("mile markers should increase")
	}
}

func TestParseGPXEmpty(t *testing.T) {
	empty := `<?xml version="1.0"?><gpx version="1.1" creator="t" xmlns="http://www.topografix.com/GPX/1/1"></gpx>`
	if _, err := ParseGPX([]byte(empty)); err != ErrEmptyGPX {
		t.Fatalf("expected ErrEmptyGPX, got %v", err)
	}
}

func TestParseGPXInvalid(t *testing.T) {
	if _, err := ParseGPX([]byte("not gpx")); err == nil {
		t.Fatalf("expected error")
	}
}

func TestGPXSummaryGeoJSONRoundTrip(t *testing.T) {
	summary, err := ParseGPX([]byte(sampleGPX))
	if err != nil {
		t.Fatalf("parse gpx: %v", err)
	}
	geojson, err := summary.GeoJSON()
	if err != nil {
		t.Fatalf("geojson: %v", err)
	}
	if !strings.Contains(geojson, "LineString") {
		t.Fatalf("expected LineString feature")
	}

	coords, err := ParseGeoJSON([]byte(geojson))
	if err != nil {
		t.Fatalf("re-parse: %v", err)
	}
	if len(coords) != len(summary.Coords) {
		t.Fatalf("round trip lost coords: %d vs %d", len(coords), len(summary.Coords))
	}
	if coords[1].Elevation != summary.Coords[1].Elevation {
		t.Fatalf("round trip changed elevation")
	}
}
