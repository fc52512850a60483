package models

import (
	"encoding/json"
	"fmt"
)

// MaxRiskAreaPoints caps how many points a risk area may carry. Three points
// form the triangle the map renders as a polygon.
const MaxRiskAreaPoints = 3

// BufferRadiusMeters is the fixed uncertainty radius drawn around every risk
// area point. Display-only: no overlap or containment logic depends on it.
const BufferRadiusMeters = 50

// GeoPoint is a validated latitude/longitude pair. Immutable once created.
type GeoPoint struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// NewGeoPoint validates a coordinate pair coming off the wire. Pointers
// distinguish "absent" from zero: a point missing either coordinate is
// rejected, never silently dropped.
func NewGeoPoint(lat, lng *float64) (GeoPoint, error) {
	if lat == nil || lng == nil {
		return GeoPoint{}, fmt.Errorf("%w: latitude and longitude are both required", ErrInvalidCoordinate)
	}
	if *lat < -90 || *lat > 90 {
		return GeoPoint{}, fmt.Errorf("%w: latitude %v out of range [-90,90]", ErrInvalidCoordinate, *lat)
	}
	if *lng < -180 || *lng > 180 {
		return GeoPoint{}, fmt.Errorf("%w: longitude %v out of range [-180,180]", ErrInvalidCoordinate, *lng)
	}
	return GeoPoint{Lat: *lat, Lng: *lng}, nil
}

// RiskArea is an ordered sequence of 0-3 points marking a reported danger
// zone. Insertion order is significant for rendering.
type RiskArea struct {
	points []GeoPoint
}

// NewRiskArea builds a risk area from already-validated points.
func NewRiskArea(points ...GeoPoint) (RiskArea, error) {
	if len(points) > MaxRiskAreaPoints {
		return RiskArea{}, fmt.Errorf("%w: got %d points, maximum is %d", ErrInvalidGeometry, len(points), MaxRiskAreaPoints)
	}
	area := RiskArea{points: make([]GeoPoint, len(points))}
	copy(area.points, points)
	return area, nil
}

// AddPoint returns a new RiskArea with the point appended. The receiver is
// left untouched, so a failed add never mutates the area.
func (a RiskArea) AddPoint(p GeoPoint) (RiskArea, error) {
	if len(a.points) >= MaxRiskAreaPoints {
		return a, ErrAreaFull
	}
	next := make([]GeoPoint, len(a.points), len(a.points)+1)
	copy(next, a.points)
	return RiskArea{points: append(next, p)}, nil
}

// Len reports how many points the area holds.
func (a RiskArea) Len() int {
	return len(a.points)
}

// Points returns the ordered point sequence.
func (a RiskArea) Points() []GeoPoint {
	out := make([]GeoPoint, len(a.points))
	copy(out, a.points)
	return out
}

// Polygon returns the triangle vertices in insertion order. The polygon only
// exists once all three points are placed; callers must check ok.
func (a RiskArea) Polygon() ([]GeoPoint, bool) {
	if len(a.points) != MaxRiskAreaPoints {
		return nil, false
	}
	verts := make([]GeoPoint, MaxRiskAreaPoints)
	copy(verts, a.points)
	return verts, true
}

// ExactLocation is the optional single point pinpointing the precise incident
// site. Its lifecycle is independent of the risk area.
type ExactLocation struct {
	point *GeoPoint
}

// SetExactLocation replaces any existing exact location with the given point.
func SetExactLocation(p GeoPoint) ExactLocation {
	return ExactLocation{point: &p}
}

// Point returns the location point, if set.
func (l ExactLocation) Point() (GeoPoint, bool) {
	if l.point == nil {
		return GeoPoint{}, false
	}
	return *l.point, true
}

// IsSet reports whether a location has been pinned.
func (l ExactLocation) IsSet() bool {
	return l.point != nil
}

// Geometry is persisted as serialized JSON text, mirroring the reports table
// where points and exact_location live in text columns. Encoding and decoding
// happen here and nowhere else, so every reader sees one canonical format.

// EncodeRiskArea serializes the ordered point list. An empty area encodes as
// an empty JSON array, never null.
func EncodeRiskArea(a RiskArea) (string, error) {
	pts := a.Points()
	raw, err := json.Marshal(pts)
	if err != nil {
		return "", fmt.Errorf("encoding risk area: %w", err)
	}
	return string(raw), nil
}

// DecodeRiskArea parses serialized risk area text back into the same ordered
// point sequence. Stored rows are untrusted: bounds are re-checked on read.
func DecodeRiskArea(raw string) (RiskArea, error) {
	if raw == "" {
		return RiskArea{}, nil
	}
	var pts []GeoPoint
	if err := json.Unmarshal([]byte(raw), &pts); err != nil {
		return RiskArea{}, fmt.Errorf("%w: malformed risk area payload: %v", ErrInvalidGeometry, err)
	}
	return NewRiskArea(pts...)
}

// EncodeExactLocation serializes the optional point. An unset location
// encodes as the empty string so the storage column stays null-equivalent.
func EncodeExactLocation(l ExactLocation) (string, error) {
	p, ok := l.Point()
	if !ok {
		return "", nil
	}
	raw, err := json.Marshal(p)
	if err != nil {
		return "", fmt.Errorf("encoding exact location: %w", err)
	}
	return string(raw), nil
}

// DecodeExactLocation parses serialized exact location text.
func DecodeExactLocation(raw string) (ExactLocation, error) {
	if raw == "" || raw == "null" {
		return ExactLocation{}, nil
	}
	var p GeoPoint
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return ExactLocation{}, fmt.Errorf("%w: malformed exact location payload: %v", ErrInvalidGeometry, err)
	}
	return SetExactLocation(p), nil
}
