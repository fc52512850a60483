package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func f(v float64) *float64 { return &v }

func TestNewGeoPointValid(t *testing.T) {
	cases := []struct {
		name     string
		lat, lng float64
	}{
		{"piura", -5.19449, -80.63282},
		{"equator meridian", 0, 0},
		{"lat bounds", -90, 180},
		{"lng bounds", 90, -180},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := NewGeoPoint(f(tc.lat), f(tc.lng))
			require.NoError(t, err)
			assert.Equal(t, tc.lat, p.Lat)
			assert.Equal(t, tc.lng, p.Lng)
		})
	}
}

func TestNewGeoPointInvalid(t *testing.T) {
	cases := []struct {
		name     string
		lat, lng *float64
	}{
		{"missing lat", nil, f(-80.6)},
		{"missing lng", f(-5.2), nil},
		{"missing both", nil, nil},
		{"lat too low", f(-90.0001), f(0)},
		{"lat too high", f(90.1), f(0)},
		{"lng too low", f(0), f(-180.5)},
		{"lng too high", f(0), f(181)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewGeoPoint(tc.lat, tc.lng)
			assert.ErrorIs(t, err, ErrInvalidCoordinate)
		})
	}
}

func TestRiskAreaAddPoint(t *testing.T) {
	var area RiskArea
	pts := []GeoPoint{
		{Lat: -5.19, Lng: -80.63},
		{Lat: -5.20, Lng: -80.64},
		{Lat: -5.21, Lng: -80.65},
	}

	for i, p := range pts {
		next, err := area.AddPoint(p)
		require.NoError(t, err)
		assert.Equal(t, i, area.Len(), "receiver must stay unchanged")
		area = next
	}

	require.Equal(t, 3, area.Len())
	assert.Equal(t, pts, area.Points())

	_, err := area.AddPoint(GeoPoint{Lat: 1, Lng: 1})
	assert.ErrorIs(t, err, ErrAreaFull)
	assert.Equal(t, pts, area.Points(), "failed add must not mutate the area")
}

func TestRiskAreaPolygon(t *testing.T) {
	pts := []GeoPoint{
		{Lat: -5.19, Lng: -80.63},
		{Lat: -5.20, Lng: -80.64},
		{Lat: -5.21, Lng: -80.65},
	}

	var area RiskArea
	for _, p := range pts[:2] {
		var err error
		area, err = area.AddPoint(p)
		require.NoError(t, err)
	}

	_, ok := area.Polygon()
	assert.False(t, ok, "no polygon below three points")

	area, err := area.AddPoint(pts[2])
	require.NoError(t, err)

	verts, ok := area.Polygon()
	require.True(t, ok)
	assert.Equal(t, pts, verts, "vertices follow insertion order")
}

func TestNewRiskAreaTooManyPoints(t *testing.T) {
	_, err := NewRiskArea(
		GeoPoint{}, GeoPoint{Lat: 1}, GeoPoint{Lat: 2}, GeoPoint{Lat: 3},
	)
	assert.ErrorIs(t, err, ErrInvalidGeometry)
}

func TestRiskAreaRoundTrip(t *testing.T) {
	pts := []GeoPoint{
		{Lat: -5.194492337, Lng: -80.632821755},
		{Lat: -5.2, Lng: -80.64},
		{Lat: -5.21000000001, Lng: -80.65},
	}

	for n := 0; n <= 3; n++ {
		area, err := NewRiskArea(pts[:n]...)
		require.NoError(t, err)

		raw, err := EncodeRiskArea(area)
		require.NoError(t, err)

		decoded, err := DecodeRiskArea(raw)
		require.NoError(t, err)
		assert.Equal(t, area.Points(), decoded.Points(), "round-trip with %d points", n)
	}
}

func TestDecodeRiskAreaRejectsOversizedPayload(t *testing.T) {
	_, err := DecodeRiskArea(`[{"lat":1,"lng":1},{"lat":2,"lng":2},{"lat":3,"lng":3},{"lat":4,"lng":4}]`)
	assert.ErrorIs(t, err, ErrInvalidGeometry)

	_, err = DecodeRiskArea(`not json`)
	assert.ErrorIs(t, err, ErrInvalidGeometry)
}

func TestExactLocationRoundTrip(t *testing.T) {
	var unset ExactLocation
	raw, err := EncodeExactLocation(unset)
	require.NoError(t, err)
	assert.Equal(t, "", raw)

	decoded, err := DecodeExactLocation(raw)
	require.NoError(t, err)
	assert.False(t, decoded.IsSet())

	loc := SetExactLocation(GeoPoint{Lat: -5.19, Lng: -80.63})
	raw, err = EncodeExactLocation(loc)
	require.NoError(t, err)

	decoded, err = DecodeExactLocation(raw)
	require.NoError(t, err)
	p, ok := decoded.Point()
	require.True(t, ok)
	assert.Equal(t, GeoPoint{Lat: -5.19, Lng: -80.63}, p)
}

func TestSetExactLocationReplaces(t *testing.T) {
	loc := SetExactLocation(GeoPoint{Lat: 1, Lng: 2})
	loc = SetExactLocation(GeoPoint{Lat: 3, Lng: 4})

	p, ok := loc.Point()
	require.True(t, ok)
	assert.Equal(t, GeoPoint{Lat: 3, Lng: 4}, p)
}
