package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateDistance(t *testing.T) {
	tests := []struct {
		name      string
		point1    GeoPoint
		point2    GeoPoint
		expected  float64
		tolerance float64
	}{
		{
			name:      "same point",
			point1:    GeoPoint{Latitude: 12.9716, Longitude: 77.5946},
			point2:    GeoPoint{Latitude: 12.9716, Longitude: 77.5946},
			expected:  0,
			tolerance: 0.001,
		},
		{
			name:      "Bengaluru to Mysuru",
			point1:    GeoPoint{Latitude: 12.9716, Longitude: 77.5946},
			point2:    GeoPoint{Latitude: 12.2958, Longitude: 76.6394},
			expected:  128,
			tolerance: 5,
		},
		{
			name:      "short hop across the city",
			point1:    GeoPoint{Latitude: 12.9716, Longitude: 77.5946},
			point2:    GeoPoint{Latitude: 12.9816, Longitude: 77.6046},
			expected:  1.5,
			tolerance: 0.2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateDistance(tt.point1, tt.point2)
			assert.InDelta(t, tt.expected, got, tt.tolerance)
		})
	}
}

func TestCalculateDistance_Symmetric(t *testing.T) {
	a := GeoPoint{Latitude: 19.0760, Longitude: 72.8777}
	b := GeoPoint{Latitude: 28.7041, Longitude: 77.1025}

	assert.InDelta(t, CalculateDistance(a, b), CalculateDistance(b, a), 1e-9)
}

func TestGeoPointFrom(t *testing.T) {
	lat, lng := 12.9716, 77.5946

	point, ok := GeoPointFrom(&lat, &lng)
	assert.True(t, ok)
	assert.Equal(t, GeoPoint{Latitude: lat, Longitude: lng}, point)

	_, ok = GeoPointFrom(&lat, nil)
	assert.False(t, ok)
}

func TestEncodeArea(t *testing.T) {
	area := EncodeArea(GeoPoint{Latitude: 12.9716, Longitude: 77.5946})

	assert.Len(t, area, AreaPrecision)
	assert.Equal(t, area, EncodeArea(GeoPoint{Latitude: 12.9717, Longitude: 77.5947}))
}
