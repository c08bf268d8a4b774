package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cropool/backend/internal/pkg/models"
)

func TestDistanceMeters_ZeroForSamePoint(t *testing.T) {
	p := models.Coordinate{Latitude: 45.815, Longitude: 15.9819}
	assert.Equal(t, 0.0, DistanceMeters(p, p))
}

func TestDistanceMeters_KnownPairs(t *testing.T) {
	tests := []struct {
		name    string
		a, b    models.Coordinate
		wantM   float64
		within  float64
	}{
		{
			name:   "zagreb to split",
			a:      models.Coordinate{Latitude: 45.8150, Longitude: 15.9819},
			b:      models.Coordinate{Latitude: 43.5081, Longitude: 16.4402},
			wantM:  259000,
			within: 3000,
		},
		{
			name:   "one degree of latitude at equator",
			a:      models.Coordinate{Latitude: 0, Longitude: 0},
			b:      models.Coordinate{Latitude: 1, Longitude: 0},
			wantM:  111195,
			within: 100,
		},
		{
			name:   "short hop across town",
			a:      models.Coordinate{Latitude: 45.8000, Longitude: 15.9700},
			b:      models.Coordinate{Latitude: 45.8100, Longitude: 15.9900},
			wantM:  1910,
			within: 50,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DistanceMeters(tt.a, tt.b)
			assert.InDelta(t, tt.wantM, got, tt.within)
		})
	}
}

func TestDistanceMeters_Symmetric(t *testing.T) {
	a := models.Coordinate{Latitude: 45.8150, Longitude: 15.9819}
	b := models.Coordinate{Latitude: 44.1194, Longitude: 15.2314}
	assert.InDelta(t, DistanceMeters(a, b), DistanceMeters(b, a), 1e-9)
}

func TestDegToRad(t *testing.T) {
	assert.InDelta(t, 3.14159265, DegToRad(180), 1e-6)
	assert.Equal(t, 0.0, DegToRad(0))
}
