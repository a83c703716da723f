package geoutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistanceKm(t *testing.T) {
	tests := []struct {
		name                   string
		lat1, lon1, lat2, lon2 float64
		want                   float64
		tolerance              float64
	}{
		{"same point", 56.95, 24.10, 56.95, 24.10, 0, 0.001},
		{"riga to jurmala", 56.9496, 24.1052, 56.9680, 23.7704, 20.5, 1.0},
		{"riga to daugavpils", 56.9496, 24.1052, 55.8714, 26.5161, 192.0, 3.0},
		{"across the equator", 1.0, 0.0, -1.0, 0.0, 222.4, 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DistanceKm(tt.lat1, tt.lon1, tt.lat2, tt.lon2)
			assert.InDelta(t, tt.want, got, tt.tolerance)
		})
	}
}

func TestWithinKm(t *testing.T) {
	// ~20.5 km apart.
	assert.True(t, WithinKm(56.9496, 24.1052, 56.9680, 23.7704, 25))
	assert.False(t, WithinKm(56.9496, 24.1052, 56.9680, 23.7704, 10))
}
