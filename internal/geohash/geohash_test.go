package geohash

import (
	"strings"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode_KnownValues(t *testing.T) {
	tests := []struct {
		name      string
		lat       float64
		lng       float64
		precision int
		expected  string
	}{
		{name: "jutland point", lat: 57.64911, lng: 10.40744, precision: 11, expected: "u4pruydqqvj"},
		{name: "taiyuan", lat: 37.8324, lng: 112.5584, precision: 9, expected: "ww8p1r4t8"},
		{name: "null island", lat: 0, lng: 0, precision: 9, expected: "s00000000"},
		{name: "taipei", lat: 25.0330, lng: 121.5654, precision: 6, expected: "wsqqqm"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := Encode(tt.lat, tt.lng, tt.precision)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, hash)
		})
	}
}

func TestEncode_PrefixProperty(t *testing.T) {
	// A longer hash of the same point starts with every shorter hash of it.
	lat, lng := 25.0330, 121.5654

	full, err := Encode(lat, lng, MaxPrecision)
	require.NoError(t, err)

	for precision := 1; precision <= MaxPrecision; precision++ {
		short, err := Encode(lat, lng, precision)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(full, short))
		assert.Len(t, short, precision)
	}
}

func TestEncode_DefaultPrecision(t *testing.T) {
	hash, err := Encode(25.0330, 121.5654, 0)
	require.NoError(t, err)
	assert.Len(t, hash, DefaultPrecision)

	capped, err := Encode(25.0330, 121.5654, 40)
	require.NoError(t, err)
	assert.Len(t, capped, MaxPrecision)
}

func TestEncode_InvalidCoordinates(t *testing.T) {
	_, err := Encode(91, 0, 9)
	assert.ErrorIs(t, err, ErrInvalidLatitude)

	_, err = Encode(-91, 0, 9)
	assert.ErrorIs(t, err, ErrInvalidLatitude)

	_, err = Encode(0, 181, 9)
	assert.ErrorIs(t, err, ErrInvalidLongitude)

	_, err = Encode(0, -181, 9)
	assert.ErrorIs(t, err, ErrInvalidLongitude)
}

func TestDecode_RoundTrip(t *testing.T) {
	points := []struct {
		lat float64
		lng float64
	}{
		{25.0330, 121.5654},
		{57.64911, 10.40744},
		{-33.8688, 151.2093},
		{40.7128, -74.0060},
		{0, 0},
	}

	for _, p := range points {
		hash, err := Encode(p.lat, p.lng, 9)
		require.NoError(t, err)

		lat, lng, err := Decode(hash)
		require.NoError(t, err)

		// A 9-character cell is under 5 meters on a side, so the decoded
		// center is within a tiny fraction of a degree of the input.
		assert.InDelta(t, p.lat, lat, 0.0001)
		assert.InDelta(t, p.lng, lng, 0.0001)
	}
}

func TestDecodeBound_ContainsPointAndNests(t *testing.T) {
	lat, lng := 25.0330, 121.5654

	hash, err := Encode(lat, lng, 9)
	require.NoError(t, err)

	cell, err := DecodeBound(hash)
	require.NoError(t, err)
	assert.True(t, cell.Contains(orb.Point{lng, lat}))

	// A prefix cell always contains its refinement.
	parent, err := DecodeBound(Truncate(hash, 6))
	require.NoError(t, err)
	assert.True(t, parent.Contains(cell.Min))
	assert.True(t, parent.Contains(cell.Max))
}

func TestDecode_Invalid(t *testing.T) {
	_, _, err := Decode("")
	assert.ErrorIs(t, err, ErrInvalidHash)

	// 'a' and 'i' are not in the geohash base-32 alphabet.
	_, _, err = Decode("wsqaqm")
	assert.ErrorIs(t, err, ErrInvalidHash)

	_, _, err = Decode("wsqiqm")
	assert.ErrorIs(t, err, ErrInvalidHash)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "wsqqqm", Truncate("wsqqqm15z", 6))
	assert.Equal(t, "wsqqqm15z", Truncate("wsqqqm15z", 9))
	assert.Equal(t, "wsqqqm15z", Truncate("wsqqqm15z", 12))
	assert.Equal(t, "wsq", Truncate("wsqqqm15z", 3))
	assert.Equal(t, "wsqqqm15z", Truncate("wsqqqm15z", 0))
}

func TestNeighbor_KnownValues(t *testing.T) {
	assert.Equal(t, "ezs48", Neighbor("ezs42", North))
	assert.Equal(t, "ezs40", Neighbor("ezs42", South))
	assert.Equal(t, "ezs43", Neighbor("ezs42", East))
	// West of ezs42 crosses the parent cell border.
	assert.Equal(t, "ezefr", Neighbor("ezs42", West))
}

func TestNeighbors_GridAroundCenter(t *testing.T) {
	cells := Neighbors("wsqqqm")

	require.Len(t, cells, 9)
	assert.Equal(t, "wsqqqm", cells[0])
	assert.ElementsMatch(t, []string{
		"wsqqqm", "wsqqqq", "wsqqqk", "wsqqqt", "wsqqqj",
		"wsqqqw", "wsqqqn", "wsqqqs", "wsqqqh",
	}, cells)
}

func TestDistance_KnownValue(t *testing.T) {
	// Paris to London, great-circle.
	d := Distance(48.8566, 2.3522, 51.5074, -0.1278)
	assert.InDelta(t, 343556, d, 500)
}

func TestDistance_Properties(t *testing.T) {
	// Zero distance to self.
	assert.InDelta(t, 0, Distance(25.0330, 121.5654, 25.0330, 121.5654), 0.001)

	// Symmetry.
	d1 := Distance(25.0330, 121.5654, 25.0478, 121.5319)
	d2 := Distance(25.0478, 121.5319, 25.0330, 121.5654)
	assert.InDelta(t, d1, d2, 0.001)

	// Roughly 111 km per degree of latitude.
	d := Distance(0, 0, 1, 0)
	assert.InDelta(t, 111195, d, 200)
}

func TestQueryBounds_CoversRadius(t *testing.T) {
	centerLat, centerLng := 25.0330, 121.5654
	radius := 100.0

	bounds, err := QueryBounds(centerLat, centerLng, radius)
	require.NoError(t, err)
	require.NotEmpty(t, bounds)

	// Every point within the radius must land inside at least one bound
	// when compared lexically against a full-precision hash, since that is
	// exactly how the store's range query evaluates it.
	offsets := []struct {
		dLat float64
		dLng float64
	}{
		{0, 0},
		{0.0008, 0},  // ~89 m north
		{-0.0008, 0}, // ~89 m south
		{0, 0.0009},  // ~91 m east
		{0, -0.0009}, // ~91 m west
		{0.0006, 0.0006},
		{-0.0006, -0.0006},
	}

	for _, off := range offsets {
		hash, err := Encode(centerLat+off.dLat, centerLng+off.dLng, DefaultPrecision)
		require.NoError(t, err)

		covered := false
		for _, b := range bounds {
			if hash >= b.StartHash && hash <= b.EndHash {
				covered = true

				break
			}
		}
		assert.True(t, covered, "point offset (%f, %f) not covered", off.dLat, off.dLng)
	}
}

func TestQueryBounds_BoundShape(t *testing.T) {
	bounds, err := QueryBounds(25.0330, 121.5654, 100)
	require.NoError(t, err)

	for _, b := range bounds {
		assert.Equal(t, b.StartHash+"~", b.EndHash)
	}
}

func TestQueryBounds_InvalidCenter(t *testing.T) {
	_, err := QueryBounds(95, 0, 100)
	assert.ErrorIs(t, err, ErrInvalidLatitude)
}

func TestPrecisionForRadius(t *testing.T) {
	tests := []struct {
		radius   float64
		expected int
	}{
		{50, 7},
		{100, 7},
		{150, 7},
		{200, 6},
		{1000, 5},
		{5000, 4},
		{10000000, 1},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, precisionForRadius(tt.radius), "radius %f", tt.radius)
	}
}
