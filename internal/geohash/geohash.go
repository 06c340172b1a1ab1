// Package geohash implements base-32 geohash encoding and the geometric
// helpers the proximity scanner is built on: great-circle distance and
// range-query bounds that cover a search disc.
package geohash

import (
	"strings"

	"github.com/paulmach/orb"

	"crosspath/internal/errors"
)

// DefaultPrecision is the number of characters stored for a live location fix.
const DefaultPrecision = 9

// MaxPrecision is the finest practical cell size (~4.8 m per side).
const MaxPrecision = 12

const base32 = "0123456789bcdefghjkmnpqrstuvwxyz"

// Validation errors returned at the codec boundary. Coordinates are never
// silently clamped.
var (
	ErrInvalidLatitude  = errors.New("latitude out of range [-90, 90]")
	ErrInvalidLongitude = errors.New("longitude out of range [-180, 180]")
	ErrInvalidHash      = errors.New("invalid geohash string")
)

var base32Index = map[byte]int{}

func init() {
	for i := 0; i < len(base32); i++ {
		base32Index[base32[i]] = i
	}
}

// ValidateCoordinate checks that lat/lng form a legal WGS84 coordinate.
func ValidateCoordinate(lat, lng float64) error {
	if lat < -90 || lat > 90 {
		return errors.Wrapf(ErrInvalidLatitude, "latitude %f", lat)
	}
	if lng < -180 || lng > 180 {
		return errors.Wrapf(ErrInvalidLongitude, "longitude %f", lng)
	}

	return nil
}

// Encode converts a coordinate into a geohash of the given precision by
// iterative binary subdivision, interleaving one longitude bit then one
// latitude bit and emitting a base-32 character per 5 accumulated bits.
// A precision <= 0 falls back to DefaultPrecision.
//
// Encoding is truncation based: the first n characters of a longer hash are
// exactly the n-character hash of the same point.
func Encode(lat, lng float64, precision int) (string, error) {
	if err := ValidateCoordinate(lat, lng); err != nil {
		return "", err
	}
	if precision <= 0 {
		precision = DefaultPrecision
	}
	if precision > MaxPrecision {
		precision = MaxPrecision
	}

	minLat, maxLat := -90.0, 90.0
	minLng, maxLng := -180.0, 180.0

	var hash strings.Builder
	hash.Grow(precision)

	evenBit := true
	bit := 0
	ch := 0

	for hash.Len() < precision {
		if evenBit {
			mid := (minLng + maxLng) / 2
			if lng >= mid {
				ch |= 1 << (4 - bit)
				minLng = mid
			} else {
				maxLng = mid
			}
		} else {
			mid := (minLat + maxLat) / 2
			if lat >= mid {
				ch |= 1 << (4 - bit)
				minLat = mid
			} else {
				maxLat = mid
			}
		}
		evenBit = !evenBit

		bit++
		if bit == 5 {
			hash.WriteByte(base32[ch])
			bit = 0
			ch = 0
		}
	}

	return hash.String(), nil
}

// DecodeBound returns the rectangle of the cell encoded by hash, undoing
// the binary subdivision one bit at a time.
func DecodeBound(hash string) (orb.Bound, error) {
	if hash == "" {
		return orb.Bound{}, ErrInvalidHash
	}

	minLat, maxLat := -90.0, 90.0
	minLng, maxLng := -180.0, 180.0
	evenBit := true

	for i := 0; i < len(hash); i++ {
		cd, ok := base32Index[hash[i]]
		if !ok {
			return orb.Bound{}, errors.Wrapf(ErrInvalidHash, "character %q", hash[i])
		}
		for j := 4; j >= 0; j-- {
			bit := (cd >> j) & 1
			if evenBit {
				mid := (minLng + maxLng) / 2
				if bit == 1 {
					minLng = mid
				} else {
					maxLng = mid
				}
			} else {
				mid := (minLat + maxLat) / 2
				if bit == 1 {
					minLat = mid
				} else {
					maxLat = mid
				}
			}
			evenBit = !evenBit
		}
	}

	return orb.Bound{
		Min: orb.Point{minLng, minLat},
		Max: orb.Point{maxLng, maxLat},
	}, nil
}

// Decode returns the center of the cell encoded by hash.
func Decode(hash string) (lat, lng float64, err error) {
	bound, err := DecodeBound(hash)
	if err != nil {
		return 0, 0, err
	}

	center := bound.Center()

	return center.Lat(), center.Lon(), nil
}

// Truncate reduces a hash to the given precision. Used for the
// privacy-reduced event location, which must never carry the full fix.
func Truncate(hash string, precision int) string {
	if precision <= 0 || len(hash) <= precision {
		return hash
	}

	return hash[:precision]
}

// Direction identifies one of the four cardinal neighbors of a cell.
type Direction int

const (
	North Direction = iota
	South
	East
	West
)

// Lookup tables for neighbor computation, indexed by direction and by the
// parity of the hash length (latitude and longitude bits alternate, so the
// adjacency permutation flips between odd and even lengths).
var (
	neighborTable = [4][2]string{
		North: {"p0r21436x8zb9dcf5h7kjnmqesgutwvy", "bc01fg45238967deuvhjyznpkmstqrwx"},
		South: {"14365h7k9dcfesgujnmqp0r2twvyx8zb", "238967debc01fg45kmstqrwxuvhjyznp"},
		East:  {"bc01fg45238967deuvhjyznpkmstqrwx", "p0r21436x8zb9dcf5h7kjnmqesgutwvy"},
		West:  {"238967debc01fg45kmstqrwxuvhjyznp", "14365h7k9dcfesgujnmqp0r2twvyx8zb"},
	}
	borderTable = [4][2]string{
		North: {"prxz", "bcfguvyz"},
		South: {"028b", "0145hjnp"},
		East:  {"bcfguvyz", "prxz"},
		West:  {"0145hjnp", "028b"},
	}
)

// Neighbor returns the hash of the adjacent cell in the given direction,
// recursing into the parent when the cell sits on its parent's border so
// that antimeridian wraparound comes out right.
func Neighbor(hash string, dir Direction) string {
	if hash == "" {
		return ""
	}

	last := hash[len(hash)-1]
	parent := hash[:len(hash)-1]
	parity := len(hash) % 2

	if strings.IndexByte(borderTable[dir][parity], last) >= 0 && parent != "" {
		parent = Neighbor(parent, dir)
	}

	idx := strings.IndexByte(neighborTable[dir][parity], last)
	if idx < 0 {
		return hash
	}

	return parent + string(base32[idx])
}

// Neighbors returns the center cell and its 8 surrounding cells. The result
// is deduplicated: near the poles some diagonal neighbors collapse into the
// same cell.
func Neighbors(hash string) []string {
	north := Neighbor(hash, North)
	south := Neighbor(hash, South)

	candidates := []string{
		hash,
		north,
		south,
		Neighbor(hash, East),
		Neighbor(hash, West),
		Neighbor(north, East),
		Neighbor(north, West),
		Neighbor(south, East),
		Neighbor(south, West),
	}

	seen := make(map[string]struct{}, len(candidates))
	out := make([]string, 0, len(candidates))
	for _, c := range candidates {
		if _, dup := seen[c]; dup {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}

	return out
}
