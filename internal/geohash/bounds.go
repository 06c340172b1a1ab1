package geohash

// Bound is a half-open range over the geohash lexical ordering, used
// directly as a range-query predicate against a geohash-indexed store.
// EndHash is the StartHash prefix followed by '~', which sorts after every
// base-32 character, so `geohash BETWEEN start AND end` selects exactly the
// cell's contents.
type Bound struct {
	StartHash string
	EndHash   string
}

// rangeSuffix sorts after 'z' in ASCII, closing a prefix range.
const rangeSuffix = "~"

// cellSizeMeters holds the worst-case (smallest) cell dimension per
// precision level. Odd precisions yield square cells, even precisions are
// half as tall as they are wide; the smaller side is what guarantees a 3x3
// neighbor grid covers the search disc.
var cellSizeMeters = []float64{
	1: 4992600,
	2: 624100,
	3: 156000,
	4: 19500,
	5: 4890,
	6: 610,
	7: 153,
	8: 19.1,
	9: 4.77,
}

// precisionForRadius picks the finest precision whose minimum cell
// dimension still covers the radius. Radii below the finest practical cell
// get the finest precision; absurdly large radii degrade to a single
// planet-sized cell.
func precisionForRadius(radiusMeters float64) int {
	precision := 1
	for p := 1; p < len(cellSizeMeters); p++ {
		if cellSizeMeters[p] < radiusMeters {
			break
		}
		precision = p
	}

	return precision
}

// QueryBounds computes the set of geohash ranges covering a disc of
// radiusMeters around the center. It returns at least one bound; bounds may
// overlap, so callers must deduplicate candidates by id after merging the
// per-bound query results. Geohash cells over-approximate the disc with
// rectangles, so every result set still needs the exact distance filter.
func QueryBounds(lat, lng, radiusMeters float64) ([]Bound, error) {
	if err := ValidateCoordinate(lat, lng); err != nil {
		return nil, err
	}

	precision := precisionForRadius(radiusMeters)

	center, err := Encode(lat, lng, precision)
	if err != nil {
		return nil, err
	}

	cells := Neighbors(center)
	bounds := make([]Bound, 0, len(cells))
	for _, cell := range cells {
		bounds = append(bounds, Bound{
			StartHash: cell,
			EndHash:   cell + rangeSuffix,
		})
	}

	return bounds, nil
}
