// Package entity contains the core business objects of the project.
package entity

// Coordinate is an immutable WGS84 latitude/longitude pair.
type Coordinate struct {
	Latitude  float64 `json:"latitude"`  // Latitude in degrees, [-90, 90].
	Longitude float64 `json:"longitude"` // Longitude in degrees, [-180, 180].
}
