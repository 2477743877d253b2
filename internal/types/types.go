// README: Shared value objects used across modules.
package types

// ID identifies a user or document. Firebase UIDs are used as-is.
type ID string

// Point is a latitude/longitude pair in decimal degrees.
type Point struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}
