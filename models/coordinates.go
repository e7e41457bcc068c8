package models

import "strconv"

// Coordinates is a latitude/longitude pair identifying a query location.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// NewCoordinates creates a coordinate pair
func NewCoordinates(latitude, longitude float64) Coordinates {
	return Coordinates{Latitude: latitude, Longitude: longitude}
}

// LatitudeParam formats the latitude for a request query (6 decimals)
func (c Coordinates) LatitudeParam() string {
	return strconv.FormatFloat(c.Latitude, 'f', 6, 64)
}

// LongitudeParam formats the longitude for a request query (6 decimals)
func (c Coordinates) LongitudeParam() string {
	return strconv.FormatFloat(c.Longitude, 'f', 6, 64)
}
