package ics

import (
	"strconv"
)

// GeoPosition is the value of the GEO property (RFC 5545 section 3.8.1.6).
type GeoPosition struct {
	Latitude  float64
	Longitude float64
}

func NewGeoPosition(latitude, longitude float64) (GeoPosition, error) {
	if latitude < -90 || latitude > 90 {
		return GeoPosition{}, invalid("geo", "latitude must be between -90 and 90, got %v", latitude)
	}
	if longitude < -180 || longitude > 180 {
		return GeoPosition{}, invalid("geo", "longitude must be between -180 and 180, got %v", longitude)
	}
	return GeoPosition{Latitude: latitude, Longitude: longitude}, nil
}

func (g GeoPosition) String() string {
	return strconv.FormatFloat(g.Latitude, 'f', -1, 64) + ";" + strconv.FormatFloat(g.Longitude, 'f', -1, 64)
}
