package geo

import (
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Coordinate is a caller-supplied latitude/longitude pair.
type Coordinate struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lon"`
}

// ValidationError is returned when the coordinate parameters are missing or unusable.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

type coordinateQuery struct {
	Lat string `validate:"required"`
	Lon string `validate:"required"`
}

// ParseCoordinate builds a Coordinate from raw lat/lon query values.
// Presence is the only requirement; ranges are not checked.
func ParseCoordinate(lat, lon string) (Coordinate, error) {
	q := coordinateQuery{
		Lat: strings.TrimSpace(lat),
		Lon: strings.TrimSpace(lon),
	}

	if err := validate.Struct(q); err != nil {
		return Coordinate{}, &ValidationError{Message: "lat and lon are required"}
	}

	latitude, err := strconv.ParseFloat(q.Lat, 64)
	if err != nil {
		return Coordinate{}, &ValidationError{Message: "lat and lon must be numeric"}
	}

	longitude, err := strconv.ParseFloat(q.Lon, 64)
	if err != nil {
		return Coordinate{}, &ValidationError{Message: "lat and lon must be numeric"}
	}

	return Coordinate{Latitude: latitude, Longitude: longitude}, nil
}

// LatString formats the latitude for use in outbound query strings.
func (c Coordinate) LatString() string {
	return strconv.FormatFloat(c.Latitude, 'f', -1, 64)
}

// LonString formats the longitude for use in outbound query strings.
func (c Coordinate) LonString() string {
	return strconv.FormatFloat(c.Longitude, 'f', -1, 64)
}
