package models

import (
	"fmt"
	"strconv"
)

// CSVHeader is the fixed column order used when locations are serialized.
var CSVHeader = []string{"id", "name", "type", "latitude", "longitude"}

// Location is one flattened entry from the position-suggest API. All fields
// are set at construction from the parsed response and never mutated.
type Location struct {
	ID        int
	Name      string
	Type      string
	Latitude  float64
	Longitude float64
}

// Record returns the location as one CSV row in CSVHeader order. Floats use
// the shortest representation that round-trips through a float64.
func (l Location) Record() []string {
	return []string{
		strconv.Itoa(l.ID),
		l.Name,
		l.Type,
		strconv.FormatFloat(l.Latitude, 'g', -1, 64),
		strconv.FormatFloat(l.Longitude, 'g', -1, 64),
	}
}

func (l Location) String() string {
	return fmt.Sprintf("Location: {\n_id: %d\nname: %s\ntype: %s\nlatitude: %g\nlongitude: %g\n}",
		l.ID, l.Name, l.Type, l.Latitude, l.Longitude)
}
