package goeuro

// APILocation is one element of the JSON array returned by the
// position-suggest endpoint. Fields are pointers so that an element missing a
// required field is distinguishable from a zero value after decoding.
type APILocation struct {
	ID          *int         `json:"_id"`
	Name        *string      `json:"name"`
	Type        *string      `json:"type"`
	GeoPosition *GeoPosition `json:"geo_position"`
}

// GeoPosition is the nested coordinate object on each suggestion.
type GeoPosition struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}
