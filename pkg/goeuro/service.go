package goeuro

import (
	"context"
	"fmt"

	"locations/internal/models"
)

// LocationService flattens API suggestions into Location records.
type LocationService struct {
	client *Client
}

func NewLocationService(client *Client) *LocationService {
	return &LocationService{client: client}
}

// FetchLocations fetches suggestions for cityName and maps each element to a
// Location, preserving source order. An empty response array yields an empty
// slice and no error. Any element missing one of the required fields yields
// ErrParse, so schema drift in the API surfaces instead of producing zeroed
// records.
func (s *LocationService) FetchLocations(ctx context.Context, cityName string) ([]models.Location, []byte, error) {
	suggestions, raw, err := s.client.FetchSuggestions(ctx, cityName)
	if err != nil {
		return nil, nil, err
	}

	locations := make([]models.Location, 0, len(suggestions))
	for i, sg := range suggestions {
		loc, err := flatten(sg)
		if err != nil {
			return nil, nil, fmt.Errorf("element %d: %w", i, err)
		}
		locations = append(locations, loc)
	}
	return locations, raw, nil
}

func flatten(sg APILocation) (models.Location, error) {
	switch {
	case sg.ID == nil:
		return models.Location{}, fmt.Errorf("%w: missing _id", ErrParse)
	case sg.Name == nil:
		return models.Location{}, fmt.Errorf("%w: missing name", ErrParse)
	case sg.Type == nil:
		return models.Location{}, fmt.Errorf("%w: missing type", ErrParse)
	case sg.GeoPosition == nil:
		return models.Location{}, fmt.Errorf("%w: missing geo_position", ErrParse)
	case sg.GeoPosition.Latitude == nil:
		return models.Location{}, fmt.Errorf("%w: missing geo_position.latitude", ErrParse)
	case sg.GeoPosition.Longitude == nil:
		return models.Location{}, fmt.Errorf("%w: missing geo_position.longitude", ErrParse)
	}
	return models.Location{
		ID:        *sg.ID,
		Name:      *sg.Name,
		Type:      *sg.Type,
		Latitude:  *sg.GeoPosition.Latitude,
		Longitude: *sg.GeoPosition.Longitude,
	}, nil
}
