package goeuro

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"locations/internal/models"
)

func newTestService(serverURL string) *LocationService {
	return NewLocationService(NewClient(serverURL + "/api/v2/position/suggest/en/"))
}

func TestLocationService_FetchLocations_TableDriven(t *testing.T) {
	// Fake position-suggest API keyed by the city name at the end of the path.
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v2/position/suggest/en/", func(w http.ResponseWriter, r *http.Request) {
		city := r.URL.Path[strings.LastIndex(r.URL.Path, "/")+1:]
		w.Header().Set("Content-Type", "application/json")
		switch city {
		case "Berlin":
			fmt.Fprint(w, `[
				{"_id": 376217, "name": "Berlin", "type": "location", "extra": "ignored",
				 "geo_position": {"latitude": 52.52437, "longitude": 13.41053}},
				{"_id": 448103, "name": "Berlin Tegel", "type": "airport",
				 "geo_position": {"latitude": 52.5548, "longitude": 13.28903}}
			]`)
		case "Nowhere":
			fmt.Fprint(w, `[]`)
		case "NoName":
			fmt.Fprint(w, `[{"_id": 1, "type": "location", "geo_position": {"latitude": 1, "longitude": 2}}]`)
		case "NoLatitude":
			fmt.Fprint(w, `[{"_id": 1, "name": "X", "type": "location", "geo_position": {"longitude": 2}}]`)
		case "NoGeo":
			fmt.Fprint(w, `[{"_id": 1, "name": "X", "type": "location"}]`)
		case "NotJSON":
			fmt.Fprint(w, `<html>maintenance</html>`)
		default:
			t.Errorf("unexpected city in request path: %s", city)
		}
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	svc := newTestService(server.URL)

	tests := []struct {
		name    string
		city    string
		want    []models.Location
		wantErr error
	}{
		{
			name: "maps all elements preserving order",
			city: "Berlin",
			want: []models.Location{
				{ID: 376217, Name: "Berlin", Type: "location", Latitude: 52.52437, Longitude: 13.41053},
				{ID: 448103, Name: "Berlin Tegel", Type: "airport", Latitude: 52.5548, Longitude: 13.28903},
			},
		},
		{
			name: "empty array yields empty slice, not an error",
			city: "Nowhere",
			want: []models.Location{},
		},
		{name: "missing name is a parse failure", city: "NoName", wantErr: ErrParse},
		{name: "missing latitude is a parse failure", city: "NoLatitude", wantErr: ErrParse},
		{name: "missing geo_position is a parse failure", city: "NoGeo", wantErr: ErrParse},
		{name: "non-JSON body is a parse failure", city: "NotJSON", wantErr: ErrParse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, raw, err := svc.FetchLocations(context.Background(), tt.city)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("FetchLocations(%q) error = %v, want %v", tt.city, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("FetchLocations(%q) returned error: %v", tt.city, err)
			}
			if len(raw) == 0 {
				t.Errorf("FetchLocations(%q) returned no raw body", tt.city)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("len mismatch: got %d want %d (%v)", len(got), len(tt.want), got)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("idx %d: got %+v want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestLocationService_FetchLocations_MalformedURL(t *testing.T) {
	// The city name is embedded unencoded, so a name that breaks URL syntax
	// must surface as ErrMalformedURL before any request is sent.
	svc := newTestService("http://127.0.0.1:0")
	_, _, err := svc.FetchLocations(context.Background(), "Ber%lin")
	if !errors.Is(err, ErrMalformedURL) {
		t.Fatalf("expected ErrMalformedURL, got %v", err)
	}
}

func TestLocationService_FetchLocations_BadStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	svc := newTestService(server.URL)
	_, _, err := svc.FetchLocations(context.Background(), "Berlin")
	if err == nil {
		t.Fatal("expected an error for a non-200 response")
	}
	if errors.Is(err, ErrParse) || errors.Is(err, ErrMalformedURL) {
		t.Fatalf("non-200 response should be a plain I/O failure, got %v", err)
	}
}

func TestLocationService_FetchLocations_ConnectionRefused(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // immediately, so the port refuses connections

	svc := newTestService(server.URL)
	_, _, err := svc.FetchLocations(context.Background(), "Berlin")
	if err == nil {
		t.Fatal("expected an error when the endpoint is unreachable")
	}
}
