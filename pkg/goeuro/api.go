package goeuro

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// DefaultEndpoint is the base URL of the position-suggest API. The city name
// is appended to it verbatim.
const DefaultEndpoint = "http://api.goeuro.com/api/v2/position/suggest/en/"

var (
	// ErrMalformedURL reports that the endpoint plus city name did not form a
	// valid request URL.
	ErrMalformedURL = errors.New("malformed request url")
	// ErrParse reports a response body that is not a JSON array of suggestion
	// objects with the expected fields.
	ErrParse = errors.New("unexpected response shape")
)

type Client struct {
	httpClient *http.Client
	endpoint   string
	userAgent  string
}

func NewClient(endpoint string) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	return &Client{
		httpClient: http.DefaultClient,
		endpoint:   endpoint,
		userAgent:  "Golang_Locations_Exporter/1.0",
	}
}

// FetchSuggestions performs one GET for the given city name and decodes the
// JSON array response. The city name is concatenated onto the endpoint as-is;
// no percent-encoding is applied, so a name that breaks URL syntax surfaces
// as ErrMalformedURL. The raw body is returned alongside the decoded elements
// so callers can archive it.
func (c *Client) FetchSuggestions(ctx context.Context, cityName string) ([]APILocation, []byte, error) {
	apiURL := c.endpoint + cityName

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %q: %v", ErrMalformedURL, apiURL, err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, nil, fmt.Errorf("unexpected status: %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, err
	}

	var suggestions []APILocation
	if err := json.Unmarshal(body, &suggestions); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	return suggestions, body, nil
}
