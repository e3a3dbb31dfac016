package directions

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"

	"safe-route-service/internal/domain"
	"safe-route-service/internal/platform/obs"
	"safe-route-service/internal/ports"
)

type geocodeResponse struct {
	Features []struct {
		Geometry struct {
			Coordinates []float64 `json:"coordinates"`
		} `json:"geometry"`
		Properties struct {
			Label string `json:"label"`
		} `json:"properties"`
	} `json:"features"`
}

// Search resolves a free-text query to candidate locations. The top
// hit is cached so repeated lookups of common place names skip the
// provider entirely; cache failures degrade to a live lookup.
func (o *ORSClient) Search(ctx context.Context, query string) (_ []ports.GeocodeResult, err error) {
	defer obs.Time(ctx, "ors.Search")(&err)

	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("geocode search: %w: query is empty", domain.ErrInvalidInput)
	}

	key := strings.ToLower(query)
	if o.geocodeCache != nil {
		cached, err := o.geocodeCache.GetMany(ctx, []string{key})
		if err != nil {
			log.Printf("geocode cache read failed key=%q: %v", key, err)
		} else if p, ok := cached[key]; ok {
			return []ports.GeocodeResult{{DisplayName: query, Location: p}}, nil
		}
	}

	endpoint := fmt.Sprintf("%s/geocode/search?text=%s&size=5", o.baseURL, url.QueryEscape(query))

	decoded, err := o.geocodeGet(ctx, endpoint)
	if err != nil {
		return nil, fmt.Errorf("geocode search %q: %w", query, err)
	}

	results := make([]ports.GeocodeResult, 0, len(decoded.Features))
	for _, f := range decoded.Features {
		if len(f.Geometry.Coordinates) != 2 {
			continue
		}
		p := domain.Point{Lat: f.Geometry.Coordinates[1], Lng: f.Geometry.Coordinates[0]}
		if !p.Valid() {
			continue
		}
		results = append(results, ports.GeocodeResult{
			DisplayName: f.Properties.Label,
			Location:    p,
		})
	}
	if len(results) == 0 {
		return nil, fmt.Errorf("geocode search %q: no matches", query)
	}

	if o.geocodeCache != nil {
		if err := o.geocodeCache.PutMany(ctx, map[string]domain.Point{key: results[0].Location}); err != nil {
			log.Printf("geocode cache write failed key=%q: %v", key, err)
		}
	}

	return results, nil
}

// Reverse resolves coordinates to a display name.
func (o *ORSClient) Reverse(ctx context.Context, p domain.Point) (_ string, err error) {
	defer obs.Time(ctx, "ors.Reverse")(&err)

	if !p.Valid() {
		return "", fmt.Errorf("reverse geocode: %w: coordinates out of range", domain.ErrInvalidInput)
	}

	endpoint := fmt.Sprintf("%s/geocode/reverse?point.lat=%f&point.lon=%f&size=1", o.baseURL, p.Lat, p.Lng)

	decoded, err := o.geocodeGet(ctx, endpoint)
	if err != nil {
		return "", fmt.Errorf("reverse geocode: %w", err)
	}

	for _, f := range decoded.Features {
		if f.Properties.Label != "" {
			return f.Properties.Label, nil
		}
	}
	return "", errors.New("reverse geocode: no matches")
}

func (o *ORSClient) geocodeGet(ctx context.Context, endpoint string) (*geocodeResponse, error) {
	resp, err := o.doWithRetry(ctx, func() (*http.Request, error) {
		return o.newRequest(ctx, http.MethodGet, endpoint, nil)
	})
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var decoded geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("decode geocode response: %w", err)
	}
	return &decoded, nil
}
