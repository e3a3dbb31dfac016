package directions

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"time"

	"github.com/twpayne/go-polyline"

	"safe-route-service/internal/domain"
	"safe-route-service/internal/platform/obs"
	"safe-route-service/internal/ports"
)

// ORSClient implements the RouteProvider and Geocoder ports using
// OpenRouteService.
//
// It coordinates:
//   - Directions requests with optional alternative routes
//   - Encoded-polyline geometry decoding
//   - Geocode/reverse-geocode lookups with persistent caching
//   - External API calls with retry/backoff
//
// The client is safe for concurrent use.
type ORSClient struct {
	session      *http.Client
	apiKey       string
	baseURL      string
	profile      string
	geocodeCache ports.GeocodeCache
}

func NewORSClient(apiKey string, geocodeCache ports.GeocodeCache) (*ORSClient, error) {
	if apiKey == "" {
		return nil, errors.New("ORS api key is empty")
	}

	return &ORSClient{
		session:      &http.Client{Timeout: 10 * time.Second},
		apiKey:       apiKey,
		baseURL:      "https://api.openrouteservice.org",
		profile:      "driving-car",
		geocodeCache: geocodeCache,
	}, nil
}

type directionsRequest struct {
	Coordinates       [][]float64        `json:"coordinates"`
	AlternativeRoutes *alternativeRoutes `json:"alternative_routes,omitempty"`
}

type alternativeRoutes struct {
	TargetCount  int     `json:"target_count"`
	WeightFactor float64 `json:"weight_factor"`
	ShareFactor  float64 `json:"share_factor"`
}

type directionsResponse struct {
	Routes []struct {
		Summary struct {
			Distance float64 `json:"distance"`
			Duration float64 `json:"duration"`
		} `json:"summary"`
		Geometry string `json:"geometry"`
	} `json:"routes"`
}

// Routes computes routes through the given waypoints in order. When
// alternatives is requested the provider may return extra candidates
// after the primary route; callers must tolerate zero extras.
func (o *ORSClient) Routes(ctx context.Context, waypoints []domain.Point, alternatives bool) (_ []ports.RouteResult, err error) {
	defer obs.Time(ctx, "ors.Routes")(&err)

	if len(waypoints) < 2 {
		return nil, errors.New("get ORS routes: at least two waypoints are required")
	}
	for _, wp := range waypoints {
		if !wp.Valid() {
			return nil, errors.New("get ORS routes: waypoint coordinates out of range")
		}
	}

	endpoint := fmt.Sprintf("%s/v2/directions/%s", o.baseURL, o.profile)

	coords := make([][]float64, 0, len(waypoints))
	for _, wp := range waypoints {
		coords = append(coords, wp.CoordsToList())
	}

	bodyObj := directionsRequest{Coordinates: coords}
	if alternatives && len(waypoints) == 2 {
		// ORS rejects alternative_routes for multi-stop requests.
		bodyObj.AlternativeRoutes = &alternativeRoutes{
			TargetCount:  3,
			WeightFactor: 1.6,
			ShareFactor:  0.6,
		}
	}

	payload, err := json.Marshal(bodyObj)
	if err != nil {
		return nil, fmt.Errorf("marshal directions request: %w", err)
	}

	resp, err := o.doWithRetry(ctx, func() (*http.Request, error) {
		return o.newRequest(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	})
	if err != nil {
		return nil, fmt.Errorf("directions request failed: %w", err)
	}
	defer resp.Body.Close()

	var decoded directionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("decode directions response: %w", err)
	}

	if len(decoded.Routes) == 0 {
		return nil, errors.New("directions response contained no routes")
	}

	out := make([]ports.RouteResult, 0, len(decoded.Routes))
	for i, r := range decoded.Routes {
		path, err := decodeGeometry(r.Geometry)
		if err != nil {
			return nil, fmt.Errorf("decode route %d geometry: %w", i, err)
		}
		out = append(out, ports.RouteResult{
			DistanceMeters:  int(math.Round(r.Summary.Distance)),
			DurationSeconds: int(math.Round(r.Summary.Duration)),
			Path:            path,
		})
	}

	return out, nil
}

// decodeGeometry converts an encoded polyline into a point sequence.
func decodeGeometry(encoded string) ([]domain.Point, error) {
	if encoded == "" {
		return nil, errors.New("encoded polyline is empty")
	}

	coords, _, err := polyline.DecodeCoords([]byte(encoded))
	if err != nil {
		return nil, fmt.Errorf("decode polyline: %w", err)
	}

	points := make([]domain.Point, len(coords))
	for i, c := range coords {
		points[i] = domain.Point{Lat: c[0], Lng: c[1]}
		if !points[i].Valid() {
			return nil, errors.New("decoded polyline contains invalid coordinates")
		}
	}
	return points, nil
}
