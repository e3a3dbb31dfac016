package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	"safe-route-service/internal/api/dto"
	"safe-route-service/internal/domain"
	"safe-route-service/internal/ports"
	"safe-route-service/internal/routing"
	"safe-route-service/internal/services"
)

type RoutesHandler struct {
	Store    ports.ZoneStore
	Planner  *routing.Planner
	Geocoder ports.Geocoder
}

// Plan computes the route options for one source/destination request.
func (h *RoutesHandler) Plan(w http.ResponseWriter, r *http.Request) {
	var req dto.RoutesRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	svcReq := services.PlanTripRequest{
		SourceName:      req.SourceName,
		DestinationName: req.DestinationName,
	}
	if req.Source != nil {
		svcReq.Source = domain.Point{Lat: req.Source.Lat, Lng: req.Source.Lng}
	}
	if req.Destination != nil {
		svcReq.Destination = domain.Point{Lat: req.Destination.Lat, Lng: req.Destination.Lng}
	}

	opts, err := services.PlanTrip(r.Context(), svcReq, h.Store, h.Planner, h.Geocoder)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			writeError(w, r, http.StatusBadRequest, "invalid source or destination")
		case errors.Is(err, domain.ErrNoRouteFound):
			writeError(w, r, http.StatusNotFound, "no route found")
		default:
			log.Printf("plan routes failed: %v", err)
			writeError(w, r, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	res := dto.ListRoutesResponse{Routes: make([]dto.RouteResponse, 0, len(opts))}
	for _, opt := range opts {
		path := make([]dto.PointDTO, 0, len(opt.Route.Path))
		for _, p := range opt.Route.Path {
			path = append(path, dto.PointDTO{Lat: p.Lat, Lng: p.Lng})
		}

		zones := make([]dto.CrimeZoneResponse, 0, len(opt.CrimeZones))
		for _, z := range opt.CrimeZones {
			zones = append(zones, dto.CrimeZoneResponse{
				AreaName:       z.AreaName,
				Street:         z.Street,
				CrimeType:      string(z.CrimeType),
				CrimeCount:     z.CrimeCount,
				Severity:       string(z.Severity),
				SafetyScore:    z.SafetyScore,
				DistanceMeters: z.DistanceMeters,
			})
		}

		res.Routes = append(res.Routes, dto.RouteResponse{
			ID:              opt.Route.ID,
			Class:           string(opt.Route.Class),
			Path:            path,
			DistanceMeters:  opt.Route.DistanceMeters,
			DurationSeconds: opt.Route.DurationSeconds,
			SafetyScore:     opt.Route.SafetyScore,
			RiskLevel:       string(opt.Route.RiskLevel),
			DangerousAreas:  opt.DangerousAreas,
			SafeAreas:       opt.SafeAreas,
			CrimeZones:      zones,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
