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
	"safe-route-service/internal/services"
)

type TripsHandler struct {
	Store ports.ZoneStore
	Trips *services.TripManager
}

// Start begins live monitoring of a chosen route.
func (h *TripsHandler) Start(w http.ResponseWriter, r *http.Request) {
	var req dto.StartTripRequest

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

	route := make([]domain.Point, 0, len(req.Path))
	for _, p := range req.Path {
		route = append(route, domain.Point{Lat: p.Lat, Lng: p.Lng})
	}

	start := domain.Point{}
	if req.Start != nil {
		start = domain.Point{Lat: req.Start.Lat, Lng: req.Start.Lng}
	} else if len(route) > 0 {
		start = route[0]
	}

	id, err := h.Trips.StartTrip(r.Context(), h.Store, route, start)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			writeError(w, r, http.StatusBadRequest, "route path and start position are required")
			return
		}
		log.Printf("start trip failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusCreated, dto.StartTripResponse{TripID: id})
}

// UpdatePosition classifies one live position against the trip's route.
func (h *TripsHandler) UpdatePosition(w http.ResponseWriter, r *http.Request) {
	var req dto.PositionRequest

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

	res, err := h.Trips.UpdatePosition(r.Context(), r.PathValue("id"), domain.Point{Lat: req.Lat, Lng: req.Lng})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrTripNotFound):
			writeError(w, r, http.StatusNotFound, "trip not found")
		case errors.Is(err, domain.ErrInvalidInput):
			writeError(w, r, http.StatusBadRequest, "invalid coordinates")
		default:
			log.Printf("update position failed: %v", err)
			writeError(w, r, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	writeJSON(w, r, http.StatusOK, dto.DeviationResponse{
		IsDeviated:     res.IsDeviated,
		DistanceMeters: res.DistanceMeters,
		Severity:       string(res.Severity),
		Message:        res.Message,
	})
}

// End stops monitoring a trip.
func (h *TripsHandler) End(w http.ResponseWriter, r *http.Request) {
	if err := h.Trips.EndTrip(r.Context(), r.PathValue("id")); err != nil {
		if errors.Is(err, services.ErrTripNotFound) {
			writeError(w, r, http.StatusNotFound, "trip not found")
			return
		}
		log.Printf("end trip failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, map[string]string{"status": "ended"})
}
