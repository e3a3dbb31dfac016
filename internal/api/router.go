package api

import (
	"net/http"

	"safe-route-service/internal/api/handlers"
	"safe-route-service/internal/ports"
	"safe-route-service/internal/routing"
	"safe-route-service/internal/services"
)

// NewRouter wires HTTP handlers with their dependencies and returns an
// http.Handler. This is the API composition root (handlers stay unaware
// of concrete adapters). Method-qualified patterns carry the trip id as
// a path value.
func NewRouter(
	store ports.ZoneStore,
	planner *routing.Planner,
	geocoder ports.Geocoder,
	dispatcher ports.AlertDispatcher,
	trips *services.TripManager,
) http.Handler {
	mux := http.NewServeMux()

	routesHandler := &handlers.RoutesHandler{Store: store, Planner: planner, Geocoder: geocoder}
	reportsHandler := &handlers.ReportsHandler{Store: store}
	tripsHandler := &handlers.TripsHandler{Store: store, Trips: trips}
	sosHandler := &handlers.SOSHandler{Store: store, Dispatcher: dispatcher}

	mux.HandleFunc("GET /health", handlers.Health)
	mux.HandleFunc("POST /routes", routesHandler.Plan)
	mux.HandleFunc("POST /reports", reportsHandler.Create)
	mux.HandleFunc("POST /trips", tripsHandler.Start)
	mux.HandleFunc("POST /trips/{id}/position", tripsHandler.UpdatePosition)
	mux.HandleFunc("DELETE /trips/{id}", tripsHandler.End)
	mux.HandleFunc("POST /sos", sosHandler.Send)

	return loggingMiddleware(requestIDMiddleware(mux))
}
