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

type SOSHandler struct {
	Store      ports.ZoneStore
	Dispatcher ports.AlertDispatcher
}

// Send dispatches an emergency alert to the caller's contacts.
func (h *SOSHandler) Send(w http.ResponseWriter, r *http.Request) {
	var req dto.SOSRequest

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

	res, err := services.SendSOS(r.Context(), domain.Point{Lat: req.Lat, Lng: req.Lng}, req.Phones, h.Store, h.Dispatcher)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			writeError(w, r, http.StatusBadRequest, "valid coordinates and at least one contact are required")
			return
		}
		log.Printf("send sos failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.SOSResponse{SentCount: res.SentCount, Message: res.Message})
}
