package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strings"

	"safe-route-service/internal/api/dto"
	"safe-route-service/internal/domain"
	"safe-route-service/internal/ports"
)

type ReportsHandler struct {
	Store ports.ZoneStore
}

// Create records one incident report against a zone.
func (h *ReportsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.ReportRequest

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

	if strings.TrimSpace(req.Area) == "" {
		writeError(w, r, http.StatusBadRequest, "area is required")
		return
	}
	severity := domain.Severity(strings.ToLower(strings.TrimSpace(req.Severity)))
	if !severity.Valid() {
		writeError(w, r, http.StatusBadRequest, "severity must be low, medium or high")
		return
	}

	if err := h.Store.RecordReport(r.Context(), req.Area, req.Street, severity); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			writeError(w, r, http.StatusBadRequest, "invalid report")
			return
		}
		log.Printf("record report failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusCreated, dto.ReportResponse{Status: "recorded"})
}
