package services

import (
	"context"
	"fmt"

	"safe-route-service/internal/domain"
	"safe-route-service/internal/platform/obs"
	"safe-route-service/internal/ports"
	"safe-route-service/internal/safety"
)

// SOSResult reports what was sent and to how many contacts.
type SOSResult struct {
	SentCount int    `json:"sent_count"`
	Message   string `json:"message"`
}

// SendSOS dispatches an emergency alert to the given contacts. The
// message localizes the sender using the nearest known zone as a
// landmark; live reverse geocoding is deliberately not on this path, an
// emergency alert must not wait on an external API.
func SendSOS(
	ctx context.Context,
	position domain.Point,
	phoneNumbers []string,
	store ports.ZoneStore,
	dispatcher ports.AlertDispatcher,
) (_ SOSResult, err error) {
	defer obs.Time(ctx, "services.SendSOS")(&err)

	if !position.Valid() {
		return SOSResult{}, fmt.Errorf("send sos: %w: coordinates out of range", domain.ErrInvalidInput)
	}
	if len(phoneNumbers) == 0 {
		return SOSResult{}, fmt.Errorf("send sos: %w: no emergency contacts given", domain.ErrInvalidInput)
	}

	message := fmt.Sprintf("EMERGENCY! I need help. My location: %.5f, %.5f.", position.Lat, position.Lng)
	if store != nil {
		zones, err := store.ListZones(ctx)
		if err != nil {
			// A missing landmark must not block the alert.
			zones = nil
		}
		idx := safety.NewIndex(zones, nil)
		if zone, dist, ok := idx.NearestZone(position, safety.MatchRadiusMeters); ok {
			message = fmt.Sprintf("EMERGENCY! I need help. I'm near %s (about %.0fm away, safety score %d). My location: %.5f, %.5f.",
				zone.AreaName, dist, zone.SafetyScore, position.Lat, position.Lng)
		}
	}

	sent, err := dispatcher.Dispatch(ctx, phoneNumbers, message)
	if err != nil {
		return SOSResult{}, fmt.Errorf("send sos: %w", err)
	}

	return SOSResult{SentCount: sent, Message: message}, nil
}
