package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"safe-route-service/internal/domain"
)

type stubDispatcher struct {
	phones  []string
	message string
	sendErr error
}

func (d *stubDispatcher) Dispatch(ctx context.Context, phoneNumbers []string, message string) (int, error) {
	d.phones = phoneNumbers
	d.message = message
	if d.sendErr != nil {
		return 0, d.sendErr
	}
	return len(phoneNumbers), nil
}

func TestSendSOSUsesNearestLandmark(t *testing.T) {
	// Kancharapalem's table coordinates, slightly offset.
	position := domain.Point{Lat: 17.7285, Lng: 83.2940}
	store := &stubZoneStore{zones: []domain.SafetyZone{
		{AreaName: "Kancharapalem", CrimeCount: 7, Severity: domain.SeverityHigh, SafetyScore: 30},
	}}
	dispatcher := &stubDispatcher{}

	res, err := SendSOS(context.Background(), position, []string{"+919876543210", "+919123456789"}, store, dispatcher)
	if err != nil {
		t.Fatalf("SendSOS failed: %v", err)
	}
	if res.SentCount != 2 {
		t.Errorf("SentCount = %d, want 2", res.SentCount)
	}
	if !strings.Contains(res.Message, "Kancharapalem") {
		t.Errorf("message %q should name the nearest landmark", res.Message)
	}
	if dispatcher.message != res.Message {
		t.Error("dispatched message differs from the reported one")
	}
}

func TestSendSOSWithoutLandmarkStillSendsCoordinates(t *testing.T) {
	position := domain.Point{Lat: 17.7000, Lng: 83.3000}
	dispatcher := &stubDispatcher{}

	res, err := SendSOS(context.Background(), position, []string{"+919876543210"}, &stubZoneStore{}, dispatcher)
	if err != nil {
		t.Fatalf("SendSOS failed: %v", err)
	}
	if !strings.Contains(res.Message, "17.70000") {
		t.Errorf("message %q should carry the coordinates", res.Message)
	}
}

func TestSendSOSValidation(t *testing.T) {
	dispatcher := &stubDispatcher{}

	_, err := SendSOS(context.Background(), domain.Point{Lat: 120, Lng: 83.3}, []string{"+919876543210"}, nil, dispatcher)
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Errorf("bad coordinates: err = %v, want ErrInvalidInput", err)
	}

	_, err = SendSOS(context.Background(), domain.Point{Lat: 17.7, Lng: 83.3}, nil, nil, dispatcher)
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Errorf("no contacts: err = %v, want ErrInvalidInput", err)
	}
}

func TestSendSOSSurfacesDispatchFailure(t *testing.T) {
	dispatcher := &stubDispatcher{sendErr: errors.New("gateway down")}
	_, err := SendSOS(context.Background(), domain.Point{Lat: 17.7, Lng: 83.3}, []string{"+919876543210"}, nil, dispatcher)
	if err == nil {
		t.Error("SendSOS should surface a dispatch failure")
	}
}
