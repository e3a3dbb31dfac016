package notify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestDispatchCountsOnlyDeliveredRecipients(t *testing.T) {
	var got []alertPayload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var p alertPayload
		if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
			t.Errorf("decode payload: %v", err)
		}
		if p.To == "+910000000000" {
			http.Error(w, "unroutable number", http.StatusBadRequest)
			return
		}
		got = append(got, p)
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	d, err := NewWebhookDispatcher(srv.URL)
	if err != nil {
		t.Fatalf("NewWebhookDispatcher failed: %v", err)
	}

	sent, err := d.Dispatch(context.Background(), []string{"+919876543210", "+910000000000", " ", "+919123456789"}, "need help")
	if err != nil {
		t.Fatalf("Dispatch failed: %v", err)
	}
	if sent != 2 {
		t.Errorf("sent = %d, want 2", sent)
	}
	if len(got) != 2 {
		t.Fatalf("server received %d payloads, want 2", len(got))
	}
	for _, p := range got {
		if p.Message != "need help" {
			t.Errorf("message = %q, want %q", p.Message, "need help")
		}
	}
}

func TestDispatchFailsWhenNobodyReachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gateway down", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	d, err := NewWebhookDispatcher(srv.URL)
	if err != nil {
		t.Fatalf("NewWebhookDispatcher failed: %v", err)
	}

	if _, err := d.Dispatch(context.Background(), []string{"+919876543210"}, "need help"); err == nil {
		t.Error("Dispatch should fail when every recipient fails")
	}

	if _, err := NewWebhookDispatcher(" "); err == nil {
		t.Error("NewWebhookDispatcher should reject a blank url")
	}
}
