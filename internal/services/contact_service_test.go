package services_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"luxhaven/internal/services"
)

func TestContactSendUnconfiguredSimulatesSuccess(t *testing.T) {
	var calls atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer srv.Close()

	svc := services.NewContactService("", "", "")
	svc.Endpoint = srv.URL
	svc.SimulateDelay = time.Millisecond

	err := svc.Send(context.Background(), services.ContactMessage{Name: "A", Email: "a@b.co", Message: "hi"})
	if err != nil {
		t.Fatal(err)
	}
	if calls.Load() != 0 {
		t.Fatal("unconfigured send must not hit the relay")
	}
}

func TestContactSendRelaysPayload(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&got)
	}))
	defer srv.Close()

	svc := services.NewContactService("svc1", "tpl1", "key1")
	svc.Endpoint = srv.URL

	msg := services.ContactMessage{Name: "Asha", Email: "asha@example.com", Phone: "98", Message: "Interested"}
	if err := svc.Send(context.Background(), msg); err != nil {
		t.Fatal(err)
	}
	if got["service_id"] != "svc1" || got["template_id"] != "tpl1" || got["user_id"] != "key1" {
		t.Fatalf("credentials missing from payload: %v", got)
	}
	params, _ := got["template_params"].(map[string]any)
	if params["from_name"] != "Asha" || params["message"] != "Interested" {
		t.Fatalf("params: %v", params)
	}
}

func TestContactSendRelayFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	svc := services.NewContactService("svc1", "tpl1", "key1")
	svc.Endpoint = srv.URL

	if err := svc.Send(context.Background(), services.ContactMessage{Name: "A"}); err == nil {
		t.Fatal("expected error on non-200 relay response")
	}
}

func TestContactSendSimulationHonoursContext(t *testing.T) {
	svc := services.NewContactService("", "", "")
	svc.SimulateDelay = time.Minute

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := svc.Send(ctx, services.ContactMessage{}); err == nil {
		t.Fatal("cancelled context should abort the simulated send")
	}
}

func TestRevalidatorBump(t *testing.T) {
	r := services.NewRevalidator()
	if r.Epoch() != 0 {
		t.Fatalf("fresh epoch: got %d", r.Epoch())
	}
	if e := r.Bump(); e != 1 {
		t.Fatalf("first bump: got %d", e)
	}
	r.Bump()
	if r.Epoch() != 2 {
		t.Fatalf("epoch after two bumps: got %d", r.Epoch())
	}
	if r.LastBump().IsZero() {
		t.Fatal("last bump time not recorded")
	}
}
