package memcache

import (
	"testing"
	"time"

	"rionido/internal/models/catalog_models"
)

func TestItinerarySessionsRoundTrip(t *testing.T) {
	store := NewItinerarySessions()
	it := &catalog_models.Itinerary{GuestName: "Avery"}

	store.Put("s1", it, time.Minute)

	got, ok := store.Get("s1")
	if !ok {
		t.Fatal("session not found")
	}
	if got != it {
		t.Error("Get must return the stored pointer so swaps mutate in place")
	}

	store.Delete("s1")
	if _, ok := store.Get("s1"); ok {
		t.Error("session survived Delete")
	}
}

func TestItinerarySessionsExpiry(t *testing.T) {
	store := NewItinerarySessions()
	store.Put("s1", &catalog_models.Itinerary{}, -time.Second)

	if _, ok := store.Get("s1"); ok {
		t.Error("expired session should not be returned")
	}
}

func TestItinerarySessionsUnknownID(t *testing.T) {
	store := NewItinerarySessions()
	if _, ok := store.Get("missing"); ok {
		t.Error("unknown id should miss")
	}
}
