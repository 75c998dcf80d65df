// pkg/memcache/itinerary_sessions.go
package memcache

import (
	"sync"
	"time"

	"rionido/internal/models/catalog_models"
)

// SessionStore keeps generated itineraries in memory so a guest can keep
// swapping activities against the same plan. Entries expire; nothing is
// written to durable storage.
type SessionStore interface {
	Put(id string, itinerary *catalog_models.Itinerary, ttl time.Duration)

	// Get returns the itinerary for id if not expired. The stored pointer is
	// returned directly: the replacement engine mutates it in place and
	// callers must serialize access per session.
	Get(id string) (*catalog_models.Itinerary, bool)

	Delete(id string)
}

type sessionEntry struct {
	itinerary *catalog_models.Itinerary
	expiresAt time.Time
}

type ItinerarySessions struct {
	mu   sync.RWMutex
	data map[string]sessionEntry
}

func NewItinerarySessions() *ItinerarySessions {
	return &ItinerarySessions{data: make(map[string]sessionEntry)}
}

func (s *ItinerarySessions) Put(id string, itinerary *catalog_models.Itinerary, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[id] = sessionEntry{
		itinerary: itinerary,
		expiresAt: time.Now().Add(ttl),
	}
}

func (s *ItinerarySessions) Get(id string) (*catalog_models.Itinerary, bool) {
	s.mu.RLock()
	e, ok := s.data[id]
	s.mu.RUnlock()

	if !ok {
		return nil, false
	}
	if time.Now().After(e.expiresAt) {
		s.Delete(id)
		return nil, false
	}
	return e.itinerary, true
}

func (s *ItinerarySessions) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, id)
}
