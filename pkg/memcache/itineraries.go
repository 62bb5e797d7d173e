package mem

import (
	"sync"
	"time"

	"tripforge/internal/models/response_models"
)

type itineraryEntry struct {
	doc       *response_models.Itinerary
	expiresAt time.Time
}

// Itineraries is a TTL cache for generated documents, keyed by a hash of the
// request. Repeating a request inside the TTL skips the whole generation
// pipeline.
type Itineraries struct {
	mu   sync.RWMutex
	data map[string]itineraryEntry
}

func NewItineraries() *Itineraries {
	return &Itineraries{
		data: make(map[string]itineraryEntry),
	}
}

func (s *Itineraries) Set(key string, doc *response_models.Itinerary, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = itineraryEntry{
		doc:       doc,
		expiresAt: time.Now().Add(ttl),
	}

	// cheap cleanup once the map grows
	if len(s.data) > 1000 {
		now := time.Now()
		for k, e := range s.data {
			if now.After(e.expiresAt) {
				delete(s.data, k)
			}
		}
	}
}

func (s *Itineraries) Get(key string) (*response_models.Itinerary, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.data[key]
	if !ok || time.Now().After(e.expiresAt) {
		return nil, false
	}
	return e.doc, true
}
