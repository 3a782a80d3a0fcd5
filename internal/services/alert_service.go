package services

import (
	"sync"
	"time"
)

// DefaultAlertTTL is how long an error message stays visible.
const DefaultAlertTTL = 5 * time.Second

// AlertServiceImpl implements AlertServiceContract with an explicit
// timer handle per displayed message. Superseding a message always
// cancels the previous timer first, so a stale timer can never clear a
// newer message early.
type AlertServiceImpl struct {
	mu      sync.Mutex
	ttl     time.Duration
	message string
	timer   *time.Timer
	gen     uint64
}

var _ AlertServiceContract = (*AlertServiceImpl)(nil)

// NewAlertService creates an alert surface with the given message TTL.
// A non-positive TTL falls back to DefaultAlertTTL.
func NewAlertService(ttl time.Duration) AlertServiceContract {
	if ttl <= 0 {
		ttl = DefaultAlertTTL
	}
	return &AlertServiceImpl{ttl: ttl}
}

func (s *AlertServiceImpl) Show(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.timer != nil {
		s.timer.Stop()
	}
	s.gen++
	s.message = message

	gen := s.gen
	s.timer = time.AfterFunc(s.ttl, func() {
		s.expire(gen)
	})
}

// expire clears the message scheduled under gen. The generation guard
// covers the window where a timer fires concurrently with a superseding
// Show: Stop cannot retract a callback that is already running.
func (s *AlertServiceImpl) expire(gen uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.gen {
		return
	}
	s.message = ""
	s.timer = nil
}

func (s *AlertServiceImpl) Message() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.message
}

func (s *AlertServiceImpl) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.gen++
	s.message = ""
}

func (s *AlertServiceImpl) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.gen++
}
