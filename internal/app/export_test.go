package app

import "time"

// SetNow replaces service clock.
func (s *Service) SetNow(now func() time.Time) {
	s.now = now
}
