package services

import "time"

func (s *CalendarService) SetNow(now func() time.Time) { s.now = now }
