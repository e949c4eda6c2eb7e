package docstore

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"wellnexAPI/internal/types/calendar"
	"wellnexAPI/internal/types/chat"
	"wellnexAPI/internal/types/measurement"
	"wellnexAPI/internal/types/notification"
	"wellnexAPI/internal/types/routine"
)

// MemoryStore keeps documents in process. Listings come back in insertion
// order. It backs tests, the CLI dry runs and DOCUMENT_STORE=memory.
var _ Store = (*MemoryStore)(nil)

type MemoryStore struct {
	mu           sync.RWMutex
	dayRecords   []calendar.DayRecord
	routines     []routine.Routine
	measurements []measurement.Measurement
	sessions     []chat.Session
	devices      []notification.DeviceToken
	newID        func() string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{newID: uuid.NewString}
}

func (m *MemoryStore) ListDayRecords(_ context.Context, userID string) ([]calendar.DayRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []calendar.DayRecord
	for _, rec := range m.dayRecords {
		if rec.UserID == userID {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (m *MemoryStore) CreateDayRecord(_ context.Context, rec calendar.DayRecord) (calendar.DayRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	rec.ID = m.newID()
	m.dayRecords = append(m.dayRecords, rec)
	return rec, nil
}

func (m *MemoryStore) ListRoutines(_ context.Context, userID string) ([]routine.Routine, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []routine.Routine
	for _, r := range m.routines {
		if r.UserID == userID {
			out = append(out, cloneRoutine(r))
		}
	}
	return out, nil
}

func (m *MemoryStore) CreateRoutine(_ context.Context, r routine.Routine) (routine.Routine, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	r.ID = m.newID()
	r = cloneRoutine(r)
	m.routines = append(m.routines, r)
	return cloneRoutine(r), nil
}

func (m *MemoryStore) GetRoutine(_ context.Context, id string) (routine.Routine, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, r := range m.routines {
		if r.ID == id {
			return cloneRoutine(r), nil
		}
	}
	return routine.Routine{}, ErrNotFound
}

func (m *MemoryStore) DeleteRoutine(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, r := range m.routines {
		if r.ID == id {
			m.routines = append(m.routines[:i], m.routines[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (m *MemoryStore) GetMeasurement(_ context.Context, userID string) (measurement.Measurement, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, meas := range m.measurements {
		if meas.UserID == userID {
			return meas, nil
		}
	}
	return measurement.Measurement{}, ErrNotFound
}

func (m *MemoryStore) SaveMeasurement(_ context.Context, meas measurement.Measurement) (measurement.Measurement, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if meas.ID != "" {
		for i, existing := range m.measurements {
			if existing.ID == meas.ID {
				m.measurements[i] = meas
				return meas, nil
			}
		}
	}
	meas.ID = m.newID()
	m.measurements = append(m.measurements, meas)
	return meas, nil
}

func (m *MemoryStore) ListChatSessions(_ context.Context, userID string) ([]chat.Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []chat.Session
	for _, s := range m.sessions {
		if s.UserID == userID {
			s.Messages = append([]chat.Message(nil), s.Messages...)
			out = append(out, s)
		}
	}
	return out, nil
}

func (m *MemoryStore) CreateChatSession(_ context.Context, s chat.Session) (chat.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s.ID = m.newID()
	s.Messages = append([]chat.Message(nil), s.Messages...)
	m.sessions = append(m.sessions, s)
	return s, nil
}

func (m *MemoryStore) ListDeviceTokens(_ context.Context, userID string) ([]notification.DeviceToken, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []notification.DeviceToken
	for _, d := range m.devices {
		if d.UserID == userID {
			out = append(out, d)
		}
	}
	return out, nil
}

func (m *MemoryStore) SaveDeviceToken(_ context.Context, t notification.DeviceToken) (notification.DeviceToken, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, d := range m.devices {
		if d.UserID == t.UserID && d.Token == t.Token {
			t.ID = d.ID
			m.devices[i] = t
			return t, nil
		}
	}
	t.ID = m.newID()
	m.devices = append(m.devices, t)
	return t, nil
}

func (m *MemoryStore) Ping(context.Context) error { return nil }

func (m *MemoryStore) Close() error { return nil }

func cloneRoutine(r routine.Routine) routine.Routine {
	r.Exercises = append([]routine.Exercise(nil), r.Exercises...)
	return r
}
