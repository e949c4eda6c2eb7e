// Package docstore persists the per-user documents of the app. Every
// collection is keyed by an opaque user id and listed without ordering
// guarantees; callers sort what they need.
package docstore

import (
	"context"
	"errors"

	"wellnexAPI/internal/types/calendar"
	"wellnexAPI/internal/types/chat"
	"wellnexAPI/internal/types/measurement"
	"wellnexAPI/internal/types/notification"
	"wellnexAPI/internal/types/routine"
)

var (
	ErrNotFound       = errors.New("document not found")
	ErrUnknownBackend = errors.New("unknown document store backend")
)

const (
	CollectionCalendar     = "calendar"
	CollectionRoutines     = "routines"
	CollectionMeasurements = "measurements"
	CollectionChatSessions = "chat_sessions"
	CollectionDeviceTokens = "device_tokens"
)

type DayRecords interface {
	ListDayRecords(ctx context.Context, userID string) ([]calendar.DayRecord, error)
	CreateDayRecord(ctx context.Context, rec calendar.DayRecord) (calendar.DayRecord, error)
}

type Routines interface {
	ListRoutines(ctx context.Context, userID string) ([]routine.Routine, error)
	CreateRoutine(ctx context.Context, r routine.Routine) (routine.Routine, error)
	GetRoutine(ctx context.Context, id string) (routine.Routine, error)
	DeleteRoutine(ctx context.Context, id string) error
}

type Measurements interface {
	// GetMeasurement returns the first measurement document of the user.
	GetMeasurement(ctx context.Context, userID string) (measurement.Measurement, error)
	// SaveMeasurement overwrites m.ID when set and creates a document otherwise.
	SaveMeasurement(ctx context.Context, m measurement.Measurement) (measurement.Measurement, error)
}

type ChatSessions interface {
	ListChatSessions(ctx context.Context, userID string) ([]chat.Session, error)
	CreateChatSession(ctx context.Context, s chat.Session) (chat.Session, error)
}

type DeviceTokens interface {
	ListDeviceTokens(ctx context.Context, userID string) ([]notification.DeviceToken, error)
	// SaveDeviceToken upserts on (userID, token).
	SaveDeviceToken(ctx context.Context, t notification.DeviceToken) (notification.DeviceToken, error)
}

// Store is the full document store a backend provides.
type Store interface {
	DayRecords
	Routines
	Measurements
	ChatSessions
	DeviceTokens
	Ping(ctx context.Context) error
	Close() error
}
