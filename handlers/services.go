package handlers

import (
	"context"

	"wellnexAPI/internal/types/calendar"
	"wellnexAPI/internal/types/chat"
	"wellnexAPI/internal/types/measurement"
	"wellnexAPI/internal/types/notification"
	"wellnexAPI/internal/types/prediction"
	"wellnexAPI/internal/types/routine"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=handlers_test

type CalendarService interface {
	State(ctx context.Context, userID string) (*calendar.StateResponse, error)
	Classify(ctx context.Context, userID string, req calendar.ClassifyRequest) (*calendar.ClassifyResponse, error)
	Month(ctx context.Context, userID string, year, month int) (*calendar.CalendarResponse, error)
}

type RoutineService interface {
	Create(ctx context.Context, userID string, req routine.CreateRoutineRequest) (*routine.Routine, error)
	List(ctx context.Context, userID string) ([]routine.Routine, error)
	Delete(ctx context.Context, userID, id string) error
	Stats(ctx context.Context, userID string, statType routine.StatType) (*routine.StatsResponse, error)
}

type MeasurementService interface {
	Get(ctx context.Context, userID string) (*measurement.Measurement, error)
	Save(ctx context.Context, userID string, req measurement.SaveMeasurementRequest) (*measurement.Measurement, error)
}

type ChatService interface {
	Ask(ctx context.Context, message string) (string, error)
	SaveSession(ctx context.Context, userID string, req chat.SaveSessionRequest) (*chat.Session, error)
	ListSessions(ctx context.Context, userID string) ([]chat.Session, error)
}

type PredictionService interface {
	Predict(ctx context.Context, req prediction.Request) (*prediction.Response, error)
}

type NotificationService interface {
	RegisterDevice(ctx context.Context, userID string, req notification.RegisterDeviceRequest) (*notification.DeviceToken, error)
}
