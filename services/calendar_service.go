package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"wellnexAPI/internal/aggregator"
	"wellnexAPI/internal/lock"
	"wellnexAPI/internal/metrics"
	"wellnexAPI/internal/tracing"
	"wellnexAPI/internal/types/calendar"
	"wellnexAPI/internal/types/notification"
	"wellnexAPI/internal/types/streak"
	"wellnexAPI/utils"
)

var (
	ErrInvalidMonth = errors.New("invalid year or month")
	ErrCalendarBusy = errors.New("calendar is being updated, try again")
)

//go:generate mockgen -destination=mocks_test.go -package=services_test wellnexAPI/services Asker,Notifier,Predictor,PushNotificationProvider

// Notifier queues push notifications without waiting for delivery.
type Notifier interface {
	DispatchNotification(ctx context.Context, notif *notification.Notification) error
}

type CalendarService struct {
	agg      *aggregator.Aggregator
	locker   lock.Locker
	notifier Notifier
	now      func() time.Time
}

func NewCalendarService(store aggregator.RecordStore, locker lock.Locker, notifier Notifier) *CalendarService {
	return &CalendarService{
		agg:      aggregator.New(store),
		locker:   locker,
		notifier: notifier,
		now:      time.Now,
	}
}

// State returns the aggregated state and the records behind it. A failed
// listing is logged and reported as a degraded zero state.
func (s *CalendarService) State(ctx context.Context, userID string) (*calendar.StateResponse, error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "calendarService.State")
	defer span.End()

	state, records, err := s.agg.LoadState(ctx, userID)
	resp := &calendar.StateResponse{State: state, Records: records}
	if err != nil {
		s.degrade(userID, err)
		tracing.Fail(span, err)
		resp.Degraded = true
	}
	if resp.Records == nil {
		resp.Records = []calendar.DayRecord{}
	}
	return resp, nil
}

// Classify records one day for the user. The user's calendar lock is held
// from reading the fresh state until the record is stored, so concurrent
// classifications of the same user never compute from the same base.
func (s *CalendarService) Classify(ctx context.Context, userID string, req calendar.ClassifyRequest) (*calendar.ClassifyResponse, error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "calendarService.Classify")
	span.SetAttributes(attribute.String("date", req.Date), attribute.String("type", string(req.Type)))
	defer span.End()

	if userID == "" {
		return nil, aggregator.ErrUnauthenticated
	}
	if !req.Type.Valid() {
		return nil, aggregator.ErrInvalidClassification
	}
	if _, err := utils.ParseDate(req.Date); err != nil {
		return nil, fmt.Errorf("%w: %q", aggregator.ErrInvalidDate, req.Date)
	}

	unlock, err := s.locker.Lock(ctx, "calendar:"+userID)
	if err != nil {
		tracing.Fail(span, err)
		return nil, fmt.Errorf("%w: %v", ErrCalendarBusy, err)
	}
	defer unlock()

	// A failed read must not be mistaken for an empty history here.
	prev, _, err := s.agg.LoadState(ctx, userID)
	if err != nil {
		s.degrade(userID, err)
		tracing.Fail(span, err)
		return nil, err
	}

	rec, next, err := s.agg.RecordDay(ctx, userID, req.Date, req.Type, prev)
	if err != nil {
		if errors.Is(err, aggregator.ErrPersistenceFailure) {
			metrics.PersistenceFailures.WithLabelValues("calendar").Inc()
			log.Errorf("calendar: persist %s day %s for user %s: %s", req.Type, req.Date, userID, err)
		}
		tracing.Fail(span, err)
		return nil, err
	}

	metrics.DayRecordsWritten.WithLabelValues(string(req.Type)).Inc()

	if rec.Classification() == calendar.ClassificationStreak && streak.IsMilestone(rec.StreakValue) {
		s.notifyMilestone(ctx, rec)
	}

	return &calendar.ClassifyResponse{Record: rec, State: next}, nil
}

// Month lays out every day of the given month with the classification of
// its latest record.
func (s *CalendarService) Month(ctx context.Context, userID string, year, month int) (*calendar.CalendarResponse, error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "calendarService.Month")
	defer span.End()

	if year < 1970 || year > 9999 || month < 1 || month > 12 {
		return nil, ErrInvalidMonth
	}

	state, records, err := s.agg.LoadState(ctx, userID)
	resp := &calendar.CalendarResponse{
		Year:  year,
		Month: month,
		State: state,
	}
	if err != nil {
		s.degrade(userID, err)
		tracing.Fail(span, err)
		resp.Degraded = true
	}

	// same-date records are oldest write first; walking backwards keeps the latest write per date
	byDate := make(map[string]calendar.DayRecord, len(records))
	for i := len(records) - 1; i >= 0; i-- {
		if _, seen := byDate[records[i].Date]; !seen {
			byDate[records[i].Date] = records[i]
		}
	}

	today := utils.FormatDate(s.now())
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	for d := first; d.Month() == first.Month(); d = d.AddDate(0, 0, 1) {
		date := utils.FormatDate(d)
		day := &calendar.CalendarDay{
			Date:    date,
			IsToday: date == today,
		}
		if rec, ok := byDate[date]; ok {
			day.Classification = rec.Classification()
			day.StreakValue = rec.StreakValue
			day.RestValue = rec.RestValue
		}
		resp.Days = append(resp.Days, day)
	}

	return resp, nil
}

func (s *CalendarService) degrade(userID string, err error) {
	metrics.CalendarFetchFailures.Inc()
	log.Warnf("calendar: load state for user %s: %s", userID, err)
}

func (s *CalendarService) notifyMilestone(ctx context.Context, rec calendar.DayRecord) {
	metrics.StreakMilestones.WithLabelValues(strconv.Itoa(rec.StreakValue)).Inc()
	if s.notifier == nil {
		return
	}

	notif := &notification.Notification{
		UserID: rec.UserID,
		Title:  fmt.Sprintf("%d day streak!", rec.StreakValue),
		Body:   "You're on fire. Keep the streak going tomorrow.",
		Data: map[string]any{
			"type":   "streak_milestone",
			"streak": rec.StreakValue,
			"date":   rec.Date,
		},
	}
	if err := s.notifier.DispatchNotification(ctx, notif); err != nil {
		log.Warnf("calendar: queue milestone notification for user %s: %s", rec.UserID, err)
	}
}
