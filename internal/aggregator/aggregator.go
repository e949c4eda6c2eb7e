// Package aggregator derives a user's streak and rest totals from their
// append-only day records and decides the values of newly classified days.
package aggregator

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"wellnexAPI/internal/types/calendar"
	"wellnexAPI/utils"
)

var (
	ErrUnauthenticated       = errors.New("user not authenticated")
	ErrFetchFailure          = errors.New("failed to fetch day records")
	ErrPersistenceFailure    = errors.New("failed to persist day record")
	ErrInvalidDate           = errors.New("invalid date, expected YYYY-MM-DD")
	ErrInvalidClassification = errors.New("classification must be streak or rest")
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=aggregator_test

// RecordStore is the slice of the document store the aggregator needs.
// ListDayRecords makes no ordering promise.
type RecordStore interface {
	ListDayRecords(ctx context.Context, userID string) ([]calendar.DayRecord, error)
	CreateDayRecord(ctx context.Context, rec calendar.DayRecord) (calendar.DayRecord, error)
}

type Aggregator struct {
	store RecordStore
	now   func() time.Time
}

func New(store RecordStore) *Aggregator {
	return &Aggregator{
		store: store,
		now:   time.Now,
	}
}

// LoadState fetches every record of the user and aggregates them. An empty
// userID yields the zero state without touching the store. On a listing
// failure the zero state is returned together with an ErrFetchFailure.
// The returned records are sorted by date, newest first.
func (a *Aggregator) LoadState(ctx context.Context, userID string) (calendar.AggregatedState, []calendar.DayRecord, error) {
	if userID == "" {
		return calendar.AggregatedState{}, nil, nil
	}

	records, err := a.store.ListDayRecords(ctx, userID)
	if err != nil {
		return calendar.AggregatedState{}, nil, fmt.Errorf("%w: %v", ErrFetchFailure, err)
	}

	SortByDateDesc(records)
	return Aggregate(records), records, nil
}

// RecordDay classifies date against prev and appends exactly one record.
// prev is the caller's view of the state and is not re-read, so two calls
// made with the same prev compute the same value. The successor state is
// only returned once the write is confirmed.
func (a *Aggregator) RecordDay(
	ctx context.Context,
	userID string,
	date string,
	classification calendar.Classification,
	prev calendar.AggregatedState,
) (calendar.DayRecord, calendar.AggregatedState, error) {
	if userID == "" {
		return calendar.DayRecord{}, prev, ErrUnauthenticated
	}

	rec, err := NextRecord(userID, date, classification, prev)
	if err != nil {
		return calendar.DayRecord{}, prev, err
	}
	rec.CreatedAt = a.now().UTC()

	created, err := a.store.CreateDayRecord(ctx, rec)
	if err != nil {
		return calendar.DayRecord{}, prev, fmt.Errorf("%w: %v", ErrPersistenceFailure, err)
	}

	return created, Advance(prev, created), nil
}

// SortByDateDesc orders records newest date first. Records sharing a date
// are ordered by CreatedAt, oldest first, so the result does not depend on
// the order a store lists documents in. Full ties keep the listing order.
func SortByDateDesc(records []calendar.DayRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		if c := strings.Compare(records[i].Date, records[j].Date); c != 0 {
			return c > 0
		}
		return records[i].CreatedAt.Before(records[j].CreatedAt)
	})
}

// Aggregate scans records already sorted newest first. The first streak
// record fixes the current streak; rest values are summed over all records.
func Aggregate(sorted []calendar.DayRecord) calendar.AggregatedState {
	var state calendar.AggregatedState
	found := false
	for _, rec := range sorted {
		if !found && rec.StreakValue > 0 {
			state.CurrentStreak = rec.StreakValue
			state.LastStreakDate = rec.Date
			found = true
		}
		if rec.RestValue > 0 {
			state.TotalRest += rec.RestValue
		}
	}
	return state
}

// NextRecord computes the record a classification produces without storing it.
func NextRecord(userID, date string, classification calendar.Classification, prev calendar.AggregatedState) (calendar.DayRecord, error) {
	if _, err := utils.ParseDate(date); err != nil {
		return calendar.DayRecord{}, fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}

	rec := calendar.DayRecord{
		UserID: userID,
		Date:   date,
	}

	switch classification {
	case calendar.ClassificationStreak:
		rec.StreakValue = NextStreak(prev, date)
	case calendar.ClassificationRest:
		rec.RestValue = prev.TotalRest + 1
	default:
		return calendar.DayRecord{}, ErrInvalidClassification
	}

	return rec, nil
}

// NextStreak extends the streak only when date is exactly the day after the
// last streak day. Any other gap, including the same or an earlier day,
// starts over at 1.
func NextStreak(prev calendar.AggregatedState, date string) int {
	if !prev.HasStreak() {
		return 1
	}
	diff, err := utils.DaysBetween(prev.LastStreakDate, date)
	if err != nil || diff != 1 {
		return 1
	}
	return prev.CurrentStreak + 1
}

// Advance applies a confirmed record to the state that produced it, giving
// the same result a fresh LoadState would: a streak record only becomes the
// anchor when it is dated after the current one, since a later write on the
// anchor's date sorts behind it. Rest values add up.
func Advance(prev calendar.AggregatedState, rec calendar.DayRecord) calendar.AggregatedState {
	next := prev
	switch rec.Classification() {
	case calendar.ClassificationStreak:
		if !prev.HasStreak() || rec.Date > prev.LastStreakDate {
			next.CurrentStreak = rec.StreakValue
			next.LastStreakDate = rec.Date
		}
	case calendar.ClassificationRest:
		next.TotalRest = prev.TotalRest + rec.RestValue
	}
	return next
}
