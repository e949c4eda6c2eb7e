package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"wellnexAPI/internal/docstore"
	"wellnexAPI/internal/metrics"
	"wellnexAPI/internal/types/measurement"
)

var ErrMeasurementNotFound = errors.New("no measurements saved yet")

type MeasurementService struct {
	store docstore.Measurements
	now   func() time.Time
}

func NewMeasurementService(store docstore.Measurements) *MeasurementService {
	return &MeasurementService{store: store, now: time.Now}
}

func (s *MeasurementService) Get(ctx context.Context, userID string) (*measurement.Measurement, error) {
	m, err := s.store.GetMeasurement(ctx, userID)
	if errors.Is(err, docstore.ErrNotFound) {
		return nil, ErrMeasurementNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get measurement: %w", err)
	}
	return &m, nil
}

// Save overwrites the user's measurement document, creating it on first use.
func (s *MeasurementService) Save(ctx context.Context, userID string, req measurement.SaveMeasurementRequest) (*measurement.Measurement, error) {
	m := measurement.Measurement{
		UserID:    userID,
		Weight:    parseMeasure(req.Weight),
		Height:    parseMeasure(req.Height),
		Chest:     parseMeasure(req.Chest),
		Waist:     parseMeasure(req.Waist),
		Hips:      parseMeasure(req.Hips),
		UpdatedAt: s.now().UTC(),
	}

	existing, err := s.store.GetMeasurement(ctx, userID)
	switch {
	case err == nil:
		m.ID = existing.ID
	case !errors.Is(err, docstore.ErrNotFound):
		return nil, fmt.Errorf("get measurement: %w", err)
	}

	saved, err := s.store.SaveMeasurement(ctx, m)
	if err != nil {
		metrics.PersistenceFailures.WithLabelValues("measurements").Inc()
		return nil, fmt.Errorf("save measurement: %w", err)
	}
	return &saved, nil
}

// leadingNumber matches the numeric prefix of an input like "72kg" or "1.8e2cm".
var leadingNumber = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)

// parseMeasure reads the leading number of raw and maps anything that is not
// a finite, non-negative number to 0.
func parseMeasure(raw string) float64 {
	num := leadingNumber.FindString(strings.TrimSpace(raw))
	if num == "" {
		return 0
	}
	v, err := strconv.ParseFloat(num, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}
