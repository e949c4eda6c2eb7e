package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"wellnexAPI/internal/docstore"
	"wellnexAPI/internal/metrics"
	"wellnexAPI/internal/tracing"
	"wellnexAPI/internal/types/routine"
)

var (
	ErrInvalidRoutine  = errors.New("invalid routine")
	ErrRoutineNotFound = errors.New("routine not found")
	ErrForbidden       = errors.New("not allowed")
	ErrInvalidStatType = errors.New("stat type must be volume or reps")
)

type RoutineService struct {
	store docstore.Routines
	now   func() time.Time
}

func NewRoutineService(store docstore.Routines) *RoutineService {
	return &RoutineService{store: store, now: time.Now}
}

func (s *RoutineService) Create(ctx context.Context, userID string, req routine.CreateRoutineRequest) (*routine.Routine, error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "routineService.Create")
	defer span.End()

	r, err := validateRoutine(req)
	if err != nil {
		return nil, err
	}
	r.UserID = userID
	r.CreatedAt = s.now().UTC()

	created, err := s.store.CreateRoutine(ctx, r)
	if err != nil {
		metrics.PersistenceFailures.WithLabelValues("routines").Inc()
		tracing.Fail(span, err)
		return nil, fmt.Errorf("create routine: %w", err)
	}
	return &created, nil
}

func validateRoutine(req routine.CreateRoutineRequest) (routine.Routine, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return routine.Routine{}, fmt.Errorf("%w: name is required", ErrInvalidRoutine)
	}
	if len(req.Exercises) == 0 {
		return routine.Routine{}, fmt.Errorf("%w: at least one exercise is required", ErrInvalidRoutine)
	}

	seen := make(map[string]bool, len(req.Exercises))
	exercises := make([]routine.Exercise, 0, len(req.Exercises))
	for _, ex := range req.Exercises {
		exName := strings.TrimSpace(ex.Name)
		if exName == "" {
			return routine.Routine{}, fmt.Errorf("%w: exercise name is required", ErrInvalidRoutine)
		}
		if seen[exName] {
			return routine.Routine{}, fmt.Errorf("%w: exercise %q added twice", ErrInvalidRoutine, exName)
		}
		if ex.Sets < 0 || ex.Reps < 0 {
			return routine.Routine{}, fmt.Errorf("%w: sets and reps of %q must not be negative", ErrInvalidRoutine, exName)
		}
		seen[exName] = true
		exercises = append(exercises, routine.Exercise{Name: exName, Sets: ex.Sets, Reps: ex.Reps})
	}

	return routine.Routine{Name: name, Exercises: exercises}, nil
}

// List returns the user's routines, keeping only the first of any repeated id.
func (s *RoutineService) List(ctx context.Context, userID string) ([]routine.Routine, error) {
	routines, err := s.store.ListRoutines(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list routines: %w", err)
	}

	seen := make(map[string]bool, len(routines))
	unique := make([]routine.Routine, 0, len(routines))
	for _, r := range routines {
		if seen[r.ID] {
			continue
		}
		seen[r.ID] = true
		unique = append(unique, r)
	}
	return unique, nil
}

func (s *RoutineService) Delete(ctx context.Context, userID, id string) error {
	r, err := s.store.GetRoutine(ctx, id)
	if errors.Is(err, docstore.ErrNotFound) {
		return ErrRoutineNotFound
	}
	if err != nil {
		return fmt.Errorf("get routine: %w", err)
	}
	if r.UserID != userID {
		return ErrForbidden
	}

	err = s.store.DeleteRoutine(ctx, id)
	if errors.Is(err, docstore.ErrNotFound) {
		return ErrRoutineNotFound
	}
	if err != nil {
		metrics.PersistenceFailures.WithLabelValues("routines").Inc()
		return fmt.Errorf("delete routine: %w", err)
	}
	return nil
}

// Stats totals every exercise over all of the user's routines, sorted by
// the chosen metric descending and then by name.
func (s *RoutineService) Stats(ctx context.Context, userID string, statType routine.StatType) (*routine.StatsResponse, error) {
	if statType == "" {
		statType = routine.StatVolume
	}
	if statType != routine.StatVolume && statType != routine.StatReps {
		return nil, ErrInvalidStatType
	}

	routines, err := s.List(ctx, userID)
	if err != nil {
		return nil, err
	}

	stats := CalculateExerciseStats(routines)
	sort.SliceStable(stats, func(i, j int) bool {
		a, b := stats[i].Volume, stats[j].Volume
		if statType == routine.StatReps {
			a, b = stats[i].Reps, stats[j].Reps
		}
		if a != b {
			return a > b
		}
		return stats[i].Name < stats[j].Name
	})

	return &routine.StatsResponse{Type: statType, Stats: stats}, nil
}

func CalculateExerciseStats(routines []routine.Routine) []routine.ExerciseStat {
	index := make(map[string]int)
	stats := []routine.ExerciseStat{}
	for _, r := range routines {
		for _, ex := range r.Exercises {
			i, ok := index[ex.Name]
			if !ok {
				i = len(stats)
				index[ex.Name] = i
				stats = append(stats, routine.ExerciseStat{Name: ex.Name})
			}
			stats[i].Volume += ex.Sets * ex.Reps
			stats[i].Reps += ex.Reps
		}
	}
	return stats
}
