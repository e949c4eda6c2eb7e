package services

import (
	"context"
	"errors"
	"fmt"
	"math"

	"wellnexAPI/internal/tracing"
	"wellnexAPI/internal/types/prediction"
	"wellnexAPI/utils"
)

var ErrInvalidLifts = errors.New("squat, bench and deadlift must be positive numbers")

type Predictor interface {
	Predict(ctx context.Context, base prediction.Lifts) (prediction.Lifts, error)
}

type PredictionService struct {
	predictor Predictor
}

func NewPredictionService(predictor Predictor) *PredictionService {
	return &PredictionService{predictor: predictor}
}

func (s *PredictionService) Predict(ctx context.Context, req prediction.Request) (*prediction.Response, error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "predictionService.Predict")
	defer span.End()

	base := prediction.Lifts{Squat: req.SquatKg, Bench: req.BenchKg, Deadlift: req.DeadliftKg}
	for _, v := range []float64{base.Squat, base.Bench, base.Deadlift} {
		if v <= 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, ErrInvalidLifts
		}
	}

	predicted, err := s.predictor.Predict(ctx, base)
	if err != nil {
		tracing.Fail(span, err)
		return nil, fmt.Errorf("predict: %w", err)
	}

	adjusted := utils.AdjustDeadlift(base.Deadlift, predicted.Deadlift)
	return &prediction.Response{
		Base:             base,
		Predicted:        predicted,
		AdjustedDeadlift: adjusted,
		Chart: prediction.Chart{
			Labels:    []string{"Squat", "Bench", "Deadlift"},
			Predicted: []float64{predicted.Squat, predicted.Bench, adjusted},
			Base:      []float64{base.Squat, base.Bench, base.Deadlift},
		},
	}, nil
}
