package utils

// deadliftUnderPredictionFactor lifts a prediction that came back below the
// user's current deadlift.
const deadliftUnderPredictionFactor = 1.12

func AdjustDeadlift(base, predicted float64) float64 {
	if predicted < base {
		return predicted * deadliftUnderPredictionFactor
	}
	return predicted
}
