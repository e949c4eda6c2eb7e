package prediction

type Request struct {
	SquatKg    float64 `json:"squat_kg"`
	BenchKg    float64 `json:"bench_kg"`
	DeadliftKg float64 `json:"deadlift_kg"`
}

type Lifts struct {
	Squat    float64 `json:"squat"`
	Bench    float64 `json:"bench"`
	Deadlift float64 `json:"deadlift"`
}

type Chart struct {
	Labels    []string  `json:"labels"`
	Predicted []float64 `json:"predicted"`
	Base      []float64 `json:"base"`
}

type Response struct {
	Base             Lifts   `json:"base"`
	Predicted        Lifts   `json:"predicted"`
	AdjustedDeadlift float64 `json:"adjusted_deadlift"`
	Chart            Chart   `json:"chart"`
}
