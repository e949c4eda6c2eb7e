package routine

import "time"

type Exercise struct {
	Name string `json:"name"`
	Sets int    `json:"sets"`
	Reps int    `json:"reps"`
}

type Routine struct {
	ID        string     `json:"id"`
	UserID    string     `json:"user_id"`
	Name      string     `json:"name"`
	Exercises []Exercise `json:"exercises"`
	CreatedAt time.Time  `json:"created_at"`
}

type CreateRoutineRequest struct {
	Name      string     `json:"name"`
	Exercises []Exercise `json:"exercises"`
}

type StatType string

const (
	StatVolume StatType = "volume"
	StatReps   StatType = "reps"
)

// ExerciseStat totals one exercise across all of a user's routines.
// Volume is the sum of sets*reps, Reps the sum of reps per routine entry.
type ExerciseStat struct {
	Name   string `json:"name"`
	Volume int    `json:"volume"`
	Reps   int    `json:"reps"`
}

type StatsResponse struct {
	Type  StatType       `json:"type"`
	Stats []ExerciseStat `json:"stats"`
}
