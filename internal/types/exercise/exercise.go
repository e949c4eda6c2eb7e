package exercise

type Video struct {
	Title     string `json:"title"`
	YoutubeID string `json:"youtube_id"`
}

type Catalogue struct {
	Exercises []string `json:"exercises"`
	Videos    []Video  `json:"videos"`
}

// Selectable exercises when building a routine.
var Names = []string{
	"Push-ups",
	"Squats",
	"Pull-ups",
	"Lunges",
	"Plank",
	"Deadlifts",
	"Bench Press",
	"Bicep Curls",
}

var Videos = []Video{
	{Title: "Full Body Workout", YoutubeID: "UIPvIYsjfpo"},
	{Title: "Cardio Blast", YoutubeID: "rKf6YpYcb1s"},
	{Title: "Strength Training Basics", YoutubeID: "TN9i9Ni0Xr4"},
	{Title: "HIIT Workout", YoutubeID: "edIK5SZYMZo"},
	{Title: "Core Workout", YoutubeID: "8PwoytUU06g"},
	{Title: "Leg Day Routine", YoutubeID: "8zWDuWKdBZU"},
	{Title: "Upper Body Pump", YoutubeID: "3IQVNjWH60A"},
	{Title: "Flexibility & Stretching", YoutubeID: "FI51zRzgIe4"},
	{Title: "Yoga for Athletes", YoutubeID: "KObUQOsqQKI"},
	{Title: "Endurance Training", YoutubeID: "VQLU7gpk_X8"},
}

func DefaultCatalogue() Catalogue {
	return Catalogue{Exercises: Names, Videos: Videos}
}
