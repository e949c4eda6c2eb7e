package handlers

import (
	"net/http"

	"wellnexAPI/internal/types/exercise"
)

// ExerciseCatalogue serves the static exercise names and workout videos.
func ExerciseCatalogue(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Cache-Control", "public, max-age=3600")
	respondWithJSON(w, http.StatusOK, exercise.DefaultCatalogue())
}
