package measurement

import "time"

// Measurement holds a user's body measurements. Lengths are centimetres, weight kilograms.
type Measurement struct {
	ID        string    `json:"id" firestore:"-"`
	UserID    string    `json:"user_id" firestore:"userId"`
	Weight    float64   `json:"weight" firestore:"Weight"`
	Height    float64   `json:"height" firestore:"Height"`
	Chest     float64   `json:"chest" firestore:"Chest"`
	Waist     float64   `json:"waist" firestore:"Waist"`
	Hips      float64   `json:"hips" firestore:"Hips"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}

// SaveMeasurementRequest carries raw user input; unparseable values are stored as 0.
type SaveMeasurementRequest struct {
	Weight string `json:"weight"`
	Height string `json:"height"`
	Chest  string `json:"chest"`
	Waist  string `json:"waist"`
	Hips   string `json:"hips"`
}
