package models

// CalorieInfo is the calorie data joined onto a prediction.
type CalorieInfo struct {
	CaloriesPer100g    float64 `json:"calories_per_100g"`
	TypicalServingSize float64 `json:"typical_serving_size"`
	CaloriesPerServing float64 `json:"calories_per_serving"`
	Unit               string  `json:"unit"`
}

// Prediction is the outcome of one classification.
type Prediction struct {
	Label         string    // Predicted class label
	Index         int       // Index of Label in the class list
	Confidence    float64   // Probability of Label, in [0,1]
	Probabilities []float64 // Full distribution, one entry per class
	Calories      CalorieInfo
}
