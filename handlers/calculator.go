// calculator.go - Handles BMI, calorie target and food calorie requests

package handlers // Declares the package name

import ( // Import required packages
	"math" // NaN marks an unusable quantity

	"caloriq-backend/apperr" // Status codes
	"caloriq-backend/health" // Calculators

	"github.com/gin-gonic/gin" // Gin web framework
)

type BMIInput struct { // Struct for BMI input
	Height Number `json:"height"` // Centimetres
	Weight Number `json:"weight"` // Kilograms
}

type CalorieRequest struct { // Struct for calorie target input
	Age           Number  `json:"age"`            // Years
	Gender        *string `json:"gender"`         // "male" or anything else, must be present
	Height        Number  `json:"height"`         // Centimetres
	Weight        Number  `json:"weight"`         // Kilograms
	ActivityLevel *string `json:"activity_level"` // sedentary, light, moderate, active, very active
}

type FoodCaloriesInput struct { // Struct for food calorie lookup input
	FoodName string `json:"food_name"` // Class label, case-insensitive
	Quantity Number `json:"quantity"`  // Servings, defaults to 1
}

type bmiResponse struct {
	Envelope
	BMI    float64 `json:"bmi"`
	Status string  `json:"status"`
}

type calorieResponse struct {
	Envelope
	Calories float64 `json:"calories"`
}

type foodCaloriesResponse struct {
	Envelope
	FoodName           string  `json:"food_name"`
	CaloriesPer100g    float64 `json:"calories_per_100g"`
	TypicalServingSize float64 `json:"typical_serving_size"`
	CaloriesPerServing float64 `json:"calories_per_serving"`
	Quantity           float64 `json:"quantity"`
	TotalCalories      float64 `json:"total_calories"`
	Unit               string  `json:"unit"`
}

func (h *Handler) BMI(c *gin.Context) { // Handler for BMI calculation
	const invalid = "Invalid height or weight"
	var input BMIInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, invalid)
		return
	}
	height, okH := input.Height.Float()
	weight, okW := input.Weight.Float()
	if !okH || !okW { // Missing or non-numeric
		badRequest(c, invalid)
		return
	}
	res, err := health.BMI(height, weight)
	if err != nil {
		fail(c, err, invalid)
		return
	}
	reply(c, apperr.SC200, bmiResponse{Envelope: success("BMI calculated successfully"), BMI: res.BMI, Status: res.Status})
}

func (h *Handler) Calorie(c *gin.Context) { // Handler for daily calorie target
	const invalid = "Invalid input data"
	var input CalorieRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, invalid)
		return
	}
	age, okA := input.Age.Float()
	height, okH := input.Height.Float()
	weight, okW := input.Weight.Float()
	if !okA || !okH || !okW || input.Gender == nil || input.ActivityLevel == nil { // Missing keys, empty strings are fine
		badRequest(c, invalid)
		return
	}
	calories, err := health.CalorieTarget(health.CalorieInput{
		Age:           age,
		Gender:        *input.Gender,
		HeightCm:      height,
		WeightKg:      weight,
		ActivityLevel: *input.ActivityLevel,
	})
	if err != nil {
		fail(c, err, invalid)
		return
	}
	reply(c, apperr.SC200, calorieResponse{Envelope: success("Calorie target calculated"), Calories: calories})
}

func (h *Handler) FoodCalories(c *gin.Context) { // Handler for food calorie lookup
	var input FoodCaloriesInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, "Invalid request body")
		return
	}
	quantity := 1.0 // One serving unless told otherwise
	if input.Quantity.Set {
		q, ok := input.Quantity.Float()
		if !ok {
			q = math.NaN() // Rejected after the food name is resolved
		}
		quantity = q
	}
	res, err := health.FoodCalories(input.FoodName, quantity)
	if err != nil {
		fail(c, err, "Calorie lookup failed") // SC404 carries the envelope only
		return
	}
	reply(c, apperr.SC200, foodCaloriesResponse{
		Envelope:           success("Calorie information retrieved successfully"),
		FoodName:           res.FoodName,
		CaloriesPer100g:    res.CaloriesPer100g,
		TypicalServingSize: res.TypicalServingSize,
		CaloriesPerServing: res.CaloriesPerServing,
		Quantity:           res.Quantity,
		TotalCalories:      res.TotalCalories,
		Unit:               res.Unit,
	})
}

func (h *Handler) Health(c *gin.Context) { // Liveness probe
	reply(c, apperr.SC200, success("OK"))
}
