// health.go - BMI, daily calorie target and food calorie lookup calculators

package health // Declares the package name

import ( // Import required packages
	"math"    // Rounding and finiteness checks
	"strings" // Case folding for lookups

	"caloriq-backend/apperr" // Error taxonomy
	"caloriq-backend/models" // Food calorie table
)

// BMI categories.
const (
	Underweight = "Underweight"
	Normal      = "Normal"
	Overweight  = "Overweight"
	Obese       = "Obese"
)

// ActivityFactors multiplies BMR into a daily calorie need.
var ActivityFactors = map[string]float64{
	"sedentary":   1.2,
	"light":       1.375,
	"moderate":    1.55,
	"active":      1.725,
	"very active": 1.9,
}

const defaultActivityFactor = 1.2 // Used for unrecognized activity levels

// BMIResult is a rounded BMI with its category.
type BMIResult struct {
	BMI    float64
	Status string
}

// BMI computes body mass index from height in centimetres and weight in kilograms.
func BMI(heightCm, weightKg float64) (BMIResult, error) {
	if !positive(heightCm) || !positive(weightKg) { // Reject zero, negative, NaN and Inf
		return BMIResult{}, apperr.New(apperr.ErrValidation, "Invalid height or weight")
	}
	h := heightCm / 100 // Convert cm to metres
	bmi := weightKg / (h * h)
	return BMIResult{BMI: Round2(bmi), Status: ClassifyBMI(bmi)}, nil
}

// ClassifyBMI buckets an unrounded BMI. Values in [24.9, 25) fall through to
// Obese; existing clients depend on these exact thresholds.
func ClassifyBMI(bmi float64) string {
	switch {
	case bmi < 18.5:
		return Underweight
	case bmi >= 18.5 && bmi < 24.9:
		return Normal
	case bmi >= 25 && bmi < 29.9:
		return Overweight
	default:
		return Obese
	}
}

// CalorieInput holds the metrics for a daily calorie target.
type CalorieInput struct {
	Age           float64 // Years, truncated to an integer
	Gender        string  // Exactly "male" selects the male constant, anything else the female one
	HeightCm      float64
	WeightKg      float64
	ActivityLevel string // Key of ActivityFactors, case-insensitive; unknown or empty means sedentary
}

// CalorieTarget returns the Mifflin-St Jeor BMR scaled by the activity factor,
// rounded to 2 decimals.
func CalorieTarget(in CalorieInput) (float64, error) {
	if !finite(in.Age) || !finite(in.HeightCm) || !finite(in.WeightKg) {
		return 0, apperr.New(apperr.ErrValidation, "Invalid input data")
	}
	age := math.Trunc(in.Age)
	bmr := 10*in.WeightKg + 6.25*in.HeightCm - 5*age
	if in.Gender == "male" { // Case-sensitive: "Male" gets the female constant
		bmr += 5
	} else {
		bmr -= 161
	}
	return Round2(bmr * ActivityFactor(in.ActivityLevel)), nil
}

// ActivityFactor looks up level, defaulting to 1.2.
func ActivityFactor(level string) float64 {
	if f, ok := ActivityFactors[strings.ToLower(strings.TrimSpace(level))]; ok {
		return f
	}
	return defaultActivityFactor
}

// FoodCaloriesResult is the calorie breakdown for a number of servings.
type FoodCaloriesResult struct {
	FoodName           string
	CaloriesPer100g    float64
	TypicalServingSize float64
	CaloriesPerServing float64
	Quantity           float64
	TotalCalories      float64
	Unit               string
}

// FoodCalories looks up foodName (case-insensitive) and scales its typical
// serving by quantity. The name is checked before the quantity, so an unknown
// food is always NotFound.
func FoodCalories(foodName string, quantity float64) (FoodCaloriesResult, error) {
	name := strings.ToLower(strings.TrimSpace(foodName))
	food, ok := models.LookupFood(name)
	if !ok {
		return FoodCaloriesResult{}, apperr.New(apperr.ErrNotFound, "Food item not found in database")
	}
	if !finite(quantity) || quantity < 0 { // Zero servings is a valid, empty plate
		return FoodCaloriesResult{}, apperr.New(apperr.ErrValidation, "Quantity must be a non-negative number")
	}
	perServing := food.CaloriesPerServing()
	return FoodCaloriesResult{
		FoodName:           name,
		CaloriesPer100g:    food.CaloriesPer100g,
		TypicalServingSize: food.ServingSize,
		CaloriesPerServing: Round2(perServing),
		Quantity:           quantity,
		TotalCalories:      Round2(perServing * quantity),
		Unit:               food.Unit,
	}, nil
}

// Round2 rounds half away from zero to 2 decimals.
func Round2(x float64) float64 {
	return math.Round(x*100) / 100
}

func finite(x float64) bool { return !math.IsNaN(x) && !math.IsInf(x, 0) }

func positive(x float64) bool { return finite(x) && x > 0 }
