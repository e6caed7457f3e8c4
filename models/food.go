// food.go - Static food classes known to the classifier and their calorie data

package models // Declares the package name

const ( // Serving units
	UnitGrams = "grams" // Solid foods, servings in grams
	UnitML    = "ml"    // Beverages, servings in millilitres
)

// FoodClass is one label of the classifier with its calorie reference data.
type FoodClass struct {
	Label           string  // Label as emitted by the model
	CaloriesPer100g float64 // kcal per 100 g (or 100 ml for beverages)
	ServingSize     float64 // Typical serving in grams (or ml)
	Unit            string  // UnitGrams or UnitML
}

// CaloriesPerServing scales the per-100g figure to one typical serving.
func (f FoodClass) CaloriesPerServing() float64 {
	return f.CaloriesPer100g * f.ServingSize / 100
}

// FoodClasses lists every class in model output order. Index i of the model's
// output vector corresponds to FoodClasses[i]. Servings for idli, jalebi,
// momos, paani_puri, pakode and samosa are per piece; pizza is per slice.
var FoodClasses = []FoodClass{
	{Label: "burger", CaloriesPer100g: 295, ServingSize: 150, Unit: UnitGrams},
	{Label: "butter_naan", CaloriesPer100g: 320, ServingSize: 80, Unit: UnitGrams},
	{Label: "chai", CaloriesPer100g: 37, ServingSize: 200, Unit: UnitML},
	{Label: "chapati", CaloriesPer100g: 297, ServingSize: 40, Unit: UnitGrams},
	{Label: "chole_bhature", CaloriesPer100g: 320, ServingSize: 200, Unit: UnitGrams},
	{Label: "dal_makhani", CaloriesPer100g: 142, ServingSize: 150, Unit: UnitGrams},
	{Label: "dhokla", CaloriesPer100g: 160, ServingSize: 100, Unit: UnitGrams},
	{Label: "fried_rice", CaloriesPer100g: 163, ServingSize: 200, Unit: UnitGrams},
	{Label: "idli", CaloriesPer100g: 58, ServingSize: 50, Unit: UnitGrams},
	{Label: "jalebi", CaloriesPer100g: 495, ServingSize: 25, Unit: UnitGrams},
	{Label: "kaathi_rolls", CaloriesPer100g: 235, ServingSize: 120, Unit: UnitGrams},
	{Label: "kadai_paneer", CaloriesPer100g: 180, ServingSize: 150, Unit: UnitGrams},
	{Label: "kulfi", CaloriesPer100g: 223, ServingSize: 100, Unit: UnitGrams},
	{Label: "masala_dosa", CaloriesPer100g: 135, ServingSize: 150, Unit: UnitGrams},
	{Label: "momos", CaloriesPer100g: 154, ServingSize: 25, Unit: UnitGrams},
	{Label: "paani_puri", CaloriesPer100g: 329, ServingSize: 15, Unit: UnitGrams},
	{Label: "pakode", CaloriesPer100g: 285, ServingSize: 30, Unit: UnitGrams},
	{Label: "pav_bhaji", CaloriesPer100g: 105, ServingSize: 200, Unit: UnitGrams},
	{Label: "pizza", CaloriesPer100g: 266, ServingSize: 125, Unit: UnitGrams},
	{Label: "samosa", CaloriesPer100g: 308, ServingSize: 50, Unit: UnitGrams},
}

var foodByLabel = func() map[string]FoodClass { // Index built once at start
	m := make(map[string]FoodClass, len(FoodClasses))
	for _, f := range FoodClasses {
		m[f.Label] = f
	}
	return m
}()

// LookupFood returns the class with the given lower-case label.
func LookupFood(label string) (FoodClass, bool) {
	f, ok := foodByLabel[label]
	return f, ok
}
