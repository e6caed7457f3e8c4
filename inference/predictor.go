// predictor.go - Runs classification and joins results with calorie data

package inference // Declares the package name

import ( // Import required packages
	"context" // Cancellation check before inference
	"fmt"     // Error formatting
	"math"    // Finiteness checks
	"sync"    // Serializes access to the shared model

	"caloriq-backend/apperr"  // Error taxonomy
	"caloriq-backend/imaging" // Input tensor
	"caloriq-backend/models"  // Food classes and prediction result
)

// Defaults joined onto a label that has no calorie data.
const (
	defaultCaloriesPer100g = 0
	defaultServingSize     = 100
)

// Predictor owns the primary model for the process lifetime and can also
// serve a call from a freshly loaded fallback model.
type Predictor struct {
	mu           sync.Mutex // Held for every forward pass of the primary model
	primary      Model
	load         Loader
	fallbackPath string
	classes      []models.FoodClass
}

// NewPredictor loads the primary model once. classes must be in model output order.
func NewPredictor(load Loader, primaryPath, fallbackPath string, classes []models.FoodClass) (*Predictor, error) {
	if len(classes) == 0 {
		return nil, fmt.Errorf("predictor needs at least one class")
	}
	primary, err := load(primaryPath)
	if err != nil {
		return nil, fmt.Errorf("load primary model: %w", err)
	}
	return &Predictor{primary: primary, load: load, fallbackPath: fallbackPath, classes: classes}, nil
}

// Predict classifies input with the shared primary model. Calls are serialized
// so no two forward passes share runtime state.
func (p *Predictor) Predict(ctx context.Context, input *imaging.Tensor) (*models.Prediction, error) {
	if err := ctx.Err(); err != nil {
		return nil, apperr.Wrap(apperr.ErrInference, "Prediction failed", err)
	}
	p.mu.Lock()
	raw, err := p.primary.Run(input)
	p.mu.Unlock()
	if err != nil {
		return nil, apperr.Wrap(apperr.ErrInference, "Prediction failed", err)
	}
	return p.finish(raw)
}

// PredictFresh loads the fallback model for this call only, trading latency
// for isolation from any state held by the primary model.
func (p *Predictor) PredictFresh(ctx context.Context, input *imaging.Tensor) (pred *models.Prediction, err error) {
	if err := ctx.Err(); err != nil {
		return nil, apperr.Wrap(apperr.ErrInference, "Prediction failed", err)
	}
	model, err := p.load(p.fallbackPath)
	if err != nil {
		return nil, apperr.Wrap(apperr.ErrInference, "Prediction failed", fmt.Errorf("load fallback model: %w", err))
	}
	defer func() {
		if cerr := model.Close(); cerr != nil && err == nil {
			pred, err = nil, apperr.Wrap(apperr.ErrInference, "Prediction failed", fmt.Errorf("release fallback model: %w", cerr))
		}
	}()

	raw, err := model.Run(input)
	if err != nil {
		return nil, apperr.Wrap(apperr.ErrInference, "Prediction failed", err)
	}
	return p.finish(raw)
}

// Close releases the primary model.
func (p *Predictor) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.primary.Close()
}

// finish normalizes raw output, picks the top class and joins calorie data.
func (p *Predictor) finish(raw []float32) (*models.Prediction, error) {
	if len(raw) != len(p.classes) {
		return nil, apperr.Wrap(apperr.ErrInference, "Prediction failed",
			fmt.Errorf("model returned %d outputs for %d classes", len(raw), len(p.classes)))
	}
	probs := Softmax(raw)
	for _, v := range probs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, apperr.Wrap(apperr.ErrInference, "Prediction failed", fmt.Errorf("model returned non-finite output"))
		}
	}

	idx := Argmax(probs)
	label := p.classes[idx].Label
	return &models.Prediction{
		Label:         label,
		Index:         idx,
		Confidence:    probs[idx],
		Probabilities: probs,
		Calories:      calorieInfo(label),
	}, nil
}

// calorieInfo joins label against the food table.
func calorieInfo(label string) models.CalorieInfo {
	food, ok := models.LookupFood(label)
	if !ok {
		food = models.FoodClass{Label: label, CaloriesPer100g: defaultCaloriesPer100g, ServingSize: defaultServingSize, Unit: models.UnitGrams}
	}
	return models.CalorieInfo{
		CaloriesPer100g:    food.CaloriesPer100g,
		TypicalServingSize: food.ServingSize,
		CaloriesPerServing: math.Round(food.CaloriesPerServing()*100) / 100,
		Unit:               food.Unit,
	}
}
