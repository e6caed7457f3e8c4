// model.go - Model abstraction and output normalization

package inference // Declares the package name

import ( // Import required packages
	"math" // Exponentials for softmax

	"caloriq-backend/imaging" // Input tensor
)

// Model runs a forward pass of a loaded classifier.
type Model interface {
	// Run returns the raw output vector for a single-image batch.
	Run(input *imaging.Tensor) ([]float32, error)
	Close() error
}

// Loader loads a Model from an artifact on disk.
type Loader func(path string) (Model, error)

// Softmax normalizes logits into a probability distribution. It is applied
// even to outputs that already are probabilities.
func Softmax(logits []float32) []float64 {
	if len(logits) == 0 {
		return nil
	}
	maxLogit := math.Inf(-1) // Subtracted before exp to avoid overflow
	for _, v := range logits {
		maxLogit = math.Max(maxLogit, float64(v))
	}
	out := make([]float64, len(logits))
	var sum float64
	for i, v := range logits {
		out[i] = math.Exp(float64(v) - maxLogit)
		sum += out[i]
	}
	for i := range out {
		out[i] /= sum
	}
	return out
}

// Argmax returns the index of the largest value; the first wins on ties.
func Argmax(values []float64) int {
	best := 0
	for i, v := range values {
		if v > values[best] {
			best = i
		}
	}
	return best
}
