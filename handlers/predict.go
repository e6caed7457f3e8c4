// predict.go - Handles food image classification

package handlers // Declares the package name

import ( // Import required packages
	"context"  // Request scoping
	"errors"   // Error inspection
	"io"       // Reading the upload
	"log"      // Event failures
	"math"     // Rounding
	"net/http" // Body size limit

	"caloriq-backend/apperr"  // Status codes
	"caloriq-backend/imaging" // Preprocessing
	"caloriq-backend/models"  // Class labels

	"github.com/gin-gonic/gin" // Gin web framework
)

// Prediction paths, reported in events.
const (
	PathPrimary  = "primary"
	PathFallback = "fallback"
)

type classProbability struct {
	Label       string  `json:"label"`
	Probability float64 `json:"probability"`
}

type predictResponse struct {
	Envelope
	Prediction     string             `json:"prediction"`
	Confidence     float64            `json:"confidence"`
	PredictedIndex int                `json:"predicted_index"`
	Probabilities  []classProbability `json:"probabilities"`
	CalorieInfo    models.CalorieInfo `json:"calorie_info"`
}

type predictFunc func(ctx context.Context, input *imaging.Tensor) (*models.Prediction, error)

func (h *Handler) Predict(c *gin.Context) { // Primary model, loaded once at startup
	h.predict(c, h.classifier.Predict, PathPrimary)
}

func (h *Handler) PredictAlt(c *gin.Context) { // Fallback model, reloaded per request
	h.predict(c, h.classifier.PredictFresh, PathFallback)
}

func (h *Handler) predict(c *gin.Context, run predictFunc, path string) {
	// STEP 1: Read the upload
	if h.maxUpload > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUpload)
	}
	data, err := readUpload(c)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			badRequest(c, "File too large")
			return
		}
		badRequest(c, "No file uploaded")
		return
	}

	// STEP 2: Decode, resize and normalize
	tensor, err := imaging.Preprocess(data)
	if err != nil {
		fail(c, err, "Invalid image file")
		return
	}

	// STEP 3: Run the model
	pred, err := run(c.Request.Context(), tensor)
	if err != nil {
		fail(c, err, "Prediction failed")
		return
	}

	// STEP 4: Notify subscribers, never failing the request
	if err := h.events.PublishPrediction(pred, path); err != nil {
		log.Printf("publish prediction: %v", err)
	}

	reply(c, apperr.SC200, newPredictResponse(pred))
}

func readUpload(c *gin.Context) ([]byte, error) {
	fh, err := c.FormFile("file") // Multipart field "file"
	if err != nil {
		return nil, err
	}
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}

func newPredictResponse(pred *models.Prediction) predictResponse {
	probs := make([]classProbability, 0, len(pred.Probabilities))
	for i, p := range pred.Probabilities {
		label := ""
		if i < len(models.FoodClasses) {
			label = models.FoodClasses[i].Label
		}
		probs = append(probs, classProbability{Label: label, Probability: p})
	}
	return predictResponse{
		Envelope:       success("Prediction successful"),
		Prediction:     pred.Label,
		Confidence:     math.Round(pred.Confidence*1000) / 1000, // 3 decimals
		PredictedIndex: pred.Index,
		Probabilities:  probs,
		CalorieInfo:    pred.Calories,
	}
}
