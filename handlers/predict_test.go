// predict_test.go - Automated tests for the prediction handlers and router fallbacks
// Run with: go test ./...

package handlers

import (
	"bytes"             // For building request bodies
	"errors"            // Model failure cause
	"image"             // Test image
	"image/color"       // Pixel colours
	"image/png"         // Encoding the upload
	"mime/multipart"    // Multipart bodies
	"net/http"          // HTTP status codes
	"net/http/httptest" // HTTP test helpers
	"testing"           // Go's testing package

	"caloriq-backend/apperr" // Error taxonomy
	"caloriq-backend/models" // Food classes

	"github.com/gin-gonic/gin"            // Gin web framework
	"github.com/stretchr/testify/assert"  // For assertions
	"github.com/stretchr/testify/require" // Fatal assertions
)

// pizzaPrediction puts most of the mass on pizza.
func pizzaPrediction() *models.Prediction {
	probs := make([]float64, len(models.FoodClasses))
	idx := 0
	for i, f := range models.FoodClasses {
		probs[i] = 0.01
		if f.Label == "pizza" {
			idx = i
		}
	}
	probs[idx] = 1 - 0.01*float64(len(probs)-1)
	food, _ := models.LookupFood("pizza")
	return &models.Prediction{
		Label:         "pizza",
		Index:         idx,
		Confidence:    probs[idx],
		Probabilities: probs,
		Calories: models.CalorieInfo{
			CaloriesPer100g:    food.CaloriesPer100g,
			TypicalServingSize: food.ServingSize,
			CaloriesPerServing: food.CaloriesPerServing(),
			Unit:               food.Unit,
		},
	}
}

func pngBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 16, 12))
	for y := 0; y < 12; y++ {
		for x := 0; x < 16; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 16), G: uint8(y * 20), B: 90, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

// upload posts data as the multipart field named field.
func upload(t *testing.T, r http.Handler, path, field string, data []byte) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile(field, "meal.png")
	require.NoError(t, err)
	_, err = fw.Write(data)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	r.ServeHTTP(w, req)
	return w, decode(t, w)
}

// TestPredict tests the primary path end to end
func TestPredict(t *testing.T) {
	env := setupRouter(t)

	// --- Test envelope and prediction ---
	w, body := upload(t, env.router, "/predict", "file", pngBytes(t))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "SC200", body["statusCode"])
	assert.Equal(t, "Prediction successful", body["statusDesc"])
	assert.Equal(t, "pizza", body["prediction"])
	assert.InDelta(t, 0.81, body["confidence"], 1e-9)

	// --- Test per-class probabilities ---
	probs, ok := body["probabilities"].([]any)
	require.True(t, ok)
	assert.Len(t, probs, len(models.FoodClasses))
	first := probs[0].(map[string]any)
	assert.Equal(t, models.FoodClasses[0].Label, first["label"])

	// --- Test calorie info ---
	info := body["calorie_info"].(map[string]any)
	assert.InDelta(t, 266, info["calories_per_100g"], 1e-9)
	assert.InDelta(t, 332.5, info["calories_per_serving"], 1e-9)
	assert.Equal(t, "grams", info["unit"])

	// --- Test model path and event ---
	assert.Equal(t, []string{"primary"}, env.classifier.calls)
	assert.Equal(t, []string{PathPrimary}, env.events.paths)
}

func TestPredictAlt_UsesFallback(t *testing.T) {
	env := setupRouter(t)

	w, body := upload(t, env.router, "/predict_alt", "file", pngBytes(t))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "pizza", body["prediction"])
	assert.Contains(t, body, "calorie_info")
	assert.Equal(t, []string{"fallback"}, env.classifier.calls)
	assert.Equal(t, []string{PathFallback}, env.events.paths)
}

func TestPredict_NoFile(t *testing.T) {
	env := setupRouter(t)

	// --- Test wrong field name ---
	w, body := upload(t, env.router, "/predict", "image", pngBytes(t))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "No file uploaded", body["statusDesc"])

	// --- Test body that is not multipart ---
	w, body = postJSON(t, env.router, "/predict_alt", map[string]any{"file": "x"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "No file uploaded", body["statusDesc"])
	assert.Empty(t, env.classifier.calls)
}

func TestPredict_InvalidImage(t *testing.T) {
	env := setupRouter(t)

	w, body := upload(t, env.router, "/predict", "file", []byte("definitely not an image"))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "SC400", body["statusCode"])
	assert.Equal(t, "Invalid image file", body["statusDesc"])
	assert.Empty(t, env.classifier.calls)
}

// TestPredict_TooLarge tests that bodies over the upload limit are rejected
func TestPredict_TooLarge(t *testing.T) {
	env := setupRouter(t) // Upload limit is 1 MiB

	big := make([]byte, 3<<20) // 3 MiB
	w, body := upload(t, env.router, "/predict", "file", big)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "SC400", body["statusCode"])
	assert.Equal(t, "File too large", body["statusDesc"])
	assert.Empty(t, env.classifier.calls) // Never reaches the model
}

func TestPredict_ModelFailure(t *testing.T) {
	env := setupRouter(t)
	env.classifier.pred = nil
	env.classifier.err = apperr.Wrap(apperr.ErrInference, "Prediction failed", errors.New("session run: boom"))

	w, body := upload(t, env.router, "/predict", "file", pngBytes(t))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "SC500", body["statusCode"])
	assert.Equal(t, "Prediction failed", body["statusDesc"])
	assert.Contains(t, body["error"], "boom")
	assert.Empty(t, env.events.paths)
}

func TestRouter_PanicNotFoundAndCORS(t *testing.T) {
	env := setupRouter(t)
	env.router.GET("/boom", func(*gin.Context) { panic("kaboom") })

	// --- Test panic becomes an SC500 envelope ---
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/boom", nil)
	env.router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	body := decode(t, w)
	assert.Equal(t, "SC500", body["statusCode"])
	assert.Equal(t, "kaboom", body["error"])

	// --- Test unknown route ---
	w = httptest.NewRecorder()
	req, _ = http.NewRequest(http.MethodGet, "/nope", nil)
	env.router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "SC404", decode(t, w)["statusCode"])

	// --- Test known route, wrong method ---
	w = httptest.NewRecorder()
	req, _ = http.NewRequest(http.MethodGet, "/predict", nil)
	env.router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// --- Test CORS preflight ---
	w = httptest.NewRecorder()
	req, _ = http.NewRequest(http.MethodOptions, "/predict", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	env.router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))

	// --- Test liveness probe ---
	w = httptest.NewRecorder()
	req, _ = http.NewRequest(http.MethodGet, "/health", nil)
	env.router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "SC200", decode(t, w)["statusCode"])
}
