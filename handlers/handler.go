// handler.go - Handler dependencies and route table

package handlers // Declares the package name

import ( // Import required packages
	"context" // Request scoping

	"caloriq-backend/credentials" // Registration input
	"caloriq-backend/imaging"     // Input tensor
	"caloriq-backend/middleware"  // CORS and recovery
	"caloriq-backend/models"      // Users and predictions

	"github.com/gin-gonic/gin" // Gin web framework
)

// UserStore registers and authenticates users.
type UserStore interface {
	Register(ctx context.Context, in credentials.RegisterInput) error
	Login(ctx context.Context, username, password string) (*models.UserView, error)
}

// Classifier predicts a food class from a preprocessed image.
type Classifier interface {
	Predict(ctx context.Context, input *imaging.Tensor) (*models.Prediction, error)
	PredictFresh(ctx context.Context, input *imaging.Tensor) (*models.Prediction, error)
}

// EventPublisher receives every successful prediction.
type EventPublisher interface {
	PublishPrediction(pred *models.Prediction, path string) error
}

type noEvents struct{}

func (noEvents) PublishPrediction(*models.Prediction, string) error { return nil }

// Handler holds the dependencies shared by all endpoints.
type Handler struct {
	users      UserStore
	classifier Classifier
	events     EventPublisher
	maxUpload  int64 // Max request body for uploads, in bytes
}

// New builds a Handler. A nil events publisher disables prediction events.
func New(users UserStore, classifier Classifier, events EventPublisher, maxUploadBytes int64) *Handler {
	if events == nil {
		events = noEvents{}
	}
	return &Handler{users: users, classifier: classifier, events: events, maxUpload: maxUploadBytes}
}

// NewRouter creates the Gin engine with middleware and every route.
func NewRouter(h *Handler) *gin.Engine {
	r := gin.New()                             // Create a new Gin router (web server)
	r.Use(gin.Logger(), middleware.Recovery()) // Request log, envelope on panic
	r.Use(middleware.CORS())                   // Browser clients
	r.MaxMultipartMemory = h.maxUpload         // Keep uploads in memory up to the limit
	r.HandleMethodNotAllowed = true            // Route NoMethod through the envelope too
	r.NoRoute(middleware.NotFound)             // Unknown path
	r.NoMethod(middleware.NotFound)            // Known path, wrong method

	// Accounts
	r.POST("/authAdapter", h.Register) // Registration
	r.POST("/login", h.Login)          // Password check

	// Calculators
	r.POST("/bmi", h.BMI)                    // Body mass index
	r.POST("/calorie", h.Calorie)            // Daily calorie target
	r.POST("/food-calories", h.FoodCalories) // Calorie lookup

	// Classification
	r.POST("/predict", h.Predict)        // Shared primary model
	r.POST("/predict_alt", h.PredictAlt) // Fallback model reloaded per call

	r.GET("/health", h.Health) // Liveness probe
	return r
}
