// main.go - Entry point for the food classification backend server

package main // Declares the package name

import ( // Import required packages
	"context"   // Shutdown deadline
	"errors"    // Server close detection
	"fmt"       // Error wrapping
	"log"       // Logging
	"net/http"  // HTTP server
	"os"        // Signals
	"os/signal" // Signal context
	"syscall"   // SIGTERM
	"time"      // Timeouts

	"caloriq-backend/config"      // Project config management
	"caloriq-backend/credentials" // Registration and login
	"caloriq-backend/database"    // Database connection and setup
	"caloriq-backend/handlers"    // HTTP handlers for API endpoints
	"caloriq-backend/inference"   // Food classifier
	"caloriq-backend/models"      // Food class table
	"caloriq-backend/mqtt"        // Prediction events

	"github.com/gin-gonic/gin"   // Gin web framework
	"golang.org/x/sync/errgroup" // Server and shutdown goroutines
)

const shutdownTimeout = 5 * time.Second // Grace period for in-flight requests

func main() { // Main function, program entry point
	if err := run(); err != nil {
		log.Fatal(err) // Deferred cleanup in run has already happened
	}
	log.Println("server stopped")
}

// run wires every component and serves until a signal arrives. Each failure
// returns through the deferred cleanup of what was opened before it.
func run() error {
	// STEP 1: Load configuration and establish connections
	cfg := config.Load() // Load configuration (DB, model paths, MQTT broker)
	gin.SetMode(cfg.GinMode)
	log.Printf("starting with %s", cfg)

	db, err := database.Open(cfg.DBDriver, cfg.DBDSN) // Connect to the database and migrate
	if err != nil {
		return fmt.Errorf("DB connection error: %w", err)
	}
	defer database.Close(db)

	publisher, err := mqtt.Connect(cfg.MQTTBroker, cfg.MQTTClientID, cfg.MQTTTopic) // Optional event stream, before the slow model load
	if err != nil {
		return fmt.Errorf("MQTT connection error: %w", err)
	}
	defer publisher.Close()

	defer inference.ShutdownRuntime()
	predictor, err := inference.NewPredictor( // Load the primary model once
		inference.ONNXLoader(cfg.OnnxRuntimeLib, len(models.FoodClasses)),
		cfg.ModelPath, cfg.FallbackModelPath, models.FoodClasses,
	)
	if err != nil {
		return fmt.Errorf("model load error: %w", err)
	}
	defer predictor.Close()

	// STEP 2: Create Gin router and configure routes
	h := handlers.New(credentials.NewStore(db, cfg.BcryptCost), predictor, publisher, cfg.MaxUploadMB<<20)
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handlers.NewRouter(h),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// STEP 3: Start the web server and wait for a signal
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Printf("listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done() // Signal received or server failed
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
