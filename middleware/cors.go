// cors.go - Cross-origin headers for browser clients

package middleware // Declares the package name

import ( // Import required packages
	"net/http" // HTTP methods
	"time"     // Preflight cache lifetime

	"github.com/gin-contrib/cors" // CORS middleware for Gin
	"github.com/gin-gonic/gin"    // Gin web framework
)

// CORS allows any origin to call the API. Preflight requests are answered by
// the middleware with 204 and never reach a handler.
func CORS() gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowAllOrigins: true, // Mobile and web clients on any host
		AllowMethods:    []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:    []string{"Origin", "Content-Type", "Accept", "X-Requested-With"},
		MaxAge:          12 * time.Hour, // Browsers may cache the preflight
	})
}
