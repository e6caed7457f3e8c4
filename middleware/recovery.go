// recovery.go - Turns panics and unknown routes into response envelopes

package middleware // Declares the package name

import ( // Import required packages
	"fmt" // Panic value formatting
	"log" // Logging recovered panics

	"caloriq-backend/apperr" // Status codes

	"github.com/gin-gonic/gin" // Gin web framework
)

// Recovery replaces gin's default recovery so a panic still produces a JSON
// envelope instead of an empty 500.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.Printf("panic serving %s %s: %v", c.Request.Method, c.Request.URL.Path, recovered)
		c.AbortWithStatusJSON(apperr.SC500.HTTPStatus(), gin.H{
			"statusCode": apperr.SC500,
			"statusDesc": "Internal server error",
			"error":      fmt.Sprint(recovered),
		})
	})
}

// NotFound answers unknown routes and methods with an SC404 envelope.
func NotFound(c *gin.Context) {
	c.AbortWithStatusJSON(apperr.SC404.HTTPStatus(), gin.H{
		"statusCode": apperr.SC404,
		"statusDesc": "Route not found",
	})
}
