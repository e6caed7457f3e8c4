// user.go - Handles user registration and login

package handlers // Declares the package name

import ( // Import required packages
	"caloriq-backend/apperr"      // Status codes
	"caloriq-backend/credentials" // Registration input
	"caloriq-backend/models"      // Public user view

	"github.com/gin-gonic/gin" // Gin web framework
)

type RegisterInput struct { // Struct for registration input
	FullName        string `json:"fullName"`        // Display name
	Username        string `json:"username"`        // Unique login name
	Email           string `json:"email"`           // Unique email
	Password        string `json:"password"`        // Plain password, hashed by the store
	ConfirmPassword string `json:"confirmPassword"` // Must equal Password
}

type LoginInput struct { // Struct for login input
	Username string `json:"username"` // Login name
	Password string `json:"password"` // Plain password
}

type loginResponse struct {
	Envelope
	User *models.UserView `json:"user"`
}

func (h *Handler) Register(c *gin.Context) { // Handler for user registration
	var input RegisterInput                          // Declare input variable
	if err := c.ShouldBindJSON(&input); err != nil { // Parse JSON input
		badRequest(c, "Invalid request body") // Return error if invalid
		return
	}
	err := h.users.Register(c.Request.Context(), credentials.RegisterInput{ // Validate and save user
		FullName:        input.FullName,
		Username:        input.Username,
		Email:           input.Email,
		Password:        input.Password,
		ConfirmPassword: input.ConfirmPassword,
	})
	if err != nil {
		fail(c, err, "Registration failed")
		return
	}
	reply(c, apperr.SC200, success("Registration successful! Please login.")) // Success response
}

func (h *Handler) Login(c *gin.Context) { // Handler for user login
	var input LoginInput                             // Declare input variable
	if err := c.ShouldBindJSON(&input); err != nil { // Parse JSON input
		badRequest(c, "Invalid request body") // Return error if invalid
		return
	}
	user, err := h.users.Login(c.Request.Context(), input.Username, input.Password) // Check credentials
	if err != nil {
		fail(c, err, "Login failed")
		return
	}
	reply(c, apperr.SC200, loginResponse{Envelope: success("Login successful"), User: user}) // Return the user, never the hash
}
