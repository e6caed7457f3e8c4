// store.go - Handles user registration and login against the users table

package credentials // Declares the package name

import ( // Import required packages
	"context"      // Request scoping for queries
	"errors"       // Error inspection
	"strings"      // Whitespace trimming and driver message matching
	"unicode/utf8" // Password length in characters

	"caloriq-backend/apperr" // Error taxonomy
	"caloriq-backend/models" // User model

	"golang.org/x/crypto/bcrypt" // Password hashing
	"gorm.io/gorm"               // GORM ORM
)

const minPasswordLen = 6 // Minimum password length in characters

// RegisterInput carries the registration form.
type RegisterInput struct {
	FullName        string
	Username        string
	Email           string
	Password        string
	ConfirmPassword string
}

// Store registers and authenticates users.
type Store struct {
	db   *gorm.DB
	cost int // bcrypt cost
}

// NewStore returns a Store over db. An out-of-range cost falls back to bcrypt.DefaultCost.
func NewStore(db *gorm.DB, cost int) *Store {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Store{db: db, cost: cost}
}

// Register validates in, rejects duplicate usernames or emails and stores a
// bcrypt hash of the password.
func (s *Store) Register(ctx context.Context, in RegisterInput) error {
	// STEP 1: Validate the form
	if blank(in.FullName) || blank(in.Username) || blank(in.Email) || blank(in.Password) || blank(in.ConfirmPassword) {
		return apperr.New(apperr.ErrValidation, "All fields are required")
	}
	if in.Password != in.ConfirmPassword {
		return apperr.New(apperr.ErrValidation, "Passwords do not match")
	}
	if utf8.RuneCountInString(in.Password) < minPasswordLen {
		return apperr.New(apperr.ErrValidation, "Password must be at least 6 characters")
	}

	// STEP 2: Hash password before touching the database
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.cost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return apperr.Wrap(apperr.ErrValidation, "Password must be at most 72 bytes", err)
	}
	if err != nil {
		return apperr.Wrap(apperr.ErrStorage, "Registration failed", err)
	}
	user := models.User{FullName: in.FullName, Username: in.Username, Email: in.Email, Password: string(hash)}

	// STEP 3: Check and insert on one dedicated connection, in one transaction
	return s.db.WithContext(ctx).Connection(func(conn *gorm.DB) error {
		return conn.Transaction(func(tx *gorm.DB) error {
			var existing int64
			err := tx.Model(&models.User{}).
				Where("username = ? OR email = ?", in.Username, in.Email).
				Count(&existing).Error
			if err != nil {
				return apperr.Wrap(apperr.ErrStorage, "Registration failed", err)
			}
			if existing > 0 {
				return apperr.New(apperr.ErrConflict, "Username or Email already exists")
			}
			return insert(tx, &user)
		})
	})
}

// insert creates user, turning a unique-constraint violation into a conflict.
func insert(tx *gorm.DB, user *models.User) error {
	err := tx.Create(user).Error
	switch {
	case err == nil:
		return nil
	case isDuplicate(err):
		return apperr.Wrap(apperr.ErrConflict, "Username or Email already exists", err)
	default:
		return apperr.Wrap(apperr.ErrStorage, "Registration failed", err)
	}
}

// Login checks username and password and returns the sanitized user.
func (s *Store) Login(ctx context.Context, username, password string) (*models.UserView, error) {
	if blank(username) || password == "" {
		return nil, apperr.New(apperr.ErrValidation, "Username and password are required")
	}

	var user models.User
	err := s.db.WithContext(ctx).Connection(func(conn *gorm.DB) error {
		return conn.Where("username = ?", username).First(&user).Error
	})
	if errors.Is(err, gorm.ErrRecordNotFound) { // Unknown user looks the same as a wrong password
		return nil, apperr.New(apperr.ErrAuth, "Invalid username or password")
	}
	if err != nil {
		return nil, apperr.Wrap(apperr.ErrStorage, "Login failed", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil { // Check password
		return nil, apperr.New(apperr.ErrAuth, "Invalid username or password")
	}
	return user.View(), nil
}

func blank(s string) bool { return strings.TrimSpace(s) == "" }

// isDuplicate recognizes unique violations; drivers without error translation
// are matched on their message.
func isDuplicate(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") || strings.Contains(msg, "duplicate")
}
