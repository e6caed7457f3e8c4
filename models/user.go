// user.go - Defines the User model for the database

package models // Declares the package name

// User is a registered account. It maps to the `users` table.
type User struct {
	ID       uint   `gorm:"primaryKey;autoIncrement"`                   // Unique user ID (primary key)
	FullName string `gorm:"column:full_name;size:100"`                  // Display name
	Username string `gorm:"column:username;size:100;uniqueIndex"`       // Login name (must be unique)
	Email    string `gorm:"column:email;size:100"`                      // Contact email
	Password string `gorm:"column:password;size:255;not null" json:"-"` // Bcrypt hash, never the plaintext
}

// UserView is the sanitized user record returned to clients (no password).
type UserView struct {
	ID       uint   `json:"id"`
	FullName string `json:"fullName"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// View strips the password hash from u.
func (u *User) View() *UserView {
	return &UserView{ID: u.ID, FullName: u.FullName, Username: u.Username, Email: u.Email}
}
