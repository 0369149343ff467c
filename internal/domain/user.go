package domain

// User Model
type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`                    // Primary key
	Username string `gorm:"unique;not null;size:64" json:"username"` // Unique lowercase username
	Password string `gorm:"not null" json:"-"`                       // Hashed password, never serialized
}

// Profile returns the public part of the user handed back on login
func (u User) Profile() UserProfile {
	return UserProfile{ID: u.ID, Username: u.Username}
}

// UserProfile is the user record a client keeps in its local store
type UserProfile struct {
	ID       uint   `json:"id"`       // User ID
	Username string `json:"username"` // Username
}
