package users

import "time"

// User is an editor account for the catalog admin. Public gallery
// routes need no account; mutations require role "editor".
type User struct {
	ID       uint `gorm:"primaryKey"`
	Name     string
	Email    string `gorm:"not null;uniqueIndex:idx_users_email"`
	Password string `gorm:"not null"`
	Role     string `gorm:"not null;default:'editor'"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
