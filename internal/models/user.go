package models

import (
	"strings"

	"gorm.io/gorm"
)

// User is an account that can log in and hold family memberships.
//
// The user is never deleted through the API, it only attributes resources
// to their creator.
type User struct {
	DefaultModel
	Email        string `json:"email" gorm:"uniqueIndex" example:"jane@example.com"`
	PasswordHash string `json:"-"`
	FirstName    string `json:"firstName" example:"Jane"`
	LastName     string `json:"lastName" example:"Doe"`
}

func (u *User) BeforeSave(_ *gorm.DB) error {
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	u.FirstName = strings.TrimSpace(u.FirstName)
	u.LastName = strings.TrimSpace(u.LastName)

	return nil
}

// UserByEmail returns the user registered with the email address.
func UserByEmail(db *gorm.DB, email string) (User, error) {
	var user User
	err := db.Where("email = ?", strings.ToLower(strings.TrimSpace(email))).First(&user).Error
	return user, err
}
