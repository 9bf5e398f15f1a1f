// Package models contains data structures for the application's domain models.
package models

import "time"

// User represents a registered complimentor account. Users are created at
// registration and never updated or deleted afterwards.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"size:20;uniqueIndex;not null" json:"username"`
	Name      string    `gorm:"size:20;not null" json:"name"`
	Password  string    `gorm:"size:100;not null" json:"-"`
	Admin     bool      `json:"admin"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
