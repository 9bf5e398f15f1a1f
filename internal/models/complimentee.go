package models

import "time"

// Complimentee is the public target of a compliment page, looked up by its
// URL slug. OwnerID is a soft reference to the creating user; the owner is
// fixed at creation.
type Complimentee struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:50;uniqueIndex;not null" json:"name"`
	Slug      string    `gorm:"size:50;uniqueIndex;not null" json:"url"`
	Greeting  string    `gorm:"size:1000" json:"greeting,omitempty"`
	OwnerID   uint      `gorm:"index;not null" json:"owner_id"`
	Theme     *Theme    `gorm:"foreignKey:ComplimenteeID" json:"theme,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
