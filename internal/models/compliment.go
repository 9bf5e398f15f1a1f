package models

import "time"

// GenderAny is the reserved gender label for compliments that apply to any
// gender pool. It is not a row in the genders table.
const GenderAny = "Any"

// Gender is a moderation-controlled categorical tag. Only admins create
// genders; they are never mutated or deleted.
type Gender struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Label     string    `gorm:"size:50;uniqueIndex;not null" json:"gender"`
	CreatedAt time.Time `json:"created_at"`
}

// Compliment is a short text item scoped either to a gender pool or to one
// complimentee, never both. Gender-scoped compliments have a nil
// ComplimenteeID and require admin approval before display; personal
// compliments have a nil Gender and are approved at creation.
type Compliment struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	Text           string    `gorm:"size:255;not null" json:"compliment"`
	Gender         *string   `gorm:"size:50;index" json:"gender,omitempty"`
	ComplimenteeID *uint     `gorm:"index" json:"complimentee_id,omitempty"`
	Approved       bool      `json:"approved"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// Personal reports whether the compliment is tied to a complimentee.
func (c *Compliment) Personal() bool {
	return c.ComplimenteeID != nil
}
