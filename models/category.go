package models

import "time"

// Category groups documents of one user under a name ("Factures",
// "Identité", ...).
type Category struct {
	CategoryID string    `json:"category_id"`
	UserID     string    `json:"user_id"`
	Name       string    `json:"name"`
	CreatedAt  time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Category model.
func (c Category) TableName() string {
	return "categories"
}
