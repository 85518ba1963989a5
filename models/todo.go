package models

import "time"

// Todo is an item on one user's list. Ownership is fixed at creation and
// every store lookup is scoped by UserID.
type Todo struct {
	ID        string    `json:"id"`
	UserID    int64     `json:"userId"`
	Title     string    `json:"title"`
	DueDate   time.Time `json:"dueDate"`
	Done      bool      `json:"done"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type User struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Password  string    `json:"-"` // bcrypt digest, never serialized
	CreatedAt time.Time `json:"createdAt"`
}
