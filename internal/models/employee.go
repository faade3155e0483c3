package models

import (
	"math"
	"time"
)

// MaxID is the largest value the store can hold in an id column (int4).
const MaxID = math.MaxInt32

// Employee represents an employee entity of the directory.
type Employee struct {
	ID         int       `json:"id"`
	EmployeeID string    `json:"employee_id"`
	FullName   string    `json:"full_name"`
	Email      string    `json:"email"`
	Department string    `json:"department"`
	CreatedAt  time.Time `json:"created_at"`
}

// Acknowledgement confirms an operation that has no record to return.
type Acknowledgement struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// IDStorable reports whether id fits the store's id columns. Larger ids cannot name a stored row.
func IDStorable(id int) bool {
	return id <= MaxID
}
