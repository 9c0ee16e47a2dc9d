package model

import "time"

type Employee struct {
	ID          int64      `json:"id"`
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	Department  string     `json:"department"`
	BasicSalary float64    `json:"basic_salary"`
	CreatedAt   *time.Time `json:"created_at,omitempty"`
}
