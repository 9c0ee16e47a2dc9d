package model

import "time"

type Attendance struct {
	ID         int64     `json:"id"`
	EmployeeID int64     `json:"employee_id"`
	Date       time.Time `json:"date"`
	Status     string    `json:"status"`

	// EmployeeName is populated on joined listings only.
	EmployeeName string `json:"name,omitempty"`
}
