package model

import "time"

// Payroll is one generated payroll line: all amounts derive from the basic
// salary at generation time, and net = basic + hra + da - pf - tds.
type Payroll struct {
	ID         int64      `json:"id"`
	EmployeeID int64      `json:"employee_id"`
	Month      string     `json:"month"` // calendar period label, YYYY-MM
	Basic      float64    `json:"basic"`
	HRA        float64    `json:"hra"`
	DA         float64    `json:"da"`
	PF         float64    `json:"pf"`
	TDS        float64    `json:"tds"`
	NetSalary  float64    `json:"net_salary"`
	CreatedAt  *time.Time `json:"created_at,omitempty"`

	// EmployeeName is populated on joined listings only.
	EmployeeName string `json:"name,omitempty"`
}
