package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/DevWithNeha/payroll-system/internal/model"
)

type AttendanceRepository struct {
	DB *pgxpool.Pool
}

func NewAttendanceRepository(db *pgxpool.Pool) *AttendanceRepository {
	return &AttendanceRepository{DB: db}
}

func (r *AttendanceRepository) Create(ctx context.Context, employeeID int64, date time.Time, status string) (int64, error) {
	var id int64
	query := `INSERT INTO attendance (employee_id, date, status, created_at) VALUES ($1, $2, $3, $4) RETURNING id`
	if err := r.DB.QueryRow(ctx, query, employeeID, date, status, time.Now()).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

// GetAll returns attendance rows joined with the employee name, newest first.
func (r *AttendanceRepository) GetAll(ctx context.Context) ([]model.Attendance, error) {
	query := `
		SELECT a.id, a.employee_id, a.date, a.status, e.name
		FROM attendance a
		JOIN employees e ON a.employee_id = e.id
		ORDER BY a.id DESC`
	rows, err := r.DB.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []model.Attendance{}
	for rows.Next() {
		var a model.Attendance
		if err := rows.Scan(&a.ID, &a.EmployeeID, &a.Date, &a.Status, &a.EmployeeName); err != nil {
			return nil, err
		}
		list = append(list, a)
	}
	return list, rows.Err()
}
