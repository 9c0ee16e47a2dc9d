package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/DevWithNeha/payroll-system/internal/model"
)

type EmployeeRepository struct {
	DB *pgxpool.Pool
}

func NewEmployeeRepository(db *pgxpool.Pool) *EmployeeRepository {
	return &EmployeeRepository{DB: db}
}

func (r *EmployeeRepository) Create(ctx context.Context, name, email, department string, basicSalary float64) (int64, error) {
	var id int64
	query := `INSERT INTO employees (name, email, department, basic_salary, created_at) VALUES ($1, $2, $3, $4, $5) RETURNING id`
	if err := r.DB.QueryRow(ctx, query, name, email, department, basicSalary, time.Now()).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

// GetAll returns every employee, newest first.
func (r *EmployeeRepository) GetAll(ctx context.Context) ([]model.Employee, error) {
	query := `SELECT id, name, email, department, basic_salary, created_at FROM employees ORDER BY id DESC`
	rows, err := r.DB.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []model.Employee{}
	for rows.Next() {
		var e model.Employee
		if err := rows.Scan(&e.ID, &e.Name, &e.Email, &e.Department, &e.BasicSalary, &e.CreatedAt); err != nil {
			return nil, err
		}
		list = append(list, e)
	}
	return list, rows.Err()
}

func (r *EmployeeRepository) GetByID(ctx context.Context, id int64) (*model.Employee, error) {
	var e model.Employee
	query := `SELECT id, name, email, department, basic_salary, created_at FROM employees WHERE id=$1`
	if err := r.DB.QueryRow(ctx, query, id).Scan(&e.ID, &e.Name, &e.Email, &e.Department, &e.BasicSalary, &e.CreatedAt); err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *EmployeeRepository) Update(ctx context.Context, id int64, name, email, department string, basicSalary float64) (bool, error) {
	query := `UPDATE employees SET name=$1, email=$2, department=$3, basic_salary=$4 WHERE id=$5`
	tag, err := r.DB.Exec(ctx, query, name, email, department, basicSalary, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *EmployeeRepository) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.DB.Exec(ctx, `DELETE FROM employees WHERE id=$1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
