package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/DevWithNeha/payroll-system/internal/model"
)

type PayrollRepository struct {
	DB *pgxpool.Pool
}

func NewPayrollRepository(db *pgxpool.Pool) *PayrollRepository {
	return &PayrollRepository{DB: db}
}

// Insert writes one payroll line. The (employee_id, month) unique index makes
// a duplicate period surface as a pgconn unique-violation.
func (r *PayrollRepository) Insert(ctx context.Context, p model.Payroll) (int64, error) {
	var id int64
	query := `INSERT INTO payroll (employee_id, month, basic, hra, da, pf, tds, net_salary, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			RETURNING id`
	if err := r.DB.QueryRow(ctx, query,
		p.EmployeeID, p.Month, p.Basic, p.HRA, p.DA, p.PF, p.TDS, p.NetSalary, time.Now()).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

// GetAll returns payroll lines joined with the employee name, newest first.
func (r *PayrollRepository) GetAll(ctx context.Context) ([]model.Payroll, error) {
	query := `
		SELECT p.id, p.employee_id, p.month, p.basic, p.hra, p.da, p.pf, p.tds, p.net_salary, p.created_at, e.name
		FROM payroll p
		JOIN employees e ON p.employee_id = e.id
		ORDER BY p.id DESC`
	rows, err := r.DB.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []model.Payroll{}
	for rows.Next() {
		var p model.Payroll
		if err := rows.Scan(&p.ID, &p.EmployeeID, &p.Month, &p.Basic, &p.HRA, &p.DA, &p.PF, &p.TDS, &p.NetSalary, &p.CreatedAt, &p.EmployeeName); err != nil {
			return nil, err
		}
		list = append(list, p)
	}
	return list, rows.Err()
}
