package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type StatsRepository struct {
	DB *pgxpool.Pool
}

func NewStatsRepository(db *pgxpool.Pool) *StatsRepository {
	return &StatsRepository{DB: db}
}

func (r *StatsRepository) CountEmployees(ctx context.Context) (int64, error) {
	return r.countAll(ctx, `SELECT COUNT(*) FROM employees`)
}

func (r *StatsRepository) CountPayrolls(ctx context.Context) (int64, error) {
	return r.countAll(ctx, `SELECT COUNT(*) FROM payroll`)
}

func (r *StatsRepository) CountAttendance(ctx context.Context) (int64, error) {
	return r.countAll(ctx, `SELECT COUNT(*) FROM attendance`)
}

func (r *StatsRepository) countAll(ctx context.Context, query string) (int64, error) {
	var total int64
	if err := r.DB.QueryRow(ctx, query).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}
