package services

import (
	"context"
	"fmt"
)

type StatsStore interface {
	CountEmployees(ctx context.Context) (int64, error)
	CountPayrolls(ctx context.Context) (int64, error)
	CountAttendance(ctx context.Context) (int64, error)
}

// Stats holds the dashboard counters.
type Stats struct {
	Employees  int64 `json:"employees"`
	Payrolls   int64 `json:"payrolls"`
	Attendance int64 `json:"attendance"`
}

type StatsService struct {
	Repo StatsStore
}

func NewStatsService(r StatsStore) *StatsService {
	return &StatsService{Repo: r}
}

func (s *StatsService) Dashboard(ctx context.Context) (*Stats, error) {
	employees, err := s.Repo.CountEmployees(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDataSource, err)
	}
	payrolls, err := s.Repo.CountPayrolls(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDataSource, err)
	}
	attendance, err := s.Repo.CountAttendance(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDataSource, err)
	}
	return &Stats{Employees: employees, Payrolls: payrolls, Attendance: attendance}, nil
}
