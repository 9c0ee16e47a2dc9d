package services

import (
	"context"
	"fmt"
	"time"

	"github.com/DevWithNeha/payroll-system/internal/model"
)

type AttendanceStore interface {
	Create(ctx context.Context, employeeID int64, date time.Time, status string) (int64, error)
	GetAll(ctx context.Context) ([]model.Attendance, error)
}

type AttendanceService struct {
	Repo AttendanceStore
}

func NewAttendanceService(r AttendanceStore) *AttendanceService {
	return &AttendanceService{Repo: r}
}

// Mark records one attendance row for an employee on a date.
func (s *AttendanceService) Mark(ctx context.Context, employeeID int64, date time.Time, status string) (int64, error) {
	if employeeID <= 0 {
		return 0, fmt.Errorf("employee id is required")
	}
	if status == "" {
		return 0, fmt.Errorf("status is required")
	}
	id, err := s.Repo.Create(ctx, employeeID, date, status)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrDataSource, err)
	}
	return id, nil
}

func (s *AttendanceService) ListAttendance(ctx context.Context) ([]model.Attendance, error) {
	list, err := s.Repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDataSource, err)
	}
	return list, nil
}
