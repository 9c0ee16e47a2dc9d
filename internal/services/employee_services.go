package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/DevWithNeha/payroll-system/internal/model"
)

// EmployeeStore is the employee master-data contract consumed here and, for
// the snapshot, by PayrollService.
type EmployeeStore interface {
	Create(ctx context.Context, name, email, department string, basicSalary float64) (int64, error)
	GetAll(ctx context.Context) ([]model.Employee, error)
	GetByID(ctx context.Context, id int64) (*model.Employee, error)
	Update(ctx context.Context, id int64, name, email, department string, basicSalary float64) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type EmployeeService struct {
	Repo EmployeeStore
}

func NewEmployeeService(r EmployeeStore) *EmployeeService {
	return &EmployeeService{Repo: r}
}

func (s *EmployeeService) CreateEmployee(ctx context.Context, name, email, department string, basicSalary float64) (int64, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return 0, fmt.Errorf("employee name is required")
	}
	id, err := s.Repo.Create(ctx, name, email, department, basicSalary)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrDataSource, err)
	}
	return id, nil
}

func (s *EmployeeService) ListEmployees(ctx context.Context) ([]model.Employee, error) {
	list, err := s.Repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDataSource, err)
	}
	return list, nil
}

func (s *EmployeeService) UpdateEmployee(ctx context.Context, id int64, name, email, department string, basicSalary float64) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("employee name is required")
	}
	ok, err := s.Repo.Update(ctx, id, name, email, department, basicSalary)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDataSource, err)
	}
	if !ok {
		return ErrEmployeeNotFound
	}
	return nil
}

func (s *EmployeeService) DeleteEmployee(ctx context.Context, id int64) error {
	ok, err := s.Repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDataSource, err)
	}
	if !ok {
		return ErrEmployeeNotFound
	}
	return nil
}
