package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/DevWithNeha/payroll-system/internal/model"
)

// Deduction/addition rates applied to the basic salary. Illustrative
// percentages, not jurisdiction-correct.
const (
	hraRate = 0.15
	daRate  = 0.05
	pfRate  = 0.10
	tdsRate = 0.03
)

// EmployeeSource provides the payroll snapshot.
type EmployeeSource interface {
	GetAll(ctx context.Context) ([]model.Employee, error)
}

// PayrollLedger persists generated payroll lines.
type PayrollLedger interface {
	Insert(ctx context.Context, p model.Payroll) (int64, error)
	GetAll(ctx context.Context) ([]model.Payroll, error)
}

// PayslipSender notifies an employee of a generated payslip. Optional.
type PayslipSender interface {
	SendPayslipEmail(ctx context.Context, toEmail, month string, net float64) error
}

type PayrollService struct {
	Employees EmployeeSource
	Ledger    PayrollLedger
	Mailer    PayslipSender // nil disables notifications
}

func NewPayrollService(e EmployeeSource, l PayrollLedger, m PayslipSender) *PayrollService {
	return &PayrollService{Employees: e, Ledger: l, Mailer: m}
}

// RunResult summarizes one payroll run.
type RunResult struct {
	Month     string `json:"month"`
	RunRef    string `json:"run_ref"`
	Generated int    `json:"generated"`
	Notified  int    `json:"notified,omitempty"`
}

// computeLine derives one payroll line from an employee's basic salary.
// Negative or zero basic flows through the same formula unrejected.
func computeLine(e model.Employee, month string) model.Payroll {
	basic := e.BasicSalary
	hra := basic * hraRate
	da := basic * daRate
	pf := basic * pfRate
	tds := basic * tdsRate
	return model.Payroll{
		EmployeeID: e.ID,
		Month:      month,
		Basic:      basic,
		HRA:        hra,
		DA:         da,
		PF:         pf,
		TDS:        tds,
		NetSalary:  basic + hra + da - pf - tds,
	}
}

// currentPeriod returns the calendar year-month label for now.
func currentPeriod(now time.Time) string {
	return now.Format("2006-01")
}

// Run snapshots every employee, computes one payroll line each, and persists
// them for the current period. A snapshot failure aborts before any write.
// Inserts are not transactional: a mid-run failure leaves earlier lines in
// place and is reported as a PartialRunError, never as success. A period that
// was already generated (including the loser of two concurrent runs) yields
// ErrAlreadyGenerated via the ledger's uniqueness guard.
func (s *PayrollService) Run(ctx context.Context) (*RunResult, error) {
	employees, err := s.Employees.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDataSource, err)
	}

	month := currentPeriod(time.Now())
	runRef := fmt.Sprintf("RUN-%s-%s", month, uuid.NewString())

	processed := make([]int64, 0, len(employees))
	lines := make([]model.Payroll, 0, len(employees))
	for _, e := range employees {
		line := computeLine(e, month)
		if _, err := s.Ledger.Insert(ctx, line); err != nil {
			cause := fmt.Errorf("%w: %v", ErrDataSource, err)
			if isUniqueViolation(err) {
				cause = ErrAlreadyGenerated
			}
			if len(processed) == 0 {
				return nil, cause
			}
			return nil, &PartialRunError{Month: month, Processed: processed, FailedID: e.ID, Err: cause}
		}
		processed = append(processed, e.ID)
		lines = append(lines, line)
	}

	notified := 0
	if s.Mailer != nil {
		notified = s.notify(ctx, employees, lines, runRef)
	}

	return &RunResult{Month: month, RunRef: runRef, Generated: len(processed), Notified: notified}, nil
}

// notify sends payslip mails best-effort; failures are logged, not returned.
func (s *PayrollService) notify(ctx context.Context, employees []model.Employee, lines []model.Payroll, runRef string) int {
	sent := 0
	for i, e := range employees {
		if e.Email == "" {
			continue
		}
		if err := s.Mailer.SendPayslipEmail(ctx, e.Email, lines[i].Month, lines[i].NetSalary); err != nil {
			log.Printf("payslip mail failed (%s, employee %d): %v", runRef, e.ID, err)
			continue
		}
		sent++
	}
	return sent
}

// List returns all generated payroll lines joined with employee names.
func (s *PayrollService) List(ctx context.Context) ([]model.Payroll, error) {
	list, err := s.Ledger.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDataSource, err)
	}
	return list, nil
}
