package services

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// auth outcomes
	ErrDuplicateEmail = errors.New("email already registered")
	ErrUserNotFound   = errors.New("user not found")
	ErrWrongPassword  = errors.New("wrong password")

	// employee / attendance outcomes
	ErrEmployeeNotFound = errors.New("employee not found")

	// payroll outcomes
	ErrAlreadyGenerated = errors.New("payroll already generated for period")

	// ErrDataSource classifies storage failures so raw driver errors are
	// never leaked to callers.
	ErrDataSource = errors.New("data source failure")
)

// PartialRunError reports a payroll run that wrote some lines and then failed.
// Processed lists the employee ids already persisted so an operator can
// reconcile the period by hand.
type PartialRunError struct {
	Month     string
	Processed []int64
	FailedID  int64
	Err       error
}

func (e *PartialRunError) Error() string {
	return fmt.Sprintf("partial payroll run for %s: %d lines written, failed at employee %d: %v",
		e.Month, len(e.Processed), e.FailedID, e.Err)
}

func (e *PartialRunError) Unwrap() error { return e.Err }

// isNotFound reports whether err is the driver's empty-result error.
func isNotFound(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

// isUniqueViolation reports whether err is a Postgres unique-constraint
// violation (SQLSTATE 23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
