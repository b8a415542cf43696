// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return read models shaped for the cutting floor and loading screens.
package queries

import (
	"errors"
	"strings"

	"garment/internal/pkg/errs"
	"garment/internal/pkg/guard"
)

var (
	ErrVerifyEmployeeQueryIsNotConstructed = errors.New(
		"VerifyEmployeeQuery must be created via NewVerifyEmployeeQuery constructor",
	)
)

// VerifyEmployeeQuery checks that an employee exists and is active before the
// loading wizard continues.
//
// Example:
//
//	query, err := NewVerifyEmployeeQuery("E-1042")
//	if err != nil {
//	    return err
//	}
//
//	view, err := handler.Handle(ctx, query)
//	if errors.Is(err, employee.ErrEmployeeInactive) {
//	    // ask for another employee id
//	}
type VerifyEmployeeQuery struct {
	empID string
	guard guard.ConstructorGuard
}

func NewVerifyEmployeeQuery(empID string) (VerifyEmployeeQuery, error) {
	empID = strings.TrimSpace(empID)
	if empID == "" {
		return VerifyEmployeeQuery{}, errs.NewValueIsRequiredError("empId")
	}
	return VerifyEmployeeQuery{empID: empID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q VerifyEmployeeQuery) Validate() error {
	return q.guard.Validate(ErrVerifyEmployeeQueryIsNotConstructed)
}

func (q VerifyEmployeeQuery) EmpID() string { return q.empID }

// EmployeeView is what the loading screens show about a verified employee.
type EmployeeView struct {
	EmpID            string
	Name             string
	Department       string
	DesignationLevel int
	Status           string
}
