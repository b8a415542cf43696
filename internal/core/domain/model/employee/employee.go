// Package employee is the core's view of the identity and role oracle.
// Employees are read-only here and used only to gate loading actions.
package employee

import (
	"errors"
	"strings"

	"garment/internal/pkg/errs"
)

// DepartmentProduction is the department allowed to create and receive loadings.
const DepartmentProduction = "Production"

type Status string

const (
	StatusActive   Status = "ACTIVE"
	StatusInactive Status = "INACTIVE"
)

// ParseStatus normalizes a stored status; rows are not consistent about case.
func ParseStatus(raw string) Status {
	return Status(strings.ToUpper(strings.TrimSpace(raw)))
}

var (
	ErrEmployeeIsNotConstructed = errors.New("employee must be created via RestoreEmployee")
	// ErrEmployeeInactive is returned when a non-active employee is verified or gated.
	ErrEmployeeInactive = errs.NewValueIsInvalidError("employee is not active")
)

// Employee carries the attributes used for gating. A lower designation level
// means a more senior role.
type Employee struct {
	empID            string
	name             string
	department       string
	designationLevel int
	status           Status

	isConstructed bool
}

func RestoreEmployee(empID, name, department string, designationLevel int, status Status) (*Employee, error) {
	if strings.TrimSpace(empID) == "" {
		return nil, errs.NewValueIsRequiredError("empId")
	}
	if designationLevel <= 0 {
		return nil, errs.NewValueIsOutOfRangeError("designationLevel", designationLevel, 1, "unbounded")
	}
	return &Employee{
		empID:            empID,
		name:             name,
		department:       department,
		designationLevel: designationLevel,
		status:           ParseStatus(string(status)),
		isConstructed:    true,
	}, nil
}

func (e *Employee) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrEmployeeIsNotConstructed
	}
	return nil
}

func (e *Employee) EmpID() string         { return e.empID }
func (e *Employee) Name() string          { return e.name }
func (e *Employee) Department() string    { return e.department }
func (e *Employee) DesignationLevel() int { return e.designationLevel }
func (e *Employee) Status() Status        { return e.status }

func (e *Employee) IsActive() bool {
	return e.status == StatusActive
}

// InDepartment compares department names case-insensitively.
func (e *Employee) InDepartment(department string) bool {
	return strings.EqualFold(strings.TrimSpace(e.department), department)
}

// AtLeast reports whether the employee is at the given seniority or above.
func (e *Employee) AtLeast(level int) bool {
	return e.designationLevel <= level
}
