package services

import (
	"fmt"

	"garment/internal/core/domain/model/employee"
	"garment/internal/pkg/errs"
)

// Designation levels; lower is more senior.
const (
	CreatorMaxLevel     = 7
	ApproverMaxLevel    = 7
	HandoverMaxLevel    = 7
	StyleChangeMaxLevel = 5
)

// LoadingGate decides who may act on a loading transaction.
type LoadingGate struct{}

func NewLoadingGate() LoadingGate {
	return LoadingGate{}
}

// AuthorizeCreator requires an active Production employee at level 7 or above.
func (g LoadingGate) AuthorizeCreator(e *employee.Employee) error {
	const action = "create a loading transaction"
	if err := g.active(e, action); err != nil {
		return err
	}
	if err := g.production(e, action); err != nil {
		return err
	}
	return g.level(e, action, CreatorMaxLevel)
}

// AuthorizeApprover requires an active employee of any department at level 7 or above.
func (g LoadingGate) AuthorizeApprover(e *employee.Employee) error {
	const action = "approve a loading transaction"
	if err := g.active(e, action); err != nil {
		return err
	}
	return g.level(e, action, ApproverMaxLevel)
}

// AuthorizeHandover requires an active Production employee at level 7 or above,
// and level 5 or above when the handover substitutes the order's style.
func (g LoadingGate) AuthorizeHandover(e *employee.Employee, styleChange bool) error {
	action := "receive a loading handover"
	if err := g.active(e, action); err != nil {
		return err
	}
	if err := g.production(e, action); err != nil {
		return err
	}
	if styleChange {
		return g.level(e, "receive a handover with a style change", StyleChangeMaxLevel)
	}
	return g.level(e, action, HandoverMaxLevel)
}

func (LoadingGate) active(e *employee.Employee, action string) error {
	if err := e.Validate(); err != nil {
		return err
	}
	if !e.IsActive() {
		return errs.NewPermissionDeniedError(e.EmpID(), action, "employee is not active")
	}
	return nil
}

func (LoadingGate) production(e *employee.Employee, action string) error {
	if !e.InDepartment(employee.DepartmentProduction) {
		return errs.NewPermissionDeniedError(e.EmpID(), action,
			fmt.Sprintf("department %s is not %s", e.Department(), employee.DepartmentProduction))
	}
	return nil
}

func (LoadingGate) level(e *employee.Employee, action string, maxLevel int) error {
	if !e.AtLeast(maxLevel) {
		return errs.NewPermissionDeniedError(e.EmpID(), action,
			fmt.Sprintf("designation level %d above %d", e.DesignationLevel(), maxLevel))
	}
	return nil
}
