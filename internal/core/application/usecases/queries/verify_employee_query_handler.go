package queries

import (
	"context"
	"database/sql"
	"errors"

	"garment/internal/core/domain/model/employee"
	"garment/internal/pkg/errs"

	"gorm.io/gorm"
)

// VerifyEmployeeQueryHandler reads the identity oracle.
type VerifyEmployeeQueryHandler struct {
	db *gorm.DB
}

func NewVerifyEmployeeQueryHandler(db *gorm.DB) VerifyEmployeeQueryHandler {
	return VerifyEmployeeQueryHandler{db: db}
}

// Handle returns the employee view. A missing employee is an ObjectNotFoundError,
// a non-active one is employee.ErrEmployeeInactive.
func (h VerifyEmployeeQueryHandler) Handle(ctx context.Context, query VerifyEmployeeQuery) (*EmployeeView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var view EmployeeView
	err := h.db.WithContext(ctx).Raw(`
		SELECT
			emp_id,
			name,
			department,
			designation_level,
			status
		FROM employees
		WHERE emp_id = ?
	`, query.EmpID()).Row().Scan(
		&view.EmpID,
		&view.Name,
		&view.Department,
		&view.DesignationLevel,
		&view.Status,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errs.NewObjectNotFoundError("empId", query.EmpID())
		}
		return nil, err
	}

	view.Status = string(employee.ParseStatus(view.Status))
	if employee.Status(view.Status) != employee.StatusActive {
		return nil, employee.ErrEmployeeInactive
	}
	return &view, nil
}
