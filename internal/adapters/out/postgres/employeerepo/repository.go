package employeerepo

import (
	"context"
	"errors"
	"strings"

	"garment/internal/core/domain/model/employee"
	"garment/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormEmployeeRepository implements ports.EmployeeRepository using GORM.
type GormEmployeeRepository struct {
	db *gorm.DB
}

func NewGormEmployeeRepository(db *gorm.DB) *GormEmployeeRepository {
	return &GormEmployeeRepository{db: db}
}

func (r *GormEmployeeRepository) Get(ctx context.Context, empID string) (*employee.Employee, error) {
	empID = strings.TrimSpace(empID)
	if empID == "" {
		return nil, errs.NewValueIsRequiredError("empId")
	}

	var dto EmployeeDTO
	if err := r.db.WithContext(ctx).First(&dto, "emp_id = ?", empID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("employee", empID)
		}
		return nil, err
	}
	return toDomain(dto)
}
