// Package employeerepo reads employees, the identity and role oracle of the
// loading gate.
package employeerepo

import (
	"garment/internal/core/domain/model/employee"
)

type EmployeeDTO struct {
	EmpID            string `gorm:"column:emp_id;type:varchar(32);primaryKey"`
	Name             string `gorm:"type:varchar(255);not null"`
	Department       string `gorm:"type:varchar(64);not null"`
	DesignationLevel int    `gorm:"not null"`
	Status           string `gorm:"type:varchar(16);not null"`
}

func (EmployeeDTO) TableName() string {
	return "employees"
}

func FromDomain(e *employee.Employee) EmployeeDTO {
	return EmployeeDTO{
		EmpID:            e.EmpID(),
		Name:             e.Name(),
		Department:       e.Department(),
		DesignationLevel: e.DesignationLevel(),
		Status:           string(e.Status()),
	}
}

func toDomain(dto EmployeeDTO) (*employee.Employee, error) {
	return employee.RestoreEmployee(dto.EmpID, dto.Name, dto.Department, dto.DesignationLevel, employee.Status(dto.Status))
}
