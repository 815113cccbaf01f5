package departmentapimodels

import (
	"time"

	"github.com/pkg/errors"
	dbmodels "hr-attendance-backend/models/db"
)

type DepartmentData struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	ManagerID   *string `json:"manager_id"`
	IsActive    *bool   `json:"is_active"`
}

func (r DepartmentData) Validate() error {
	if r.Name == "" {
		return errors.New("не указано название подразделения")
	}
	return nil
}

type DepartmentView struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description,omitempty"`
	ManagerID     *string   `json:"manager_id"`
	ManagerName   string    `json:"manager_name,omitempty"`
	IsActive      bool      `json:"is_active"`
	EmployeeCount int64     `json:"employee_count"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func DepartmentConvert(rec dbmodels.Department, employeeCount int64) DepartmentView {
	view := DepartmentView{
		ID:            rec.ID,
		Name:          rec.Name,
		Description:   rec.Description,
		ManagerID:     rec.ManagerID,
		IsActive:      rec.IsActive,
		EmployeeCount: employeeCount,
		CreatedAt:     rec.CreatedAt,
		UpdatedAt:     rec.UpdatedAt,
	}
	if rec.Manager != nil {
		view.ManagerName = rec.Manager.Name
	}
	return view
}
