package employeeapimodels

import (
	"time"

	"github.com/pkg/errors"
	dbmodels "hr-attendance-backend/models/db"
)

type EmployeeData struct {
	EmployeeCode string   `json:"employee_id"`
	Name         string   `json:"name"`
	Email        string   `json:"email"`
	Phone        string   `json:"phone"`
	Address      string   `json:"address"`
	DepartmentID *string  `json:"department_id"`
	Position     string   `json:"position"`
	HireDate     string   `json:"hire_date"` // YYYY-MM-DD
	Salary       *float64 `json:"salary"`
}

func (r EmployeeData) Validate() error {
	if r.Name == "" {
		return errors.New("не указано имя сотрудника")
	}
	if r.Email == "" {
		return errors.New("не указана почта сотрудника")
	}
	return nil
}

type EmployeeView struct {
	ID             string    `json:"id"`
	EmployeeCode   string    `json:"employee_id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone,omitempty"`
	Address        string    `json:"address,omitempty"`
	DepartmentID   *string   `json:"department_id"`
	DepartmentName string    `json:"department_name,omitempty"`
	Position       string    `json:"position,omitempty"`
	HireDate       string    `json:"hire_date,omitempty"`
	Salary         *float64  `json:"salary,omitempty"`
	IsActive       bool      `json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func EmployeeConvert(rec dbmodels.Employee) EmployeeView {
	view := EmployeeView{
		ID:           rec.ID,
		EmployeeCode: rec.EmployeeCode,
		Name:         rec.Name,
		Email:        rec.Email,
		Phone:        rec.Phone,
		Address:      rec.Address,
		DepartmentID: rec.DepartmentID,
		Position:     rec.Position,
		Salary:       rec.Salary,
		IsActive:     rec.IsActive,
		CreatedAt:    rec.CreatedAt,
		UpdatedAt:    rec.UpdatedAt,
	}
	if rec.HireDate != nil {
		view.HireDate = rec.HireDate.Format("2006-01-02")
	}
	if rec.Department != nil {
		view.DepartmentName = rec.Department.Name
	}
	return view
}

type ManagerCandidate struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	EmployeeCode   string `json:"employee_id"`
	Position       string `json:"position,omitempty"`
	DepartmentName string `json:"department_name"`
}
