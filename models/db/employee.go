package dbmodels

import (
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Employee struct {
	BaseModel
	EmployeeCode string `gorm:"type:varchar(20);uniqueIndex"`
	Name         string `gorm:"type:varchar(100)"`
	Email        string `gorm:"type:varchar(120);uniqueIndex"`
	Phone        string `gorm:"type:varchar(20)"`
	Address      string
	DepartmentID *string `gorm:"type:varchar(36);index"`
	Department   *Department
	Position     string `gorm:"type:varchar(100)"`
	HireDate     *time.Time
	Salary       *float64 `gorm:"type:numeric(10,2)"`
	IsActive     bool     `gorm:"default:true"`
}

// AfterDelete удаляет историю посещаемости и отпусков сотрудника.
// Ошибка каскада откатывает транзакцию удаления целиком.
func (e *Employee) AfterDelete(tx *gorm.DB) error {
	if e.ID == "" {
		return nil
	}
	err := tx.Where("employee_id = ?", e.ID).Delete(&AttendanceRecord{}).Error
	if err != nil {
		return err
	}
	return tx.Where("employee_id = ?", e.ID).Delete(&LeaveRequest{}).Error
}

func (e *Employee) Validate() error {
	if e.Name == "" {
		return errors.New("не указано имя сотрудника")
	}
	if e.Email == "" {
		return errors.New("не указана почта сотрудника")
	}
	return nil
}
