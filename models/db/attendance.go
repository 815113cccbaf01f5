package dbmodels

import (
	"time"

	"github.com/pkg/errors"
	"hr-attendance-backend/models"
)

// AttendanceRecord — отметка посещаемости, не более одной на пару (сотрудник, дата)
type AttendanceRecord struct {
	BaseModel
	EmployeeID    string    `gorm:"type:varchar(36);uniqueIndex:idx_employee_date,priority:1"`
	Employee      *Employee `gorm:"foreignKey:EmployeeID"`
	Date          time.Time `gorm:"type:date;uniqueIndex:idx_employee_date,priority:2;index"`
	Status        models.AttendanceStatus `gorm:"type:varchar(20)"`
	CheckInTime   *time.Time
	CheckOutTime  *time.Time
	TotalHours    *float64 `gorm:"type:numeric(4,2)"`
	OvertimeHours float64  `gorm:"type:numeric(4,2);default:0"`
	Notes         string
	MarkedBy      string `gorm:"type:varchar(36)"`
}

func (r *AttendanceRecord) Validate() error {
	if r.EmployeeID == "" {
		return errors.New("не указан сотрудник")
	}
	if r.Date.IsZero() {
		return errors.New("не указана дата")
	}
	if !r.Status.IsValid() {
		return errors.Errorf("недопустимый статус посещаемости: %s", r.Status)
	}
	return nil
}
