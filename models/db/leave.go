package dbmodels

import (
	"time"

	"github.com/pkg/errors"
	"hr-attendance-backend/models"
)

type LeaveRequest struct {
	BaseModel
	EmployeeID string    `gorm:"type:varchar(36);index"`
	Employee   *Employee `gorm:"foreignKey:EmployeeID"`
	LeaveType  models.LeaveType `gorm:"type:varchar(50)"`
	StartDate  time.Time        `gorm:"type:date"`
	EndDate    time.Time        `gorm:"type:date"`
	DaysCount  int
	Reason     string
	Status     models.LeaveStatus `gorm:"type:varchar(20);default:pending"`
	ApprovedBy string             `gorm:"type:varchar(36)"`
	ApprovedAt *time.Time
}

func (l *LeaveRequest) Validate() error {
	if l.EmployeeID == "" {
		return errors.New("не указан сотрудник")
	}
	if !l.LeaveType.IsValid() {
		return errors.Errorf("недопустимый тип отпуска: %s", l.LeaveType)
	}
	if l.StartDate.IsZero() || l.EndDate.IsZero() {
		return errors.New("не указан период отпуска")
	}
	if l.EndDate.Before(l.StartDate) {
		return errors.New("дата окончания раньше даты начала")
	}
	return nil
}
