package leaveapimodels

import (
	"time"

	"github.com/pkg/errors"
	"hr-attendance-backend/models"
	dbmodels "hr-attendance-backend/models/db"
)

type LeaveData struct {
	EmployeeID string           `json:"employee_id"`
	LeaveType  models.LeaveType `json:"leave_type"`
	StartDate  string           `json:"start_date"` // YYYY-MM-DD
	EndDate    string           `json:"end_date"`   // YYYY-MM-DD
	Reason     string           `json:"reason"`
}

func (r LeaveData) Validate() error {
	if r.EmployeeID == "" {
		return errors.New("не указан сотрудник")
	}
	if !r.LeaveType.IsValid() {
		return errors.Errorf("недопустимый тип отпуска: %s", r.LeaveType)
	}
	if r.StartDate == "" || r.EndDate == "" {
		return errors.New("не указан период отпуска")
	}
	return nil
}

type ResolveRequest struct {
	Action string `json:"action"` // approve | reject
}

func (r ResolveRequest) Validate() error {
	if r.Action != "approve" && r.Action != "reject" {
		return errors.New("недопустимое действие")
	}
	return nil
}

type LeaveView struct {
	ID           string             `json:"id"`
	EmployeeID   string             `json:"employee_id"`
	EmployeeName string             `json:"employee_name,omitempty"`
	LeaveType    models.LeaveType   `json:"leave_type"`
	StartDate    string             `json:"start_date"`
	EndDate      string             `json:"end_date"`
	DaysCount    int                `json:"days_count"`
	Reason       string             `json:"reason,omitempty"`
	Status       models.LeaveStatus `json:"status"`
	ApprovedAt   *time.Time         `json:"approved_at,omitempty"`
	CreatedAt    time.Time          `json:"created_at"`
}

func LeaveConvert(rec dbmodels.LeaveRequest) LeaveView {
	view := LeaveView{
		ID:         rec.ID,
		EmployeeID: rec.EmployeeID,
		LeaveType:  rec.LeaveType,
		StartDate:  rec.StartDate.Format("2006-01-02"),
		EndDate:    rec.EndDate.Format("2006-01-02"),
		DaysCount:  rec.DaysCount,
		Reason:     rec.Reason,
		Status:     rec.Status,
		ApprovedAt: rec.ApprovedAt,
		CreatedAt:  rec.CreatedAt,
	}
	if rec.Employee != nil {
		view.EmployeeName = rec.Employee.Name
	}
	return view
}
