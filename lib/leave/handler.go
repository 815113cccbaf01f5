package leavehandler

import (
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"hr-attendance-backend/db"
	auditprovider "hr-attendance-backend/lib/audit"
	employeestore "hr-attendance-backend/lib/employee/store"
	"hr-attendance-backend/lib/leave/store"
	"hr-attendance-backend/lib/smtp"
	apperrors "hr-attendance-backend/lib/utils/apperrors"
	initchecker "hr-attendance-backend/lib/utils/init-checker"
	"hr-attendance-backend/models"
	leaveapimodels "hr-attendance-backend/models/api/leave"
	dbmodels "hr-attendance-backend/models/db"
)

const dateLayout = "2006-01-02"

type Provider interface {
	Create(adminID string, request leaveapimodels.LeaveData) (id string, err error)
	Get(id string) (item leaveapimodels.LeaveView, err error)
	List(status models.LeaveStatus, employeeID string) (list []leaveapimodels.LeaveView, err error)
	Resolve(adminID, id string, request leaveapimodels.ResolveRequest) error
}

var Instance Provider

func NewHandler() {
	instance := impl{
		store:         store.NewInstance(db.DB),
		employeeStore: employeestore.NewInstance(db.DB),
		audit:         auditprovider.Instance,
		emailSender:   smtp.Instance,
	}
	initchecker.CheckInit(
		"store", instance.store,
		"employeeStore", instance.employeeStore,
		"audit", instance.audit,
		"emailSender", instance.emailSender,
	)
	Instance = instance
}

type impl struct {
	store         store.Provider
	employeeStore employeestore.Provider
	audit         auditprovider.Provider
	emailSender   smtp.Provider
}

func (i impl) Create(adminID string, request leaveapimodels.LeaveData) (string, error) {
	err := request.Validate()
	if err != nil {
		return "", apperrors.NewValidation(err.Error())
	}
	employee, err := i.employeeStore.GetByID(request.EmployeeID)
	if err != nil {
		return "", err
	}
	if employee == nil {
		return "", apperrors.NewNotFound("сотрудник не найден")
	}
	startDate, err := time.Parse(dateLayout, request.StartDate)
	if err != nil {
		return "", apperrors.NewValidation("недопустимый формат даты начала, ожидается YYYY-MM-DD")
	}
	endDate, err := time.Parse(dateLayout, request.EndDate)
	if err != nil {
		return "", apperrors.NewValidation("недопустимый формат даты окончания, ожидается YYYY-MM-DD")
	}
	if endDate.Before(startDate) {
		return "", apperrors.NewValidation("дата окончания раньше даты начала")
	}
	rec := dbmodels.LeaveRequest{
		EmployeeID: request.EmployeeID,
		LeaveType:  request.LeaveType,
		StartDate:  startDate,
		EndDate:    endDate,
		DaysCount:  int(endDate.Sub(startDate).Hours()/24) + 1,
		Reason:     request.Reason,
		Status:     models.LeavePending,
	}
	id, err := i.store.Create(rec)
	if err != nil {
		return "", err
	}
	i.audit.Log(auditprovider.Entry{
		AdminID:   adminID,
		Action:    models.AuditCreate,
		TableName: "leave_requests",
		RecordID:  id,
		NewValues: leaveSnapshot(rec),
	})
	log.
		WithField("employee_id", rec.EmployeeID).
		WithField("rec_id", id).
		Info("создана заявка на отпуск")
	return id, nil
}

func (i impl) Get(id string) (leaveapimodels.LeaveView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return leaveapimodels.LeaveView{}, err
	}
	if rec == nil {
		return leaveapimodels.LeaveView{}, apperrors.NewNotFound("заявка на отпуск не найдена")
	}
	return leaveapimodels.LeaveConvert(*rec), nil
}

func (i impl) List(status models.LeaveStatus, employeeID string) ([]leaveapimodels.LeaveView, error) {
	recList, err := i.store.List(status, employeeID)
	if err != nil {
		return nil, err
	}
	list := make([]leaveapimodels.LeaveView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, leaveapimodels.LeaveConvert(rec))
	}
	return list, nil
}

// Resolve утверждает или отклоняет заявку, решение окончательное
func (i impl) Resolve(adminID, id string, request leaveapimodels.ResolveRequest) error {
	err := request.Validate()
	if err != nil {
		return apperrors.NewValidation(err.Error())
	}
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return apperrors.NewNotFound("заявка на отпуск не найдена")
	}
	if rec.Status != models.LeavePending {
		return apperrors.NewConflict("заявка уже рассмотрена")
	}
	status := models.LeaveApproved
	if request.Action == "reject" {
		status = models.LeaveRejected
	}
	now := time.Now()
	err = i.store.Resolve(id, status, adminID, now)
	if err != nil {
		return err
	}
	updated := *rec
	updated.Status = status
	updated.ApprovedBy = adminID
	updated.ApprovedAt = &now
	i.audit.Log(auditprovider.Entry{
		AdminID:   adminID,
		Action:    models.AuditUpdate,
		TableName: "leave_requests",
		RecordID:  id,
		OldValues: leaveSnapshot(*rec),
		NewValues: leaveSnapshot(updated),
	})
	log.
		WithField("rec_id", id).
		WithField("status", status).
		Info("заявка на отпуск рассмотрена")

	i.notifyEmployee(updated)
	return nil
}

// уведомление сотрудника не влияет на результат операции
func (i impl) notifyEmployee(rec dbmodels.LeaveRequest) {
	if rec.Employee == nil || rec.Employee.Email == "" {
		return
	}
	decision := "утверждена"
	if rec.Status == models.LeaveRejected {
		decision = "отклонена"
	}
	message := fmt.Sprintf("Ваша заявка на отпуск с %s по %s %s.",
		rec.StartDate.Format(dateLayout), rec.EndDate.Format(dateLayout), decision)
	err := i.emailSender.SendEMail("hr", rec.Employee.Email, message, "Заявка на отпуск")
	if err != nil {
		log.
			WithError(err).
			WithField("rec_id", rec.ID).
			Error("не удалось отправить уведомление сотруднику")
	}
}

func leaveSnapshot(rec dbmodels.LeaveRequest) dbmodels.EntitySnapshot {
	snapshot := dbmodels.EntitySnapshot{
		"employee_id": rec.EmployeeID,
		"leave_type":  string(rec.LeaveType),
		"start_date":  rec.StartDate.Format(dateLayout),
		"end_date":    rec.EndDate.Format(dateLayout),
		"days_count":  rec.DaysCount,
		"reason":      rec.Reason,
		"status":      string(rec.Status),
	}
	if rec.ApprovedBy != "" {
		snapshot["approved_by"] = rec.ApprovedBy
	}
	return snapshot
}
