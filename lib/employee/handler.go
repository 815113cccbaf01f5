package employeehandler

import (
	"time"

	log "github.com/sirupsen/logrus"
	"hr-attendance-backend/db"
	auditprovider "hr-attendance-backend/lib/audit"
	"hr-attendance-backend/lib/employee/store"
	apperrors "hr-attendance-backend/lib/utils/apperrors"
	initchecker "hr-attendance-backend/lib/utils/init-checker"
	"hr-attendance-backend/models"
	employeeapimodels "hr-attendance-backend/models/api/employee"
	dbmodels "hr-attendance-backend/models/db"
)

const dateLayout = "2006-01-02"

type Provider interface {
	Create(adminID string, request employeeapimodels.EmployeeData) (id string, err error)
	Update(adminID, id string, request employeeapimodels.EmployeeData) error
	Get(id string) (item employeeapimodels.EmployeeView, err error)
	List(departmentID string, activeOnly bool) (list []employeeapimodels.EmployeeView, err error)
	Delete(adminID, id string) error
	Managers() (list []employeeapimodels.ManagerCandidate, err error)
}

var Instance Provider

func NewHandler() {
	instance := impl{
		store: store.NewInstance(db.DB),
		audit: auditprovider.Instance,
	}
	initchecker.CheckInit(
		"store", instance.store,
		"audit", instance.audit,
	)
	Instance = instance
}

type impl struct {
	store store.Provider
	audit auditprovider.Provider
}

func (i impl) Create(adminID string, request employeeapimodels.EmployeeData) (string, error) {
	err := request.Validate()
	if err != nil {
		return "", apperrors.NewValidation(err.Error())
	}
	rec := dbmodels.Employee{
		EmployeeCode: request.EmployeeCode,
		Name:         request.Name,
		Email:        request.Email,
		Phone:        request.Phone,
		Address:      request.Address,
		DepartmentID: request.DepartmentID,
		Position:     request.Position,
		Salary:       request.Salary,
		IsActive:     true,
	}
	if request.HireDate != "" {
		hireDate, err := time.Parse(dateLayout, request.HireDate)
		if err != nil {
			return "", apperrors.NewValidation("недопустимый формат даты приёма, ожидается YYYY-MM-DD")
		}
		rec.HireDate = &hireDate
	}
	if rec.EmployeeCode == "" {
		rec.EmployeeCode, err = i.store.NextEmployeeCode()
		if err != nil {
			return "", err
		}
	}
	id, err := i.store.Create(rec)
	if err != nil {
		return "", err
	}
	i.audit.Log(auditprovider.Entry{
		AdminID:   adminID,
		Action:    models.AuditCreate,
		TableName: "employees",
		RecordID:  id,
		NewValues: employeeSnapshot(rec),
	})
	log.
		WithField("employee_code", rec.EmployeeCode).
		WithField("rec_id", id).
		Info("создан сотрудник")
	return id, nil
}

func (i impl) Update(adminID, id string, request employeeapimodels.EmployeeData) error {
	err := request.Validate()
	if err != nil {
		return apperrors.NewValidation(err.Error())
	}
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return apperrors.NewNotFound("сотрудник не найден")
	}
	updMap := map[string]interface{}{
		"name":          request.Name,
		"email":         request.Email,
		"phone":         request.Phone,
		"address":       request.Address,
		"department_id": request.DepartmentID,
		"position":      request.Position,
		"salary":        request.Salary,
	}
	if request.EmployeeCode != "" {
		updMap["employee_code"] = request.EmployeeCode
	}
	if request.HireDate != "" {
		hireDate, err := time.Parse(dateLayout, request.HireDate)
		if err != nil {
			return apperrors.NewValidation("недопустимый формат даты приёма, ожидается YYYY-MM-DD")
		}
		updMap["hire_date"] = hireDate
	}
	err = i.store.Update(id, updMap)
	if err != nil {
		return err
	}
	updated, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	i.audit.Log(auditprovider.Entry{
		AdminID:   adminID,
		Action:    models.AuditUpdate,
		TableName: "employees",
		RecordID:  id,
		OldValues: employeeSnapshot(*rec),
		NewValues: employeeSnapshot(*updated),
	})
	log.
		WithField("rec_id", id).
		Info("обновлён сотрудник")
	return nil
}

func (i impl) Get(id string) (employeeapimodels.EmployeeView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return employeeapimodels.EmployeeView{}, err
	}
	if rec == nil {
		return employeeapimodels.EmployeeView{}, apperrors.NewNotFound("сотрудник не найден")
	}
	return employeeapimodels.EmployeeConvert(*rec), nil
}

func (i impl) List(departmentID string, activeOnly bool) ([]employeeapimodels.EmployeeView, error) {
	recList, err := i.store.List(departmentID, activeOnly)
	if err != nil {
		return nil, err
	}
	list := make([]employeeapimodels.EmployeeView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, employeeapimodels.EmployeeConvert(rec))
	}
	return list, nil
}

// Delete удаляет сотрудника вместе с историей посещаемости и отпусков
func (i impl) Delete(adminID, id string) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return apperrors.NewNotFound("сотрудник не найден")
	}
	err = i.store.Delete(id)
	if err != nil {
		return err
	}
	i.audit.Log(auditprovider.Entry{
		AdminID:   adminID,
		Action:    models.AuditDelete,
		TableName: "employees",
		RecordID:  id,
		OldValues: employeeSnapshot(*rec),
	})
	log.
		WithField("rec_id", id).
		Info("удалён сотрудник")
	return nil
}

func (i impl) Managers() ([]employeeapimodels.ManagerCandidate, error) {
	recList, err := i.store.List("", true)
	if err != nil {
		return nil, err
	}
	list := make([]employeeapimodels.ManagerCandidate, 0, len(recList))
	for _, rec := range recList {
		item := employeeapimodels.ManagerCandidate{
			ID:           rec.ID,
			Name:         rec.Name,
			EmployeeCode: rec.EmployeeCode,
			Position:     rec.Position,
		}
		if rec.Department != nil {
			item.DepartmentName = rec.Department.Name
		}
		list = append(list, item)
	}
	return list, nil
}

func employeeSnapshot(rec dbmodels.Employee) dbmodels.EntitySnapshot {
	snapshot := dbmodels.EntitySnapshot{
		"employee_code": rec.EmployeeCode,
		"name":          rec.Name,
		"email":         rec.Email,
		"phone":         rec.Phone,
		"position":      rec.Position,
		"is_active":     rec.IsActive,
	}
	if rec.DepartmentID != nil {
		snapshot["department_id"] = *rec.DepartmentID
	}
	if rec.HireDate != nil {
		snapshot["hire_date"] = rec.HireDate.Format(dateLayout)
	}
	return snapshot
}
