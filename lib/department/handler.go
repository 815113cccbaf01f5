package departmentprovider

import (
	log "github.com/sirupsen/logrus"
	"hr-attendance-backend/db"
	auditprovider "hr-attendance-backend/lib/audit"
	"hr-attendance-backend/lib/department/store"
	employeestore "hr-attendance-backend/lib/employee/store"
	apperrors "hr-attendance-backend/lib/utils/apperrors"
	initchecker "hr-attendance-backend/lib/utils/init-checker"
	"hr-attendance-backend/models"
	departmentapimodels "hr-attendance-backend/models/api/department"
	dbmodels "hr-attendance-backend/models/db"
)

type Provider interface {
	Create(adminID string, request departmentapimodels.DepartmentData) (id string, err error)
	Update(adminID, id string, request departmentapimodels.DepartmentData) error
	Get(id string) (item departmentapimodels.DepartmentView, err error)
	List() (list []departmentapimodels.DepartmentView, err error)
	Delete(adminID, id string) error
}

var Instance Provider

func NewHandler() {
	instance := impl{
		store:         store.NewInstance(db.DB),
		employeeStore: employeestore.NewInstance(db.DB),
		audit:         auditprovider.Instance,
	}
	initchecker.CheckInit(
		"store", instance.store,
		"employeeStore", instance.employeeStore,
		"audit", instance.audit,
	)
	Instance = instance
}

type impl struct {
	store         store.Provider
	employeeStore employeestore.Provider
	audit         auditprovider.Provider
}

func (i impl) Create(adminID string, request departmentapimodels.DepartmentData) (string, error) {
	err := request.Validate()
	if err != nil {
		return "", apperrors.NewValidation(err.Error())
	}
	rec := dbmodels.Department{
		Name:        request.Name,
		Description: request.Description,
		ManagerID:   request.ManagerID,
		IsActive:    true,
	}
	if request.IsActive != nil {
		rec.IsActive = *request.IsActive
	}
	id, err := i.store.Create(rec)
	if err != nil {
		return "", err
	}
	i.audit.Log(auditprovider.Entry{
		AdminID:   adminID,
		Action:    models.AuditCreate,
		TableName: "departments",
		RecordID:  id,
		NewValues: departmentSnapshot(rec),
	})
	log.
		WithField("department_name", rec.Name).
		WithField("rec_id", id).
		Info("создано подразделение")
	return id, nil
}

func (i impl) Update(adminID, id string, request departmentapimodels.DepartmentData) error {
	err := request.Validate()
	if err != nil {
		return apperrors.NewValidation(err.Error())
	}
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return apperrors.NewNotFound("подразделение не найдено")
	}
	updMap := map[string]interface{}{
		"name":        request.Name,
		"description": request.Description,
		"manager_id":  request.ManagerID,
	}
	if request.IsActive != nil {
		updMap["is_active"] = *request.IsActive
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
		TableName: "departments",
		RecordID:  id,
		OldValues: departmentSnapshot(*rec),
		NewValues: departmentSnapshot(*updated),
	})
	log.
		WithField("rec_id", id).
		Info("обновлено подразделение")
	return nil
}

func (i impl) Get(id string) (departmentapimodels.DepartmentView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return departmentapimodels.DepartmentView{}, err
	}
	if rec == nil {
		return departmentapimodels.DepartmentView{}, apperrors.NewNotFound("подразделение не найдено")
	}
	employeeCount, err := i.employeeStore.CountByDepartment(id)
	if err != nil {
		return departmentapimodels.DepartmentView{}, err
	}
	return departmentapimodels.DepartmentConvert(*rec, employeeCount), nil
}

func (i impl) List() ([]departmentapimodels.DepartmentView, error) {
	recList, err := i.store.List()
	if err != nil {
		return nil, err
	}
	list := make([]departmentapimodels.DepartmentView, 0, len(recList))
	for _, rec := range recList {
		employeeCount, err := i.employeeStore.CountByDepartment(rec.ID)
		if err != nil {
			return nil, err
		}
		list = append(list, departmentapimodels.DepartmentConvert(rec, employeeCount))
	}
	return list, nil
}

// Delete отклоняет удаление, пока в подразделении числятся сотрудники
func (i impl) Delete(adminID, id string) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return apperrors.NewNotFound("подразделение не найдено")
	}
	employeeCount, err := i.employeeStore.CountByDepartment(id)
	if err != nil {
		return err
	}
	if employeeCount > 0 {
		return apperrors.NewConflict("нельзя удалить подразделение, в котором числятся сотрудники")
	}
	err = i.store.Delete(id)
	if err != nil {
		return err
	}
	i.audit.Log(auditprovider.Entry{
		AdminID:   adminID,
		Action:    models.AuditDelete,
		TableName: "departments",
		RecordID:  id,
		OldValues: departmentSnapshot(*rec),
	})
	log.
		WithField("rec_id", id).
		Info("удалено подразделение")
	return nil
}

func departmentSnapshot(rec dbmodels.Department) dbmodels.EntitySnapshot {
	snapshot := dbmodels.EntitySnapshot{
		"name":        rec.Name,
		"description": rec.Description,
		"is_active":   rec.IsActive,
	}
	if rec.ManagerID != nil {
		snapshot["manager_id"] = *rec.ManagerID
	}
	return snapshot
}
