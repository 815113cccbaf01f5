package store

import (
	"fmt"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	apperrors "hr-attendance-backend/lib/utils/apperrors"
	dbmodels "hr-attendance-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Employee) (id string, err error)
	GetByID(id string) (rec *dbmodels.Employee, err error)
	List(departmentID string, activeOnly bool) (list []dbmodels.Employee, err error)
	Update(id string, updMap map[string]interface{}) error
	Delete(id string) error
	NextEmployeeCode() (string, error)
	CountByDepartment(departmentID string) (int64, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Employee) (id string, err error) {
	err = rec.Validate()
	if err != nil {
		return "", apperrors.NewValidation(err.Error())
	}
	err = i.isUnique("", rec.EmployeeCode, rec.Email)
	if err != nil {
		return "", err
	}
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", errors.Wrap(err, "ошибка сохранения сотрудника")
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.Employee, error) {
	rec := dbmodels.Employee{}
	err := i.db.
		Preload("Department").
		Where("id = ?", id).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) List(departmentID string, activeOnly bool) (list []dbmodels.Employee, err error) {
	list = []dbmodels.Employee{}
	tx := i.db.
		Preload("Department").
		Order("employee_code")
	if departmentID != "" {
		tx = tx.Where("department_id = ?", departmentID)
	}
	if activeOnly {
		tx = tx.Where("is_active = true")
	}
	err = tx.Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) Update(id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	code, codeOk := updMap["employee_code"].(string)
	email, emailOk := updMap["email"].(string)
	if codeOk || emailOk {
		err := i.isUnique(id, code, email)
		if err != nil {
			return err
		}
	}
	err := i.db.
		Model(&dbmodels.Employee{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
	if err != nil {
		return errors.Wrap(err, "ошибка обновления сотрудника")
	}
	return nil
}

func (i impl) Delete(id string) error {
	rec := dbmodels.Employee{
		BaseModel: dbmodels.BaseModel{
			ID: id,
		},
	}
	err := i.db.
		Delete(&rec).
		Error
	if err != nil {
		return errors.Wrap(err, "ошибка удаления сотрудника")
	}
	return nil
}

// NextEmployeeCode выдаёт следующий табельный номер вида EMP001
func (i impl) NextEmployeeCode() (string, error) {
	var rowCount int64
	err := i.db.
		Model(&dbmodels.Employee{}).
		Count(&rowCount).
		Error
	if err != nil {
		return "", errors.Wrap(err, "ошибка подсчёта сотрудников")
	}
	next := rowCount + 1
	for {
		code := fmt.Sprintf("EMP%03d", next)
		var taken int64
		err = i.db.
			Model(&dbmodels.Employee{}).
			Where("employee_code = ?", code).
			Count(&taken).
			Error
		if err != nil {
			return "", err
		}
		if taken == 0 {
			return code, nil
		}
		next++
	}
}

func (i impl) CountByDepartment(departmentID string) (int64, error) {
	var rowCount int64
	err := i.db.
		Model(&dbmodels.Employee{}).
		Where("department_id = ?", departmentID).
		Count(&rowCount).
		Error
	if err != nil {
		return 0, err
	}
	return rowCount, nil
}

func (i impl) isUnique(selfID, code, email string) error {
	if code != "" {
		var rowCount int64
		tx := i.db.Model(dbmodels.Employee{})
		tx.Where("employee_code = ?", code)
		if selfID != "" {
			tx.Where("id <> ?", selfID)
		}
		err := tx.Count(&rowCount).Error
		if err != nil {
			return errors.Wrap(err, "ошибка проверки уникальности табельного номера")
		}
		if rowCount != 0 {
			return apperrors.NewConflict("сотрудник с таким табельным номером уже существует")
		}
	}
	if email != "" {
		var rowCount int64
		tx := i.db.Model(dbmodels.Employee{})
		tx.Where("email = ?", email)
		if selfID != "" {
			tx.Where("id <> ?", selfID)
		}
		err := tx.Count(&rowCount).Error
		if err != nil {
			return errors.Wrap(err, "ошибка проверки уникальности почты")
		}
		if rowCount != 0 {
			return apperrors.NewConflict("сотрудник с такой почтой уже существует")
		}
	}
	return nil
}
