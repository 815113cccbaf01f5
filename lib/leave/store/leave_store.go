package store

import (
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	apperrors "hr-attendance-backend/lib/utils/apperrors"
	"hr-attendance-backend/models"
	dbmodels "hr-attendance-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.LeaveRequest) (id string, err error)
	GetByID(id string) (rec *dbmodels.LeaveRequest, err error)
	List(status models.LeaveStatus, employeeID string) (list []dbmodels.LeaveRequest, err error)
	Resolve(id string, status models.LeaveStatus, approvedBy string, approvedAt time.Time) error
	Delete(id string) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.LeaveRequest) (id string, err error) {
	err = rec.Validate()
	if err != nil {
		return "", apperrors.NewValidation(err.Error())
	}
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", errors.Wrap(err, "ошибка сохранения заявки на отпуск")
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.LeaveRequest, error) {
	rec := dbmodels.LeaveRequest{}
	err := i.db.
		Preload("Employee").
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

func (i impl) List(status models.LeaveStatus, employeeID string) (list []dbmodels.LeaveRequest, err error) {
	list = []dbmodels.LeaveRequest{}
	tx := i.db.
		Preload("Employee").
		Order("created_at desc")
	if status != "" {
		tx = tx.Where("status = ?", status)
	}
	if employeeID != "" {
		tx = tx.Where("employee_id = ?", employeeID)
	}
	err = tx.Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) Resolve(id string, status models.LeaveStatus, approvedBy string, approvedAt time.Time) error {
	err := i.db.
		Model(&dbmodels.LeaveRequest{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":      status,
			"approved_by": approvedBy,
			"approved_at": approvedAt,
		}).
		Error
	if err != nil {
		return errors.Wrap(err, "ошибка обновления заявки на отпуск")
	}
	return nil
}

func (i impl) Delete(id string) error {
	err := i.db.
		Where("id = ?", id).
		Delete(&dbmodels.LeaveRequest{}).
		Error
	if err != nil {
		return errors.Wrap(err, "ошибка удаления заявки на отпуск")
	}
	return nil
}
