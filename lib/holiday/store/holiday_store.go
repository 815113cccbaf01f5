package store

import (
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	apperrors "hr-attendance-backend/lib/utils/apperrors"
	dbmodels "hr-attendance-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Holiday) (id string, err error)
	GetByID(id string) (rec *dbmodels.Holiday, err error)
	List() (list []dbmodels.Holiday, err error)
	Update(id string, updMap map[string]interface{}) error
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

func (i impl) Create(rec dbmodels.Holiday) (id string, err error) {
	err = rec.Validate()
	if err != nil {
		return "", apperrors.NewValidation(err.Error())
	}
	err = i.isFreeDate("", rec.Date)
	if err != nil {
		return "", err
	}
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", errors.Wrap(err, "ошибка сохранения праздника")
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.Holiday, error) {
	rec := dbmodels.Holiday{}
	err := i.db.
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

func (i impl) List() (list []dbmodels.Holiday, err error) {
	list = []dbmodels.Holiday{}
	err = i.db.
		Order("date").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) Update(id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	date, ok := updMap["date"].(time.Time)
	if ok {
		err := i.isFreeDate(id, date)
		if err != nil {
			return err
		}
	}
	err := i.db.
		Model(&dbmodels.Holiday{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
	if err != nil {
		return errors.Wrap(err, "ошибка обновления праздника")
	}
	return nil
}

func (i impl) Delete(id string) error {
	err := i.db.
		Where("id = ?", id).
		Delete(&dbmodels.Holiday{}).
		Error
	if err != nil {
		return errors.Wrap(err, "ошибка удаления праздника")
	}
	return nil
}

// один календарный день — один праздник
func (i impl) isFreeDate(selfID string, date time.Time) error {
	var rowCount int64
	tx := i.db.Model(dbmodels.Holiday{})
	tx.Where("date = ?", date)
	if selfID != "" {
		tx.Where("id <> ?", selfID)
	}
	err := tx.Count(&rowCount).Error
	if err != nil {
		return errors.Wrap(err, "ошибка проверки даты праздника")
	}
	if rowCount != 0 {
		return apperrors.NewConflict("на эту дату праздник уже заведён")
	}
	return nil
}
