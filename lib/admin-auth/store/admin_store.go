package store

import (
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	dbmodels "hr-attendance-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Admin) (id string, err error)
	GetByID(id string) (rec *dbmodels.Admin, err error)
	FindByUserName(userName string) (rec *dbmodels.Admin, err error)
	SetLastLogin(id string, at time.Time) error
	Count() (int64, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Admin) (id string, err error) {
	err = rec.Validate()
	if err != nil {
		return "", err
	}
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", errors.Wrap(err, "ошибка сохранения администратора")
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.Admin, error) {
	rec := dbmodels.Admin{}
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

func (i impl) FindByUserName(userName string) (*dbmodels.Admin, error) {
	rec := dbmodels.Admin{}
	err := i.db.
		Where("user_name = ?", userName).
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

func (i impl) SetLastLogin(id string, at time.Time) error {
	err := i.db.
		Model(&dbmodels.Admin{}).
		Where("id = ?", id).
		Update("last_login", at).
		Error
	if err != nil {
		return errors.Wrap(err, "ошибка обновления времени входа")
	}
	return nil
}

func (i impl) Count() (int64, error) {
	var rowCount int64
	err := i.db.
		Model(&dbmodels.Admin{}).
		Count(&rowCount).
		Error
	if err != nil {
		return 0, err
	}
	return rowCount, nil
}
