package store

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"hr-attendance-backend/models"
	dbmodels "hr-attendance-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.FileStorage) (id string, err error)
	GetByID(id string) (rec *dbmodels.FileStorage, err error)
	List(fileType models.FileType, page, perPage int) (list []dbmodels.FileStorage, rowCount int64, err error)
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

func (i impl) Create(rec dbmodels.FileStorage) (id string, err error) {
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", errors.Wrap(err, "ошибка сохранения файла")
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.FileStorage, error) {
	rec := dbmodels.FileStorage{}
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

// List отдаёт страницу метаданных без тел файлов
func (i impl) List(fileType models.FileType, page, perPage int) (list []dbmodels.FileStorage, rowCount int64, err error) {
	list = []dbmodels.FileStorage{}
	tx := i.db.Model(&dbmodels.FileStorage{})
	if fileType != "" {
		tx = tx.Where("file_type = ?", fileType)
	}
	err = tx.Count(&rowCount).Error
	if err != nil {
		return nil, 0, err
	}
	err = tx.
		Omit("file_data").
		Order("created_at desc").
		Offset((page - 1) * perPage).
		Limit(perPage).
		Find(&list).
		Error
	if err != nil {
		return nil, 0, err
	}
	return list, rowCount, nil
}

func (i impl) Delete(id string) error {
	err := i.db.
		Where("id = ?", id).
		Delete(&dbmodels.FileStorage{}).
		Error
	if err != nil {
		return errors.Wrap(err, "ошибка удаления файла")
	}
	return nil
}
