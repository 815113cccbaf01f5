package store

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	dbmodels "hr-attendance-backend/models/db"
)

type ListFilter struct {
	AdminID   string
	TableName string
	Action    string
	Page      int
	PerPage   int
}

// Provider — журнал действий, записи не изменяются и не удаляются
type Provider interface {
	Create(rec dbmodels.AuditLogEntry) error
	List(filter ListFilter) (list []dbmodels.AuditLogEntry, rowCount int64, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.AuditLogEntry) error {
	err := i.db.
		Create(&rec).
		Error
	if err != nil {
		return errors.Wrap(err, "ошибка записи в журнал действий")
	}
	return nil
}

func (i impl) List(filter ListFilter) (list []dbmodels.AuditLogEntry, rowCount int64, err error) {
	list = []dbmodels.AuditLogEntry{}
	tx := i.db.Model(&dbmodels.AuditLogEntry{})
	if filter.AdminID != "" {
		tx = tx.Where("admin_id = ?", filter.AdminID)
	}
	if filter.TableName != "" {
		tx = tx.Where("table_name = ?", filter.TableName)
	}
	if filter.Action != "" {
		tx = tx.Where("action = ?", filter.Action)
	}
	err = tx.Count(&rowCount).Error
	if err != nil {
		return nil, 0, err
	}
	err = tx.
		Order("created_at desc").
		Offset((filter.Page - 1) * filter.PerPage).
		Limit(filter.PerPage).
		Find(&list).
		Error
	if err != nil {
		return nil, 0, err
	}
	return list, rowCount, nil
}
