package db

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	dbmodels "hr-attendance-backend/models/db"
)

func AutoMigrateDB() error {
	DB.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")
	log.Info("Запуск миграций")
	if err := DB.AutoMigrate(&dbmodels.Admin{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Admin")
	}
	if err := DB.AutoMigrate(&dbmodels.Department{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Department")
	}
	if err := DB.AutoMigrate(&dbmodels.Employee{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Employee")
	}
	if err := DB.AutoMigrate(&dbmodels.AttendanceRecord{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры AttendanceRecord")
	}
	if err := DB.AutoMigrate(&dbmodels.Holiday{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Holiday")
	}
	if err := DB.AutoMigrate(&dbmodels.LeaveRequest{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры LeaveRequest")
	}
	if err := DB.AutoMigrate(&dbmodels.FileStorage{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры FileStorage")
	}
	if err := DB.AutoMigrate(&dbmodels.AuditLogEntry{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры AuditLogEntry")
	}
	log.Info("Миграция прошла успешно")
	return nil
}
