package store

import (
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	apperrors "hr-attendance-backend/lib/utils/apperrors"
	dbmodels "hr-attendance-backend/models/db"
)

type Provider interface {
	Upsert(rec dbmodels.AttendanceRecord) (saved dbmodels.AttendanceRecord, created bool, err error)
	GetByID(id string) (rec *dbmodels.AttendanceRecord, err error)
	GetByEmployeeDate(employeeID string, date time.Time) (rec *dbmodels.AttendanceRecord, err error)
	FindByDate(date time.Time) (list []dbmodels.AttendanceRecord, err error)
	FindByPeriod(first, last time.Time, employeeID string) (list []dbmodels.AttendanceRecord, err error)
	DeleteByID(id string) error
	DeleteByDate(date time.Time) (deleted int64, err error)
	DeleteByPeriod(first, last time.Time) (deleted int64, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

// Upsert создаёт отметку, а при повторной отметке на ту же дату обновляет её
func (i impl) Upsert(rec dbmodels.AttendanceRecord) (dbmodels.AttendanceRecord, bool, error) {
	err := rec.Validate()
	if err != nil {
		return dbmodels.AttendanceRecord{}, false, apperrors.NewValidation(err.Error())
	}
	err = i.db.
		Create(&rec).
		Error
	if err == nil {
		return rec, true, nil
	}
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		return dbmodels.AttendanceRecord{}, false, errors.Wrap(err, "ошибка сохранения отметки")
	}

	existing, err := i.GetByEmployeeDate(rec.EmployeeID, rec.Date)
	if err != nil {
		return dbmodels.AttendanceRecord{}, false, err
	}
	if existing == nil {
		return dbmodels.AttendanceRecord{}, false, errors.New("отметка не найдена при обновлении")
	}
	updMap := map[string]interface{}{
		"status":         rec.Status,
		"check_in_time":  rec.CheckInTime,
		"check_out_time": rec.CheckOutTime,
		"total_hours":    rec.TotalHours,
		"overtime_hours": rec.OvertimeHours,
		"notes":          rec.Notes,
		"marked_by":      rec.MarkedBy,
	}
	err = i.db.
		Model(&dbmodels.AttendanceRecord{}).
		Where("id = ?", existing.ID).
		Updates(updMap).
		Error
	if err != nil {
		return dbmodels.AttendanceRecord{}, false, errors.Wrap(err, "ошибка обновления отметки")
	}
	updated, err := i.GetByID(existing.ID)
	if err != nil {
		return dbmodels.AttendanceRecord{}, false, err
	}
	return *updated, false, nil
}

func (i impl) GetByID(id string) (*dbmodels.AttendanceRecord, error) {
	rec := dbmodels.AttendanceRecord{}
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

func (i impl) GetByEmployeeDate(employeeID string, date time.Time) (*dbmodels.AttendanceRecord, error) {
	rec := dbmodels.AttendanceRecord{}
	err := i.db.
		Where("employee_id = ?", employeeID).
		Where("date = ?", date).
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

func (i impl) FindByDate(date time.Time) (list []dbmodels.AttendanceRecord, err error) {
	list = []dbmodels.AttendanceRecord{}
	err = i.db.
		Preload("Employee").
		Where("date = ?", date).
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) FindByPeriod(first, last time.Time, employeeID string) (list []dbmodels.AttendanceRecord, err error) {
	list = []dbmodels.AttendanceRecord{}
	tx := i.db.
		Where("date >= ?", first).
		Where("date <= ?", last).
		Order("date")
	if employeeID != "" {
		tx = tx.Where("employee_id = ?", employeeID)
	}
	err = tx.Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) DeleteByID(id string) error {
	err := i.db.
		Where("id = ?", id).
		Delete(&dbmodels.AttendanceRecord{}).
		Error
	if err != nil {
		return errors.Wrap(err, "ошибка удаления отметки")
	}
	return nil
}

func (i impl) DeleteByDate(date time.Time) (int64, error) {
	tx := i.db.
		Where("date = ?", date).
		Delete(&dbmodels.AttendanceRecord{})
	if tx.Error != nil {
		return 0, errors.Wrap(tx.Error, "ошибка удаления отметок за дату")
	}
	return tx.RowsAffected, nil
}

func (i impl) DeleteByPeriod(first, last time.Time) (int64, error) {
	tx := i.db.
		Where("date >= ?", first).
		Where("date <= ?", last).
		Delete(&dbmodels.AttendanceRecord{})
	if tx.Error != nil {
		return 0, errors.Wrap(tx.Error, "ошибка удаления отметок за период")
	}
	return tx.RowsAffected, nil
}
