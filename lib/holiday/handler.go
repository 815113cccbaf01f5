package holidayprovider

import (
	"time"

	log "github.com/sirupsen/logrus"
	"hr-attendance-backend/db"
	auditprovider "hr-attendance-backend/lib/audit"
	"hr-attendance-backend/lib/holiday/store"
	apperrors "hr-attendance-backend/lib/utils/apperrors"
	initchecker "hr-attendance-backend/lib/utils/init-checker"
	"hr-attendance-backend/models"
	holidayapimodels "hr-attendance-backend/models/api/holiday"
	dbmodels "hr-attendance-backend/models/db"
)

const dateLayout = "2006-01-02"

type Provider interface {
	Create(adminID string, request holidayapimodels.HolidayData) (id string, err error)
	Update(adminID, id string, request holidayapimodels.HolidayData) error
	Get(id string) (item holidayapimodels.HolidayView, err error)
	List() (list []holidayapimodels.HolidayView, err error)
	Delete(adminID, id string) error
	HolidaySet(first, last time.Time) (set map[string]string, err error)
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

func (i impl) Create(adminID string, request holidayapimodels.HolidayData) (string, error) {
	err := request.Validate()
	if err != nil {
		return "", apperrors.NewValidation(err.Error())
	}
	date, err := time.Parse(dateLayout, request.Date)
	if err != nil {
		return "", apperrors.NewValidation("недопустимый формат даты, ожидается YYYY-MM-DD")
	}
	rec := dbmodels.Holiday{
		Name:        request.Name,
		Date:        date,
		Description: request.Description,
		IsRecurring: request.IsRecurring,
		CreatedBy:   adminID,
	}
	id, err := i.store.Create(rec)
	if err != nil {
		return "", err
	}
	i.audit.Log(auditprovider.Entry{
		AdminID:   adminID,
		Action:    models.AuditCreate,
		TableName: "holidays",
		RecordID:  id,
		NewValues: holidaySnapshot(rec),
	})
	log.
		WithField("holiday_name", rec.Name).
		WithField("rec_id", id).
		Info("создан праздник")
	return id, nil
}

func (i impl) Update(adminID, id string, request holidayapimodels.HolidayData) error {
	err := request.Validate()
	if err != nil {
		return apperrors.NewValidation(err.Error())
	}
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return apperrors.NewNotFound("праздник не найден")
	}
	date, err := time.Parse(dateLayout, request.Date)
	if err != nil {
		return apperrors.NewValidation("недопустимый формат даты, ожидается YYYY-MM-DD")
	}
	updMap := map[string]interface{}{
		"name":         request.Name,
		"date":         date,
		"description":  request.Description,
		"is_recurring": request.IsRecurring,
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
		TableName: "holidays",
		RecordID:  id,
		OldValues: holidaySnapshot(*rec),
		NewValues: holidaySnapshot(*updated),
	})
	log.
		WithField("rec_id", id).
		Info("обновлён праздник")
	return nil
}

func (i impl) Get(id string) (holidayapimodels.HolidayView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return holidayapimodels.HolidayView{}, err
	}
	if rec == nil {
		return holidayapimodels.HolidayView{}, apperrors.NewNotFound("праздник не найден")
	}
	return holidayapimodels.HolidayConvert(*rec, rec.CreatedBy), nil
}

func (i impl) List() ([]holidayapimodels.HolidayView, error) {
	recList, err := i.store.List()
	if err != nil {
		return nil, err
	}
	list := make([]holidayapimodels.HolidayView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, holidayapimodels.HolidayConvert(rec, rec.CreatedBy))
	}
	return list, nil
}

func (i impl) Delete(adminID, id string) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return apperrors.NewNotFound("праздник не найден")
	}
	err = i.store.Delete(id)
	if err != nil {
		return err
	}
	i.audit.Log(auditprovider.Entry{
		AdminID:   adminID,
		Action:    models.AuditDelete,
		TableName: "holidays",
		RecordID:  id,
		OldValues: holidaySnapshot(*rec),
	})
	log.
		WithField("rec_id", id).
		Info("удалён праздник")
	return nil
}

// HolidaySet разворачивает праздники в набор дат отрезка,
// ежегодные попадают в каждый год без привязки к году заведения
func (i impl) HolidaySet(first, last time.Time) (map[string]string, error) {
	recList, err := i.store.List()
	if err != nil {
		return nil, err
	}
	set := map[string]string{}
	for _, rec := range recList {
		for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
			if rec.MatchesDate(d) {
				set[d.Format(dateLayout)] = rec.Name
			}
		}
	}
	return set, nil
}

func holidaySnapshot(rec dbmodels.Holiday) dbmodels.EntitySnapshot {
	return dbmodels.EntitySnapshot{
		"name":         rec.Name,
		"date":         rec.Date.Format(dateLayout),
		"description":  rec.Description,
		"is_recurring": rec.IsRecurring,
	}
}
