package auditprovider

import (
	log "github.com/sirupsen/logrus"
	"hr-attendance-backend/db"
	"hr-attendance-backend/lib/audit/store"
	initchecker "hr-attendance-backend/lib/utils/init-checker"
	"hr-attendance-backend/models"
	auditapimodels "hr-attendance-backend/models/api/audit"
	dbmodels "hr-attendance-backend/models/db"
)

// Entry — данные для записи в журнал действий
type Entry struct {
	AdminID     string
	Action      models.AuditAction
	TableName   string
	RecordID    string
	OldValues   dbmodels.EntitySnapshot
	NewValues   dbmodels.EntitySnapshot
	IPAddress   string
	UserAgent   string
	Description string
}

type ListFilter struct {
	AdminID   string
	TableName string
	Action    string
	Page      int
	PerPage   int
}

type Provider interface {
	Log(entry Entry)
	List(filter ListFilter) (list []auditapimodels.AuditLogView, rowCount int64, err error)
}

var Instance Provider

func NewHandler() {
	instance := impl{
		store: store.NewInstance(db.DB),
	}
	initchecker.CheckInit(
		"store", instance.store,
	)
	Instance = instance
}

type impl struct {
	store store.Provider
}

// Log пишет запись в журнал. Сбой журнала не прерывает операцию,
// ошибка только логируется.
func (i impl) Log(entry Entry) {
	rec := dbmodels.AuditLogEntry{
		AdminID:     entry.AdminID,
		Action:      entry.Action,
		TableName:   entry.TableName,
		RecordID:    entry.RecordID,
		OldValues:   entry.OldValues,
		NewValues:   entry.NewValues,
		IPAddress:   entry.IPAddress,
		UserAgent:   entry.UserAgent,
		Description: entry.Description,
	}
	err := i.store.Create(rec)
	if err != nil {
		log.
			WithError(err).
			WithField("action", entry.Action).
			WithField("table_name", entry.TableName).
			Error("не удалось записать действие в журнал")
	}
}

func (i impl) List(filter ListFilter) ([]auditapimodels.AuditLogView, int64, error) {
	recList, rowCount, err := i.store.List(store.ListFilter{
		AdminID:   filter.AdminID,
		TableName: filter.TableName,
		Action:    filter.Action,
		Page:      filter.Page,
		PerPage:   filter.PerPage,
	})
	if err != nil {
		return nil, 0, err
	}
	list := make([]auditapimodels.AuditLogView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, auditapimodels.AuditLogConvert(rec))
	}
	return list, rowCount, nil
}
