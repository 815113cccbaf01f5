package auditapimodels

import (
	"time"

	"hr-attendance-backend/models"
	dbmodels "hr-attendance-backend/models/db"
)

type AuditLogView struct {
	ID          string                   `json:"id"`
	AdminID     string                   `json:"admin_id"`
	Action      models.AuditAction       `json:"action"`
	TableName   string                   `json:"table_name,omitempty"`
	RecordID    string                   `json:"record_id,omitempty"`
	OldValues   dbmodels.EntitySnapshot  `json:"old_values,omitempty"`
	NewValues   dbmodels.EntitySnapshot  `json:"new_values,omitempty"`
	IPAddress   string                   `json:"ip_address,omitempty"`
	Description string                   `json:"description,omitempty"`
	CreatedAt   time.Time                `json:"created_at"`
}

func AuditLogConvert(rec dbmodels.AuditLogEntry) AuditLogView {
	return AuditLogView{
		ID:          rec.ID,
		AdminID:     rec.AdminID,
		Action:      rec.Action,
		TableName:   rec.TableName,
		RecordID:    rec.RecordID,
		OldValues:   rec.OldValues,
		NewValues:   rec.NewValues,
		IPAddress:   rec.IPAddress,
		Description: rec.Description,
		CreatedAt:   rec.CreatedAt,
	}
}
