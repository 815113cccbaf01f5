package dbmodels

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"hr-attendance-backend/models"
)

// EntitySnapshot — значения записи до/после изменения, хранится как jsonb
type EntitySnapshot map[string]interface{}

func (j EntitySnapshot) Value() (driver.Value, error) {
	if j == nil {
		return nil, nil
	}
	valueString, err := json.Marshal(j)
	return string(valueString), err
}

func (j *EntitySnapshot) Scan(value any) error {
	if value == nil {
		return nil
	}
	if err := json.Unmarshal(value.([]byte), &j); err != nil {
		return err
	}
	return nil
}

// AuditLogEntry — неизменяемая запись журнала действий, только добавление
type AuditLogEntry struct {
	ID          string             `gorm:"primaryKey;default:uuid_generate_v4()"`
	CreatedAt   time.Time          `gorm:"index"`
	AdminID     string             `gorm:"type:varchar(36);index"`
	Action      models.AuditAction `gorm:"type:varchar(100)"`
	TableName   string             `gorm:"type:varchar(50)"`
	RecordID    string             `gorm:"type:varchar(36)"`
	OldValues   EntitySnapshot     `gorm:"type:jsonb"`
	NewValues   EntitySnapshot     `gorm:"type:jsonb"`
	IPAddress   string             `gorm:"type:varchar(45)"`
	UserAgent   string             `gorm:"type:varchar(255)"`
	Description string
}
