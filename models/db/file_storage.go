package dbmodels

import (
	"time"

	"hr-attendance-backend/models"
)

// FileStorage — метаданные сформированного отчёта.
// Тело файла хранится в S3 (ObjectKey) либо в колонке FileData,
// когда объектное хранилище не настроено.
type FileStorage struct {
	ID               string    `gorm:"primaryKey;default:uuid_generate_v4()" json:"id"`
	CreatedAt        time.Time `gorm:"index" json:"created_at"`
	FileName         string    `gorm:"type:varchar(255)"`
	OriginalFileName string    `gorm:"type:varchar(255)"`
	FileType         models.FileType `gorm:"type:varchar(50);index"`
	FileSize         int64
	MimeType         string `gorm:"type:varchar(100)"`
	ObjectKey        string `gorm:"type:varchar(500)"`
	FileData         []byte
	Description      string
	RelatedTable     string `gorm:"type:varchar(50)"`
	RelatedID        string `gorm:"type:varchar(36)"`
	UploadedBy       string `gorm:"type:varchar(36)"`
}
