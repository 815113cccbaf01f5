package fileapimodels

import (
	"time"

	"hr-attendance-backend/models"
	dbmodels "hr-attendance-backend/models/db"
)

type FileView struct {
	ID          string          `json:"id"`
	FileName    string          `json:"filename"`
	FileType    models.FileType `json:"file_type"`
	FileSize    int64           `json:"file_size"`
	Description string          `json:"description,omitempty"`
	UploadedBy  string          `json:"uploaded_by,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

func FileConvert(rec dbmodels.FileStorage, uploaderName string) FileView {
	return FileView{
		ID:          rec.ID,
		FileName:    rec.OriginalFileName,
		FileType:    rec.FileType,
		FileSize:    rec.FileSize,
		Description: rec.Description,
		UploadedBy:  uploaderName,
		CreatedAt:   rec.CreatedAt,
	}
}

type FileFilter struct {
	Page     int             `json:"page"`
	PerPage  int             `json:"per_page"`
	FileType models.FileType `json:"type"`
}
