package filestorage

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"hr-attendance-backend/config"
	"hr-attendance-backend/db"
	"hr-attendance-backend/lib/file-storage/store"
	apperrors "hr-attendance-backend/lib/utils/apperrors"
	initchecker "hr-attendance-backend/lib/utils/init-checker"
	"hr-attendance-backend/models"
	fileapimodels "hr-attendance-backend/models/api/file"
	dbmodels "hr-attendance-backend/models/db"
	s3client "hr-attendance-backend/s3"
)

type SaveRequest struct {
	FileName    string
	FileType    models.FileType
	MimeType    string
	Body        []byte
	Description string
	UploadedBy  string
}

type Provider interface {
	SaveReport(ctx context.Context, request SaveRequest) (id string, err error)
	GetReport(ctx context.Context, id string) (rec *dbmodels.FileStorage, body []byte, err error)
	List(filter fileapimodels.FileFilter) (list []fileapimodels.FileView, rowCount int64, err error)
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

// SaveReport сохраняет тело отчёта в S3, а при выключенном
// объектном хранилище — в базе вместе с метаданными
func (i impl) SaveReport(ctx context.Context, request SaveRequest) (string, error) {
	rec := dbmodels.FileStorage{
		FileName:         fmt.Sprintf("%d_%s", time.Now().Unix(), request.FileName),
		OriginalFileName: request.FileName,
		FileType:         request.FileType,
		FileSize:         int64(len(request.Body)),
		MimeType:         request.MimeType,
		Description:      request.Description,
		UploadedBy:       request.UploadedBy,
	}
	if i.s3Enabled() {
		objectKey := fmt.Sprintf("reports/%s", rec.FileName)
		err := s3client.Instance.Upload(ctx, objectKey, request.MimeType, request.Body)
		if err != nil {
			return "", err
		}
		rec.ObjectKey = objectKey
	} else {
		rec.FileData = request.Body
	}
	id, err := i.store.Create(rec)
	if err != nil {
		return "", err
	}
	log.
		WithField("file_name", rec.FileName).
		WithField("rec_id", id).
		Info("отчёт сохранён")
	return id, nil
}

func (i impl) GetReport(ctx context.Context, id string) (*dbmodels.FileStorage, []byte, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return nil, nil, err
	}
	if rec == nil {
		return nil, nil, apperrors.NewNotFound("файл не найден")
	}
	if rec.ObjectKey != "" {
		body, err := s3client.Instance.Download(ctx, rec.ObjectKey)
		if err != nil {
			return nil, nil, err
		}
		return rec, body, nil
	}
	return rec, rec.FileData, nil
}

func (i impl) List(filter fileapimodels.FileFilter) ([]fileapimodels.FileView, int64, error) {
	page := filter.Page
	if page < 1 {
		page = 1
	}
	perPage := filter.PerPage
	if perPage < 1 {
		perPage = 20
	}
	if perPage > 100 {
		perPage = 100
	}
	recList, rowCount, err := i.store.List(filter.FileType, page, perPage)
	if err != nil {
		return nil, 0, err
	}
	list := make([]fileapimodels.FileView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, fileapimodels.FileConvert(rec, rec.UploadedBy))
	}
	return list, rowCount, nil
}

func (i impl) s3Enabled() bool {
	return config.Conf.S3.Enabled != nil && *config.Conf.S3.Enabled && s3client.Instance != nil
}
