package initializers

import (
	"context"

	log "github.com/sirupsen/logrus"
	"hr-attendance-backend/config"
	s3client "hr-attendance-backend/s3"
)

// InitS3 поднимает клиент объектного хранилища.
// При выключенном S3 тела отчётов хранятся в БД.
func InitS3(ctx context.Context) {
	if config.Conf.S3.Enabled == nil || !*config.Conf.S3.Enabled {
		log.Info("S3 отключён, отчёты хранятся в БД")
		return
	}
	client, err := s3client.NewClient()
	if err != nil {
		log.WithError(err).Error("Ошибка инициализации клиента S3")
		return
	}
	err = client.MakeBucket(ctx)
	if err != nil {
		log.WithError(err).Error("Ошибка создания бакета S3")
		return
	}
	s3client.Instance = client
	log.Info("S3 клиент успешно инициализирован")
}
