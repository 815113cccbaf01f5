package initializers

import (
	"context"

	log "github.com/sirupsen/logrus"
	"hr-attendance-backend/config"
	adminauthhandler "hr-attendance-backend/lib/admin-auth"
	attendancehandler "hr-attendance-backend/lib/attendance"
	auditprovider "hr-attendance-backend/lib/audit"
	departmentprovider "hr-attendance-backend/lib/department"
	employeehandler "hr-attendance-backend/lib/employee"
	pdfexport "hr-attendance-backend/lib/export/pdf"
	xlsexport "hr-attendance-backend/lib/export/xls"
	filestorage "hr-attendance-backend/lib/file-storage"
	holidayprovider "hr-attendance-backend/lib/holiday"
	leavehandler "hr-attendance-backend/lib/leave"
	"hr-attendance-backend/fiberlog"
)

var LoggerConfig *fiberlog.Config

func InitAllServices(ctx context.Context) {
	LoggerConfig = InitLogger()
	config.InitConfig()
	InitDBConnection()
	InitS3(ctx)
	InitSmtp()
	auditprovider.NewHandler()
	filestorage.NewHandler()
	xlsexport.NewHandler()
	pdfexport.NewHandler()
	adminauthhandler.NewHandler()
	departmentprovider.NewHandler()
	employeehandler.NewHandler()
	holidayprovider.NewHandler()
	leavehandler.NewHandler()
	attendancehandler.NewHandler()

	err := adminauthhandler.Instance.EnsureDefaultAdmin()
	if err != nil {
		log.WithError(err).Error("не удалось завести администратора по умолчанию")
	}
}
