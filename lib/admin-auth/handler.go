package adminauthhandler

import (
	"time"

	log "github.com/sirupsen/logrus"
	"hr-attendance-backend/db"
	"hr-attendance-backend/lib/admin-auth/store"
	auditprovider "hr-attendance-backend/lib/audit"
	apperrors "hr-attendance-backend/lib/utils/apperrors"
	authutils "hr-attendance-backend/lib/utils/auth-utils"
	initchecker "hr-attendance-backend/lib/utils/init-checker"
	"hr-attendance-backend/models"
	authapimodels "hr-attendance-backend/models/api/auth"
	dbmodels "hr-attendance-backend/models/db"
)

const (
	defaultAdminUserName = "admin"
	defaultAdminPassword = "admin123"
)

type Provider interface {
	Login(request authapimodels.LoginRequest, ipAddress, userAgent string) (response authapimodels.JWTResponse, err error)
	Profile(adminID string) (profile authapimodels.AdminProfile, err error)
	EnsureDefaultAdmin() error
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

func (i impl) Login(request authapimodels.LoginRequest, ipAddress, userAgent string) (authapimodels.JWTResponse, error) {
	logger := log.WithField("user_name", request.UserName)
	err := request.Validate()
	if err != nil {
		return authapimodels.JWTResponse{}, apperrors.NewValidation(err.Error())
	}
	rec, err := i.store.FindByUserName(request.UserName)
	if err != nil {
		return authapimodels.JWTResponse{}, err
	}
	if rec == nil || !rec.IsActive || !authutils.CheckPassword(rec.PasswordHash, request.Password) {
		i.audit.Log(auditprovider.Entry{
			Action:      models.AuditLoginFailed,
			TableName:   "admins",
			IPAddress:   ipAddress,
			UserAgent:   userAgent,
			Description: "неудачная попытка входа: " + request.UserName,
		})
		logger.Warn("неудачная попытка входа")
		return authapimodels.JWTResponse{}, apperrors.NewAuth("неверное имя пользователя или пароль")
	}

	token, err := authutils.GetToken(rec.ID, rec.UserName)
	if err != nil {
		return authapimodels.JWTResponse{}, err
	}
	now := time.Now()
	err = i.store.SetLastLogin(rec.ID, now)
	if err != nil {
		logger.WithError(err).Error("не удалось обновить время входа")
	}
	i.audit.Log(auditprovider.Entry{
		AdminID:     rec.ID,
		Action:      models.AuditLogin,
		TableName:   "admins",
		RecordID:    rec.ID,
		IPAddress:   ipAddress,
		UserAgent:   userAgent,
		Description: "вход администратора " + rec.UserName,
	})
	logger.Info("администратор вошёл в систему")
	return authapimodels.JWTResponse{
		AccessToken: token,
		User: authapimodels.AdminProfile{
			ID:       rec.ID,
			UserName: rec.UserName,
			FullName: rec.FullName,
			Email:    rec.Email,
		},
	}, nil
}

func (i impl) Profile(adminID string) (authapimodels.AdminProfile, error) {
	rec, err := i.store.GetByID(adminID)
	if err != nil {
		return authapimodels.AdminProfile{}, err
	}
	if rec == nil {
		return authapimodels.AdminProfile{}, apperrors.NewNotFound("администратор не найден")
	}
	return authapimodels.AdminProfile{
		ID:       rec.ID,
		UserName: rec.UserName,
		FullName: rec.FullName,
		Email:    rec.Email,
	}, nil
}

// EnsureDefaultAdmin заводит учётную запись администратора при первом запуске
func (i impl) EnsureDefaultAdmin() error {
	rowCount, err := i.store.Count()
	if err != nil {
		return err
	}
	if rowCount > 0 {
		return nil
	}
	hash, err := authutils.HashPassword(defaultAdminPassword)
	if err != nil {
		return err
	}
	id, err := i.store.Create(dbmodels.Admin{
		UserName:     defaultAdminUserName,
		PasswordHash: hash,
		FullName:     "Администратор",
		IsActive:     true,
	})
	if err != nil {
		return err
	}
	log.
		WithField("rec_id", id).
		Warn("создана учётная запись администратора по умолчанию, смените пароль")
	return nil
}
