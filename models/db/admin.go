package dbmodels

import (
	"time"

	"github.com/pkg/errors"
)

type Admin struct {
	BaseModel
	UserName     string `gorm:"type:varchar(80);uniqueIndex"`
	PasswordHash string `gorm:"type:varchar(255)"`
	Email        string `gorm:"type:varchar(120)"`
	FullName     string `gorm:"type:varchar(100)"`
	IsActive     bool   `gorm:"default:true"`
	LastLogin    *time.Time
}

func (a Admin) Validate() error {
	if a.UserName == "" {
		return errors.New("не указано имя пользователя")
	}
	if a.PasswordHash == "" {
		return errors.New("не задан пароль")
	}
	return nil
}
