package authapimodels

import (
	"github.com/pkg/errors"
)

type LoginRequest struct {
	UserName string `json:"username"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	if r.UserName == "" {
		return errors.New("не указано имя пользователя")
	}
	if r.Password == "" {
		return errors.New("не указан пароль")
	}
	return nil
}

type JWTResponse struct {
	AccessToken string       `json:"access_token"`
	User        AdminProfile `json:"user"`
}

type AdminProfile struct {
	ID       string `json:"id"`
	UserName string `json:"username"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
}
