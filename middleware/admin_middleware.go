package middleware

import (
	"github.com/gofiber/fiber/v2"
	authutils "hr-attendance-backend/lib/utils/auth-utils"
)

func GetAdminID(ctx *fiber.Ctx) string {
	claims := authutils.GetClaims(ctx)
	id, ok := claims["sub"].(string)
	if !ok {
		return ""
	}
	return id
}

func GetAdminName(ctx *fiber.Ctx) string {
	claims := authutils.GetClaims(ctx)
	name, ok := claims["name"].(string)
	if !ok {
		return ""
	}
	return name
}
