package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"hr-attendance-backend/controllers"
	adminauthhandler "hr-attendance-backend/lib/admin-auth"
	"hr-attendance-backend/middleware"
	apimodels "hr-attendance-backend/models/api"
	authapimodels "hr-attendance-backend/models/api/auth"
)

type authApiController struct {
	controllers.BaseAPIController
}

func InitAuthApiRouters(app *fiber.App) {
	controller := authApiController{}
	app.Post("/admin/login", controller.login)
	app.Route("/admin/auth", func(router fiber.Router) {
		router.Post("login", controller.login)
		router.Use(middleware.AuthorizationRequired()).Get("me", controller.me)
	})
}

// @Summary Аутентификация администратора
// @Tags Аутентификация
// @Description Аутентификация администратора
// @Param	body				body		authapimodels.LoginRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=authapimodels.JWTResponse}
// @Failure 400 {object} apimodels.Response
// @Failure 401 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /admin/auth/login [post]
func (c *authApiController) login(ctx *fiber.Ctx) error {
	var payload authapimodels.LoginRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := adminauthhandler.Instance.Login(payload, ctx.IP(), string(ctx.Request().Header.UserAgent()))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка аутентификации")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Информация о текущем администраторе
// @Tags Аутентификация
// @Description Информация о текущем администраторе
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=authapimodels.AdminProfile}
// @Failure 401 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /admin/auth/me [get]
func (c *authApiController) me(ctx *fiber.Ctx) error {
	resp, err := adminauthhandler.Instance.Profile(middleware.GetAdminID(ctx))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения профиля")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}
