package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"hr-attendance-backend/controllers"
	auditprovider "hr-attendance-backend/lib/audit"
	"hr-attendance-backend/middleware"
	apimodels "hr-attendance-backend/models/api"
)

type auditApiController struct {
	controllers.BaseAPIController
}

func InitAuditApiRouters(app *fiber.App) {
	controller := auditApiController{}
	app.Route("/admin/audit-logs", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Get("", controller.list)
	})
}

// @Summary Журнал действий
// @Tags Журнал
// @Description Страница журнала действий администраторов, новые записи первыми
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   page				query		int		false	"страница"
// @Param   per_page			query		int		false	"записей на странице"
// @Param   admin_id			query		string	false	"фильтр по администратору"
// @Param   table_name			query		string	false	"фильтр по таблице"
// @Param   action				query		string	false	"фильтр по действию"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]auditapimodels.AuditLogView}
// @Failure 401 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /admin/audit-logs [get]
func (c *auditApiController) list(ctx *fiber.Ctx) error {
	perPage := ctx.QueryInt("per_page", 50)
	if perPage > 100 {
		perPage = 100
	}
	list, rowCount, err := auditprovider.Instance.List(auditprovider.ListFilter{
		AdminID:   ctx.Query("admin_id"),
		TableName: ctx.Query("table_name"),
		Action:    ctx.Query("action"),
		Page:      ctx.QueryInt("page", 1),
		PerPage:   perPage,
	})
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения журнала действий")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}
