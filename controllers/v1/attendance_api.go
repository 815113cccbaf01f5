package apiv1

import (
	"bytes"

	"github.com/gofiber/fiber/v2"
	"hr-attendance-backend/controllers"
	attendancehandler "hr-attendance-backend/lib/attendance"
	"hr-attendance-backend/middleware"
	apimodels "hr-attendance-backend/models/api"
	attendanceapimodels "hr-attendance-backend/models/api/attendance"
)

type attendanceApiController struct {
	controllers.BaseAPIController
}

func InitAttendanceApiRouters(app *fiber.App) {
	controller := attendanceApiController{}
	app.Route("/admin/attendance", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Post("mark", controller.mark)
		router.Post("bulk-mark", controller.bulkMark)
		router.Get("day", controller.dayReport)
		router.Get("overview", controller.overview)
		router.Get("validate", controller.validate)
		router.Get("export/excel", controller.exportExcel)
		router.Get("export/pdf", controller.exportPdf)
		router.Get("export", controller.exportExcel)
		router.Get("export-pdf", controller.exportPdf)
		router.Delete("by-date", controller.clearByDate)
		router.Delete("by-month", controller.clearByMonth)
		router.Delete(":id", controller.deleteRecord)
	})
}

// @Summary Отметка посещаемости
// @Tags Посещаемость
// @Description Отметка сотрудника за дату, повторная отметка обновляет статус
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 attendanceapimodels.MarkRequest	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /admin/attendance/mark [post]
func (c *attendanceApiController) mark(ctx *fiber.Ctx) error {
	var payload attendanceapimodels.MarkRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	created, err := attendancehandler.Instance.Mark(middleware.GetAdminID(ctx), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка отметки посещаемости")
	}
	message := "отметка обновлена"
	if created {
		message = "отметка сохранена"
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(message))
}

// @Summary Массовая отметка посещаемости
// @Tags Посещаемость
// @Description Отметка списка сотрудников за одну дату
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 attendanceapimodels.BulkMarkRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=int}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /admin/attendance/bulk-mark [post]
func (c *attendanceApiController) bulkMark(ctx *fiber.Ctx) error {
	var payload attendanceapimodels.BulkMarkRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	marked, err := attendancehandler.Instance.BulkMark(middleware.GetAdminID(ctx), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка массовой отметки посещаемости")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(marked))
}

// @Summary Сводка за день
// @Tags Посещаемость
// @Description Сводка посещаемости за день по всем сотрудникам
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   date				query		string	false	"дата YYYY-MM-DD, по умолчанию сегодня"
// @Success 200 {object} apimodels.Response{data=attendanceapimodels.DayReport}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /admin/attendance/day [get]
func (c *attendanceApiController) dayReport(ctx *fiber.Ctx) error {
	report, err := attendancehandler.Instance.DayReport(ctx.Query("date"))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения сводки за день")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(report))
}

// @Summary Месячная матрица посещаемости
// @Tags Посещаемость
// @Description Матрица сотрудник/день за месяц, текущий месяц усекается до сегодня
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   date				query		string	false	"дата YYYY-MM-DD, месяц берётся по дате"
// @Param   month				query		string	false	"месяц YYYY-MM, по умолчанию текущий"
// @Success 200 {object} apimodels.Response{data=attendanceapimodels.OverviewResponse}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /admin/attendance/overview [get]
func (c *attendanceApiController) overview(ctx *fiber.Ctx) error {
	response, err := attendancehandler.Instance.Overview(periodQuery(ctx))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения матрицы посещаемости")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(response))
}

// @Summary Проверка полноты отметок
// @Tags Посещаемость
// @Description Проверка полноты отметок за месяц по рабочим дням
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   date				query		string	false	"дата YYYY-MM-DD, месяц берётся по дате"
// @Param   month				query		string	false	"месяц YYYY-MM, по умолчанию текущий"
// @Param   force_full_month	query		bool	false	"проверять полный месяц без усечения"
// @Success 200 {object} apimodels.Response{data=attendanceapimodels.ValidationReport}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /admin/attendance/validate [get]
func (c *attendanceApiController) validate(ctx *fiber.Ctx) error {
	report, err := attendancehandler.Instance.Validate(periodQuery(ctx), ctx.QueryBool("force_full_month"))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка проверки полноты отметок")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(report))
}

// @Summary Выгрузка матрицы в Excel
// @Tags Посещаемость
// @Description Выгрузка месячной матрицы посещаемости в Excel
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   date				query		string	false	"дата YYYY-MM-DD, месяц берётся по дате"
// @Param   month				query		string	false	"месяц YYYY-MM, по умолчанию текущий"
// @Param   force_full_month	query		bool	false	"выгружать полный месяц без усечения"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /admin/attendance/export [get]
func (c *attendanceApiController) exportExcel(ctx *fiber.Ctx) error {
	fileName, body, err := attendancehandler.Instance.ExportExcel(ctx.UserContext(),
		middleware.GetAdminID(ctx), periodQuery(ctx), ctx.QueryBool("force_full_month"))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка выгрузки отчёта в Excel")
	}
	ctx.Set("Content-Type", "application/vnd.ms-excel")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+fileName+`"`)
	return ctx.SendStream(bytes.NewReader(body))
}

// @Summary Выгрузка сводки в PDF
// @Tags Посещаемость
// @Description Выгрузка сводного отчёта посещаемости в PDF
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   date				query		string	false	"дата YYYY-MM-DD, месяц берётся по дате"
// @Param   month				query		string	false	"месяц YYYY-MM, по умолчанию текущий"
// @Param   force_full_month	query		bool	false	"выгружать полный месяц без усечения"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /admin/attendance/export-pdf [get]
func (c *attendanceApiController) exportPdf(ctx *fiber.Ctx) error {
	fileName, body, err := attendancehandler.Instance.ExportPdf(ctx.UserContext(),
		middleware.GetAdminID(ctx), periodQuery(ctx), ctx.QueryBool("force_full_month"))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка выгрузки отчёта в PDF")
	}
	ctx.Set("Content-Type", "application/pdf")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+fileName+`"`)
	return ctx.SendStream(bytes.NewReader(body))
}

// @Summary Удаление отметок за дату
// @Tags Посещаемость
// @Description Удаление всех отметок за указанную дату
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   date				query		string	true	"дата YYYY-MM-DD"
// @Success 200 {object} apimodels.Response{data=attendanceapimodels.ClearResult}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /admin/attendance/by-date [delete]
func (c *attendanceApiController) clearByDate(ctx *fiber.Ctx) error {
	result, err := attendancehandler.Instance.ClearByDate(middleware.GetAdminID(ctx), ctx.Query("date"))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка удаления отметок за дату")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(result))
}

// @Summary Удаление отметок за месяц
// @Tags Посещаемость
// @Description Удаление всех отметок за указанный месяц
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   month				query		string	true	"месяц YYYY-MM"
// @Success 200 {object} apimodels.Response{data=attendanceapimodels.ClearResult}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /admin/attendance/by-month [delete]
func (c *attendanceApiController) clearByMonth(ctx *fiber.Ctx) error {
	result, err := attendancehandler.Instance.ClearByMonth(middleware.GetAdminID(ctx), ctx.Query("month"))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка удаления отметок за месяц")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(result))
}

// @Summary Удаление отметки
// @Tags Посещаемость
// @Description Удаление одной отметки по ИД
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string	true	"rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /admin/attendance/{id} [delete]
func (c *attendanceApiController) deleteRecord(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = attendancehandler.Instance.DeleteRecord(middleware.GetAdminID(ctx), id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка удаления отметки")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// периодом выборки может быть дата YYYY-MM-DD либо месяц YYYY-MM
func periodQuery(ctx *fiber.Ctx) string {
	if date := ctx.Query("date"); date != "" {
		return date
	}
	return ctx.Query("month")
}
