package apiv1

import (
	"bytes"

	"github.com/gofiber/fiber/v2"
	"hr-attendance-backend/controllers"
	auditprovider "hr-attendance-backend/lib/audit"
	filestorage "hr-attendance-backend/lib/file-storage"
	"hr-attendance-backend/middleware"
	"hr-attendance-backend/models"
	apimodels "hr-attendance-backend/models/api"
	fileapimodels "hr-attendance-backend/models/api/file"
)

type fileApiController struct {
	controllers.BaseAPIController
}

func InitFileApiRouters(app *fiber.App) {
	controller := fileApiController{}
	app.Route("/admin/files", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Get("", controller.list)
		router.Get(":id/download", controller.download)
	})
}

// @Summary Список сформированных отчётов
// @Tags Файлы
// @Description Страница метаданных сохранённых отчётов
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   page				query		int		false	"страница"
// @Param   per_page			query		int		false	"записей на странице"
// @Param   type				query		string	false	"excel | pdf"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]fileapimodels.FileView}
// @Failure 401 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /admin/files [get]
func (c *fileApiController) list(ctx *fiber.Ctx) error {
	filter := fileapimodels.FileFilter{
		Page:     ctx.QueryInt("page", 1),
		PerPage:  ctx.QueryInt("per_page", 20),
		FileType: models.FileType(ctx.Query("type")),
	}
	list, rowCount, err := filestorage.Instance.List(filter)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка файлов")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

// @Summary Скачивание отчёта
// @Tags Файлы
// @Description Скачивание сохранённого отчёта по ИД
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string	true	"rec ID"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /admin/files/{id}/download [get]
func (c *fileApiController) download(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	rec, body, err := filestorage.Instance.GetReport(ctx.UserContext(), id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка скачивания файла")
	}
	auditprovider.Instance.Log(auditprovider.Entry{
		AdminID:     middleware.GetAdminID(ctx),
		Action:      models.AuditDownload,
		TableName:   "file_storage",
		RecordID:    rec.ID,
		IPAddress:   ctx.IP(),
		Description: "скачан отчёт " + rec.OriginalFileName,
	})
	ctx.Set("Content-Type", rec.MimeType)
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+rec.OriginalFileName+`"`)
	return ctx.SendStream(bytes.NewReader(body))
}
