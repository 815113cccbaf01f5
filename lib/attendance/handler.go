package attendancehandler

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"hr-attendance-backend/db"
	"hr-attendance-backend/lib/attendance/accounting"
	"hr-attendance-backend/lib/attendance/store"
	auditprovider "hr-attendance-backend/lib/audit"
	employeestore "hr-attendance-backend/lib/employee/store"
	pdfexport "hr-attendance-backend/lib/export/pdf"
	xlsexport "hr-attendance-backend/lib/export/xls"
	filestorage "hr-attendance-backend/lib/file-storage"
	holidayprovider "hr-attendance-backend/lib/holiday"
	apperrors "hr-attendance-backend/lib/utils/apperrors"
	initchecker "hr-attendance-backend/lib/utils/init-checker"
	"hr-attendance-backend/models"
	attendanceapimodels "hr-attendance-backend/models/api/attendance"
	dbmodels "hr-attendance-backend/models/db"
)

const (
	dateLayout  = "2006-01-02"
	monthLayout = "2006-01"

	// в отчёт о полноте попадают только первые пропуски,
	// полное количество отдаётся отдельным полем
	missingListLimit = 10
)

type Provider interface {
	Mark(adminID string, request attendanceapimodels.MarkRequest) (created bool, err error)
	BulkMark(adminID string, request attendanceapimodels.BulkMarkRequest) (marked int, err error)
	DayReport(dateStr string) (report attendanceapimodels.DayReport, err error)
	Overview(monthStr string) (response attendanceapimodels.OverviewResponse, err error)
	Validate(monthStr string, forceFullMonth bool) (report attendanceapimodels.ValidationReport, err error)
	DeleteRecord(adminID, id string) error
	ClearByDate(adminID, dateStr string) (result attendanceapimodels.ClearResult, err error)
	ClearByMonth(adminID, monthStr string) (result attendanceapimodels.ClearResult, err error)
	ExportExcel(ctx context.Context, adminID, monthStr string, forceFullMonth bool) (fileName string, body []byte, err error)
	ExportPdf(ctx context.Context, adminID, monthStr string, forceFullMonth bool) (fileName string, body []byte, err error)
}

var Instance Provider

func NewHandler() {
	instance := impl{
		store:         store.NewInstance(db.DB),
		employeeStore: employeestore.NewInstance(db.DB),
		holidays:      holidayprovider.Instance,
		fileStorage:   filestorage.Instance,
		xls:           xlsexport.Instance,
		pdf:           pdfexport.Instance,
		audit:         auditprovider.Instance,
	}
	initchecker.CheckInit(
		"store", instance.store,
		"employeeStore", instance.employeeStore,
		"holidays", instance.holidays,
		"fileStorage", instance.fileStorage,
		"xls", instance.xls,
		"pdf", instance.pdf,
		"audit", instance.audit,
	)
	Instance = instance
}

type impl struct {
	store         store.Provider
	employeeStore employeestore.Provider
	holidays      holidayprovider.Provider
	fileStorage   filestorage.Provider
	xls           xlsexport.Provider
	pdf           pdfexport.Provider
	audit         auditprovider.Provider
}

func (i impl) Mark(adminID string, request attendanceapimodels.MarkRequest) (bool, error) {
	err := request.Validate()
	if err != nil {
		return false, apperrors.NewValidation(err.Error())
	}
	date := time.Now().UTC().Truncate(24 * time.Hour)
	if request.Date != "" {
		date, err = time.Parse(dateLayout, request.Date)
		if err != nil {
			return false, apperrors.NewValidation("недопустимый формат даты, ожидается YYYY-MM-DD")
		}
	}
	employee, err := i.employeeStore.GetByID(request.EmployeeID)
	if err != nil {
		return false, err
	}
	if employee == nil {
		return false, apperrors.NewNotFound("сотрудник не найден")
	}
	saved, created, err := i.store.Upsert(dbmodels.AttendanceRecord{
		EmployeeID: request.EmployeeID,
		Date:       date,
		Status:     request.Status,
		MarkedBy:   adminID,
	})
	if err != nil {
		return false, err
	}
	action := models.AuditUpdate
	if created {
		action = models.AuditCreate
	}
	i.audit.Log(auditprovider.Entry{
		AdminID:   adminID,
		Action:    action,
		TableName: "attendance_records",
		RecordID:  saved.ID,
		NewValues: attendanceSnapshot(saved),
	})
	log.
		WithField("employee_id", request.EmployeeID).
		WithField("date", date.Format(dateLayout)).
		WithField("status", request.Status).
		Info("отметка посещаемости сохранена")
	return created, nil
}

// BulkMark сохраняет отметки списка сотрудников за одну дату.
// Ошибка по одному сотруднику не откатывает уже сохранённые отметки.
func (i impl) BulkMark(adminID string, request attendanceapimodels.BulkMarkRequest) (int, error) {
	err := request.Validate()
	if err != nil {
		return 0, apperrors.NewValidation(err.Error())
	}
	date := time.Now().UTC().Truncate(24 * time.Hour)
	if request.Date != "" {
		date, err = time.Parse(dateLayout, request.Date)
		if err != nil {
			return 0, apperrors.NewValidation("недопустимый формат даты, ожидается YYYY-MM-DD")
		}
	}
	marked := 0
	for _, rec := range request.AttendanceData {
		_, _, err = i.store.Upsert(dbmodels.AttendanceRecord{
			EmployeeID: rec.EmployeeID,
			Date:       date,
			Status:     rec.Status,
			MarkedBy:   adminID,
		})
		if err != nil {
			log.
				WithError(err).
				WithField("employee_id", rec.EmployeeID).
				Error("не удалось сохранить отметку")
			continue
		}
		marked++
	}
	i.audit.Log(auditprovider.Entry{
		AdminID:     adminID,
		Action:      models.AuditCreate,
		TableName:   "attendance_records",
		Description: fmt.Sprintf("массовая отметка за %s: %d из %d", date.Format(dateLayout), marked, len(request.AttendanceData)),
	})
	return marked, nil
}

func (i impl) DayReport(dateStr string) (attendanceapimodels.DayReport, error) {
	date := time.Now().UTC().Truncate(24 * time.Hour)
	if dateStr != "" {
		var err error
		date, err = time.Parse(dateLayout, dateStr)
		if err != nil {
			return attendanceapimodels.DayReport{}, apperrors.NewValidation("недопустимый формат даты, ожидается YYYY-MM-DD")
		}
	}
	employees, err := i.employeeStore.List("", true)
	if err != nil {
		return attendanceapimodels.DayReport{}, err
	}
	records, err := i.store.FindByDate(date)
	if err != nil {
		return attendanceapimodels.DayReport{}, err
	}
	statusByEmployee := make(map[string]models.AttendanceStatus, len(records))
	for _, rec := range records {
		statusByEmployee[rec.EmployeeID] = rec.Status
	}

	report := attendanceapimodels.DayReport{
		Date:           date.Format(dateLayout),
		TotalEmployees: len(employees),
		Employees:      make([]attendanceapimodels.DayReportRecord, 0, len(employees)),
	}
	for _, emp := range employees {
		item := attendanceapimodels.DayReportRecord{
			ID:    emp.ID,
			Name:  emp.Name,
			Email: emp.Email,
		}
		status, ok := statusByEmployee[emp.ID]
		if ok {
			item.Status = string(status)
			if status == models.AttendanceAbsent {
				report.AbsentCount++
			} else {
				report.PresentCount++
			}
		} else {
			item.Status = "not_marked"
			report.NotMarkedCount++
		}
		report.Employees = append(report.Employees, item)
	}
	return report, nil
}

func (i impl) Overview(monthStr string) (attendanceapimodels.OverviewResponse, error) {
	matrix, first, last, err := i.buildMatrix(monthStr, false)
	if err != nil {
		return attendanceapimodels.OverviewResponse{}, err
	}
	response := attendanceapimodels.OverviewResponse{
		Month:          first.Format(monthLayout),
		FirstDay:       first.Format(dateLayout),
		LastDay:        last.Format(dateLayout),
		Employees:      make([]attendanceapimodels.OverviewEmployee, 0, len(matrix.Rows)),
		AttendanceData: map[string]map[string]string{},
	}
	for _, row := range matrix.Rows {
		response.Employees = append(response.Employees, attendanceapimodels.OverviewEmployee{
			ID:           row.Employee.ID,
			EmployeeCode: row.Employee.Code,
			Name:         row.Employee.Name,
			Email:        row.Employee.Email,
			Department:   row.Employee.Department,
		})
		cells := map[string]string{}
		for idx, cell := range row.Cells {
			if cell.Kind == accounting.CellStatus {
				cells[matrix.Days[idx].Format(dateLayout)] = string(cell.Status)
			}
		}
		response.AttendanceData[row.Employee.ID] = cells
	}
	return response, nil
}

func (i impl) Validate(monthStr string, forceFullMonth bool) (attendanceapimodels.ValidationReport, error) {
	first, last, err := i.monthBounds(monthStr, forceFullMonth)
	if err != nil {
		return attendanceapimodels.ValidationReport{}, err
	}
	employees, err := i.accountingEmployees()
	if err != nil {
		return attendanceapimodels.ValidationReport{}, err
	}
	holidaySet, err := i.holidays.HolidaySet(first, last)
	if err != nil {
		return attendanceapimodels.ValidationReport{}, err
	}
	records, err := i.accountingRecords(first, last)
	if err != nil {
		return attendanceapimodels.ValidationReport{}, err
	}

	workingDays := accounting.WorkingDays(first, last, holidaySet)
	completion := accounting.ValidateCompletion(employees, workingDays, records)

	report := attendanceapimodels.ValidationReport{
		IsComplete:           completion.IsComplete,
		TotalExpected:        completion.TotalExpected,
		TotalMarked:          completion.TotalMarked,
		MissingCount:         len(completion.Missing),
		CompletionPercentage: completion.CompletionPercentage,
		MissingAttendance:    []attendanceapimodels.MissingRecord{},
		Period: attendanceapimodels.ReportPeriod{
			StartDate: first.Format(dateLayout),
			EndDate:   last.Format(dateLayout),
			MonthName: first.Format("January 2006"),
		},
		WorkingDaysCount: len(workingDays),
		EmployeesCount:   len(employees),
	}
	for idx, missing := range completion.Missing {
		if idx == missingListLimit {
			break
		}
		report.MissingAttendance = append(report.MissingAttendance, attendanceapimodels.MissingRecord{
			EmployeeID:    missing.Employee.ID,
			EmployeeName:  missing.Employee.Name,
			Date:          missing.Date.Format(dateLayout),
			DateFormatted: missing.Date.Format("02.01.2006"),
		})
	}
	return report, nil
}

func (i impl) DeleteRecord(adminID, id string) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return apperrors.NewNotFound("отметка не найдена")
	}
	err = i.store.DeleteByID(id)
	if err != nil {
		return err
	}
	i.audit.Log(auditprovider.Entry{
		AdminID:   adminID,
		Action:    models.AuditDelete,
		TableName: "attendance_records",
		RecordID:  id,
		OldValues: attendanceSnapshot(*rec),
	})
	log.
		WithField("rec_id", id).
		Info("удалена отметка посещаемости")
	return nil
}

func (i impl) ClearByDate(adminID, dateStr string) (attendanceapimodels.ClearResult, error) {
	date, err := time.Parse(dateLayout, dateStr)
	if err != nil {
		return attendanceapimodels.ClearResult{}, apperrors.NewValidation("недопустимый формат даты, ожидается YYYY-MM-DD")
	}
	deleted, err := i.store.DeleteByDate(date)
	if err != nil {
		return attendanceapimodels.ClearResult{}, err
	}
	i.audit.Log(auditprovider.Entry{
		AdminID:     adminID,
		Action:      models.AuditDelete,
		TableName:   "attendance_records",
		Description: fmt.Sprintf("удалены отметки за %s: %d", dateStr, deleted),
	})
	log.
		WithField("date", dateStr).
		WithField("deleted", deleted).
		Info("удалены отметки за дату")
	return attendanceapimodels.ClearResult{DeletedCount: deleted}, nil
}

func (i impl) ClearByMonth(adminID, monthStr string) (attendanceapimodels.ClearResult, error) {
	first, last, err := i.monthBounds(monthStr, true)
	if err != nil {
		return attendanceapimodels.ClearResult{}, err
	}
	deleted, err := i.store.DeleteByPeriod(first, last)
	if err != nil {
		return attendanceapimodels.ClearResult{}, err
	}
	i.audit.Log(auditprovider.Entry{
		AdminID:     adminID,
		Action:      models.AuditDelete,
		TableName:   "attendance_records",
		Description: fmt.Sprintf("удалены отметки за %s: %d", first.Format(monthLayout), deleted),
	})
	log.
		WithField("month", first.Format(monthLayout)).
		WithField("deleted", deleted).
		Info("удалены отметки за месяц")
	return attendanceapimodels.ClearResult{DeletedCount: deleted}, nil
}

func (i impl) ExportExcel(ctx context.Context, adminID, monthStr string, forceFullMonth bool) (string, []byte, error) {
	matrix, first, _, err := i.buildMatrix(monthStr, forceFullMonth)
	if err != nil {
		return "", nil, err
	}
	buf, err := i.xls.ExportAttendanceMatrix(matrix, first.Format("January 2006"))
	if err != nil {
		return "", nil, err
	}
	fileName := fmt.Sprintf("attendance_overview_%s.xlsx", first.Format("200601"))
	body := buf.Bytes()
	i.saveReport(ctx, adminID, fileName, models.FileTypeExcel,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", body, first)
	return fileName, body, nil
}

func (i impl) ExportPdf(ctx context.Context, adminID, monthStr string, forceFullMonth bool) (string, []byte, error) {
	matrix, first, _, err := i.buildMatrix(monthStr, forceFullMonth)
	if err != nil {
		return "", nil, err
	}
	body, err := i.pdf.ExportAttendanceSummary(matrix, first.Format("January 2006"))
	if err != nil {
		return "", nil, err
	}
	fileName := fmt.Sprintf("attendance_summary_%s.pdf", first.Format("200601"))
	i.saveReport(ctx, adminID, fileName, models.FileTypePdf, "application/pdf", body, first)
	return fileName, body, nil
}

// отчёт отдаётся клиенту даже если сохранить копию не удалось
func (i impl) saveReport(ctx context.Context, adminID, fileName string, fileType models.FileType, mimeType string, body []byte, first time.Time) {
	fileID, err := i.fileStorage.SaveReport(ctx, filestorage.SaveRequest{
		FileName:    fileName,
		FileType:    fileType,
		MimeType:    mimeType,
		Body:        body,
		Description: fmt.Sprintf("отчёт посещаемости за %s", first.Format(monthLayout)),
		UploadedBy:  adminID,
	})
	if err != nil {
		log.
			WithError(err).
			WithField("file_name", fileName).
			Error("не удалось сохранить копию отчёта")
		return
	}
	i.audit.Log(auditprovider.Entry{
		AdminID:     adminID,
		Action:      models.AuditExport,
		TableName:   "file_storage",
		RecordID:    fileID,
		Description: "экспорт отчёта " + fileName,
	})
}

func (i impl) buildMatrix(monthStr string, forceFullMonth bool) (accounting.Matrix, time.Time, time.Time, error) {
	first, last, err := i.monthBounds(monthStr, forceFullMonth)
	if err != nil {
		return accounting.Matrix{}, time.Time{}, time.Time{}, err
	}
	employees, err := i.accountingEmployees()
	if err != nil {
		return accounting.Matrix{}, time.Time{}, time.Time{}, err
	}
	holidaySet, err := i.holidays.HolidaySet(first, last)
	if err != nil {
		return accounting.Matrix{}, time.Time{}, time.Time{}, err
	}
	records, err := i.accountingRecords(first, last)
	if err != nil {
		return accounting.Matrix{}, time.Time{}, time.Time{}, err
	}
	matrix := accounting.BuildMatrix(employees, accounting.CalendarDays(first, last), records, holidaySet)
	return matrix, first, last, nil
}

func (i impl) monthBounds(periodStr string, forceFullMonth bool) (time.Time, time.Time, error) {
	return parsePeriod(periodStr, time.Now().UTC(), forceFullMonth)
}

// parsePeriod принимает дату YYYY-MM-DD либо месяц YYYY-MM
// и возвращает границы месяца, в который попадает период
func parsePeriod(periodStr string, today time.Time, forceFullMonth bool) (time.Time, time.Time, error) {
	month := today
	if periodStr != "" {
		parsed, err := time.Parse(dateLayout, periodStr)
		if err != nil {
			parsed, err = time.Parse(monthLayout, periodStr)
			if err != nil {
				return time.Time{}, time.Time{}, apperrors.NewValidation("недопустимый формат периода, ожидается YYYY-MM-DD или YYYY-MM")
			}
		}
		month = parsed
	}
	first, last := accounting.MonthBounds(month, today, forceFullMonth)
	return first, last, nil
}

func (i impl) accountingEmployees() ([]accounting.Employee, error) {
	recList, err := i.employeeStore.List("", true)
	if err != nil {
		return nil, err
	}
	employees := make([]accounting.Employee, 0, len(recList))
	for _, rec := range recList {
		item := accounting.Employee{
			ID:    rec.ID,
			Code:  rec.EmployeeCode,
			Name:  rec.Name,
			Email: rec.Email,
		}
		if rec.Department != nil {
			item.Department = rec.Department.Name
		}
		employees = append(employees, item)
	}
	return employees, nil
}

func (i impl) accountingRecords(first, last time.Time) ([]accounting.Record, error) {
	recList, err := i.store.FindByPeriod(first, last, "")
	if err != nil {
		return nil, err
	}
	records := make([]accounting.Record, 0, len(recList))
	for _, rec := range recList {
		records = append(records, accounting.Record{
			EmployeeID: rec.EmployeeID,
			Date:       time.Date(rec.Date.Year(), rec.Date.Month(), rec.Date.Day(), 0, 0, 0, 0, time.UTC),
			Status:     rec.Status,
		})
	}
	return records, nil
}

func attendanceSnapshot(rec dbmodels.AttendanceRecord) dbmodels.EntitySnapshot {
	return dbmodels.EntitySnapshot{
		"employee_id": rec.EmployeeID,
		"date":        rec.Date.Format(dateLayout),
		"status":      string(rec.Status),
		"notes":       rec.Notes,
		"marked_by":   rec.MarkedBy,
	}
}
