package attendanceapimodels

import (
	"github.com/pkg/errors"
	"hr-attendance-backend/models"
)

type MarkRequest struct {
	EmployeeID string                  `json:"employee_id"`
	Date       string                  `json:"date"` // YYYY-MM-DD, по умолчанию сегодня
	Status     models.AttendanceStatus `json:"status"`
}

func (r MarkRequest) Validate() error {
	if r.EmployeeID == "" {
		return errors.New("не указан сотрудник")
	}
	if !r.Status.IsValid() {
		return errors.Errorf("недопустимый статус посещаемости: %s", r.Status)
	}
	return nil
}

type BulkMarkRequest struct {
	Date           string       `json:"date"`
	AttendanceData []BulkRecord `json:"attendance_data"`
}

type BulkRecord struct {
	EmployeeID string                  `json:"employee_id"`
	Status     models.AttendanceStatus `json:"status"`
}

func (r BulkMarkRequest) Validate() error {
	if len(r.AttendanceData) == 0 {
		return errors.New("не переданы данные посещаемости")
	}
	for _, rec := range r.AttendanceData {
		if rec.EmployeeID == "" {
			return errors.New("не указан сотрудник")
		}
		if !rec.Status.IsValid() {
			return errors.Errorf("недопустимый статус посещаемости: %s", rec.Status)
		}
	}
	return nil
}

// DayReport — сводка по одному дню
type DayReport struct {
	Date           string            `json:"date"`
	TotalEmployees int               `json:"total_employees"`
	PresentCount   int               `json:"present_count"`
	AbsentCount    int               `json:"absent_count"`
	NotMarkedCount int               `json:"not_marked_count"`
	Employees      []DayReportRecord `json:"employees"`
}

type DayReportRecord struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Status string `json:"status"`
}

// OverviewResponse — данные месячной матрицы без рендеринга
type OverviewResponse struct {
	Month          string                       `json:"month"`
	FirstDay       string                       `json:"first_day"`
	LastDay        string                       `json:"last_day"`
	Employees      []OverviewEmployee           `json:"employees"`
	AttendanceData map[string]map[string]string `json:"attendance_data"`
}

type OverviewEmployee struct {
	ID           string `json:"id"`
	EmployeeCode string `json:"employee_id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Department   string `json:"department,omitempty"`
}

// ValidationReport — результат проверки полноты отметок за месяц
type ValidationReport struct {
	IsComplete           bool            `json:"is_complete"`
	TotalExpected        int             `json:"total_expected"`
	TotalMarked          int             `json:"total_marked"`
	MissingCount         int             `json:"missing_count"`
	CompletionPercentage float64         `json:"completion_percentage"`
	MissingAttendance    []MissingRecord `json:"missing_attendance"`
	Period               ReportPeriod    `json:"period"`
	WorkingDaysCount     int             `json:"working_days_count"`
	EmployeesCount       int             `json:"employees_count"`
}

type MissingRecord struct {
	EmployeeID    string `json:"employee_id"`
	EmployeeName  string `json:"employee_name"`
	Date          string `json:"date"`
	DateFormatted string `json:"date_formatted"`
}

type ReportPeriod struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	MonthName string `json:"month_name"`
}

type ClearResult struct {
	DeletedCount int64 `json:"deleted_count"`
}
