package xlsexport

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"hr-attendance-backend/lib/attendance/accounting"
	"hr-attendance-backend/models"
)

func TestExportAttendanceMatrix(t *testing.T) {
	first := time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC)
	last := time.Date(2025, time.February, 28, 0, 0, 0, 0, time.UTC)
	allDays := accounting.CalendarDays(first, last)
	holidays := map[string]string{"2025-02-14": "День компании"}

	employees := []accounting.Employee{
		{ID: "emp-1", Code: "EMP001", Name: "Иванов Иван", Email: "ivanov@example.com", Department: "Разработка"},
		{ID: "emp-2", Code: "EMP002", Name: "Петров Пётр", Email: "petrov@example.com"},
	}
	records := []accounting.Record{
		{EmployeeID: "emp-1", Date: time.Date(2025, time.February, 3, 0, 0, 0, 0, time.UTC), Status: models.AttendancePresent},
		{EmployeeID: "emp-1", Date: time.Date(2025, time.February, 4, 0, 0, 0, 0, time.UTC), Status: models.AttendanceHalfDay},
		{EmployeeID: "emp-2", Date: time.Date(2025, time.February, 3, 0, 0, 0, 0, time.UTC), Status: models.AttendanceAbsent},
	}
	matrix := accounting.BuildMatrix(employees, allDays, records, holidays)

	NewHandler()
	buf, err := Instance.ExportAttendanceMatrix(matrix, "February 2025")
	require.NoError(t, err)
	require.NotZero(t, buf.Len())

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()

	sheet := "February 2025"
	require.Contains(t, f.GetSheetList(), sheet)

	// шапка: идентификация, день месяца, итоговые колонки
	value, err := f.GetCellValue(sheet, "A1")
	require.NoError(t, err)
	require.Equal(t, "Employee ID", value)

	value, err = f.GetCellValue(sheet, "B1")
	require.NoError(t, err)
	require.Equal(t, "Employee Name", value)

	value, err = f.GetCellValue(sheet, "D1")
	require.NoError(t, err)
	require.Equal(t, "Department", value)

	value, err = f.GetCellValue(sheet, "E1")
	require.NoError(t, err)
	require.Equal(t, "1 Sat", value)

	// колонки итогов идут после 28 дней: E..AF дни, AG..AK итоги, AL всего
	value, err = f.GetCellValue(sheet, "AG1")
	require.NoError(t, err)
	require.Equal(t, "Present", value)

	value, err = f.GetCellValue(sheet, "AL1")
	require.NoError(t, err)
	require.Equal(t, "Total Working Days", value)

	// строка первого сотрудника
	value, err = f.GetCellValue(sheet, "A2")
	require.NoError(t, err)
	require.Equal(t, "EMP001", value)

	value, err = f.GetCellValue(sheet, "D2")
	require.NoError(t, err)
	require.Equal(t, "Разработка", value)

	// 3 февраля — колонка G (E=1 фев)
	value, err = f.GetCellValue(sheet, "G2")
	require.NoError(t, err)
	require.Equal(t, "Present", value)

	// праздничная ячейка 14 февраля — колонка R
	value, err = f.GetCellValue(sheet, "R2")
	require.NoError(t, err)
	require.Equal(t, "Holiday: День компании", value)

	// итоги первого сотрудника: 1 present, 1 half day, всего отмечено 2
	value, err = f.GetCellValue(sheet, "AG2")
	require.NoError(t, err)
	require.Equal(t, "1", value)
	value, err = f.GetCellValue(sheet, "AH2")
	require.NoError(t, err)
	require.Equal(t, "1", value)
	value, err = f.GetCellValue(sheet, "AL2")
	require.NoError(t, err)
	require.Equal(t, "2", value)

	// у второго сотрудника одна отметка
	value, err = f.GetCellValue(sheet, "AL3")
	require.NoError(t, err)
	require.Equal(t, "1", value)
}

func TestExportAttendanceMatrixEmpty(t *testing.T) {
	NewHandler()
	buf, err := Instance.ExportAttendanceMatrix(accounting.Matrix{}, "Empty")
	require.NoError(t, err)
	require.NotZero(t, buf.Len())
}

func TestHolidayCellValue(t *testing.T) {
	require.Equal(t, "Holiday: Новый год", holidayCellValue("Новый год"))
	require.Equal(t, "Holiday: День народно...", holidayCellValue("День народного единства"))
}
