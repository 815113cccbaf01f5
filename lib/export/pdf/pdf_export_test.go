package pdfexport

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"hr-attendance-backend/lib/attendance/accounting"
	"hr-attendance-backend/models"
)

func TestExportAttendanceSummary(t *testing.T) {
	first := time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC)
	last := time.Date(2025, time.February, 28, 0, 0, 0, 0, time.UTC)
	allDays := accounting.CalendarDays(first, last)

	employees := []accounting.Employee{
		{ID: "emp-1", Code: "EMP001", Name: "Ivanov Ivan"},
		{ID: "emp-2", Code: "EMP002", Name: "Petrov Petr"},
	}
	records := []accounting.Record{
		{EmployeeID: "emp-1", Date: time.Date(2025, time.February, 3, 0, 0, 0, 0, time.UTC), Status: models.AttendancePresent},
		{EmployeeID: "emp-2", Date: time.Date(2025, time.February, 3, 0, 0, 0, 0, time.UTC), Status: models.AttendanceLeave},
	}
	matrix := accounting.BuildMatrix(employees, allDays, records, nil)

	NewHandler()
	body, err := Instance.ExportAttendanceSummary(matrix, "February 2025")
	require.NoError(t, err)
	require.NotEmpty(t, body)
	// сигнатура PDF
	require.Equal(t, "%PDF", string(body[:4]))
}

func TestExportAttendanceSummaryEmpty(t *testing.T) {
	NewHandler()
	body, err := Instance.ExportAttendanceSummary(accounting.Matrix{}, "Empty")
	require.NoError(t, err)
	require.NotEmpty(t, body)
}
