package pdfexport

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"
	"hr-attendance-backend/lib/attendance/accounting"
	"hr-attendance-backend/models"
)

type Provider interface {
	ExportAttendanceSummary(matrix accounting.Matrix, monthTitle string) (pdfFile []byte, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

// ExportAttendanceSummary формирует сводный отчёт за месяц:
// строка на сотрудника с итогами по статусам и процентом посещаемости
func (i impl) ExportAttendanceSummary(matrix accounting.Matrix, monthTitle string) (pdfFile []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("ExportAttendanceSummary panic recover: %v", r)
		}
	}()
	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	if pdf.Error() != nil {
		return nil, pdf.Error()
	}

	pdf.CellFormat(0, 10, fmt.Sprintf("Attendance Summary - %s", monthTitle), "", 1, "C", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, fmt.Sprintf("Employees: %d    Working days: %d", len(matrix.Rows), matrix.WorkingDayCount), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	colWidths := summaryColWidths()
	headers := summaryHeaders()

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(54, 96, 146)
	pdf.SetTextColor(255, 255, 255)
	for idx, header := range headers {
		pdf.CellFormat(colWidths[idx], 8, header, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(0, 0, 0)
	fill := false
	for _, row := range matrix.Rows {
		pdf.SetFillColor(240, 240, 240)
		col := 0
		writeCell := func(value, align string) {
			pdf.CellFormat(colWidths[col], 7, value, "1", 0, align, fill, 0, "")
			col++
		}
		writeCell(row.Employee.Code, "L")
		writeCell(row.Employee.Name, "L")
		for _, status := range models.AttendanceStatuses {
			writeCell(fmt.Sprintf("%d", row.Tallies[status]), "C")
		}
		writeCell(fmt.Sprintf("%d", row.TotalMarked), "C")
		writeCell(fmt.Sprintf("%.1f%%", row.AttendancePercentage), "C")
		pdf.Ln(-1)
		fill = !fill
	}

	buf := new(bytes.Buffer)
	err = pdf.Output(buf)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func summaryHeaders() []string {
	headers := []string{"Employee ID", "Name"}
	for _, status := range models.AttendanceStatuses {
		headers = append(headers, status.Label())
	}
	return append(headers, "Total Days", "Attendance %")
}

func summaryColWidths() []float64 {
	widths := []float64{30, 64}
	for range models.AttendanceStatuses {
		widths = append(widths, 21)
	}
	return append(widths, 21, 28)
}
