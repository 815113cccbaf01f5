package xlsexport

import (
	"bytes"
	"fmt"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
	"hr-attendance-backend/lib/attendance/accounting"
	"hr-attendance-backend/models"
)

// цвета ячеек по статусам, как в исходных отчётах
const (
	headerColor  = "366092"
	weekendColor = "F0F0F0"
	holidayColor = "FFE6E6"
)

var statusColor = map[models.AttendanceStatus]string{
	models.AttendancePresent:  "90EE90",
	models.AttendanceHalfDay:  "FFFF99",
	models.AttendanceAbsent:   "FFB6C1",
	models.AttendanceLeave:    "ADD8E6",
	models.AttendanceOvertime: "DDA0DD",
}

type Provider interface {
	ExportAttendanceMatrix(matrix accounting.Matrix, monthTitle string) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

var identityHeaders = []string{"Employee ID", "Employee Name", "Email", "Department"}

func (i impl) ExportAttendanceMatrix(matrix accounting.Matrix, monthTitle string) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("ошибка закрытия файла")
		}
	}()
	sheet := "Sheet1"

	headers := make([]string, 0, len(identityHeaders)+len(matrix.Days)+len(models.AttendanceStatuses)+1)
	headers = append(headers, identityHeaders...)
	// без переноса строки, иначе Excel ругается на заголовок
	for _, day := range matrix.Days {
		headers = append(headers, fmt.Sprintf("%d %s", day.Day(), day.Format("Mon")))
	}
	for _, status := range models.AttendanceStatuses {
		headers = append(headers, status.Label())
	}
	headers = append(headers, "Total Working Days")

	row := 0
	row, err := writeHeader(f, sheet, row, headers)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка формирования заголовка в xlsx")
	}
	row, err = writeMatrixData(f, sheet, matrix, row)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка формирования таблицы с данными в xlsx")
	}

	if err = f.SetColWidth(sheet, "A", "A", 12); err != nil {
		return nil, err
	}
	if err = f.SetColWidth(sheet, "B", "D", 22); err != nil {
		return nil, err
	}
	dayFirst, err := excelize.ColumnNumberToName(len(identityHeaders) + 1)
	if err != nil {
		return nil, err
	}
	dayLast, err := excelize.ColumnNumberToName(len(identityHeaders) + len(matrix.Days))
	if err != nil {
		return nil, err
	}
	if err = f.SetColWidth(sheet, dayFirst, dayLast, 6); err != nil {
		return nil, err
	}

	f.SetSheetName(sheet, monthTitle)
	return f.WriteToBuffer()
}

func writeMatrixData(f *excelize.File, sheet string, matrix accounting.Matrix, row int) (int, error) {
	styleCache := map[string]int{}
	styleFor := func(color string) (int, error) {
		if id, ok := styleCache[color]; ok {
			return id, nil
		}
		id, err := fillStyle(f, color)
		if err != nil {
			return 0, err
		}
		styleCache[color] = id
		return id, nil
	}

	for _, matrixRow := range matrix.Rows {
		row++
		col := 1
		if err := writeColumn(f, sheet, col, row, matrixRow.Employee.Code); err != nil {
			return row, err
		}
		col++
		if err := writeColumn(f, sheet, col, row, matrixRow.Employee.Name); err != nil {
			return row, err
		}
		col++
		if err := writeColumn(f, sheet, col, row, matrixRow.Employee.Email); err != nil {
			return row, err
		}
		col++
		if err := writeColumn(f, sheet, col, row, matrixRow.Employee.Department); err != nil {
			return row, err
		}

		for _, cell := range matrixRow.Cells {
			col++
			switch cell.Kind {
			case accounting.CellStatus:
				if err := writeColumn(f, sheet, col, row, cell.Value); err != nil {
					return row, err
				}
				styleID, err := styleFor(statusColor[cell.Status])
				if err != nil {
					return row, err
				}
				if err = setCellStyle(f, sheet, col, row, styleID); err != nil {
					return row, err
				}
			case accounting.CellHoliday:
				if err := writeColumn(f, sheet, col, row, holidayCellValue(cell.Value)); err != nil {
					return row, err
				}
				styleID, err := styleFor(holidayColor)
				if err != nil {
					return row, err
				}
				if err = setCellStyle(f, sheet, col, row, styleID); err != nil {
					return row, err
				}
			case accounting.CellWeekend:
				styleID, err := styleFor(weekendColor)
				if err != nil {
					return row, err
				}
				if err = setCellStyle(f, sheet, col, row, styleID); err != nil {
					return row, err
				}
			}
		}

		for _, status := range models.AttendanceStatuses {
			col++
			if err := writeColumn(f, sheet, col, row, matrixRow.Tallies[status]); err != nil {
				return row, err
			}
		}
		col++
		if err := writeColumn(f, sheet, col, row, matrixRow.TotalMarked); err != nil {
			return row, err
		}
	}
	return row, nil
}

// holidayCellValue — подпись праздничной ячейки, длинные названия усекаются
func holidayCellValue(name string) string {
	runes := []rune(name)
	if len(runes) > 15 {
		return "Holiday: " + string(runes[:12]) + "..."
	}
	return "Holiday: " + name
}
