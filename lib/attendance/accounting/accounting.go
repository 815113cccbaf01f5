package accounting

import (
	"math"
	"time"

	"hr-attendance-backend/models"
)

const dateLayout = "2006-01-02"

// Employee — срез данных сотрудника, достаточный для расчётов и отчётов
type Employee struct {
	ID         string
	Code       string
	Name       string
	Email      string
	Department string
}

// Record — отметка посещаемости на конкретную дату
type Record struct {
	EmployeeID string
	Date       time.Time
	Status     models.AttendanceStatus
}

// Key — ключ пары (сотрудник, дата) для быстрого поиска отметки
func Key(employeeID string, date time.Time) string {
	return employeeID + "_" + date.Format(dateLayout)
}

// MonthBounds возвращает границы месяца для указанной даты.
// Для текущего месяца верхняя граница усекается до today,
// если не запрошен полный месяц.
func MonthBounds(date, today time.Time, forceFullMonth bool) (first, last time.Time) {
	first = time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, time.UTC)
	last = first.AddDate(0, 1, -1)
	if forceFullMonth {
		return first, last
	}
	today = time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	if first.Year() == today.Year() && first.Month() == today.Month() && today.Before(last) {
		last = today
	}
	return first, last
}

// CalendarDays — все даты отрезка [first, last] по возрастанию
func CalendarDays(first, last time.Time) []time.Time {
	days := []time.Time{}
	for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// WorkingDays — рабочие дни отрезка: будни, не входящие в набор праздников.
// Ключи holidays — даты в формате YYYY-MM-DD.
func WorkingDays(first, last time.Time, holidays map[string]string) []time.Time {
	days := []time.Time{}
	for _, d := range CalendarDays(first, last) {
		if isWeekend(d) {
			continue
		}
		if _, ok := holidays[d.Format(dateLayout)]; ok {
			continue
		}
		days = append(days, d)
	}
	return days
}

func isWeekend(d time.Time) bool {
	wd := d.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// CompletionReport — итог сверки ожидаемых и фактических отметок
type CompletionReport struct {
	TotalExpected        int
	TotalMarked          int
	Missing              []MissingPair
	CompletionPercentage float64
	IsComplete           bool
}

type MissingPair struct {
	Employee Employee
	Date     time.Time
}

// ValidateCompletion сверяет отметки по каждой паре (сотрудник, рабочий день).
// Пустой список сотрудников или дней — не ошибка: отчёт с нулями и 100%.
func ValidateCompletion(employees []Employee, workingDays []time.Time, records []Record) CompletionReport {
	marked := make(map[string]struct{}, len(records))
	for _, rec := range records {
		marked[Key(rec.EmployeeID, rec.Date)] = struct{}{}
	}

	report := CompletionReport{
		TotalExpected: len(employees) * len(workingDays),
		Missing:       []MissingPair{},
	}
	for _, emp := range employees {
		for _, day := range workingDays {
			if _, ok := marked[Key(emp.ID, day)]; ok {
				report.TotalMarked++
			} else {
				report.Missing = append(report.Missing, MissingPair{Employee: emp, Date: day})
			}
		}
	}

	if report.TotalExpected == 0 {
		report.CompletionPercentage = 100.0
	} else {
		report.CompletionPercentage = round1(float64(report.TotalMarked) / float64(report.TotalExpected) * 100)
	}
	report.IsComplete = len(report.Missing) == 0
	return report
}

type CellKind int

const (
	CellEmpty CellKind = iota
	CellWeekend
	CellHoliday
	CellStatus
)

type Cell struct {
	Kind   CellKind
	Value  string // название праздника либо подпись статуса
	Status models.AttendanceStatus
}

// Matrix — сетка сотрудник × календарный день с итогами по каждому сотруднику
type Matrix struct {
	Days            []time.Time
	Rows            []MatrixRow
	WorkingDayCount int
}

type MatrixRow struct {
	Employee             Employee
	Cells                []Cell
	Tallies              map[models.AttendanceStatus]int
	TotalMarked          int
	AttendancePercentage float64
}

// BuildMatrix строит матрицу посещаемости за отрезок дат.
// Приоритет значения ячейки: праздник, затем статус, затем пусто.
func BuildMatrix(employees []Employee, allDays []time.Time, records []Record, holidays map[string]string) Matrix {
	statusByKey := make(map[string]models.AttendanceStatus, len(records))
	for _, rec := range records {
		statusByKey[Key(rec.EmployeeID, rec.Date)] = rec.Status
	}

	workingDayCount := 0
	if len(allDays) > 0 {
		workingDayCount = len(WorkingDays(allDays[0], allDays[len(allDays)-1], holidays))
	}

	matrix := Matrix{
		Days:            allDays,
		Rows:            make([]MatrixRow, 0, len(employees)),
		WorkingDayCount: workingDayCount,
	}
	for _, emp := range employees {
		row := MatrixRow{
			Employee: emp,
			Cells:    make([]Cell, 0, len(allDays)),
			Tallies:  map[models.AttendanceStatus]int{},
		}
		for _, day := range allDays {
			row.Cells = append(row.Cells, resolveCell(emp, day, statusByKey, holidays))
		}
		for _, cell := range row.Cells {
			if cell.Kind == CellStatus {
				row.Tallies[cell.Status]++
				row.TotalMarked++
			}
		}
		if workingDayCount > 0 {
			row.AttendancePercentage = round1(float64(row.Tallies[models.AttendancePresent]) / float64(workingDayCount) * 100)
		}
		matrix.Rows = append(matrix.Rows, row)
	}
	return matrix
}

func resolveCell(emp Employee, day time.Time, statusByKey map[string]models.AttendanceStatus, holidays map[string]string) Cell {
	if name, ok := holidays[day.Format(dateLayout)]; ok {
		return Cell{Kind: CellHoliday, Value: name}
	}
	if status, ok := statusByKey[Key(emp.ID, day)]; ok {
		return Cell{Kind: CellStatus, Value: status.Label(), Status: status}
	}
	if isWeekend(day) {
		return Cell{Kind: CellWeekend}
	}
	return Cell{Kind: CellEmpty}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
