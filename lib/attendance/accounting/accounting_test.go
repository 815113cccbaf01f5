package accounting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"hr-attendance-backend/models"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func roster(n int) []Employee {
	list := make([]Employee, 0, n)
	for i := 0; i < n; i++ {
		list = append(list, Employee{
			ID:   string(rune('a' + i)),
			Name: "Сотрудник " + string(rune('A'+i)),
		})
	}
	return list
}

func markAll(employees []Employee, days []time.Time) []Record {
	records := []Record{}
	for _, emp := range employees {
		for _, d := range days {
			records = append(records, Record{EmployeeID: emp.ID, Date: d, Status: models.AttendancePresent})
		}
	}
	return records
}

func TestWorkingDays(t *testing.T) {
	// февраль 2025: 28 дней, 20 будней
	first := day(2025, time.February, 1)
	last := day(2025, time.February, 28)

	days := WorkingDays(first, last, nil)
	require.Len(t, days, 20)
	for _, d := range days {
		require.NotEqual(t, time.Saturday, d.Weekday())
		require.NotEqual(t, time.Sunday, d.Weekday())
	}
	// хронологический порядок
	for i := 1; i < len(days); i++ {
		require.True(t, days[i-1].Before(days[i]))
	}

	holidays := map[string]string{
		"2025-02-14": "День компании",
		"2025-02-15": "Выходной праздник", // суббота, и так исключена
	}
	days = WorkingDays(first, last, holidays)
	require.Len(t, days, 19)
	for _, d := range days {
		require.NotEqual(t, "2025-02-14", d.Format("2006-01-02"))
	}
}

func TestMonthBounds(t *testing.T) {
	today := day(2025, time.May, 10)

	// прошлый месяц — полный
	first, last := MonthBounds(day(2025, time.April, 15), today, false)
	require.Equal(t, day(2025, time.April, 1), first)
	require.Equal(t, day(2025, time.April, 30), last)

	// текущий месяц усекается до сегодня
	first, last = MonthBounds(day(2025, time.May, 20), today, false)
	require.Equal(t, day(2025, time.May, 1), first)
	require.Equal(t, today, last)

	// принудительно полный месяц
	first, last = MonthBounds(day(2025, time.May, 20), today, true)
	require.Equal(t, day(2025, time.May, 31), last)

	// будущий месяц — полный
	_, last = MonthBounds(day(2025, time.June, 2), today, false)
	require.Equal(t, day(2025, time.June, 30), last)

	// декабрь: переход года
	first, last = MonthBounds(day(2024, time.December, 5), today, false)
	require.Equal(t, day(2024, time.December, 1), first)
	require.Equal(t, day(2024, time.December, 31), last)
}

func TestMonthBoundsCurrentMonthElapsedDays(t *testing.T) {
	// май 2025: всего 22 будних дня, к 10 мая прошло 7
	today := day(2025, time.May, 10)
	first, last := MonthBounds(today, today, false)
	require.Len(t, WorkingDays(first, day(2025, time.May, 31), nil), 22)
	require.Len(t, WorkingDays(first, last, nil), 7)
}

func TestValidateCompletionAllMarked(t *testing.T) {
	employees := roster(5)
	workingDays := WorkingDays(day(2025, time.February, 1), day(2025, time.February, 28), nil)
	require.Len(t, workingDays, 20)

	report := ValidateCompletion(employees, workingDays, markAll(employees, workingDays))
	require.True(t, report.IsComplete)
	require.Equal(t, 100, report.TotalExpected)
	require.Equal(t, 100, report.TotalMarked)
	require.Empty(t, report.Missing)
	require.Equal(t, 100.0, report.CompletionPercentage)
}

func TestValidateCompletionOneMissing(t *testing.T) {
	employees := roster(5)
	workingDays := WorkingDays(day(2025, time.February, 1), day(2025, time.February, 28), nil)
	records := markAll(employees, workingDays)

	// убираем одну отметку
	dropped := records[len(records)-1]
	records = records[:len(records)-1]

	report := ValidateCompletion(employees, workingDays, records)
	require.False(t, report.IsComplete)
	require.Equal(t, 100, report.TotalExpected)
	require.Equal(t, 99, report.TotalMarked)
	require.Len(t, report.Missing, 1)
	require.Equal(t, dropped.EmployeeID, report.Missing[0].Employee.ID)
	require.Equal(t, dropped.Date, report.Missing[0].Date)
	require.Equal(t, 99.0, report.CompletionPercentage)
}

func TestValidateCompletionEmptyInput(t *testing.T) {
	report := ValidateCompletion(nil, nil, nil)
	require.True(t, report.IsComplete)
	require.Equal(t, 0, report.TotalExpected)
	require.Equal(t, 100.0, report.CompletionPercentage)

	// сотрудники есть, рабочих дней нет
	report = ValidateCompletion(roster(3), nil, nil)
	require.Equal(t, 0, report.TotalExpected)
	require.Equal(t, 100.0, report.CompletionPercentage)
	require.True(t, report.IsComplete)
}

func TestValidateCompletionMissingOrder(t *testing.T) {
	employees := roster(2)
	workingDays := []time.Time{
		day(2025, time.February, 3),
		day(2025, time.February, 4),
	}
	report := ValidateCompletion(employees, workingDays, nil)
	require.Len(t, report.Missing, 4)
	// порядок: по сотрудникам, внутри — по датам
	require.Equal(t, "a", report.Missing[0].Employee.ID)
	require.Equal(t, day(2025, time.February, 3), report.Missing[0].Date)
	require.Equal(t, "a", report.Missing[1].Employee.ID)
	require.Equal(t, day(2025, time.February, 4), report.Missing[1].Date)
	require.Equal(t, "b", report.Missing[2].Employee.ID)
	require.InDelta(t, 0.0, report.CompletionPercentage, 0.001)
}

func TestBuildMatrix(t *testing.T) {
	employees := roster(2)
	allDays := CalendarDays(day(2025, time.February, 1), day(2025, time.February, 28))
	holidays := map[string]string{"2025-02-14": "День компании"}

	records := []Record{
		{EmployeeID: "a", Date: day(2025, time.February, 3), Status: models.AttendancePresent},
		{EmployeeID: "a", Date: day(2025, time.February, 4), Status: models.AttendanceHalfDay},
		// суббота: сверхурочные попадают в матрицу и итоги
		{EmployeeID: "a", Date: day(2025, time.February, 8), Status: models.AttendanceOvertime},
		{EmployeeID: "b", Date: day(2025, time.February, 3), Status: models.AttendanceAbsent},
		// отметка в праздник: ячейка показывает праздник, в итоги не входит
		{EmployeeID: "b", Date: day(2025, time.February, 14), Status: models.AttendancePresent},
	}

	matrix := BuildMatrix(employees, allDays, records, holidays)
	require.Len(t, matrix.Rows, 2)
	require.Len(t, matrix.Rows[0].Cells, 28)
	require.Equal(t, 19, matrix.WorkingDayCount)

	statusCells := 0
	for _, row := range matrix.Rows {
		for _, cell := range row.Cells {
			if cell.Kind == CellStatus {
				statusCells++
			}
		}
	}
	require.Equal(t, 4, statusCells)

	rowA := matrix.Rows[0]
	require.Equal(t, 1, rowA.Tallies[models.AttendancePresent])
	require.Equal(t, 1, rowA.Tallies[models.AttendanceHalfDay])
	require.Equal(t, 1, rowA.Tallies[models.AttendanceOvertime])
	require.Equal(t, 3, rowA.TotalMarked)
	// 1 present из 19 рабочих дней
	require.Equal(t, 5.3, rowA.AttendancePercentage)

	// праздничная ячейка
	cell14 := rowA.Cells[13]
	require.Equal(t, CellHoliday, cell14.Kind)
	require.Equal(t, "День компании", cell14.Value)

	// выходная ячейка без отметки
	rowB := matrix.Rows[1]
	require.Equal(t, CellWeekend, rowB.Cells[7].Kind)
	// будняя ячейка без отметки
	require.Equal(t, CellEmpty, rowB.Cells[4].Kind)
	// подпись статуса
	require.Equal(t, "Absent", rowB.Cells[2].Value)
}

func TestBuildMatrixEmptyRange(t *testing.T) {
	matrix := BuildMatrix(roster(1), nil, nil, nil)
	require.Len(t, matrix.Rows, 1)
	require.Empty(t, matrix.Rows[0].Cells)
	require.Equal(t, 0, matrix.WorkingDayCount)
	require.Equal(t, 0.0, matrix.Rows[0].AttendancePercentage)
}

func TestCompletionPercentageBounds(t *testing.T) {
	employees := roster(3)
	workingDays := WorkingDays(day(2025, time.April, 1), day(2025, time.April, 30), nil)
	records := markAll(employees[:1], workingDays)

	report := ValidateCompletion(employees, workingDays, records)
	require.GreaterOrEqual(t, report.CompletionPercentage, 0.0)
	require.LessOrEqual(t, report.CompletionPercentage, 100.0)
	require.InDelta(t, 33.3, report.CompletionPercentage, 0.001)
}
