package dbmodels

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestHolidayMatchesDate(t *testing.T) {
	exact := Holiday{
		Name: "День компании",
		Date: time.Date(2025, time.March, 8, 0, 0, 0, 0, time.UTC),
	}
	require.True(t, exact.MatchesDate(time.Date(2025, time.March, 8, 0, 0, 0, 0, time.UTC)))
	require.False(t, exact.MatchesDate(time.Date(2026, time.March, 8, 0, 0, 0, 0, time.UTC)))
	require.False(t, exact.MatchesDate(time.Date(2025, time.March, 9, 0, 0, 0, 0, time.UTC)))

	recurring := Holiday{
		Name:        "Новый год",
		Date:        time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC),
		IsRecurring: true,
	}
	require.True(t, recurring.MatchesDate(time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)))
	require.True(t, recurring.MatchesDate(time.Date(2027, time.January, 1, 0, 0, 0, 0, time.UTC)))
	require.False(t, recurring.MatchesDate(time.Date(2027, time.January, 2, 0, 0, 0, 0, time.UTC)))
}

func TestHolidayValidate(t *testing.T) {
	rec := Holiday{}
	require.Error(t, rec.Validate())

	rec.Name = "Праздник"
	require.Error(t, rec.Validate())

	rec.Date = time.Date(2025, time.May, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, rec.Validate())
}

func TestLeaveRequestValidate(t *testing.T) {
	rec := LeaveRequest{
		EmployeeID: "emp-1",
		LeaveType:  "vacation",
		StartDate:  time.Date(2025, time.July, 10, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2025, time.July, 5, 0, 0, 0, 0, time.UTC),
	}
	require.Error(t, rec.Validate())

	rec.EndDate = time.Date(2025, time.July, 14, 0, 0, 0, 0, time.UTC)
	require.NoError(t, rec.Validate())

	rec.LeaveType = "holiday"
	require.Error(t, rec.Validate())
}
