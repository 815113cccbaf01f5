package attendancehandler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	apperrors "hr-attendance-backend/lib/utils/apperrors"
)

func TestParsePeriodByDate(t *testing.T) {
	today := time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)

	// дата из прошлого месяца даёт полный месяц этой даты
	first, last, err := parsePeriod("2025-03-15", today, false)
	require.NoError(t, err)
	require.Equal(t, time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC), first)
	require.Equal(t, time.Date(2025, time.March, 31, 0, 0, 0, 0, time.UTC), last)
}

func TestParsePeriodByMonth(t *testing.T) {
	today := time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)

	first, last, err := parsePeriod("2025-03", today, false)
	require.NoError(t, err)
	require.Equal(t, time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC), first)
	require.Equal(t, time.Date(2025, time.March, 31, 0, 0, 0, 0, time.UTC), last)
}

func TestParsePeriodCurrentMonthTruncated(t *testing.T) {
	today := time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)

	first, last, err := parsePeriod("2025-06-20", today, false)
	require.NoError(t, err)
	require.Equal(t, time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC), first)
	require.Equal(t, time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC), last)

	_, last, err = parsePeriod("2025-06-20", today, true)
	require.NoError(t, err)
	require.Equal(t, time.Date(2025, time.June, 30, 0, 0, 0, 0, time.UTC), last)
}

func TestParsePeriodDefaultsToToday(t *testing.T) {
	today := time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)

	first, last, err := parsePeriod("", today, false)
	require.NoError(t, err)
	require.Equal(t, time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC), first)
	require.Equal(t, time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC), last)
}

func TestParsePeriodInvalid(t *testing.T) {
	today := time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)

	_, _, err := parsePeriod("15.03.2025", today, false)
	require.Error(t, err)
	require.True(t, apperrors.IsKind(err, apperrors.KindValidation))
}
