package services

import (
	"testing"

	"backoffice/constants"

	"github.com/stretchr/testify/require"
)

func TestBuildMonthlyReportFillsAllTwelveMonths(t *testing.T) {
	report := BuildMonthlyReport(nil, 2024)

	require.Len(t, report, 12)
	for i, entry := range report {
		require.Equal(t, constants.MonthNames[i], entry.Month)
		require.Equal(t, 2024, entry.Year)
		require.Zero(t, entry.TotalAmount)
		require.Zero(t, entry.Count)
	}
}

func TestBuildMonthlyReportSingleMonth(t *testing.T) {
	rows := []MonthlyRow{
		{Month: 3, TotalAmount: 1200, Count: 1},
	}
	report := BuildMonthlyReport(rows, 2024)

	require.Len(t, report, 12)
	require.Equal(t, "March", report[2].Month)
	require.Equal(t, float64(1200), report[2].TotalAmount)
	require.Equal(t, int64(1), report[2].Count)

	// các tháng còn lại đều 0
	for i, entry := range report {
		if i == 2 {
			continue
		}
		require.Zero(t, entry.TotalAmount, entry.Month)
		require.Zero(t, entry.Count, entry.Month)
	}
}

// thứ tự báo cáo luôn theo lịch, không phụ thuộc thứ tự DB trả về
func TestBuildMonthlyReportCalendarOrder(t *testing.T) {
	rows := []MonthlyRow{
		{Month: 12, TotalAmount: 300, Count: 3},
		{Month: 1, TotalAmount: 100, Count: 1},
		{Month: 6, TotalAmount: 200, Count: 2},
	}
	report := BuildMonthlyReport(rows, 2023)

	require.Equal(t, "January", report[0].Month)
	require.Equal(t, float64(100), report[0].TotalAmount)
	require.Equal(t, "June", report[5].Month)
	require.Equal(t, float64(200), report[5].TotalAmount)
	require.Equal(t, "December", report[11].Month)
	require.Equal(t, float64(300), report[11].TotalAmount)
	require.Equal(t, int64(3), report[11].Count)
}
