package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSalaryBeforeSaveTotalAmount(t *testing.T) {
	salary := Salary{Amount: 5000, Bonus: 500}
	require.NoError(t, salary.BeforeSave(nil))
	require.Equal(t, float64(5500), salary.TotalAmount)
}

func TestSalaryBeforeSaveWithoutBonus(t *testing.T) {
	salary := Salary{Amount: 5000}
	require.NoError(t, salary.BeforeSave(nil))
	require.Equal(t, float64(5000), salary.TotalAmount)
}

func TestSalaryBeforeSaveMonthYearFromPaidDate(t *testing.T) {
	salary := Salary{
		Amount:   4000,
		PaidDate: time.Date(2025, time.November, 28, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, salary.BeforeSave(nil))
	require.Equal(t, "November", salary.Month)
	require.Equal(t, 2025, salary.Year)
}

func TestSalaryBeforeSaveZeroPaidDateKeepsMonthYear(t *testing.T) {
	salary := Salary{
		Amount: 4000,
		Month:  "May",
		Year:   2022,
	}
	require.NoError(t, salary.BeforeSave(nil))
	require.Equal(t, "May", salary.Month)
	require.Equal(t, 2022, salary.Year)
}
