package services

import (
	"testing"
	"time"

	"backoffice/dto"
	"backoffice/models"

	"github.com/stretchr/testify/require"
)

func floatPtr(f float64) *float64 { return &f }
func strPtr(s string) *string     { return &s }
func uintPtr(u uint) *uint        { return &u }

func TestApplySaleUpdatePartialFields(t *testing.T) {
	sale := models.Sale{
		ClientName:     "Acme",
		ProjectTitle:   "Website",
		TotalAmount:    1000,
		UpfrontAmount:  300,
		ReceivedAmount: 200,
		Status:         "Partially Paid",
		UserID:         4,
	}

	ApplySaleUpdate(&sale, dto.SaleUpdateRequest{
		ReceivedAmount: floatPtr(700),
	})

	// chỉ field có mặt bị ghi đè, phần còn lại giữ nguyên
	require.Equal(t, float64(700), sale.ReceivedAmount)
	require.Equal(t, "Acme", sale.ClientName)
	require.Equal(t, float64(1000), sale.TotalAmount)
	require.Equal(t, float64(300), sale.UpfrontAmount)
	require.Equal(t, "Partially Paid", sale.Status)
	require.Equal(t, uint(4), sale.UserID)
}

// sau khi merge, hook BeforeSave tính lại remainingAmount từ hỗn hợp
// giá trị mới và giá trị cũ
func TestApplySaleUpdateThenRecompute(t *testing.T) {
	sale := models.Sale{
		TotalAmount:     1000,
		UpfrontAmount:   300,
		ReceivedAmount:  200,
		RemainingAmount: 500,
	}

	ApplySaleUpdate(&sale, dto.SaleUpdateRequest{
		ReceivedAmount: floatPtr(700),
		Status:         strPtr("Fully Paid"),
	})
	require.NoError(t, sale.BeforeSave(nil))

	require.Equal(t, float64(0), sale.RemainingAmount)
	require.Equal(t, "Fully Paid", sale.Status)
}

func TestApplySaleUpdateLeadDateDrivesMonthYear(t *testing.T) {
	oldDate := time.Date(2023, time.May, 10, 0, 0, 0, 0, time.UTC)
	sale := models.Sale{
		TotalAmount: 500,
		LeadDate:    &oldDate,
		Month:       "May",
		Year:        2023,
	}

	newDate := time.Date(2024, time.September, 1, 0, 0, 0, 0, time.UTC)
	ApplySaleUpdate(&sale, dto.SaleUpdateRequest{LeadDate: &newDate})
	require.NoError(t, sale.BeforeSave(nil))

	require.Equal(t, "September", sale.Month)
	require.Equal(t, 2024, sale.Year)
}

func TestApplySalaryUpdatePartialFields(t *testing.T) {
	paidDate := time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC)
	salary := models.Salary{
		EmployeeID: 2,
		AdminID:    1,
		Amount:     5000,
		Bonus:      500,
		Status:     "Pending",
		PaidDate:   paidDate,
	}

	ApplySalaryUpdate(&salary, dto.SalaryUpdateRequest{
		Status: strPtr("Paid"),
		Bonus:  floatPtr(800),
	})
	require.NoError(t, salary.BeforeSave(nil))

	require.Equal(t, "Paid", salary.Status)
	require.Equal(t, float64(800), salary.Bonus)
	require.Equal(t, float64(5000), salary.Amount)
	require.Equal(t, float64(5800), salary.TotalAmount)
	require.Equal(t, uint(2), salary.EmployeeID)
	require.Equal(t, "January", salary.Month)
	require.Equal(t, 2024, salary.Year)
}

func TestApplySalaryUpdateEmptyRequestKeepsEverything(t *testing.T) {
	salary := models.Salary{
		EmployeeID: 2,
		Amount:     5000,
		Bonus:      500,
		Status:     "Pending",
	}

	ApplySalaryUpdate(&salary, dto.SalaryUpdateRequest{})

	require.Equal(t, float64(5000), salary.Amount)
	require.Equal(t, float64(500), salary.Bonus)
	require.Equal(t, "Pending", salary.Status)
}

func TestApplySaleUpdateReassignUser(t *testing.T) {
	sale := models.Sale{TotalAmount: 100, UserID: 4}

	ApplySaleUpdate(&sale, dto.SaleUpdateRequest{User: uintPtr(9)})

	require.Equal(t, uint(9), sale.UserID)
}
