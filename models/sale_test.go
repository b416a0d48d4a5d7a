package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSaleBeforeSaveRemainingAmount(t *testing.T) {
	tests := []struct {
		name     string
		total    float64
		upfront  float64
		received float64
		want     float64
	}{
		{name: "partial payment", total: 1000, upfront: 300, received: 200, want: 500},
		{name: "nothing received", total: 1000, upfront: 0, received: 0, want: 1000},
		{name: "fully paid", total: 1000, upfront: 400, received: 600, want: 0},
		{name: "overpaid goes negative", total: 1000, upfront: 600, received: 600, want: -200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sale := Sale{
				TotalAmount:    tt.total,
				UpfrontAmount:  tt.upfront,
				ReceivedAmount: tt.received,
			}
			require.NoError(t, sale.BeforeSave(nil))
			require.Equal(t, tt.want, sale.RemainingAmount)
		})
	}
}

func TestSaleBeforeSaveRecomputesStaleRemaining(t *testing.T) {
	sale := Sale{
		TotalAmount:     2000,
		ReceivedAmount:  500,
		RemainingAmount: 123, // giá trị cũ phải bị ghi đè
	}
	require.NoError(t, sale.BeforeSave(nil))
	require.Equal(t, float64(1500), sale.RemainingAmount)
}

func TestSaleBeforeSaveMonthYearFromLeadDate(t *testing.T) {
	leadDate := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)
	sale := Sale{
		TotalAmount: 1200,
		LeadDate:    &leadDate,
		Month:       "December", // lệch với leadDate, phải được chuẩn hóa lại
		Year:        1999,
	}
	require.NoError(t, sale.BeforeSave(nil))
	require.Equal(t, "March", sale.Month)
	require.Equal(t, 2024, sale.Year)
}

func TestSaleBeforeSaveKeepsMonthYearWithoutLeadDate(t *testing.T) {
	sale := Sale{
		TotalAmount: 1200,
		Month:       "July",
		Year:        2023,
	}
	require.NoError(t, sale.BeforeSave(nil))
	require.Equal(t, "July", sale.Month)
	require.Equal(t, 2023, sale.Year)
}
