package builders

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewSaleFilterParsesAllParams(t *testing.T) {
	f := NewSaleFilter("march", "2024", "Pending", "7", "acme")

	require.Equal(t, "march", f.Month)
	require.NotNil(t, f.Year)
	require.Equal(t, 2024, *f.Year)
	require.Equal(t, "Pending", f.Status)
	require.NotNil(t, f.UserID)
	require.Equal(t, uint(7), *f.UserID)
	require.Equal(t, "acme", f.Search)
}

func TestNewSaleFilterEmptyParams(t *testing.T) {
	f := NewSaleFilter("", "", "", "", "")

	require.Empty(t, f.Month)
	require.Nil(t, f.Year)
	require.Empty(t, f.Status)
	require.Nil(t, f.UserID)
	require.Empty(t, f.Search)
}

// id nhân viên sai định dạng không chặn request: điều kiện bị bỏ qua
// và query trả về toàn bộ bản ghi
func TestNewSaleFilterDropsMalformedUserID(t *testing.T) {
	for _, user := range []string{"abc", "12x", "-1", "1.5", ""} {
		f := NewSaleFilter("", "", "", user, "")
		require.Nil(t, f.UserID, "user=%q", user)
	}
}

func TestNewSaleFilterDropsMalformedYear(t *testing.T) {
	f := NewSaleFilter("", "twenty24", "", "", "")
	require.Nil(t, f.Year)
}

func TestNewSaleFilterTrimsWhitespace(t *testing.T) {
	f := NewSaleFilter(" March ", " 2024 ", " Pending ", " 3 ", " acme ")

	require.Equal(t, "March", f.Month)
	require.Equal(t, 2024, *f.Year)
	require.Equal(t, "Pending", f.Status)
	require.Equal(t, uint(3), *f.UserID)
	require.Equal(t, "acme", f.Search)
}

func TestNewSalaryFilterDropsMalformedEmployeeID(t *testing.T) {
	f := NewSalaryFilter("", "", "", "not-a-number")
	require.Nil(t, f.EmployeeID)
}

func TestNewSalaryFilterParsesAllParams(t *testing.T) {
	f := NewSalaryFilter("JANUARY", "2023", "Paid", "12")

	require.Equal(t, "JANUARY", f.Month)
	require.Equal(t, 2023, *f.Year)
	require.Equal(t, "Paid", f.Status)
	require.Equal(t, uint(12), *f.EmployeeID)
}
