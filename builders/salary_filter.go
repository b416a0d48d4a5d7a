package builders

import (
	"strconv"
	"strings"

	"gorm.io/gorm"
)

// SalaryFilter gom các điều kiện lọc tùy chọn cho danh sách salaries.
type SalaryFilter struct {
	Month      string
	Year       *int
	Status     string
	EmployeeID *uint
}

// NewSalaryFilter dựng filter từ query params thô, cùng quy ước với
// NewSaleFilter: employeeId sai định dạng bị bỏ qua.
func NewSalaryFilter(month, year, status, employee string) SalaryFilter {
	f := SalaryFilter{
		Month:  strings.TrimSpace(month),
		Status: strings.TrimSpace(status),
	}

	if y, err := strconv.Atoi(strings.TrimSpace(year)); err == nil {
		f.Year = &y
	}

	if id, err := strconv.ParseUint(strings.TrimSpace(employee), 10, 32); err == nil {
		eid := uint(id)
		f.EmployeeID = &eid
	}

	return f
}

// Apply gắn các điều kiện vào query, AND với nhau
func (f SalaryFilter) Apply(tx *gorm.DB) *gorm.DB {
	if f.Month != "" {
		tx = tx.Where("LOWER(month) = LOWER(?)", f.Month)
	}
	if f.Year != nil {
		tx = tx.Where("year = ?", *f.Year)
	}
	if f.Status != "" {
		tx = tx.Where("status = ?", f.Status)
	}
	if f.EmployeeID != nil {
		tx = tx.Where("employee_id = ?", *f.EmployeeID)
	}
	return tx
}
