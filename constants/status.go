package constants

// User role
const (
	RoleAdmin    = "admin"
	RoleEmployee = "employee"
)

// Sale status
const (
	SaleStatusPending       = "Pending"
	SaleStatusPartiallyPaid = "Partially Paid"
	SaleStatusFullyPaid     = "Fully Paid"
)

// Salary status
const (
	SalaryStatusPending = "Pending"
	SalaryStatusPaid    = "Paid"
)

// MonthNames danh sách tên tháng theo thứ tự lịch, dùng cho báo cáo 12 tháng
var MonthNames = [12]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// ValidSaleStatus kiểm tra status của sale có hợp lệ không
func ValidSaleStatus(status string) bool {
	switch status {
	case SaleStatusPending, SaleStatusPartiallyPaid, SaleStatusFullyPaid:
		return true
	}
	return false
}

// ValidSalaryStatus kiểm tra status của salary có hợp lệ không
func ValidSalaryStatus(status string) bool {
	return status == SalaryStatusPending || status == SalaryStatusPaid
}
