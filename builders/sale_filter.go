package builders

import (
	"strconv"
	"strings"

	"gorm.io/gorm"
)

// SaleFilter gom các điều kiện lọc tùy chọn cho danh sách sales.
// Field rỗng/nil nghĩa là không ràng buộc gì trên field đó.
type SaleFilter struct {
	Month  string
	Year   *int
	Status string
	UserID *uint
	Search string
}

// NewSaleFilter dựng filter từ query params thô.
// employeeId sai định dạng bị bỏ qua (không lọc theo nhân viên) thay vì
// trả lỗi hay trả rỗng — một id gõ sai sẽ trả về toàn bộ bản ghi.
func NewSaleFilter(month, year, status, user, search string) SaleFilter {
	f := SaleFilter{
		Month:  strings.TrimSpace(month),
		Status: strings.TrimSpace(status),
		Search: strings.TrimSpace(search),
	}

	if y, err := strconv.Atoi(strings.TrimSpace(year)); err == nil {
		f.Year = &y
	}

	if id, err := strconv.ParseUint(strings.TrimSpace(user), 10, 32); err == nil {
		uid := uint(id)
		f.UserID = &uid
	}

	return f
}

// Apply gắn các điều kiện vào query. Các điều kiện AND với nhau, riêng
// search là OR của hai phép chứa chuỗi không phân biệt hoa thường trên
// client_name và project_title. Không thực thi query.
func (f SaleFilter) Apply(tx *gorm.DB) *gorm.DB {
	if f.Month != "" {
		tx = tx.Where("LOWER(month) = LOWER(?)", f.Month)
	}
	if f.Year != nil {
		tx = tx.Where("year = ?", *f.Year)
	}
	if f.Status != "" {
		tx = tx.Where("status = ?", f.Status)
	}
	if f.UserID != nil {
		tx = tx.Where("user_id = ?", *f.UserID)
	}
	if f.Search != "" {
		pattern := "%" + f.Search + "%"
		tx = tx.Where("client_name ILIKE ? OR project_title ILIKE ?", pattern, pattern)
	}
	return tx
}
