package dto

// MonthlyReportEntry là một dòng trong báo cáo 12 tháng.
// Báo cáo luôn đủ 12 dòng January..December, tháng không có dữ liệu
// trả về totalAmount = 0, count = 0.
type MonthlyReportEntry struct {
	Month       string  `json:"month"`
	Year        int     `json:"year"`
	TotalAmount float64 `json:"totalAmount"`
	Count       int64   `json:"count"`
}

// YearlyReportEntry là một dòng trong báo cáo theo năm,
// chỉ chứa các năm có dữ liệu, sắp xếp tăng dần.
type YearlyReportEntry struct {
	Year        int     `json:"year"`
	TotalAmount float64 `json:"totalAmount"`
	Count       int64   `json:"count"`
}

// CurrentSalesAmount tổng doanh số tháng hiện tại và năm hiện tại của một nhân viên
type CurrentSalesAmount struct {
	TotalMonthlySales float64 `json:"totalMonthlySales"`
	TotalYearlySales  float64 `json:"totalYearlySales"`
}

// ClientSuggestion một gợi ý tên khách hàng kèm độ tương đồng
type ClientSuggestion struct {
	Name       string  `json:"name"`
	Similarity float64 `json:"similarity"`
}
