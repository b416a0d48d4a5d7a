package controllers

import (
	"strconv"
	"time"

	"backoffice/builders"
	"backoffice/dto"
	"backoffice/response"
	"backoffice/services"

	"github.com/gin-gonic/gin"
)

type SaleController struct {
	sales   *services.SaleService
	reports *services.ReportService
}

func NewSaleController(sales *services.SaleService, reports *services.ReportService) *SaleController {
	return &SaleController{sales: sales, reports: reports}
}

// saleFilterFromQuery dựng filter từ query params của request
func saleFilterFromQuery(c *gin.Context) builders.SaleFilter {
	return builders.NewSaleFilter(
		c.Query("month"),
		c.Query("year"),
		c.Query("status"),
		c.Query("user"),
		c.Query("search"),
	)
}

// GetSales danh sách sales, lọc tùy chọn theo month/year/status/user/search
func (sc *SaleController) GetSales(c *gin.Context) {
	sales, err := sc.sales.List(saleFilterFromQuery(c))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, "Sales fetched successfully", gin.H{"sales": sales})
}

// GetSaleById một sale theo id
func (sc *SaleController) GetSaleById(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	sale, err := sc.sales.GetByID(id)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, "Sale fetched successfully", gin.H{"sale": sale})
}

// GetSalesByEmployee toàn bộ sales của một nhân viên
func (sc *SaleController) GetSalesByEmployee(c *gin.Context) {
	// employeeId đi qua filter builder: id sai định dạng bị bỏ qua
	// và trả về toàn bộ bản ghi thay vì lỗi
	filter := builders.NewSaleFilter("", "", "", c.Param("employeeId"), "")
	sales, err := sc.sales.List(filter)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, "Employee sales fetched successfully", gin.H{"sales": sales})
}

// GetFilteredSalesByEmployee sales của một nhân viên, lọc thêm theo
// month/year/status/search từ query params
func (sc *SaleController) GetFilteredSalesByEmployee(c *gin.Context) {
	filter := builders.NewSaleFilter(
		c.Query("month"),
		c.Query("year"),
		c.Query("status"),
		c.Param("employeeId"),
		c.Query("search"),
	)
	sales, err := sc.sales.List(filter)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, "Employee sales fetched successfully", gin.H{"sales": sales})
}

// GetSalesByMonthYear sales của một tháng trong năm (query: month, year)
func (sc *SaleController) GetSalesByMonthYear(c *gin.Context) {
	filter := builders.NewSaleFilter(c.Query("month"), c.Query("year"), "", "", "")
	sales, err := sc.sales.List(filter)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, "Sales by month and year fetched successfully", gin.H{"sales": sales})
}

// employeeIDFromParam đọc employeeId cho các endpoint tổng hợp theo nhân viên.
// Khác các endpoint danh sách, id sai định dạng ở đây trả về nil (không lọc).
func employeeIDFromParam(c *gin.Context) *uint {
	id, err := strconv.ParseUint(c.Param("employeeId"), 10, 32)
	if err != nil {
		return nil
	}
	uid := uint(id)
	return &uid
}

// GetRevenue tổng doanh thu của toàn bộ sales
func (sc *SaleController) GetRevenue(c *gin.Context) {
	totalAmount, err := sc.reports.TotalRevenue(nil)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, "Revenue fetched successfully", gin.H{"totalAmount": totalAmount})
}

// GetRevenueByEmployee tổng doanh thu của một nhân viên
func (sc *SaleController) GetRevenueByEmployee(c *gin.Context) {
	totalAmount, err := sc.reports.TotalRevenue(employeeIDFromParam(c))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, "Employee revenue fetched successfully", gin.H{"totalAmount": totalAmount})
}

// GetPendingAmount tổng số tiền còn phải thu
func (sc *SaleController) GetPendingAmount(c *gin.Context) {
	totalAmount, err := sc.reports.PendingAmount(nil)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, "Pending amount fetched successfully", gin.H{"totalAmount": totalAmount})
}

// GetPendingAmountByEmployee tổng số tiền còn phải thu của một nhân viên
func (sc *SaleController) GetPendingAmountByEmployee(c *gin.Context) {
	totalAmount, err := sc.reports.PendingAmount(employeeIDFromParam(c))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, "Employee pending amount fetched successfully", gin.H{"totalAmount": totalAmount})
}

// GetTotalReceivedAmount tổng tiền đã nhận (upfront + received)
func (sc *SaleController) GetTotalReceivedAmount(c *gin.Context) {
	totalReceivedAmount, err := sc.reports.ReceivedAmount(nil)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, "Total received amount calculated successfully", gin.H{"totalReceivedAmount": totalReceivedAmount})
}

// GetReceivedAmountByEmployee tổng tiền đã nhận của một nhân viên
func (sc *SaleController) GetReceivedAmountByEmployee(c *gin.Context) {
	totalAmount, err := sc.reports.ReceivedAmount(employeeIDFromParam(c))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, "Employee received amount fetched successfully", gin.H{"totalAmount": totalAmount})
}

// GetUniqueClients danh sách tên khách hàng duy nhất
func (sc *SaleController) GetUniqueClients(c *gin.Context) {
	uniqueClients, err := sc.reports.UniqueClients(nil)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, "Unique client names fetched successfully", gin.H{
		"totalClients":  len(uniqueClients),
		"uniqueClients": uniqueClients,
	})
}

// GetClientsByEmployee danh sách khách hàng duy nhất của một nhân viên
func (sc *SaleController) GetClientsByEmployee(c *gin.Context) {
	clients, err := sc.reports.UniqueClients(employeeIDFromParam(c))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, "Employee clients fetched successfully", gin.H{"clients": clients})
}

// SuggestClients gợi ý tên khách hàng gần đúng cho autocomplete
func (sc *SaleController) SuggestClients(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		response.BadRequest(c, "q is required")
		return
	}

	limit := 5
	if parsed, err := strconv.Atoi(c.Query("limit")); err == nil && parsed > 0 {
		limit = parsed
	}

	clients, err := sc.reports.UniqueClients(nil)
	if err != nil {
		response.FromError(c, err)
		return
	}

	suggestions := services.SuggestClients(clients, query, limit)
	response.Success(c, "Client suggestions fetched successfully", gin.H{"suggestions": suggestions})
}

// GetEmployeeCurrentSalesAmount doanh số tháng này và năm nay của nhân viên
func (sc *SaleController) GetEmployeeCurrentSalesAmount(c *gin.Context) {
	id, ok := parseIDParam(c, "employeeId")
	if !ok {
		return
	}

	result, err := sc.reports.CurrentSalesAmount(id)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, "Employee current sales amount fetched successfully", gin.H{
		"totalMonthlySales": result.TotalMonthlySales,
		"totalYearlySales":  result.TotalYearlySales,
	})
}

// GetMonthlySalesData báo cáo doanh số đủ 12 tháng (query year, mặc định năm nay)
func (sc *SaleController) GetMonthlySalesData(c *gin.Context) {
	year := time.Now().Year()
	if parsed, err := strconv.Atoi(c.Query("year")); err == nil && parsed > 0 {
		year = parsed
	}

	report, err := sc.reports.MonthlySales(c.Request.Context(), year)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, "Monthly sales data fetched successfully", gin.H{"salesData": report})
}

// GetYearlySalesData báo cáo doanh số theo năm, chỉ các năm có dữ liệu
func (sc *SaleController) GetYearlySalesData(c *gin.Context) {
	report, err := sc.reports.YearlySales(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, "Yearly sales data fetched successfully", gin.H{"salesData": report})
}

// CreateSale tạo sale mới
func (sc *SaleController) CreateSale(c *gin.Context) {
	var input dto.SaleCreateRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	sale, err := sc.sales.Create(c.Request.Context(), input)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Created(c, "Sale created successfully", gin.H{"sale": sale})
}

// UpdateSale cập nhật từng phần một sale
func (sc *SaleController) UpdateSale(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var input dto.SaleUpdateRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	sale, err := sc.sales.Update(c.Request.Context(), id, input)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, "Sale updated successfully", gin.H{"sale": sale})
}

// DeleteSale xóa cứng một sale
func (sc *SaleController) DeleteSale(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := sc.sales.Delete(c.Request.Context(), id); err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, "Sale deleted successfully", nil)
}
