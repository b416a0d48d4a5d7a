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

type SalaryController struct {
	salaries *services.SalaryService
	reports  *services.ReportService
}

func NewSalaryController(salaries *services.SalaryService, reports *services.ReportService) *SalaryController {
	return &SalaryController{salaries: salaries, reports: reports}
}

// GetSalaries danh sách lương, lọc tùy chọn theo month/year/status/employee
func (sc *SalaryController) GetSalaries(c *gin.Context) {
	filter := builders.NewSalaryFilter(
		c.Query("month"),
		c.Query("year"),
		c.Query("status"),
		c.Query("employee"),
	)
	salaries, err := sc.salaries.List(filter)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, "Salaries fetched successfully", gin.H{"salaries": salaries})
}

// GetSalaryById một bản ghi lương theo id
func (sc *SalaryController) GetSalaryById(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	salary, err := sc.salaries.GetByID(id)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, "Salary fetched successfully", gin.H{"salary": salary})
}

// GetSalariesByEmployee lịch sử lương của một nhân viên
func (sc *SalaryController) GetSalariesByEmployee(c *gin.Context) {
	filter := builders.NewSalaryFilter(
		c.Query("month"),
		c.Query("year"),
		c.Query("status"),
		c.Param("employeeId"),
	)
	salaries, err := sc.salaries.List(filter)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, "Employee salaries fetched successfully", gin.H{"salaries": salaries})
}

// GetMonthlySalaryData báo cáo lương đủ 12 tháng (query year, mặc định năm nay)
func (sc *SalaryController) GetMonthlySalaryData(c *gin.Context) {
	year := time.Now().Year()
	if parsed, err := strconv.Atoi(c.Query("year")); err == nil && parsed > 0 {
		year = parsed
	}

	report, err := sc.reports.MonthlySalaries(c.Request.Context(), year)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, "Monthly salary data fetched successfully", gin.H{"salaryData": report})
}

// GetYearlySalaryData báo cáo lương theo năm, chỉ các năm có dữ liệu
func (sc *SalaryController) GetYearlySalaryData(c *gin.Context) {
	report, err := sc.reports.YearlySalaries(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, "Yearly salary data fetched successfully", gin.H{"salaryData": report})
}

// CreateSalary tạo bản ghi lương mới
func (sc *SalaryController) CreateSalary(c *gin.Context) {
	var input dto.SalaryCreateRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	salary, err := sc.salaries.Create(input)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Created(c, "Salary record created successfully", gin.H{"salary": salary})
}

// UpdateSalary cập nhật từng phần một bản ghi lương
func (sc *SalaryController) UpdateSalary(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var input dto.SalaryUpdateRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	salary, err := sc.salaries.Update(id, input)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, "Salary record updated successfully", gin.H{"salary": salary})
}

// DeleteSalary xóa một bản ghi lương
func (sc *SalaryController) DeleteSalary(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := sc.salaries.Delete(id); err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, "Salary record deleted successfully", nil)
}
