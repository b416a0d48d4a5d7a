package services

import (
	"context"
	"fmt"
	"time"

	"backoffice/constants"
	"backoffice/dto"
	"backoffice/errors"
	"backoffice/models"
	"backoffice/services/logger"

	"github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const reportCacheTTL = 15 * time.Minute

// ReportServiceOptions chứa các dependency của ReportService
type ReportServiceOptions struct {
	DB     *gorm.DB
	Redis  *redis.Client
	Logger logger.Logger
}

// ReportService tổng hợp số liệu sales/salaries/expenses theo tháng và năm.
// Các rollup theo thời gian luôn nhóm theo cột ngày (lead_date, paid_date),
// không dùng hai cột month/year đã denormalize.
type ReportService struct {
	db  *gorm.DB
	rdb *redis.Client
	log logger.Logger
}

func NewReportService(opts ReportServiceOptions) *ReportService {
	l := opts.Logger
	if l == nil {
		l = logger.NewDefaultLogger(logger.InfoLevel)
	}
	return &ReportService{db: opts.DB, rdb: opts.Redis, log: l}
}

// MonthlyRow một dòng kết quả group-by tháng từ DB (month: 1..12)
type MonthlyRow struct {
	Month       int
	TotalAmount float64
	Count       int64
}

// BuildMonthlyReport trải kết quả group-by thành báo cáo đủ 12 tháng
// January..December cho năm year. Tháng không có dữ liệu nhận
// totalAmount = 0, count = 0. Thứ tự luôn theo lịch, không phụ thuộc
// thứ tự aggregation trả về.
func BuildMonthlyReport(rows []MonthlyRow, year int) []dto.MonthlyReportEntry {
	totals := make(map[int]MonthlyRow, len(rows))
	for _, r := range rows {
		totals[r.Month] = r
	}

	report := make([]dto.MonthlyReportEntry, 0, 12)
	for i, name := range constants.MonthNames {
		entry := dto.MonthlyReportEntry{Month: name, Year: year}
		if r, ok := totals[i+1]; ok {
			entry.TotalAmount = r.TotalAmount
			entry.Count = r.Count
		}
		report = append(report, entry)
	}
	return report
}

func (s *ReportService) monthlyRows(model interface{}, dateColumn string, year int) ([]MonthlyRow, error) {
	var rows []MonthlyRow
	err := s.db.Model(model).
		Select(fmt.Sprintf(
			"EXTRACT(MONTH FROM %s)::int AS month, COALESCE(SUM(total_amount), 0) AS total_amount, COUNT(*) AS count",
			dateColumn)).
		Where(fmt.Sprintf("%s IS NOT NULL AND EXTRACT(YEAR FROM %s) = ?", dateColumn, dateColumn), year).
		Group(fmt.Sprintf("EXTRACT(MONTH FROM %s)", dateColumn)).
		Scan(&rows).Error
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Server error", err)
	}
	return rows, nil
}

func (s *ReportService) yearlyRows(model interface{}, dateColumn string) ([]dto.YearlyReportEntry, error) {
	var rows []dto.YearlyReportEntry
	err := s.db.Model(model).
		Select(fmt.Sprintf(
			"EXTRACT(YEAR FROM %s)::int AS year, COALESCE(SUM(total_amount), 0) AS total_amount, COUNT(*) AS count",
			dateColumn)).
		Where(fmt.Sprintf("%s IS NOT NULL", dateColumn)).
		Group(fmt.Sprintf("EXTRACT(YEAR FROM %s)", dateColumn)).
		Order("year ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Server error", err)
	}
	if rows == nil {
		rows = []dto.YearlyReportEntry{}
	}
	return rows, nil
}

// MonthlySales báo cáo doanh số đủ 12 tháng của năm year, nhóm theo lead_date
func (s *ReportService) MonthlySales(ctx context.Context, year int) ([]dto.MonthlyReportEntry, error) {
	key := fmt.Sprintf("report:sales:monthly:%d", year)
	if s.rdb != nil {
		var cached []dto.MonthlyReportEntry
		if ok, err := GetFromRedis(ctx, s.rdb, key, &cached); err == nil && ok {
			return cached, nil
		}
	}

	rows, err := s.monthlyRows(&models.Sale{}, "lead_date", year)
	if err != nil {
		return nil, err
	}
	report := BuildMonthlyReport(rows, year)

	if s.rdb != nil {
		if err := SetToRedis(ctx, s.rdb, key, report, reportCacheTTL); err != nil {
			s.log.Error("không cache được báo cáo sales tháng: %v", err)
		}
	}
	return report, nil
}

// YearlySales báo cáo doanh số theo năm, chỉ các năm có dữ liệu, tăng dần
func (s *ReportService) YearlySales(ctx context.Context) ([]dto.YearlyReportEntry, error) {
	key := "report:sales:yearly"
	if s.rdb != nil {
		var cached []dto.YearlyReportEntry
		if ok, err := GetFromRedis(ctx, s.rdb, key, &cached); err == nil && ok {
			return cached, nil
		}
	}

	rows, err := s.yearlyRows(&models.Sale{}, "lead_date")
	if err != nil {
		return nil, err
	}

	if s.rdb != nil {
		if err := SetToRedis(ctx, s.rdb, key, rows, reportCacheTTL); err != nil {
			s.log.Error("không cache được báo cáo sales năm: %v", err)
		}
	}
	return rows, nil
}

// MonthlySalaries báo cáo lương đủ 12 tháng của năm year, nhóm theo paid_date
func (s *ReportService) MonthlySalaries(ctx context.Context, year int) ([]dto.MonthlyReportEntry, error) {
	rows, err := s.monthlyRows(&models.Salary{}, "paid_date", year)
	if err != nil {
		return nil, err
	}
	return BuildMonthlyReport(rows, year), nil
}

// YearlySalaries báo cáo lương theo năm, chỉ các năm có dữ liệu, tăng dần
func (s *ReportService) YearlySalaries(ctx context.Context) ([]dto.YearlyReportEntry, error) {
	return s.yearlyRows(&models.Salary{}, "paid_date")
}

func (s *ReportService) sumSales(expr string, employeeID *uint) (float64, error) {
	var total float64
	tx := s.db.Model(&models.Sale{}).Select(expr)
	if employeeID != nil {
		tx = tx.Where("user_id = ?", *employeeID)
	}
	if err := tx.Scan(&total).Error; err != nil {
		return 0, errors.NewAppError(errors.ErrCodeDBError, "Server error", err)
	}
	return total, nil
}

// TotalRevenue tổng totalAmount của toàn bộ sales (hoặc của một nhân viên)
func (s *ReportService) TotalRevenue(employeeID *uint) (float64, error) {
	return s.sumSales("COALESCE(SUM(total_amount), 0)", employeeID)
}

// PendingAmount tổng remainingAmount còn phải thu
func (s *ReportService) PendingAmount(employeeID *uint) (float64, error) {
	return s.sumSales("COALESCE(SUM(remaining_amount), 0)", employeeID)
}

// ReceivedAmount tổng tiền đã nhận (upfront + received)
func (s *ReportService) ReceivedAmount(employeeID *uint) (float64, error) {
	return s.sumSales("COALESCE(SUM(upfront_amount + received_amount), 0)", employeeID)
}

// TotalExpenses tổng amount của toàn bộ expenses
func (s *ReportService) TotalExpenses() (float64, error) {
	var total float64
	if err := s.db.Model(&models.Expense{}).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error; err != nil {
		return 0, errors.NewAppError(errors.ErrCodeDBError, "Server error", err)
	}
	return total, nil
}

// UniqueClients danh sách tên khách hàng duy nhất, tùy chọn theo nhân viên
func (s *ReportService) UniqueClients(employeeID *uint) ([]string, error) {
	query := "SELECT COALESCE(array_agg(DISTINCT client_name), '{}') FROM sales"
	args := []interface{}{}
	if employeeID != nil {
		query += " WHERE user_id = ?"
		args = append(args, *employeeID)
	}

	var clients pq.StringArray
	row := s.db.Raw(query, args...).Row()
	if err := row.Scan(&clients); err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Server error", err)
	}
	return []string(clients), nil
}

// CurrentSalesAmount tổng doanh số tháng hiện tại và năm hiện tại của nhân viên
func (s *ReportService) CurrentSalesAmount(employeeID uint) (dto.CurrentSalesAmount, error) {
	now := time.Now()
	loc := now.Location()

	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, loc)
	endOfMonth := startOfMonth.AddDate(0, 1, 0)
	startOfYear := time.Date(now.Year(), 1, 1, 0, 0, 0, 0, loc)
	endOfYear := startOfYear.AddDate(1, 0, 0)

	var result dto.CurrentSalesAmount

	if err := s.db.Model(&models.Sale{}).
		Select("COALESCE(SUM(total_amount), 0)").
		Where("user_id = ? AND lead_date >= ? AND lead_date < ?", employeeID, startOfMonth, endOfMonth).
		Scan(&result.TotalMonthlySales).Error; err != nil {
		return result, errors.NewAppError(errors.ErrCodeDBError, "Server error", err)
	}

	if err := s.db.Model(&models.Sale{}).
		Select("COALESCE(SUM(total_amount), 0)").
		Where("user_id = ? AND lead_date >= ? AND lead_date < ?", employeeID, startOfYear, endOfYear).
		Scan(&result.TotalYearlySales).Error; err != nil {
		return result, errors.NewAppError(errors.ErrCodeDBError, "Server error", err)
	}

	return result, nil
}

// InvalidateSales xóa cache báo cáo sales cho các năm bị ảnh hưởng
func (s *ReportService) InvalidateSales(ctx context.Context, years ...int) {
	if s.rdb == nil {
		return
	}
	keys := []string{"report:sales:yearly"}
	for _, y := range years {
		if y > 0 {
			keys = append(keys, fmt.Sprintf("report:sales:monthly:%d", y))
		}
	}
	if err := DeleteFromRedis(ctx, s.rdb, keys...); err != nil {
		s.log.Error("không xóa được cache báo cáo sales: %v", err)
	}
}

// WarmSalesReportCache tính lại và cache báo cáo 12 tháng của năm hiện tại.
// Được cron gọi hàng đêm.
func (s *ReportService) WarmSalesReportCache() error {
	ctx := context.Background()
	year := time.Now().Year()
	s.InvalidateSales(ctx, year)
	if _, err := s.MonthlySales(ctx, year); err != nil {
		return err
	}
	_, err := s.YearlySales(ctx)
	return err
}
