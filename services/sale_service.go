package services

import (
	"context"

	"backoffice/builders"
	"backoffice/constants"
	"backoffice/dto"
	"backoffice/errors"
	"backoffice/models"
	"backoffice/services/logger"

	"gorm.io/gorm"
)

// SaleServiceOptions chứa các dependency của SaleService
type SaleServiceOptions struct {
	DB      *gorm.DB
	Reports *ReportService
	Logger  logger.Logger
}

type SaleService struct {
	db      *gorm.DB
	reports *ReportService
	log     logger.Logger
}

func NewSaleService(opts SaleServiceOptions) *SaleService {
	l := opts.Logger
	if l == nil {
		l = logger.NewDefaultLogger(logger.InfoLevel)
	}
	return &SaleService{db: opts.DB, reports: opts.Reports, log: l}
}

// ApplySaleUpdate ghi đè các field có mặt trong request lên bản ghi hiện có.
// Field nil giữ nguyên giá trị đã lưu, nên các trường dẫn xuất được tính lại
// từ hỗn hợp giá trị mới và giá trị cũ đúng như hợp đồng update từng phần.
func ApplySaleUpdate(sale *models.Sale, req dto.SaleUpdateRequest) {
	if req.ClientName != nil {
		sale.ClientName = *req.ClientName
	}
	if req.ProjectTitle != nil {
		sale.ProjectTitle = *req.ProjectTitle
	}
	if req.Summary != nil {
		sale.Summary = *req.Summary
	}
	if req.TotalAmount != nil {
		sale.TotalAmount = *req.TotalAmount
	}
	if req.UpfrontAmount != nil {
		sale.UpfrontAmount = *req.UpfrontAmount
	}
	if req.ReceivedAmount != nil {
		sale.ReceivedAmount = *req.ReceivedAmount
	}
	if req.Status != nil {
		sale.Status = *req.Status
	}
	if req.PaymentMethod != nil {
		sale.PaymentMethodID = *req.PaymentMethod
	}
	if req.LeadDate != nil {
		sale.LeadDate = req.LeadDate
	}
	if req.Month != nil {
		sale.Month = *req.Month
	}
	if req.Year != nil {
		sale.Year = *req.Year
	}
	if req.User != nil {
		sale.UserID = *req.User
	}
}

// List trả về danh sách sales theo filter, kèm user và payment method
func (s *SaleService) List(filter builders.SaleFilter) ([]models.Sale, error) {
	var sales []models.Sale
	tx := filter.Apply(s.db.Model(&models.Sale{})).
		Preload("User").
		Preload("PaymentMethod").
		Order("created_at DESC")
	if err := tx.Find(&sales).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Server error", err)
	}
	return sales, nil
}

// GetByID lấy một sale theo id, kèm user và payment method
func (s *SaleService) GetByID(id uint) (models.Sale, error) {
	var sale models.Sale
	err := s.db.Preload("User").Preload("PaymentMethod").First(&sale, id).Error
	if err == gorm.ErrRecordNotFound {
		return sale, errors.NewAppError(errors.ErrCodeNotFound, "Sale not found", err)
	}
	if err != nil {
		return sale, errors.NewAppError(errors.ErrCodeDBError, "Server error", err)
	}
	return sale, nil
}

// Create tạo sale mới. Các field dẫn xuất được hook BeforeSave tính.
func (s *SaleService) Create(ctx context.Context, req dto.SaleCreateRequest) (models.Sale, error) {
	var sale models.Sale

	if req.Status != "" && !constants.ValidSaleStatus(req.Status) {
		return sale, errors.NewAppError(errors.ErrCodeInvalidStatus, "Invalid sale status", nil)
	}

	var user models.User
	if err := s.db.First(&user, req.User).Error; err != nil {
		return sale, errors.NewAppError(errors.ErrCodeNotFound, "User not found", err)
	}

	var method models.PaymentMethod
	if err := s.db.First(&method, req.PaymentMethod).Error; err != nil {
		return sale, errors.NewAppError(errors.ErrCodeNotFound, "Payment method not found", err)
	}

	sale = models.Sale{
		ClientName:      req.ClientName,
		ProjectTitle:    req.ProjectTitle,
		Summary:         req.Summary,
		TotalAmount:     *req.TotalAmount,
		Status:          req.Status,
		PaymentMethodID: method.ID,
		LeadDate:        req.LeadDate,
		Month:           req.Month,
		Year:            req.Year,
		UserID:          user.ID,
	}
	if req.Status == "" {
		sale.Status = constants.SaleStatusPartiallyPaid
	}
	if req.UpfrontAmount != nil {
		sale.UpfrontAmount = *req.UpfrontAmount
	}
	if req.ReceivedAmount != nil {
		sale.ReceivedAmount = *req.ReceivedAmount
	}

	if err := s.db.Create(&sale).Error; err != nil {
		return sale, errors.NewAppError(errors.ErrCodeDBError, "Server error", err)
	}

	if s.reports != nil {
		s.reports.InvalidateSales(ctx, sale.Year)
	}
	return s.GetByID(sale.ID)
}

// Update cập nhật từng phần một sale, tính lại các field dẫn xuất
func (s *SaleService) Update(ctx context.Context, id uint, req dto.SaleUpdateRequest) (models.Sale, error) {
	var sale models.Sale
	if err := s.db.First(&sale, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return sale, errors.NewAppError(errors.ErrCodeNotFound, "Sale not found", err)
		}
		return sale, errors.NewAppError(errors.ErrCodeDBError, "Server error", err)
	}

	oldYear := sale.Year
	ApplySaleUpdate(&sale, req)

	if !constants.ValidSaleStatus(sale.Status) {
		return sale, errors.NewAppError(errors.ErrCodeInvalidStatus, "Invalid sale status", nil)
	}

	if err := s.db.Save(&sale).Error; err != nil {
		return sale, errors.NewAppError(errors.ErrCodeDBError, "Server error", err)
	}

	if s.reports != nil {
		s.reports.InvalidateSales(ctx, oldYear, sale.Year)
	}
	return s.GetByID(sale.ID)
}

// Delete xóa cứng một sale theo id
func (s *SaleService) Delete(ctx context.Context, id uint) error {
	var sale models.Sale
	if err := s.db.First(&sale, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.NewAppError(errors.ErrCodeNotFound, "Sale not found", err)
		}
		return errors.NewAppError(errors.ErrCodeDBError, "Server error", err)
	}

	if err := s.db.Delete(&sale).Error; err != nil {
		return errors.NewAppError(errors.ErrCodeDBError, "Server error", err)
	}

	if s.reports != nil {
		s.reports.InvalidateSales(ctx, sale.Year)
	}
	return nil
}
