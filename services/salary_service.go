package services

import (
	"backoffice/builders"
	"backoffice/constants"
	"backoffice/dto"
	"backoffice/errors"
	"backoffice/models"
	"backoffice/services/logger"

	"gorm.io/gorm"
)

// SalaryServiceOptions chứa các dependency của SalaryService
type SalaryServiceOptions struct {
	DB     *gorm.DB
	Logger logger.Logger
}

type SalaryService struct {
	db  *gorm.DB
	log logger.Logger
}

func NewSalaryService(opts SalaryServiceOptions) *SalaryService {
	l := opts.Logger
	if l == nil {
		l = logger.NewDefaultLogger(logger.InfoLevel)
	}
	return &SalaryService{db: opts.DB, log: l}
}

// ApplySalaryUpdate ghi đè các field có mặt trong request lên bản ghi hiện có.
// Field nil giữ nguyên giá trị đã lưu; totalAmount được hook tính lại khi Save.
func ApplySalaryUpdate(salary *models.Salary, req dto.SalaryUpdateRequest) {
	if req.Employee != nil {
		salary.EmployeeID = *req.Employee
	}
	if req.Amount != nil {
		salary.Amount = *req.Amount
	}
	if req.Bonus != nil {
		salary.Bonus = *req.Bonus
	}
	if req.Status != nil {
		salary.Status = *req.Status
	}
	if req.PaidDate != nil {
		salary.PaidDate = *req.PaidDate
	}
}

// List trả về danh sách salaries theo filter, kèm thông tin nhân viên
func (s *SalaryService) List(filter builders.SalaryFilter) ([]models.Salary, error) {
	var salaries []models.Salary
	tx := filter.Apply(s.db.Model(&models.Salary{})).
		Preload("Employee").
		Order("paid_date DESC")
	if err := tx.Find(&salaries).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Server error", err)
	}
	return salaries, nil
}

// GetByID lấy một bản ghi lương theo id
func (s *SalaryService) GetByID(id uint) (models.Salary, error) {
	var salary models.Salary
	err := s.db.Preload("Employee").First(&salary, id).Error
	if err == gorm.ErrRecordNotFound {
		return salary, errors.NewAppError(errors.ErrCodeNotFound, "Salary record not found", err)
	}
	if err != nil {
		return salary, errors.NewAppError(errors.ErrCodeDBError, "Server error", err)
	}
	return salary, nil
}

// Create tạo bản ghi lương mới, bonus mặc định 0 khi vắng mặt
func (s *SalaryService) Create(req dto.SalaryCreateRequest) (models.Salary, error) {
	var salary models.Salary

	if req.Status != "" && !constants.ValidSalaryStatus(req.Status) {
		return salary, errors.NewAppError(errors.ErrCodeInvalidStatus, "Invalid salary status", nil)
	}

	var employee models.User
	if err := s.db.First(&employee, req.Employee).Error; err != nil {
		return salary, errors.NewAppError(errors.ErrCodeNotFound, "User not found", err)
	}

	var admin models.User
	if err := s.db.First(&admin, req.Admin).Error; err != nil {
		return salary, errors.NewAppError(errors.ErrCodeNotFound, "Admin not found", err)
	}

	salary = models.Salary{
		EmployeeID: employee.ID,
		AdminID:    admin.ID,
		Amount:     *req.Amount,
		Status:     req.Status,
		PaidDate:   *req.PaidDate,
	}
	if req.Status == "" {
		salary.Status = constants.SalaryStatusPending
	}
	if req.Bonus != nil {
		salary.Bonus = *req.Bonus
	}

	if err := s.db.Create(&salary).Error; err != nil {
		return salary, errors.NewAppError(errors.ErrCodeDBError, "Server error", err)
	}
	return s.GetByID(salary.ID)
}

// Update cập nhật từng phần một bản ghi lương
func (s *SalaryService) Update(id uint, req dto.SalaryUpdateRequest) (models.Salary, error) {
	var salary models.Salary
	if err := s.db.First(&salary, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return salary, errors.NewAppError(errors.ErrCodeNotFound, "Salary record not found", err)
		}
		return salary, errors.NewAppError(errors.ErrCodeDBError, "Server error", err)
	}

	ApplySalaryUpdate(&salary, req)

	if !constants.ValidSalaryStatus(salary.Status) {
		return salary, errors.NewAppError(errors.ErrCodeInvalidStatus, "Invalid salary status", nil)
	}

	if err := s.db.Save(&salary).Error; err != nil {
		return salary, errors.NewAppError(errors.ErrCodeDBError, "Server error", err)
	}
	return s.GetByID(salary.ID)
}

// Delete xóa cứng một bản ghi lương theo id
func (s *SalaryService) Delete(id uint) error {
	var salary models.Salary
	if err := s.db.First(&salary, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.NewAppError(errors.ErrCodeNotFound, "Salary record not found", err)
		}
		return errors.NewAppError(errors.ErrCodeDBError, "Server error", err)
	}
	return s.db.Delete(&salary).Error
}
