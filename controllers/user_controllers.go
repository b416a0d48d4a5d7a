package controllers

import (
	"strconv"
	"strings"

	"backoffice/models"
	"backoffice/response"
	"backoffice/services"
	"backoffice/validator"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type UserController struct {
	db  *gorm.DB
	cld *cloudinary.Cloudinary
}

func NewUserController(db *gorm.DB, cld *cloudinary.Cloudinary) *UserController {
	return &UserController{db: db, cld: cld}
}

// parseIDParam đọc id từ path param, sai định dạng trả về 0
func parseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		response.BadRequest(c, "Invalid id")
		return 0, false
	}
	return uint(id), true
}

// GetUsers danh sách user, lọc tùy chọn theo tên/email không phân biệt dấu
func (uc *UserController) GetUsers(c *gin.Context) {
	var users []models.User
	if err := uc.db.Find(&users).Error; err != nil {
		response.ServerError(c)
		return
	}

	nameFilter := c.Query("name")
	if nameFilter != "" {
		normalizedFilter := services.NormalizeQuery(strings.ReplaceAll(nameFilter, " ", ""))
		var filtered []models.User
		for _, user := range users {
			normalizedName := services.NormalizeQuery(strings.ReplaceAll(user.Name, " ", ""))
			normalizedEmail := services.NormalizeQuery(user.Email)
			if strings.Contains(normalizedName, normalizedFilter) || strings.Contains(normalizedEmail, normalizedFilter) {
				filtered = append(filtered, user)
			}
		}
		users = filtered
	}

	response.Success(c, "Users fetched successfully", gin.H{"users": users})
}

// GetUserProfile thông tin một user theo id
func (uc *UserController) GetUserProfile(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var user models.User
	if err := uc.db.First(&user, id).Error; err != nil {
		response.NotFound(c, "User not found")
		return
	}

	response.Success(c, "User fetched successfully", gin.H{"user": user})
}

// UpdateUserProfile cập nhật tên/email/ảnh đại diện. Ảnh mới (nếu có)
// upload lên Cloudinary và ghi đè URL cũ.
func (uc *UserController) UpdateUserProfile(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var user models.User
	if err := uc.db.First(&user, id).Error; err != nil {
		response.NotFound(c, "User not found")
		return
	}

	if name := c.PostForm("name"); name != "" {
		user.Name = name
	}
	if email := c.PostForm("email"); email != "" {
		if !validator.IsValidEmail(email) {
			response.BadRequest(c, "Email must be a valid email")
			return
		}
		user.Email = email
	}
	if picture := c.PostForm("profilePicture"); picture != "" {
		user.ProfilePicture = picture
	}

	uploaded, err := uploadProfilePicture(c, uc.cld, "profilePicture")
	if err != nil {
		response.ServerError(c)
		return
	}
	if uploaded != "" {
		user.ProfilePicture = uploaded
	}

	if err := uc.db.Save(&user).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, "Profile updated successfully", gin.H{"user": user})
}

// DeleteUser xóa tài khoản. Sales/salaries tham chiếu tới user này được
// giữ nguyên (allow-orphan), chỉ bản ghi user bị xóa.
func (uc *UserController) DeleteUser(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var user models.User
	if err := uc.db.First(&user, id).Error; err != nil {
		response.NotFound(c, "User not found")
		return
	}

	if err := uc.db.Delete(&user).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, "Account deleted successfully", nil)
}
