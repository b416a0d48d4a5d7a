package controllers

import (
	"backoffice/constants"
	"backoffice/dto"
	"backoffice/models"
	"backoffice/response"
	"backoffice/services"
	"backoffice/validator"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const tokenExpiryMinutes = 60 * 24 // 1 ngày, theo hợp đồng cũ của dashboard

type AuthController struct {
	db  *gorm.DB
	cld *cloudinary.Cloudinary
}

func NewAuthController(db *gorm.DB, cld *cloudinary.Cloudinary) *AuthController {
	return &AuthController{db: db, cld: cld}
}

// Register đăng ký tài khoản mới, ảnh đại diện (nếu có) upload lên Cloudinary
func (ac *AuthController) Register(c *gin.Context) {
	input := dto.RegisterInput{
		Name:     c.PostForm("name"),
		Email:    c.PostForm("email"),
		Password: c.PostForm("password"),
	}

	if err := validator.ValidateStruct(&input); err != nil {
		response.FromError(c, err)
		return
	}

	var existing models.User
	if err := ac.db.Where("email = ?", input.Email).First(&existing).Error; err == nil {
		response.BadRequest(c, "A user with this email already exists")
		return
	}

	hashedPassword, err := services.HashPassword(input.Password)
	if err != nil {
		response.ServerError(c)
		return
	}

	profilePicture, err := uploadProfilePicture(c, ac.cld, "profilePicture")
	if err != nil {
		response.ServerError(c)
		return
	}

	user := models.User{
		Name:           input.Name,
		Email:          input.Email,
		Password:       hashedPassword,
		ProfilePicture: profilePicture,
		Role:           constants.RoleEmployee,
	}
	if err := ac.db.Create(&user).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Created(c, "Successfully registered", gin.H{"user": user})
}

// Login đăng nhập bằng email + mật khẩu, trả về access token
func (ac *AuthController) Login(c *gin.Context) {
	var input dto.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	user, err := services.GetUserByEmail(ac.db, input.Email)
	if err != nil {
		response.NotFound(c, "User with this email not found")
		return
	}

	if err := services.CheckPassword(user.Password, input.Password); err != nil {
		response.BadRequest(c, "Your password is incorrect")
		return
	}

	token, err := services.GenerateToken(services.UserInfo{UserID: user.ID, Role: user.Role}, tokenExpiryMinutes)
	if err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, "Successfully logged in", gin.H{
		"token": token,
		"user":  user,
	})
}

// AuthGoogle đăng nhập bằng Google Sign-In, tự tạo tài khoản employee nếu chưa có
func (ac *AuthController) AuthGoogle(c *gin.Context) {
	var input dto.GoogleAuthInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	payload, err := services.VerifyGoogleIDToken(c.Request.Context(), input.TokenId)
	if err != nil {
		response.Unauthorized(c, "Invalid token")
		return
	}

	googleUser := dto.GoogleUser{
		Name:          payload.Claims["name"].(string),
		Email:         payload.Claims["email"].(string),
		VerifiedEmail: payload.Claims["email_verified"].(bool),
		Picture:       payload.Claims["picture"].(string),
	}
	if !googleUser.VerifiedEmail {
		response.BadRequest(c, "Email has not been verified")
		return
	}

	var user models.User
	result := ac.db.Where("email = ?", googleUser.Email).First(&user)
	if result.Error == gorm.ErrRecordNotFound {
		user = models.User{
			Name:           googleUser.Name,
			Email:          googleUser.Email,
			ProfilePicture: googleUser.Picture,
			Role:           constants.RoleEmployee,
		}
		if err := ac.db.Create(&user).Error; err != nil {
			response.ServerError(c)
			return
		}
	} else if result.Error != nil {
		response.ServerError(c)
		return
	}

	token, err := services.GenerateToken(services.UserInfo{UserID: user.ID, Role: user.Role}, tokenExpiryMinutes)
	if err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, "Successfully logged in", gin.H{
		"token": token,
		"user":  user,
	})
}
