package services

import (
	"context"
	"time"

	"backoffice/config"
	"backoffice/errors"
	"backoffice/models"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"
	"google.golang.org/api/idtoken"
	"gorm.io/gorm"
)

// UserInfo thông tin user nhúng trong token
type UserInfo struct {
	UserID uint   `json:"userId"`
	Role   string `json:"role"`
}

type Claims struct {
	UserInfo UserInfo `json:"userinfo"`
	jwt.StandardClaims
}

// secretKey đọc secret từ env mỗi lần dùng để không phụ thuộc thứ tự
// load .env lúc khởi động
func secretKey() []byte {
	return []byte(config.GetEnv("SECRET_KEY_ACCESS_TOKEN"))
}

// HashPassword băm mật khẩu bằng bcrypt
func HashPassword(password string) (string, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashedPassword), nil
}

// CheckPassword so sánh mật khẩu với hash đã lưu
func CheckPassword(hashed, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(password))
}

// GenerateToken tạo access token HS256 chứa userId và role
func GenerateToken(userInfo UserInfo, expiryMinutes int) (string, error) {
	claims := &Claims{
		UserInfo: userInfo,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(time.Minute * time.Duration(expiryMinutes)).Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secretKey())
}

// GetUserByEmail tìm user theo email
func GetUserByEmail(db *gorm.DB, email string) (models.User, error) {
	var user models.User
	if err := db.Where("email = ?", email).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return models.User{}, errors.NewAppError(errors.ErrCodeNotFound, "User with this email not found", err)
		}
		return models.User{}, errors.NewAppError(errors.ErrCodeDBError, "Server error", err)
	}
	return user, nil
}

// VerifyGoogleIDToken xác minh tokenId từ Google Sign-In
func VerifyGoogleIDToken(ctx context.Context, tokenId string) (*idtoken.Payload, error) {
	clientID := config.GetEnv("GOOGLE_CLIENT_ID")
	payload, err := idtoken.Validate(ctx, tokenId, clientID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeInvalidToken, "Invalid Google token", err)
	}
	return payload, nil
}
