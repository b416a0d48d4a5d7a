package services

import (
	"backoffice/errors"

	"github.com/dgrijalva/jwt-go"
)

// ParseToken xác minh chữ ký token và trả về userID + role từ claims
func ParseToken(tokenString string) (uint, string, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.NewAppError(errors.ErrCodeInvalidToken, "Invalid token", nil)
		}
		return secretKey(), nil
	})
	if err != nil || !token.Valid {
		return 0, "", errors.NewAppError(errors.ErrCodeInvalidToken, "Invalid token", err)
	}

	if claims.UserInfo.UserID == 0 {
		return 0, "", errors.NewAppError(errors.ErrCodeInvalidToken, "Invalid token", nil)
	}

	return claims.UserInfo.UserID, claims.UserInfo.Role, nil
}
