package response

import (
	"net/http"

	"backoffice/errors"
	"backoffice/utils"

	"github.com/gin-gonic/gin"
)

// Envelope chung cho mọi response: {success, message, ...payload}.
// Payload được trải phẳng lên cấp cao nhất để giữ tương thích với dashboard
// (vd: {"success": true, "message": "...", "sales": [...]}).
func envelope(success bool, message string, payload gin.H) gin.H {
	body := gin.H{
		"success": success,
		"message": message,
	}
	for k, v := range payload {
		body[k] = v
	}
	return body
}

// Success trả về response thành công (200)
func Success(c *gin.Context, message string, payload gin.H) {
	c.JSON(http.StatusOK, envelope(true, message, payload))
}

// Created trả về response tạo mới thành công (201)
func Created(c *gin.Context, message string, payload gin.H) {
	c.JSON(http.StatusCreated, envelope(true, message, payload))
}

// BadRequest trả về response lỗi bad request
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, envelope(false, message, nil))
}

// Unauthorized trả về response chưa xác thực
func Unauthorized(c *gin.Context, message string) {
	if message == "" {
		message = "Access denied. No token provided."
	}
	c.JSON(http.StatusUnauthorized, envelope(false, message, nil))
}

// Forbidden trả về response không có quyền
func Forbidden(c *gin.Context) {
	c.JSON(http.StatusForbidden, envelope(false, "Access denied. You are not an admin.", nil))
}

// NotFound trả về response không tìm thấy
func NotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, envelope(false, message, nil))
}

// ServerError trả về response lỗi server. Không trả lỗi gốc ra ngoài,
// lỗi chi tiết chỉ ghi vào log.
func ServerError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, envelope(false, "Server error", nil))
}

// FromError ánh xạ AppError sang HTTP status theo taxonomy lỗi
func FromError(c *gin.Context, err error) {
	if appErr := errors.GetAppError(err); appErr != nil {
		status := errors.HTTPStatus(appErr.Code)
		if status == http.StatusInternalServerError {
			utils.ErrorLogger.Printf("%s %s: %v", c.Request.Method, c.Request.URL.Path, appErr)
			ServerError(c)
			return
		}
		c.JSON(status, envelope(false, appErr.Message, nil))
		return
	}
	utils.ErrorLogger.Printf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	ServerError(c)
}
