package controllers

import (
	"context"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gin-gonic/gin"
)

// uploadProfilePicture upload file ảnh trong form lên Cloudinary và trả về URL.
// Không có file thì trả về chuỗi rỗng, không coi là lỗi.
func uploadProfilePicture(c *gin.Context, cld *cloudinary.Cloudinary, field string) (string, error) {
	file, err := c.FormFile(field)
	if err != nil {
		return "", nil
	}

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	resp, err := cld.Upload.Upload(context.Background(), src, uploader.UploadParams{Folder: "avatars"})
	if err != nil {
		return "", err
	}
	return resp.SecureURL, nil
}
