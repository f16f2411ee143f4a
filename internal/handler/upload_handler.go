package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"internhub/internal/middleware"
	"internhub/internal/repository"
	"internhub/pkg/cloudinary"

	"github.com/gin-gonic/gin"
)

type UploadHandler struct {
	cloud    cloudinary.Client
	userRepo *repository.UserRepository
}

func NewUploadHandler(cloud cloudinary.Client, userRepo *repository.UserRepository) *UploadHandler {
	return &UploadHandler{cloud: cloud, userRepo: userRepo}
}

// UploadAvatar stores a profile image (student avatar or organisation logo)
// and saves the URL on the user.
func (h *UploadHandler) UploadAvatar(c *gin.Context) {
	userID := middleware.GetUserID(c)
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file required"})
		return
	}
	folder := "internhub/avatars/" + strconv.FormatUint(uint64(userID), 10)
	publicID := "img_" + strings.ReplaceAll(uuid.New().String(), "-", "")[:16]

	f, err := file.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not read file"})
		return
	}
	defer f.Close()

	url, _, err := h.cloud.UploadImage(c.Request.Context(), f, folder, publicID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "upload failed"})
		return
	}
	u, err := h.userRepo.GetByID(userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}
	if u.AvatarURL != "" {
		_ = h.cloud.DeleteByURL(c.Request.Context(), u.AvatarURL)
	}
	u.AvatarURL = url
	if err := h.userRepo.Update(u); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "save failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}
