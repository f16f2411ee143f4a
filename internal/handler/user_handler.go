package handler

import (
	"errors"
	"net/http"

	"internhub/internal/domain"
	"internhub/internal/middleware"
	"internhub/internal/repository"
	"internhub/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type UserHandler struct {
	repo     *repository.UserRepository
	notifier *service.NotificationService
}

func NewUserHandler(repo *repository.UserRepository, notifier *service.NotificationService) *UserHandler {
	return &UserHandler{repo: repo, notifier: notifier}
}

func (h *UserHandler) List(c *gin.Context) {
	limit, offset := paginationParams(c).LimitOffset()
	list, count, err := h.repo.List(limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"rows": list, "count": count})
}

func (h *UserHandler) Profile(c *gin.Context) {
	u, err := h.repo.GetByID(middleware.GetUserID(c))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}
	c.JSON(http.StatusOK, u)
}

func (h *UserHandler) Get(c *gin.Context) {
	u, err := h.repo.GetByID(paramUint(c, "id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "lookup failed"})
		return
	}
	c.JSON(http.StatusOK, u)
}

type UpdateUserRequest struct {
	Name        string `json:"name" binding:"omitempty,min=2,max=255"`
	PhoneNumber string `json:"phone_number" binding:"omitempty,min=7,max=32"`
}

// Update lets a user edit their own profile; admins may edit anyone.
func (h *UserHandler) Update(c *gin.Context) {
	id := paramUint(c, "id")
	caller := middleware.GetCaller(c)
	if !caller.IsAdmin() && caller.ID != id {
		c.JSON(http.StatusForbidden, gin.H{"error": "you are not authorized to update this user"})
		return
	}
	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	u, err := h.repo.GetByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}
	if req.Name != "" {
		u.Name = req.Name
	}
	if req.PhoneNumber != "" {
		u.PhoneNumber = req.PhoneNumber
	}
	if err := h.repo.Update(u); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusConflict, gin.H{"error": "phone number already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "update failed"})
		return
	}
	c.JSON(http.StatusOK, u)
}

func (h *UserHandler) Remove(c *gin.Context) {
	if err := h.repo.Delete(paramUint(c, "id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "delete failed"})
		return
	}
	c.Status(http.StatusNoContent)
}

// Organisations lists organisation accounts for admin review, optionally
// filtered by verification status.
func (h *UserHandler) Organisations(c *gin.Context) {
	limit, offset := paginationParams(c).LimitOffset()
	list, count, err := h.repo.ListOrganisations(c.Query("status"), limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"rows": list, "count": count})
}

type UpdateUserStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending verified declined"`
}

// UpdateStatus is the admin verification decision for organisation accounts.
func (h *UserHandler) UpdateStatus(c *gin.Context) {
	var req UpdateUserStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	id := paramUint(c, "id")
	u, err := h.repo.GetByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}
	if err := h.repo.UpdateStatus(id, req.Status); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "update failed"})
		return
	}
	if u.Role == domain.RoleOrganisation && u.Status != req.Status {
		_ = h.notifier.NotifyOrganisationStatus(id, req.Status)
	}
	u.Status = req.Status
	c.JSON(http.StatusOK, u)
}
