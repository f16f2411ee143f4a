package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"internhub/internal/middleware"
	"internhub/internal/repository"
	"internhub/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type NotificationHandler struct {
	repo     *repository.NotificationRepository
	notifier *service.NotificationService
}

func NewNotificationHandler(repo *repository.NotificationRepository, notifier *service.NotificationService) *NotificationHandler {
	return &NotificationHandler{repo: repo, notifier: notifier}
}

func (h *NotificationHandler) List(c *gin.Context) {
	var seen *bool
	if v := c.Query("seen"); v == "true" || v == "false" {
		b := v == "true"
		seen = &b
	}
	limit, offset := paginationParams(c).LimitOffset()
	list, count, err := h.repo.ListByUserID(middleware.GetUserID(c), seen, limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"rows": list, "count": count})
}

func (h *NotificationHandler) Get(c *gin.Context) {
	n, err := h.repo.GetByID(paramUint(c, "id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "notification not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "lookup failed"})
		return
	}
	caller := middleware.GetCaller(c)
	if !caller.IsAdmin() && n.UserID != caller.ID {
		c.JSON(http.StatusForbidden, gin.H{"error": "you do not have permission to view this notification"})
		return
	}
	c.JSON(http.StatusOK, n)
}

type CreateNotificationRequest struct {
	UserID      uint                   `json:"user_id" binding:"required"`
	Type        string                 `json:"type" binding:"required"`
	Title       string                 `json:"title" binding:"required"`
	Description string                 `json:"description" binding:"required"`
	Metadata    map[string]interface{} `json:"metadata"`
}

// Create is the admin escape hatch for manual announcements; workflow
// notifications are created by the services.
func (h *NotificationHandler) Create(c *gin.Context) {
	var req CreateNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.notifier.Notify(req.UserID, req.Type, req.Title, req.Description, req.Metadata); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "create failed"})
		return
	}
	c.Status(http.StatusCreated)
}

type UpdateNotificationRequest struct {
	Title       string                 `json:"title"`
	Type        string                 `json:"type"`
	Description string                 `json:"description"`
	Metadata    map[string]interface{} `json:"metadata"`
}

func (h *NotificationHandler) Update(c *gin.Context) {
	var req UpdateNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	n, err := h.repo.GetByID(paramUint(c, "id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "notification not found"})
		return
	}
	if req.Title != "" {
		n.Title = req.Title
	}
	if req.Type != "" {
		n.Type = req.Type
	}
	if req.Description != "" {
		n.Description = req.Description
	}
	if req.Metadata != nil {
		b, _ := json.Marshal(req.Metadata)
		n.Metadata = b
	}
	if err := h.repo.Update(n); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "update failed"})
		return
	}
	c.JSON(http.StatusOK, n)
}

func (h *NotificationHandler) MarkSeen(c *gin.Context) {
	n, err := h.repo.MarkSeen(paramUint(c, "id"), middleware.GetUserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "update failed"})
		return
	}
	if n == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "notification not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *NotificationHandler) Remove(c *gin.Context) {
	n, err := h.repo.GetByID(paramUint(c, "id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "notification not found"})
		return
	}
	caller := middleware.GetCaller(c)
	if !caller.IsAdmin() && n.UserID != caller.ID {
		c.JSON(http.StatusForbidden, gin.H{"error": "you do not have permission to delete this notification"})
		return
	}
	if err := h.repo.Delete(n.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "delete failed"})
		return
	}
	c.Status(http.StatusNoContent)
}
