package handler

import (
	"errors"
	"net/http"

	"internhub/internal/middleware"
	"internhub/internal/repository"
	"internhub/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type FavouriteHandler struct {
	repo          *repository.FavouriteRepository
	internshipSvc *service.InternshipService
}

func NewFavouriteHandler(repo *repository.FavouriteRepository, internshipSvc *service.InternshipService) *FavouriteHandler {
	return &FavouriteHandler{repo: repo, internshipSvc: internshipSvc}
}

type AddFavouriteRequest struct {
	InternshipID uint `json:"internship_id" binding:"required"`
}

func (h *FavouriteHandler) Add(c *gin.Context) {
	var req AddFavouriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if _, err := h.internshipSvc.Get(req.InternshipID); err != nil {
		serviceError(c, err)
		return
	}
	userID := middleware.GetUserID(c)
	f, err := h.repo.Add(userID, req.InternshipID)
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusConflict, gin.H{"error": "this internship is already in your favourites"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to add favourite"})
		return
	}
	c.JSON(http.StatusCreated, f)
}

func (h *FavouriteHandler) Remove(c *gin.Context) {
	n, err := h.repo.Remove(middleware.GetUserID(c), paramUint(c, "internshipId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to remove favourite"})
		return
	}
	if n == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "favourite not found"})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *FavouriteHandler) List(c *gin.Context) {
	limit, offset := paginationParams(c).LimitOffset()
	list, count, err := h.repo.ListByUserID(middleware.GetUserID(c), limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"rows": list, "count": count})
}

func (h *FavouriteHandler) Check(c *gin.Context) {
	ok, err := h.repo.IsFavourite(middleware.GetUserID(c), paramUint(c, "internshipId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "check failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"is_favourite": ok})
}
